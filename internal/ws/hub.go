package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub maintains the set of active support chat connections: anonymous
// visitors keyed by their session token, and staff agents who see every
// session.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// Visitor connections by session token (a visitor may have the
	// widget open in several tabs)
	sessionClients map[string][]*Client

	// Connected staff agents
	agents map[*Client]bool

	// Mutex to protect the connection maps
	mutex sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Register:       make(chan *Client),
		Unregister:     make(chan *Client),
		clients:        make(map[*Client]bool),
		sessionClients: make(map[string][]*Client),
		agents:         make(map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.add(client)
		case client := <-h.Unregister:
			h.remove(client)
		}
	}
}

func (h *Hub) add(client *Client) {
	h.mutex.Lock()
	h.clients[client] = true
	h.mutex.Unlock()

	h.track(client)
}

// remove is a no-op when the client was already dropped by a failed
// send, so the channel is never closed twice.
func (h *Hub) remove(client *Client) {
	h.mutex.Lock()
	_, known := h.clients[client]
	if known {
		delete(h.clients, client)
		close(client.Send)
	}
	h.mutex.Unlock()

	if known {
		h.untrack(client)
	}
}

// track registers a client in the session/agent maps and tells agents
// about visitor presence changes.
func (h *Hub) track(client *Client) {
	h.mutex.Lock()
	if client.IsAgent() {
		h.agents[client] = true
		h.mutex.Unlock()
		log.Printf("Agent %d connected", client.AgentID)
		return
	}

	h.sessionClients[client.SessionID] = append(h.sessionClients[client.SessionID], client)
	count := len(h.sessionClients[client.SessionID])
	h.mutex.Unlock()

	log.Printf("Visitor session %s connected. Connections for session: %d", client.SessionID, count)

	statusJSON, _ := json.Marshal(map[string]interface{}{
		"type":       "visitor_status",
		"session_id": client.SessionID,
		"online":     true,
	})
	h.SendToAgents(statusJSON)
}

// untrack removes a client from the session/agent maps.
func (h *Hub) untrack(client *Client) {
	h.mutex.Lock()
	if client.IsAgent() {
		delete(h.agents, client)
		h.mutex.Unlock()
		log.Printf("Agent %d disconnected", client.AgentID)
		return
	}

	conns := h.sessionClients[client.SessionID]
	for i, conn := range conns {
		if conn == client {
			h.sessionClients[client.SessionID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}

	count := len(h.sessionClients[client.SessionID])
	if count == 0 {
		delete(h.sessionClients, client.SessionID)
	}
	h.mutex.Unlock()

	if count == 0 {
		statusJSON, _ := json.Marshal(map[string]interface{}{
			"type":       "visitor_status",
			"session_id": client.SessionID,
			"online":     false,
		})
		h.SendToAgents(statusJSON)
		log.Printf("Visitor session %s disconnected", client.SessionID)
	}
}

// SendToSession delivers a message to every connection of one visitor
// session. Connections that cannot keep up are dropped from every map,
// so a later send never hits their closed channel.
func (h *Hub) SendToSession(sessionID string, message []byte) {
	h.mutex.Lock()

	conns := h.sessionClients[sessionID]
	live := conns[:0]
	for _, client := range conns {
		select {
		case client.Send <- message:
			live = append(live, client)
		default:
			close(client.Send)
			delete(h.clients, client)
		}
	}

	emptied := false
	if len(live) == 0 {
		emptied = len(conns) > 0
		delete(h.sessionClients, sessionID)
	} else {
		h.sessionClients[sessionID] = live
	}
	h.mutex.Unlock()

	if emptied {
		statusJSON, _ := json.Marshal(map[string]interface{}{
			"type":       "visitor_status",
			"session_id": sessionID,
			"online":     false,
		})
		h.SendToAgents(statusJSON)
	}
}

// SendToAgents delivers a message to every connected staff agent.
func (h *Hub) SendToAgents(message []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.agents {
		select {
		case client.Send <- message:
		default:
			close(client.Send)
			delete(h.clients, client)
			delete(h.agents, client)
		}
	}
}

// AgentOnline reports whether any staff agent is connected. When no
// agent is around, the assistant backend answers visitor messages.
func (h *Hub) AgentOnline() bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	return len(h.agents) > 0
}

// ActiveSessions returns the session tokens with at least one live
// connection (in-memory check).
func (h *Hub) ActiveSessions() []string {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	sessions := make([]string, 0, len(h.sessionClients))
	for sessionID := range h.sessionClients {
		sessions = append(sessions, sessionID)
	}
	return sessions
}
