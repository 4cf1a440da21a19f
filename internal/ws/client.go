package ws

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/chatbot"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/models"

	"github.com/gofiber/contrib/websocket"
	"gorm.io/gorm"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096 // 4KB

	// How long a bot reply may take before the fallback is used.
	botReplyTimeout = 20 * time.Second
)

// Client is a middleman between one websocket connection and the hub.
// A client is either an anonymous visitor (SessionID set) or a staff
// agent (AgentID set).
type Client struct {
	Hub *Hub

	// The websocket connection.
	Conn *websocket.Conn

	// Buffered channel of outbound messages.
	Send chan []byte

	// Visitor session token; empty for agents
	SessionID string

	// Staff user id from authentication; zero for visitors
	AgentID uint

	// Database connection for message persistence
	DB *gorm.DB

	// Assistant backend answering visitors when no agent is online
	Bot chatbot.Backend
}

func (c *Client) IsAgent() bool {
	return c.AgentID != 0
}

// WSMessage defines the structure of messages sent over WebSocket
type WSMessage struct {
	Type      string `json:"type"`                 // 'chat', 'typing'
	SessionID string `json:"session_id,omitempty"` // set by agents to address a visitor session
	Content   string `json:"content,omitempty"`
}

// ReadPump pumps messages from the websocket connection to the hub.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// WritePump pumps messages from the hub to the websocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued chat messages to the current websocket message.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				w.Write(<-c.Send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(message []byte) {
	var wsMsg WSMessage
	if err := json.Unmarshal(message, &wsMsg); err != nil {
		log.Printf("Error unmarshalling message: %v", err)
		return
	}

	switch wsMsg.Type {
	case "chat":
		if c.IsAgent() {
			c.processAgentMessage(&wsMsg)
		} else {
			c.processVisitorMessage(&wsMsg)
		}
	case "typing":
		c.relayTyping(&wsMsg)
	}
}

// relayTyping forwards typing indicators without persistence.
func (c *Client) relayTyping(wsMsg *WSMessage) {
	if c.IsAgent() {
		if wsMsg.SessionID == "" {
			return
		}
		payload, _ := json.Marshal(map[string]interface{}{
			"type":       "typing",
			"session_id": wsMsg.SessionID,
			"sender":     models.SenderAgent,
		})
		c.Hub.SendToSession(wsMsg.SessionID, payload)
		return
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"type":       "typing",
		"session_id": c.SessionID,
		"sender":     models.SenderVisitor,
	})
	c.Hub.SendToAgents(payload)
}

func (c *Client) processVisitorMessage(wsMsg *WSMessage) {
	if wsMsg.Content == "" {
		return
	}

	// 1. Ensure the session row exists (the widget may reconnect with a
	// token minted days ago)
	var session models.SupportSession
	if err := c.DB.Where("session_id = ?", c.SessionID).
		FirstOrCreate(&session, models.SupportSession{SessionID: c.SessionID}).Error; err != nil {
		log.Printf("Error loading support session %s: %v", c.SessionID, err)
		return
	}

	// 2. Persist the visitor message
	msg := models.SupportMessage{
		SupportSessionID: session.ID,
		Sender:           models.SenderVisitor,
		Content:          wsMsg.Content,
	}
	if err := c.DB.Create(&msg).Error; err != nil {
		log.Printf("Error saving visitor message: %v", err)
		return
	}
	c.touchSession(session.ID, wsMsg.Content)

	payload, _ := json.Marshal(map[string]interface{}{
		"type":       "chat",
		"session_id": c.SessionID,
		"message":    msg,
	})

	// Echo to the visitor's own tabs and fan out to agent consoles
	c.Hub.SendToSession(c.SessionID, payload)
	c.Hub.SendToAgents(payload)

	// 3. Nobody around to answer: let the assistant backend reply
	if !c.Hub.AgentOnline() && c.Bot != nil {
		go c.answerWithBot(session.ID, wsMsg.Content)
	}
}

func (c *Client) processAgentMessage(wsMsg *WSMessage) {
	if wsMsg.SessionID == "" || wsMsg.Content == "" {
		return
	}

	var session models.SupportSession
	if err := c.DB.Where("session_id = ?", wsMsg.SessionID).First(&session).Error; err != nil {
		log.Printf("Agent %d wrote to unknown session %s", c.AgentID, wsMsg.SessionID)
		return
	}

	msg := models.SupportMessage{
		SupportSessionID: session.ID,
		Sender:           models.SenderAgent,
		AgentID:          c.AgentID,
		Content:          wsMsg.Content,
	}
	if err := c.DB.Create(&msg).Error; err != nil {
		log.Printf("Error saving agent message: %v", err)
		return
	}
	c.touchSession(session.ID, wsMsg.Content)

	payload, _ := json.Marshal(map[string]interface{}{
		"type":       "chat",
		"session_id": wsMsg.SessionID,
		"message":    msg,
	})

	// Deliver to the visitor and mirror to every agent console
	c.Hub.SendToSession(wsMsg.SessionID, payload)
	c.Hub.SendToAgents(payload)
}

// answerWithBot asks the assistant backend for a reply and delivers it
// to the visitor session. Any failure degrades to the static fallback.
func (c *Client) answerWithBot(sessionDBID uint, content string) {
	ctx, cancel := context.WithTimeout(context.Background(), botReplyTimeout)
	defer cancel()

	history := c.recentHistory(sessionDBID)

	reply, err := c.Bot.Reply(ctx, content, history)
	if err != nil {
		log.Printf("Chat backend failed for session %s: %v", c.SessionID, err)
		reply = chatbot.FallbackReply
	}

	msg := models.SupportMessage{
		SupportSessionID: sessionDBID,
		Sender:           models.SenderBot,
		Content:          reply,
	}
	if err := c.DB.Create(&msg).Error; err != nil {
		log.Printf("Error saving bot message: %v", err)
	}
	c.touchSession(sessionDBID, reply)

	payload, _ := json.Marshal(map[string]interface{}{
		"type":       "chat",
		"session_id": c.SessionID,
		"message":    msg,
	})
	c.Hub.SendToSession(c.SessionID, payload)
	c.Hub.SendToAgents(payload)
}

// recentHistory loads the last few turns of the conversation for the
// assistant backend.
func (c *Client) recentHistory(sessionDBID uint) []chatbot.Turn {
	var messages []models.SupportMessage
	if err := c.DB.Where("support_session_id = ?", sessionDBID).
		Order("created_at DESC").
		Limit(10).
		Find(&messages).Error; err != nil {
		log.Printf("Error loading history for session %d: %v", sessionDBID, err)
		return nil
	}

	// Reverse to oldest first
	history := make([]chatbot.Turn, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		role := "assistant"
		if messages[i].Sender == models.SenderVisitor {
			role = "user"
		}
		history = append(history, chatbot.Turn{Role: role, Content: messages[i].Content})
	}
	return history
}

// touchSession updates the denormalized preview fields on the session.
func (c *Client) touchSession(sessionDBID uint, content string) {
	if err := c.DB.Model(&models.SupportSession{}).Where("id = ?", sessionDBID).Updates(map[string]interface{}{
		"last_message_content": content,
		"last_message_at":      time.Now(),
	}).Error; err != nil {
		log.Printf("Error updating support session metadata: %v", err)
	}
}
