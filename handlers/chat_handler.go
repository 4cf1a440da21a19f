package handlers

import (
	"log"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/chatbot"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/whatsapp"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/ws"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/models"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatHandler struct {
	Hub            *ws.Hub
	DB             *gorm.DB
	Bot            chatbot.Backend
	WhatsAppNumber string
}

func NewChatHandler(hub *ws.Hub, db *gorm.DB, bot chatbot.Backend, whatsappNumber string) *ChatHandler {
	return &ChatHandler{
		Hub:            hub,
		DB:             db,
		Bot:            bot,
		WhatsAppNumber: whatsappNumber,
	}
}

// WebSocketUpgradeMiddleware ensures the client is trying to upgrade to WebSocket
func (h *ChatHandler) WebSocketUpgradeMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("allowed", true)
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// StartSession - POST /api/chat/session
// Mints the session token the widget uses for the websocket and the
// message history.
func (h *ChatHandler) StartSession(c *fiber.Ctx) error {
	session := models.SupportSession{SessionID: uuid.NewString()}
	if err := h.DB.Create(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not start chat session"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session_id": session.SessionID})
}

// VisitorHandler returns the websocket handler for storefront visitors.
func (h *ChatHandler) VisitorHandler() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		sessionID := c.Query("session")
		if _, err := uuid.Parse(sessionID); err != nil {
			log.Println("Rejected websocket connection without a valid session token")
			c.Close()
			return
		}

		client := &ws.Client{
			Hub:       h.Hub,
			Conn:      c,
			Send:      make(chan []byte, 256),
			SessionID: sessionID,
			DB:        h.DB,
			Bot:       h.Bot,
		}

		client.Hub.Register <- client

		go client.WritePump()
		client.ReadPump()
	})
}

// AgentHandler returns the websocket handler for staff consoles. Auth
// middleware runs before the upgrade and sets user_id.
func (h *ChatHandler) AgentHandler() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		agentID, ok := c.Locals("user_id").(uint)
		if !ok || agentID == 0 {
			log.Println("Invalid or missing user ID in agent WebSocket connection")
			c.Close()
			return
		}

		client := &ws.Client{
			Hub:     h.Hub,
			Conn:    c,
			Send:    make(chan []byte, 256),
			AgentID: agentID,
			DB:      h.DB,
			Bot:     h.Bot,
		}

		client.Hub.Register <- client

		go client.WritePump()
		client.ReadPump()
	})
}

// SendMessageRequest is the REST chat payload: the new message plus a
// short history so the assistant has context.
type SendMessageRequest struct {
	Message string         `json:"message"`
	History []chatbot.Turn `json:"history"`
}

// SendMessage - POST /api/chat
// Stateless relay for the widget's quick-question flow. Backend
// failures degrade to the static fallback, no retry.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required"})
	}

	reply, err := h.Bot.Reply(c.Context(), req.Message, req.History)
	if err != nil {
		log.Printf("Chat backend failed: %v", err)
		return c.JSON(fiber.Map{"reply": chatbot.FallbackReply, "fallback": true})
	}

	return c.JSON(fiber.Map{"reply": reply})
}

// WhatsAppLink - GET /api/chat/whatsapp
// The widget's "Chat on WhatsApp" quick action.
func (h *ChatHandler) WhatsAppLink(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"url": whatsapp.InquiryLink(h.WhatsAppNumber)})
}

// ListSessions - GET /api/admin/chat/sessions
// Support sessions for the agent console, newest activity first, with
// an in-memory online flag from the hub.
func (h *ChatHandler) ListSessions(c *fiber.Ctx) error {
	var sessions []models.SupportSession
	if err := h.DB.Order("last_message_at desc").Find(&sessions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch chat sessions"})
	}

	online := make(map[string]bool)
	for _, sessionID := range h.Hub.ActiveSessions() {
		online[sessionID] = true
	}

	type sessionView struct {
		models.SupportSession
		Online bool `json:"online"`
	}

	views := make([]sessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, sessionView{SupportSession: session, Online: online[session.SessionID]})
	}

	return c.JSON(fiber.Map{"data": views})
}

// GetSessionMessages - GET /api/admin/chat/sessions/:sessionID/messages
func (h *ChatHandler) GetSessionMessages(c *fiber.Ctx) error {
	sessionID := c.Params("sessionID")

	var session models.SupportSession
	if err := h.DB.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chat session not found"})
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	var messages []models.SupportMessage
	if err := h.DB.Where("support_session_id = ?", session.ID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch messages"})
	}

	return c.JSON(fiber.Map{"messages": messages})
}
