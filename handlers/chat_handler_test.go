package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/chatbot"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/ws"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newChatApp(bot chatbot.Backend) *fiber.App {
	handler := NewChatHandler(ws.NewHub(), nil, bot, testWhatsAppNumber)

	app := fiber.New()
	app.Post("/api/chat", handler.SendMessage)
	app.Get("/api/chat/whatsapp", handler.WhatsAppLink)
	return app
}

func TestSendMessageRelaysBackendReply(t *testing.T) {
	app := newChatApp(&fakeBot{reply: "Our 550W panels are in stock."})

	resp, body := performJSON(t, app, http.MethodPost, "/api/chat",
		SendMessageRequest{Message: "Do you have 550W panels?"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Our 550W panels are in stock.", body["reply"])
	require.Nil(t, body["fallback"])
}

func TestSendMessageFallsBackWhenBackendFails(t *testing.T) {
	app := newChatApp(&fakeBot{err: errors.New("backend down")})

	resp, body := performJSON(t, app, http.MethodPost, "/api/chat",
		SendMessageRequest{Message: "Hello"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, chatbot.FallbackReply, body["reply"])
	require.Equal(t, true, body["fallback"])
}

func TestSendMessageRequiresMessage(t *testing.T) {
	app := newChatApp(&fakeBot{reply: "unused"})

	resp, body := performJSON(t, app, http.MethodPost, "/api/chat",
		SendMessageRequest{Message: ""}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Message is required", body["error"])
}

func TestWhatsAppLinkUsesConfiguredNumber(t *testing.T) {
	app := newChatApp(&fakeBot{reply: "unused"})

	resp, body := performJSON(t, app, http.MethodGet, "/api/chat/whatsapp", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body["url"], "https://wa.me/"+testWhatsAppNumber)
}
