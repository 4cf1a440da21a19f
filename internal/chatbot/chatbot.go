package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FallbackReply is shown when the assistant backend cannot be reached.
// No retry: the visitor can always switch to WhatsApp.
const FallbackReply = "Our assistant is unavailable right now. Tap \"Chat on WhatsApp\" and our team will respond within minutes!"

// Turn is one entry of the short conversation history sent along with
// each message.
type Turn struct {
	Role    string `json:"role"` // 'user' or 'assistant'
	Content string `json:"content"`
}

// Backend produces a reply to a visitor message. It is an opaque
// external collaborator; callers fall back to FallbackReply on any
// error.
type Backend interface {
	Reply(ctx context.Context, message string, history []Turn) (string, error)
}

// HTTPBackend relays messages to an external chat function endpoint.
type HTTPBackend struct {
	URL    string
	Client *http.Client
}

func NewHTTPBackend(url string) *HTTPBackend {
	return &HTTPBackend{
		URL:    url,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (b *HTTPBackend) Reply(ctx context.Context, message string, history []Turn) (string, error) {
	if b.URL == "" {
		return "", errors.New("chat backend not configured")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"message": message,
		"history": history,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.URL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("chat backend returned status %d", resp.StatusCode)
	}

	var out struct {
		Reply string `json:"reply"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Reply == "" {
		return "", errors.New("empty reply from chat backend")
	}
	return out.Reply, nil
}
