package chatbot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPBackendReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Message string `json:"message"`
			History []Turn `json:"history"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "Do you deliver to Abuja?", in.Message)
		require.Len(t, in.History, 2)

		json.NewEncoder(w).Encode(map[string]string{"reply": "Yes, we deliver nationwide."})
	}))
	defer srv.Close()

	backend := NewHTTPBackend(srv.URL)
	history := []Turn{
		{Role: "user", Content: "Hi"},
		{Role: "assistant", Content: "Hello! How can we help?"},
	}

	reply, err := backend.Reply(context.Background(), "Do you deliver to Abuja?", history)
	require.NoError(t, err)
	require.Equal(t, "Yes, we deliver nationwide.", reply)
}

func TestHTTPBackendNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	backend := NewHTTPBackend(srv.URL)
	_, err := backend.Reply(context.Background(), "hello", nil)
	require.Error(t, err)
}

func TestHTTPBackendEmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"reply": ""})
	}))
	defer srv.Close()

	backend := NewHTTPBackend(srv.URL)
	_, err := backend.Reply(context.Background(), "hello", nil)
	require.Error(t, err)
}

func TestHTTPBackendUnconfigured(t *testing.T) {
	backend := NewHTTPBackend("")
	_, err := backend.Reply(context.Background(), "hello", nil)
	require.Error(t, err)
}
