package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chatsvc "github.com/makerstech/storefront-backend/internal/chat"
)

type stubChatService struct {
	lastMessage string
	lastSession string
	reply       string
}

func (s *stubChatService) Relay(_ context.Context, sessionID, message string) string {
	s.lastSession, s.lastMessage = sessionID, message
	return s.reply
}

func (s *stubChatService) Greeting() string {
	return chatsvc.GreetingMessage
}

func TestChatRelay(t *testing.T) {
	logg := testLogger()

	t.Run("success", func(t *testing.T) {
		stub := &stubChatService{reply: "We have 15 in stock."}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"stock of HP computers?"}`))
		req = req.WithContext(sessionContext(req.Context()))
		rec := httptest.NewRecorder()
		ChatRelay(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.lastMessage != "stock of HP computers?" || stub.lastSession != "test-session" {
			t.Fatalf("unexpected relay args %q / %q", stub.lastMessage, stub.lastSession)
		}
		var envelope struct {
			Data chatResponse `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("decoding envelope: %v", err)
		}
		if envelope.Data.Reply != "We have 15 in stock." {
			t.Fatalf("unexpected reply %q", envelope.Data.Reply)
		}
	})

	t.Run("empty message rejected", func(t *testing.T) {
		stub := &stubChatService{}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":""}`))
		req = req.WithContext(sessionContext(req.Context()))
		rec := httptest.NewRecorder()
		ChatRelay(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestChatGreeting(t *testing.T) {
	logg := testLogger()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/greeting", nil)
	rec := httptest.NewRecorder()
	ChatGreeting(&stubChatService{}, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data chatResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if envelope.Data.Reply != chatsvc.GreetingMessage {
		t.Fatalf("unexpected greeting %q", envelope.Data.Reply)
	}
}
