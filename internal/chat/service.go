package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/makerstech/storefront-backend/pkg/config"
	"github.com/makerstech/storefront-backend/pkg/logger"
	"github.com/makerstech/storefront-backend/pkg/metrics"
)

const (
	// payloadSource identifies this storefront to the automation workflow.
	payloadSource = "makers-tech-chatbot"

	// FallbackMessage is the only text users see when the webhook misbehaves.
	FallbackMessage = "Sorry, I'm having trouble responding right now. Please try again in a moment."

	// GreetingMessage opens every chat session.
	GreetingMessage = "Hi! I'm your tech assistant. I can help you with product information, inventory, prices, and specifications. How can I help you today?"

	maxWebhookResponseBytes = 1 << 20
)

// Service relays chat messages to the external automation webhook.
type Service interface {
	Relay(ctx context.Context, sessionID, message string) string
	Greeting() string
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type service struct {
	webhookURL string
	client     httpDoer
	logg       *logger.Logger
	metrics    *metrics.ChatMetrics
}

// NewService constructs a chat relay instance. The metrics recorder may be
// nil; recording is a no-op then.
func NewService(cfg config.ChatConfig, client httpDoer, logg *logger.Logger, chatMetrics *metrics.ChatMetrics) (Service, error) {
	if cfg.WebhookURL == "" {
		return nil, fmt.Errorf("chat webhook url required")
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		webhookURL: cfg.WebhookURL,
		client:     client,
		logg:       logg,
		metrics:    chatMetrics,
	}, nil
}

type webhookPayload struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	SessionID string `json:"sessionId"`
}

// Relay forwards the message and extracts the assistant reply. Every failure
// mode (transport, non-2xx, unparseable body) collapses to the fixed fallback
// message; callers never see an error.
func (s *service) Relay(ctx context.Context, sessionID, message string) string {
	started := time.Now()
	ctx = s.logg.WithSessionID(ctx, sessionID)

	reply, err := s.relay(ctx, sessionID, message)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "reason", err.Error()), "chat relay fell back")
		s.metrics.ObserveRelay("fallback", time.Since(started))
		s.metrics.IncFallback()
		return FallbackMessage
	}

	s.metrics.ObserveRelay("ok", time.Since(started))
	return reply
}

// Greeting returns the canned session-opening message.
func (s *service) Greeting() string {
	return GreetingMessage
}

func (s *service) relay(ctx context.Context, sessionID, message string) (string, error) {
	body, err := json.Marshal(webhookPayload{
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Source:    payloadSource,
		SessionID: sessionID,
	})
	if err != nil {
		return "", fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxWebhookResponseBytes))
	if err != nil {
		return "", fmt.Errorf("reading webhook response: %w", err)
	}

	reply, ok := extractReply(raw)
	if !ok {
		return "", fmt.Errorf("no reply text in webhook response")
	}
	return reply, nil
}

// extractReply digs the assistant text out of the webhook response. The
// workflow has shipped several shapes over time: an "output" field that is
// itself a JSON string with response/message/reply keys, and flat top-level
// response/message/reply/text fields.
func extractReply(raw []byte) (string, bool) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", false
	}

	if output, ok := envelope["output"]; ok {
		if reply, ok := replyFromOutput(output); ok {
			return reply, true
		}
	}

	for _, key := range []string{"response", "message", "reply", "text"} {
		if value, ok := envelope[key]; ok {
			if reply, ok := asText(value); ok {
				return reply, true
			}
		}
	}
	return "", false
}

func replyFromOutput(output json.RawMessage) (string, bool) {
	text, ok := asText(output)
	if !ok {
		return "", false
	}

	// the output string may itself be a JSON object carrying the reply
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") {
		var nested map[string]json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &nested); err == nil {
			for _, key := range []string{"response", "message", "reply"} {
				if value, ok := nested[key]; ok {
					if reply, ok := asText(value); ok {
						return reply, true
					}
				}
			}
			return "", false
		}
	}
	return text, true
}

func asText(raw json.RawMessage) (string, bool) {
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", false
	}
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}
