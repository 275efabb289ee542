package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []string
	fail map[string]bool
}

func (s *recordingSender) Send(ctx context.Context, token, title, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail[token] {
		return errors.New("refused")
	}
	s.sent = append(s.sent, token)
	return nil
}

func TestFanoutDeliversToAllTokens(t *testing.T) {
	sender := &recordingSender{}
	tokens := []string{"a", "b", "c"}

	sent := Fanout(context.Background(), sender, tokens, "title", "body")
	if sent != 3 {
		t.Fatalf("expected 3 successful sends, got %d", sent)
	}
	if len(sender.sent) != 3 {
		t.Fatalf("expected 3 deliveries recorded, got %d", len(sender.sent))
	}
}

// TestFanoutToleratesPartialFailure ensures one bad token does not stop
// the others.
func TestFanoutToleratesPartialFailure(t *testing.T) {
	sender := &recordingSender{fail: map[string]bool{"b": true}}
	tokens := []string{"a", "b", "c"}

	sent := Fanout(context.Background(), sender, tokens, "title", "body")
	if sent != 2 {
		t.Fatalf("expected 2 successful sends, got %d", sent)
	}
}

func TestFanoutNoTokens(t *testing.T) {
	sender := &recordingSender{}

	sent := Fanout(context.Background(), sender, nil, "title", "body")
	if sent != 0 {
		t.Fatalf("expected 0 sends, got %d", sent)
	}
	if len(sender.sent) != 0 {
		t.Fatalf("expected no deliveries, got %d", len(sender.sent))
	}
}
