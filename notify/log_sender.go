package notify

import (
	"context"
	"log"
)

// LogSender stands in for FCM when no credentials are configured. It
// records the would-be delivery and succeeds.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, token, title, body string) error {
	log.Printf("push (dry-run) to %s: %s / %s", token, title, body)
	return nil
}
