package notify

import "context"

// Sender delivers one push notification to a device token.
type Sender interface {
	Send(ctx context.Context, token, title, body string) error
}
