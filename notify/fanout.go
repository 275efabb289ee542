package notify

import (
	"context"
	"log"
	"sync"
)

// Fanout sends the same notification to every token, one goroutine per
// delivery, and waits for all outcomes. Best effort: individual
// failures are logged and do not affect the others. Returns the number
// of successful sends.
func Fanout(ctx context.Context, sender Sender, tokens []string, title, body string) int {
	var wg sync.WaitGroup
	var mu sync.Mutex
	sent := 0

	for _, token := range tokens {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			if err := sender.Send(ctx, token, title, body); err != nil {
				log.Printf("push to %s failed: %v", token, err)
				return
			}
			mu.Lock()
			sent++
			mu.Unlock()
		}(token)
	}

	wg.Wait()
	return sent
}
