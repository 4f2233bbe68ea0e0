package contract

import "context"

// Assistant is the conversational surface the chat shell talks to.
type Assistant interface {
	HandleMessage(ctx context.Context, text string) (string, error)
}
