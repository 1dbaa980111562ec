package parley

import "context"

// Request is a single generation request.
type Request struct {
	APIKey  string
	Text    string    // new user text
	History []Message // conversation before Text; the client trims it
}

// Client is a strategy pattern interface for generation backends.
// Send fails with *APIError.
type Client interface {
	Send(ctx context.Context, req Request) (string, error)
}
