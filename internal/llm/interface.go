package llm

import "context"

// Request is a single completion call to the model backend.
type Request struct {
	System          string
	Prompt          string
	Temperature     float32
	MaxOutputTokens int32
}

// Client sends completion requests to a remote language model.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Model() string
}
