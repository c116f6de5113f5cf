package llm

import (
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/media-digest/internal/logger"
)

type implClient struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// New creates a Client backed by Gemini that rotates through the supplied
// API keys when one is rate limited.
func New(apiKeys []string, model string, log logger.Logger) (Client, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("no API keys configured")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implClient{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}, nil
}
