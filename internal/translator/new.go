package translator

import (
	"github.com/nguyentantai21042004/media-digest/internal/config"
	"github.com/nguyentantai21042004/media-digest/internal/llm"
	"github.com/nguyentantai21042004/media-digest/internal/logger"
)

type implTranslator struct {
	cfg    *config.Config
	client llm.Client
	logger logger.Logger
}

// New creates a Translator using the shared model client.
func New(cfg *config.Config, client llm.Client, log logger.Logger) Translator {
	return &implTranslator{
		cfg:    cfg,
		client: client,
		logger: log,
	}
}
