package summarizer

import (
	"github.com/nguyentantai21042004/media-digest/internal/chunker"
	"github.com/nguyentantai21042004/media-digest/internal/config"
	"github.com/nguyentantai21042004/media-digest/internal/llm"
	"github.com/nguyentantai21042004/media-digest/internal/logger"
)

type implSummarizer struct {
	cfg    *config.Config
	client llm.Client
	logger logger.Logger
}

// New creates a Summarizer. All settings come from the config struct passed
// here; the summarizer holds no global state.
func New(cfg *config.Config, client llm.Client, log logger.Logger) Summarizer {
	return &implSummarizer{
		cfg:    cfg,
		client: client,
		logger: log,
	}
}

func (s *implSummarizer) chunkOptions() chunker.Options {
	return chunker.Options{
		MaxSize: s.cfg.Summary.ChunkSize,
		Overlap: *s.cfg.Summary.ChunkOverlap,
	}
}
