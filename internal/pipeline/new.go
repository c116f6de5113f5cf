package pipeline

import (
	"github.com/nguyentantai21042004/media-digest/internal/config"
	"github.com/nguyentantai21042004/media-digest/internal/fetcher"
	"github.com/nguyentantai21042004/media-digest/internal/logger"
	"github.com/nguyentantai21042004/media-digest/internal/summarizer"
	"github.com/nguyentantai21042004/media-digest/internal/translator"
)

type implPipeline struct {
	cfg        *config.Config
	fetcher    fetcher.Fetcher
	summarizer summarizer.Summarizer
	translator translator.Translator
	logger     logger.Logger
}

// New creates a Pipeline wiring together fetching, summarization,
// translation and output writing.
func New(cfg *config.Config, f fetcher.Fetcher, s summarizer.Summarizer, tr translator.Translator, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:        cfg,
		fetcher:    f,
		summarizer: s,
		translator: tr,
		logger:     log,
	}
}
