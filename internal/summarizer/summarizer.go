package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/media-digest/internal/chunker"
	"github.com/nguyentantai21042004/media-digest/internal/llm"
)

// Summarize runs the whole pipeline for one text: chunk, summarize each
// chunk (concurrently unless disabled), then reduce the ordered partial
// summaries into one final summary. A failed chunk degrades to a placeholder
// in its slot; only invalid input or a failed reduce call fail the run.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	if s.client == nil {
		return nil, ErrNoClient
	}

	opts := s.chunkOptions()
	s.logger.Info(ctx, "Splitting text: %d chars (chunk size %d, overlap %d)",
		len([]rune(text)), opts.MaxSize, opts.Overlap)

	chunks := chunker.Split(text, opts)
	if len(chunks) == 0 {
		return nil, ErrNoChunks
	}

	total := len(chunks)
	s.logger.Info(ctx, "Text split into %d chunk(s)", total)

	// Short text: one call is the final summary, no reduce step.
	if total == 1 {
		partial := s.summarizeChunk(ctx, chunks[0], 1, 1)
		partials := []Partial{partial}

		partialsFile := s.persistPartials(ctx, partials)

		return &Result{
			Final:        partial.Text,
			Partials:     partials,
			PartialsFile: partialsFile,
		}, nil
	}

	// Every worker owns exactly one slot, so no locking is needed and
	// completion order cannot affect the assembled sequence.
	partials := make([]Partial, total)

	if s.cfg.Summary.Concurrent == nil || *s.cfg.Summary.Concurrent {
		s.logger.Info(ctx, "Summarizing %d chunks with up to %d workers", total, s.cfg.Summary.MaxWorkers)

		sem := make(chan struct{}, s.cfg.Summary.MaxWorkers)
		var wg sync.WaitGroup

		for i, chunk := range chunks {
			wg.Add(1)
			go func(index int, chunk string) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()

				partials[index-1] = s.summarizeChunk(ctx, chunk, index, total)
			}(i+1, chunk)
		}

		wg.Wait()
	} else {
		s.logger.Info(ctx, "Summarizing %d chunks sequentially", total)
		for i, chunk := range chunks {
			partials[i] = s.summarizeChunk(ctx, chunk, i+1, total)
		}
	}

	succeeded := 0
	for _, p := range partials {
		if p.Err == nil {
			succeeded++
		}
	}
	s.logger.Info(ctx, "Chunk summaries done: %d/%d succeeded", succeeded, total)

	// Persist before the reduce call so the partials survive its failure.
	partialsFile := s.persistPartials(ctx, partials)

	var b strings.Builder
	for _, p := range partials {
		fmt.Fprintf(&b, "Part %d of %d:\n%s\n\n", p.Index, total, p.Text)
	}
	combined := strings.TrimSpace(b.String())

	s.logger.Info(ctx, "Generating final summary from %d partial summaries", total)

	final, err := s.client.Complete(ctx, llm.Request{
		System:          reduceSystem(s.cfg.Summary.Language),
		Prompt:          reducePrompt(combined),
		Temperature:     summaryTemperature,
		MaxOutputTokens: reduceMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("reduce %d partial summaries (%d of %d chunks succeeded): %w",
			total, succeeded, total, err)
	}

	s.logger.Info(ctx, "Final summary generated (%d chars)", len([]rune(final)))

	return &Result{
		Final:        strings.TrimSpace(final),
		Partials:     partials,
		PartialsFile: partialsFile,
	}, nil
}

// summarizeChunk summarizes one chunk. Failures are captured in the returned
// Partial, never propagated, so one bad chunk cannot sink the run.
func (s *implSummarizer) summarizeChunk(ctx context.Context, chunk string, index, total int) Partial {
	s.logger.Info(ctx, "Summarizing chunk %d/%d (%d chars)", index, total, len([]rune(chunk)))

	text, err := s.client.Complete(ctx, llm.Request{
		System:          chunkSystem(s.cfg.Summary.Language),
		Prompt:          chunkPrompt(index, total, chunk),
		Temperature:     summaryTemperature,
		MaxOutputTokens: chunkMaxTokens,
	})
	if err != nil {
		s.logger.Error(ctx, "Chunk %d/%d summarization failed: %v", index, total, err)
		return Partial{
			Index: index,
			Text:  fmt.Sprintf("summarization failed: %v", err),
			Err:   err,
		}
	}

	s.logger.Info(ctx, "Chunk %d/%d summarized (%d chars)", index, total, len([]rune(text)))
	return Partial{Index: index, Text: strings.TrimSpace(text)}
}
