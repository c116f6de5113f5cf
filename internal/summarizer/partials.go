package summarizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// persistPartials writes the ordered chunk summaries plus run metadata to a
// timestamped text file in the output directory, so the raw partials can be
// recovered even if the reduce call fails afterwards. Returns the file path,
// or "" when persistence is disabled or the write failed (a failed write is
// logged, not fatal).
func (s *implSummarizer) persistPartials(ctx context.Context, partials []Partial) string {
	if s.cfg.Summary.SavePartials != nil && !*s.cfg.Summary.SavePartials {
		return ""
	}

	dir := s.cfg.Paths.Output
	if err := os.MkdirAll(dir, 0755); err != nil {
		s.logger.Error(ctx, "Failed to create output dir for partial summaries: %v", err)
		return ""
	}

	path := filepath.Join(dir, fmt.Sprintf("chunk_summaries_%s.txt", time.Now().Format("20060102_150405")))

	rule := strings.Repeat("=", 60)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("Chunk summaries (in order)\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Chunks: %d\n", len(partials))
	fmt.Fprintf(&b, "Model: %s\n", s.client.Model())
	fmt.Fprintf(&b, "Language: %s\n\n", s.cfg.Summary.Language)

	for _, p := range partials {
		b.WriteString(rule + "\n")
		fmt.Fprintf(&b, "Chunk %d summary:\n", p.Index)
		b.WriteString(rule + "\n\n")
		b.WriteString(p.Text)
		b.WriteString("\n\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		s.logger.Error(ctx, "Failed to save partial summaries: %v", err)
		return ""
	}

	s.logger.Info(ctx, "Partial summaries saved to: %s", path)
	return path
}
