package translator

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/media-digest/internal/llm"
)

const translateTemperature = 0.2

// Translate sends lines to the model in numbered batches processed by a
// bounded worker pool. Batches are reassembled by index so the output lines
// line up with the input; a failed batch falls back to its untranslated
// lines instead of failing the run.
func (t *implTranslator) Translate(ctx context.Context, lines []string) ([]string, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	if t.client == nil {
		return nil, fmt.Errorf("no model client configured")
	}

	batches := batchLines(lines, t.cfg.Translate.BatchSize)
	t.logger.Info(ctx, "Translating %d lines in %d batches (up to %d workers)",
		len(lines), len(batches), t.cfg.Translate.MaxWorkers)

	// Slot per batch; each worker writes only its own index.
	results := make([][]string, len(batches))

	sem := make(chan struct{}, t.cfg.Translate.MaxWorkers)
	var wg sync.WaitGroup

	for i, batch := range batches {
		wg.Add(1)
		go func(index int, batch []string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[index] = t.translateBatch(ctx, index+1, len(batches), batch)
		}(i, batch)
	}

	wg.Wait()

	out := make([]string, 0, len(lines))
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func (t *implTranslator) translateBatch(ctx context.Context, index, total int, batch []string) []string {
	var b strings.Builder
	for i, line := range batch {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}

	prompt := fmt.Sprintf(`Translate the following numbered lines into %s.
Keep the numbering exactly as given, one translated line per number, and do
not add commentary:

%s`, t.cfg.Translate.TargetLanguage, b.String())

	resp, err := t.client.Complete(ctx, llm.Request{
		Prompt:      prompt,
		Temperature: translateTemperature,
	})
	if err != nil {
		t.logger.Warn(ctx, "Batch %d/%d translation failed, keeping original lines: %v", index, total, err)
		return batch
	}

	translated := parseNumbered(resp, len(batch))
	if translated == nil {
		t.logger.Warn(ctx, "Batch %d/%d returned malformed numbering, keeping original lines", index, total)
		return batch
	}

	return translated
}

func batchLines(lines []string, size int) [][]string {
	if size <= 0 {
		size = 15
	}
	var batches [][]string
	for start := 0; start < len(lines); start += size {
		end := start + size
		if end > len(lines) {
			end = len(lines)
		}
		batches = append(batches, lines[start:end])
	}
	return batches
}

var reNumbered = regexp.MustCompile(`^\s*(\d+)[.)]\s*(.*)$`)

// parseNumbered extracts n numbered lines from a model response, or nil if
// any number is missing or duplicated.
func parseNumbered(resp string, n int) []string {
	out := make([]string, n)
	seen := make([]bool, n)

	for _, line := range strings.Split(resp, "\n") {
		m := reNumbered.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil || num < 1 || num > n || seen[num-1] {
			return nil
		}
		out[num-1] = strings.TrimSpace(m[2])
		seen[num-1] = true
	}

	for _, ok := range seen {
		if !ok {
			return nil
		}
	}
	return out
}
