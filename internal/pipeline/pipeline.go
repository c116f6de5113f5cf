package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/media-digest/internal/transcript"
	"github.com/nguyentantai21042004/media-digest/internal/writer"
)

// ProcessURL fetches a transcript for the URL and digests it.
func (p *implPipeline) ProcessURL(ctx context.Context, url string) error {
	path, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("fetch transcript: %w", err)
	}
	defer p.cleanupFetched(ctx, path)
	return p.process(ctx, path, false)
}

// cleanupFetched removes the fetcher's work dir once the digest is done.
// Only paths inside the temp dir are touched.
func (p *implPipeline) cleanupFetched(ctx context.Context, path string) {
	dir := filepath.Dir(path)
	rel, err := filepath.Rel(p.cfg.Paths.Temp, dir)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return
	}
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup fetch dir %s: %v", dir, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up fetch dir: %s", dir)
	}
}

// ProcessFile digests a local transcript file and archives it afterwards.
func (p *implPipeline) ProcessFile(ctx context.Context, path string) error {
	return p.process(ctx, path, true)
}

func (p *implPipeline) process(ctx context.Context, path string, archive bool) error {
	startTime := time.Now()
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing transcript: %s", path)
	p.logger.Info(ctx, "========================================")

	// Step 1: Load transcript text
	text, err := transcript.Load(path)
	if err != nil {
		return fmt.Errorf("load transcript: %w", err)
	}

	// Step 2: Summarize (chunk -> per-chunk summaries -> reduce)
	res, err := p.summarizer.Summarize(ctx, text)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	digest := writer.Digest{
		Title:    title,
		Summary:  res.Final,
		Model:    p.cfg.Gemini.Model,
		Language: p.cfg.Summary.Language,
	}

	// Step 3: Translate the transcript if enabled
	if p.cfg.Translate.Enabled {
		lines := strings.Split(text, "\n")
		translated, err := p.translator.Translate(ctx, lines)
		if err != nil {
			p.logger.Warn(ctx, "Translation failed, writing digest without it: %v", err)
		} else {
			digest.Translation = translated
		}
	}

	// Step 4: Write outputs
	mdPath, err := writer.WriteMarkdown(digest, p.cfg.Paths.Output)
	if err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	docxPath, err := writer.WriteDocx(digest, p.cfg.Paths.Output)
	if err != nil {
		p.logger.Warn(ctx, "Failed to write docx output: %v", err)
	}

	// Step 5: Archive the source transcript so it is not re-processed
	if archive {
		if err := p.archive(ctx, path); err != nil {
			p.logger.Warn(ctx, "Failed to archive transcript: %v", err)
		}
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Digest completed: %s", title)
	p.logger.Info(ctx, "Markdown: %s", mdPath)
	if docxPath != "" {
		p.logger.Info(ctx, "Docx: %s", docxPath)
	}
	if res.PartialsFile != "" {
		p.logger.Info(ctx, "Partial summaries: %s", res.PartialsFile)
	}
	p.logger.Info(ctx, "Chunks: %d, Processing time: %s", len(res.Partials), time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

func (p *implPipeline) archive(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	p.logger.Info(ctx, "Archived transcript: %s", dest)
	return nil
}
