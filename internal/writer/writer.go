// Package writer renders final digests to markdown and docx files.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Digest is everything the writer needs to render one output document.
type Digest struct {
	Title       string
	Summary     string
	Translation []string
	Model       string
	Language    string
}

// WriteMarkdown writes the digest as a markdown file and returns its path.
func WriteMarkdown(d Digest, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create dest dir: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	fmt.Fprintf(&b, "_%s · %s · %s_\n\n", time.Now().Format("2006-01-02 15:04"), d.Model, d.Language)
	b.WriteString(strings.TrimSpace(d.Summary))
	b.WriteString("\n")

	if len(d.Translation) > 0 {
		b.WriteString("\n## Translated transcript\n\n")
		for _, line := range d.Translation {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	path := filepath.Join(destDir, d.Title+".md")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}
	return path, nil
}

// WriteDocx writes the digest as a styled docx file and returns its path.
func WriteDocx(d Digest, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create dest dir: %w", err)
	}

	path := filepath.Join(destDir, d.Title+".docx")
	if err := markdownToDocx(d.Title, d.Summary, path); err != nil {
		return "", fmt.Errorf("write docx: %w", err)
	}
	return path, nil
}
