// Package transcript loads subtitle and plain-text transcripts into a single
// text string ready for summarization. Subtitle cues are stripped of sequence
// numbers, timestamps and styling; consecutive duplicate lines from
// auto-caption rollup are collapsed.
package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	reCueTime  = regexp.MustCompile(`\d{2}:\d{2}(:\d{2})?[.,]\d{3}\s*-->\s*\d{2}:\d{2}(:\d{2})?[.,]\d{3}`)
	reCueIndex = regexp.MustCompile(`^\d+$`)
	reTag      = regexp.MustCompile(`<[^>]+>`)
)

// SupportedExtensions lists the transcript formats Load accepts.
func SupportedExtensions() []string {
	return []string{".srt", ".vtt", ".txt"}
}

// Supported reports whether path has a loadable transcript extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedExtensions() {
		if ext == s {
			return true
		}
	}
	return false
}

// Load reads a transcript file and returns its dialogue as plain text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return FromSRT(string(data)), nil
	case ".vtt":
		return FromVTT(string(data)), nil
	case ".txt":
		return strings.TrimSpace(string(data)), nil
	default:
		return "", fmt.Errorf("unsupported transcript format: %s", filepath.Ext(path))
	}
}

// FromSRT extracts dialogue text from SRT subtitle content.
func FromSRT(content string) string {
	return extractCueText(content, false)
}

// FromVTT extracts dialogue text from WebVTT subtitle content.
func FromVTT(content string) string {
	return extractCueText(content, true)
}

func extractCueText(content string, vtt bool) string {
	var lines []string
	var last string

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if vtt && (strings.HasPrefix(trimmed, "WEBVTT") ||
			strings.HasPrefix(trimmed, "NOTE") ||
			strings.HasPrefix(trimmed, "STYLE") ||
			strings.HasPrefix(trimmed, "Kind:") ||
			strings.HasPrefix(trimmed, "Language:")) {
			continue
		}
		if reCueIndex.MatchString(trimmed) || reCueTime.MatchString(trimmed) {
			continue
		}

		text := strings.TrimSpace(reTag.ReplaceAllString(trimmed, ""))
		if text == "" || text == last {
			// Auto-generated captions repeat the previous line as cues roll.
			continue
		}
		lines = append(lines, text)
		last = text
	}

	return strings.Join(lines, "\n")
}
