package writer

import (
	"os"
	"strings"
	"testing"
)

func TestWriteMarkdown(t *testing.T) {
	dir := t.TempDir()

	d := Digest{
		Title:    "episode-01",
		Summary:  "## Key points\n\n- first\n- second",
		Model:    "mock-model",
		Language: "Chinese",
	}

	path, err := WriteMarkdown(d, dir)
	if err != nil {
		t.Fatalf("WriteMarkdown() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{"# episode-01", "mock-model", "- first"} {
		if !strings.Contains(content, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestWriteMarkdownWithTranslation(t *testing.T) {
	dir := t.TempDir()

	d := Digest{
		Title:       "episode-02",
		Summary:     "summary body",
		Translation: []string{"第一行", "第二行"},
		Model:       "mock-model",
		Language:    "Chinese",
	}

	path, err := WriteMarkdown(d, dir)
	if err != nil {
		t.Fatalf("WriteMarkdown() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.Contains(content, "## Translated transcript") {
		t.Error("markdown missing translation section")
	}
	if !strings.Contains(content, "第二行") {
		t.Error("markdown missing translated lines")
	}
}

func TestHeadingSize(t *testing.T) {
	tests := []struct {
		level int
		want  uint64
	}{
		{1, 16},
		{2, 15},
		{3, 14},
		{4, fontSize},
		{6, fontSize},
	}

	for _, tt := range tests {
		if got := headingSize(tt.level); got != tt.want {
			t.Errorf("headingSize(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestCleanMarkdownInline(t *testing.T) {
	got := cleanMarkdownInline("**bold** and `code` and __under__")
	want := "bold and code and under"
	if got != want {
		t.Errorf("cleanMarkdownInline() = %q, want %q", got, want)
	}
}
