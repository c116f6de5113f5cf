package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:04,000
Welcome to the show.

2
00:00:04,000 --> 00:00:08,000
Today we talk about pipelines.

3
00:00:08,000 --> 00:00:12,000
Today we talk about pipelines.
`

const sampleVTT = `WEBVTT
Kind: captions
Language: en

00:01.000 --> 00:04.000
<v Speaker>Welcome to the show.</v>

00:04.000 --> 00:08.000
Today we talk about pipelines.
`

func TestFromSRT(t *testing.T) {
	got := FromSRT(sampleSRT)
	want := "Welcome to the show.\nToday we talk about pipelines."
	if got != want {
		t.Errorf("FromSRT() = %q, want %q", got, want)
	}
}

func TestFromVTT(t *testing.T) {
	got := FromVTT(sampleVTT)
	want := "Welcome to the show.\nToday we talk about pipelines."
	if got != want {
		t.Errorf("FromVTT() = %q, want %q", got, want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"srt file", "a.srt", sampleSRT, "Welcome to the show.\nToday we talk about pipelines."},
		{"vtt file", "b.vtt", sampleVTT, "Welcome to the show.\nToday we talk about pipelines."},
		{"plain text", "c.txt", "  raw transcript text \n", "raw transcript text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Load() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "video.mp4")
	if err := os.WriteFile(path, []byte("binary"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should reject unsupported formats")
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"talk.srt", true},
		{"talk.VTT", true},
		{"notes.txt", true},
		{"clip.mp4", false},
		{"no-extension", false},
	}

	for _, tt := range tests {
		if got := Supported(tt.path); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	if !strings.Contains(strings.Join(SupportedExtensions(), ","), ".srt") {
		t.Error("SupportedExtensions() missing .srt")
	}
}
