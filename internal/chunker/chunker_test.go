package chunker

import (
	"fmt"
	"strings"
	"testing"
)

func TestSplitShortText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \n\t  ", nil},
		{"short text", "hello world", []string{"hello world"}},
		{"short text trimmed", "  hello world \n", []string{"hello world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, Options{MaxSize: 100000, Overlap: 300})
			if len(got) != len(tt.want) {
				t.Fatalf("Split() returned %d chunks, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitSingleChunkAtLimit(t *testing.T) {
	text := strings.Repeat("a", 1000)
	got := Split(text, Options{MaxSize: 1000, Overlap: 50})
	if len(got) != 1 {
		t.Fatalf("Split() returned %d chunks, want 1", len(got))
	}
	if got[0] != text {
		t.Error("single chunk should equal the input")
	}
}

func TestSplitSentenceBoundaries(t *testing.T) {
	// 250k characters of repeated sentences ending in 。should produce
	// exactly 3 chunks, each ending on a sentence boundary.
	sentence := "這是一個用於測試分塊邊界行為的句子。"
	perSentence := len([]rune(sentence))
	var b strings.Builder
	for i := 0; i < 250000/perSentence+1; i++ {
		b.WriteString(sentence)
	}
	text := string([]rune(b.String())[:250000])

	opts := Options{MaxSize: 100000, Overlap: 300}
	chunks := Split(text, opts)

	if len(chunks) != 3 {
		t.Fatalf("Split() returned %d chunks, want 3", len(chunks))
	}

	for i, c := range chunks[:len(chunks)-1] {
		if !strings.HasSuffix(c, "。") {
			t.Errorf("chunk %d does not end on a sentence boundary: ...%q", i+1, tail(c, 10))
		}
		if n := len([]rune(c)); n > opts.MaxSize {
			t.Errorf("chunk %d has %d runes, exceeds max %d", i+1, n, opts.MaxSize)
		}
	}
}

func TestSplitStartOffsetsStrictlyIncrease(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 2000; i++ {
		fmt.Fprintf(&b, "Sentence number %04d for offset tracking.\n", i)
	}
	text := b.String()

	opts := Options{MaxSize: 5000, Overlap: 200}
	chunks := Split(text, opts)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	// Each chunk must begin strictly after its predecessor in the source.
	prev := -1
	search := 0
	for i, c := range chunks {
		idx := strings.Index(text[search:], c)
		if idx < 0 {
			t.Fatalf("chunk %d not found in source after offset %d", i+1, search)
		}
		start := search + idx
		if start <= prev {
			t.Errorf("chunk %d start %d not after previous start %d", i+1, start, prev)
		}
		prev = start
		search = start + 1
	}

	// Chunk count stays near the theoretical bound.
	bound := len(text)/(opts.MaxSize-opts.Overlap) + 2
	if len(chunks) > bound {
		t.Errorf("got %d chunks, want at most %d", len(chunks), bound)
	}
}

func TestSplitOverlapBound(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 3000; i++ {
		b.WriteString("overlap bound verification sentence here.\n")
	}
	text := b.String()

	opts := Options{MaxSize: 4000, Overlap: 150}
	chunks := Split(text, opts)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	for i := 0; i < len(chunks)-1; i++ {
		shared := sharedBoundary(chunks[i], chunks[i+1])
		// Trimming can only shrink the shared region.
		if shared > opts.Overlap {
			t.Errorf("chunks %d/%d share %d runes, overlap limit is %d", i+1, i+2, shared, opts.Overlap)
		}
	}
}

func TestSplitIdempotent(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 1500; i++ {
		b.WriteString("Deterministic splitting must not vary between calls. ")
	}
	text := b.String()

	opts := Options{MaxSize: 6000, Overlap: 250}
	first := Split(text, opts)
	second := Split(text, opts)

	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i+1)
		}
	}
}

func TestSplitNoBreakpointsAvailable(t *testing.T) {
	// One unbroken run with no markers still terminates and makes progress.
	text := strings.Repeat("x", 25000)
	chunks := Split(text, Options{MaxSize: 10000, Overlap: 100})

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	if total < len(text) {
		t.Errorf("chunks cover %d runes, source has %d", total, len(text))
	}
}

func TestSplitLargeOverlapTerminates(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 800; i++ {
		b.WriteString("termination check sentence for pathological overlap.\n")
	}
	text := b.String()

	// Overlap nearly the window size: the step floor must keep the walk moving.
	chunks := Split(text, Options{MaxSize: 2000, Overlap: 1900})
	if len(chunks) == 0 {
		t.Fatal("expected chunks for non-empty input")
	}
}

func TestSplitCustomBreakpoints(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 400; i++ {
		b.WriteString("uno; dos; tres; cuatro; ")
	}
	text := b.String()

	chunks := Split(text, Options{MaxSize: 1000, Overlap: 50, Breakpoints: []string{"; "}})
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks[:len(chunks)-1] {
		if !strings.HasSuffix(c, ";") {
			t.Errorf("chunk %d does not end at the custom breakpoint: ...%q", i+1, tail(c, 8))
		}
	}
}

// sharedBoundary returns the longest suffix of a that is a prefix of b.
func sharedBoundary(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	max := len(ra)
	if len(rb) < max {
		max = len(rb)
	}
	for n := max; n > 0; n-- {
		if string(ra[len(ra)-n:]) == string(rb[:n]) {
			return n
		}
	}
	return 0
}

func tail(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
