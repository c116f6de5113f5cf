// Package chunker splits long transcripts into overlapping, boundary-aware
// chunks sized for a model context window. Splitting is deterministic and
// stateless so the same text and options always produce the same chunks.
package chunker

import "strings"

const (
	// DefaultMaxSize is sized for models with ~128k-token contexts,
	// roughly 100k characters of mixed Chinese/English prose.
	DefaultMaxSize = 100000

	// DefaultOverlap keeps adjacent chunks contextually connected.
	DefaultOverlap = 300
)

// DefaultBreakpoints lists preferred chunk boundaries, strongest first:
// sentence end at a line break, sentence end before a space, paragraph
// break, bare sentence-ending punctuation, then a plain newline. Tuned for
// mixed Chinese/English prose; callers targeting other languages supply
// their own list.
func DefaultBreakpoints() []string {
	return []string{"。\n", "。 ", "\n\n", "。", "！", "？", "\n"}
}

// Options controls how Split carves a text. Zero values fall back to the
// defaults above; MinChunk and StepFloor are derived from MaxSize when unset.
type Options struct {
	MaxSize     int
	Overlap     int
	MinChunk    int
	StepFloor   int
	Breakpoints []string
}

func (o Options) withDefaults() Options {
	if o.MaxSize <= 0 {
		o.MaxSize = DefaultMaxSize
	}
	if o.Overlap < 0 {
		o.Overlap = 0
	}
	if o.MinChunk <= 0 {
		o.MinChunk = o.MaxSize / 100
		if o.MinChunk < 100 {
			o.MinChunk = 100
		}
	}
	if o.StepFloor <= 0 {
		o.StepFloor = o.MaxSize / 10
		if o.StepFloor > 1000 {
			o.StepFloor = 1000
		}
	}
	if o.StepFloor < 1 {
		o.StepFloor = 1
	}
	if len(o.Breakpoints) == 0 {
		o.Breakpoints = DefaultBreakpoints()
	}
	return o
}

// Split carves text into ordered chunks of at most opts.MaxSize characters,
// snapping each boundary to the rightmost acceptable breakpoint inside the
// window and overlapping adjacent chunks by up to opts.Overlap characters.
// Chunk start offsets are strictly increasing; a remainder smaller than the
// minimum chunk size is absorbed into the preceding chunk. Sizes are in
// runes so multi-byte punctuation is never cut in half.
func Split(text string, opts Options) []string {
	if text == "" {
		return nil
	}

	opts = opts.withDefaults()

	runes := []rune(text)
	n := len(runes)

	if n <= opts.MaxSize {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return []string{trimmed}
		}
		return nil
	}

	seps := make([][]rune, 0, len(opts.Breakpoints))
	for _, bp := range opts.Breakpoints {
		if bp != "" {
			seps = append(seps, []rune(bp))
		}
	}

	var chunks []string
	start := 0

	for start < n {
		end := start + opts.MaxSize
		if end > n {
			end = n
		}

		// Not the last window: pull the boundary back to the strongest
		// breakpoint that still leaves an acceptably sized chunk.
		if end < n {
			for _, sep := range seps {
				idx := lastIndex(runes, sep, start, end)
				if idx < 0 {
					continue
				}
				if snapped := idx + len(sep); snapped-start >= opts.MinChunk {
					end = snapped
					break
				}
			}
		}

		// Absorb a tiny remainder rather than emitting a trailing sliver.
		if n-start < opts.MinChunk {
			end = n
		}

		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end >= n {
			break
		}

		next := end - opts.Overlap
		if floor := start + opts.StepFloor; next < floor {
			next = floor
		}
		if next <= start {
			// Overlap would stall the walk; abandon it for this step.
			next = end
		}
		start = next
	}

	return chunks
}

// lastIndex returns the largest i in [start, end-len(sep)] where sep occurs,
// or -1. The match must lie entirely inside the window.
func lastIndex(runes, sep []rune, start, end int) int {
	if len(sep) == 0 || end-start < len(sep) {
		return -1
	}
	for i := end - len(sep); i >= start; i-- {
		if equal(runes[i:i+len(sep)], sep) {
			return i
		}
	}
	return -1
}

func equal(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
