package summarizer

import "context"

// Partial is the summary of one chunk, keyed by its 1-based position in the
// original chunk order. Err is set when the chunk's remote call failed; Text
// then holds a placeholder so the slot is never empty.
type Partial struct {
	Index int
	Text  string
	Err   error
}

// Result is the outcome of one summarization run.
type Result struct {
	Final        string
	Partials     []Partial
	PartialsFile string
}

// Summarizer turns an arbitrarily long text into one coherent summary by
// chunking it, summarizing each chunk, and reducing the partial summaries.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (*Result, error)
}
