package summarizer

import "errors"

var (
	// ErrEmptyInput is returned for empty or whitespace-only text.
	ErrEmptyInput = errors.New("text is empty")

	// ErrNoClient is returned when no model client was configured.
	ErrNoClient = errors.New("no model client configured")

	// ErrNoChunks indicates the chunker produced nothing for non-empty
	// input, which should be impossible.
	ErrNoChunks = errors.New("chunking produced no chunks")
)
