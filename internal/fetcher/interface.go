package fetcher

import "context"

// Fetcher obtains a transcript file for a media URL, preferring published
// subtitles and falling back to audio download plus local transcription.
// Fetched files live in a per-call work dir under the temp path that the
// caller removes after use.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
