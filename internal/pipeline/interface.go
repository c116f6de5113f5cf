package pipeline

import "context"

// Pipeline processes one media item end to end: transcript in, digest out.
type Pipeline interface {
	ProcessFile(ctx context.Context, path string) error
	ProcessURL(ctx context.Context, url string) error
}
