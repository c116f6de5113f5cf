package translator

import "context"

// Translator translates transcript lines into the configured target
// language, preserving line order.
type Translator interface {
	Translate(ctx context.Context, lines []string) ([]string, error)
}
