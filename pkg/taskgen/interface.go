package taskgen

import "context"

// TitleSource maps a topic to an ordered list of candidate task titles.
// The store depends only on this interface, so the static client below can
// be swapped for a real LLM-backed service without touching the store.
type TitleSource interface {
	GenerateTitles(ctx context.Context, topic string, count int) ([]string, error)
}
