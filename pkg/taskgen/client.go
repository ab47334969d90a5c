package taskgen

import (
	"context"
	"time"
)

// StaticClient serves titles from the built-in template table, simulating the
// latency of a remote generation API.
type StaticClient struct {
	latency time.Duration
}

// NewStaticClient creates a StaticClient with the given simulated latency.
func NewStaticClient(latency time.Duration) *StaticClient {
	return &StaticClient{latency: latency}
}

// GenerateTitles returns up to count titles for the topic. Unknown topics get
// the generic template list. The call suspends for the configured latency and
// honors context cancellation.
func (c *StaticClient) GenerateTitles(ctx context.Context, topic string, count int) ([]string, error) {
	if c.latency > 0 {
		timer := time.NewTimer(c.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if count <= 0 {
		count = DefaultCount
	}

	templates, ok := taskTemplates[topic]
	if !ok {
		templates = taskTemplates[defaultTopic]
	}
	if count > len(templates) {
		count = len(templates)
	}

	titles := make([]string, count)
	copy(titles, templates[:count])
	return titles, nil
}
