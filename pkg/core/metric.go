package core

import "context"

// Metric scores one split's worth of examples as a batch.
type Metric interface {
	Name() string
	Score(ctx context.Context, examples []Example) (float64, error)
}
