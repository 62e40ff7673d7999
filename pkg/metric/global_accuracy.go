package metric

import (
	"context"
	"strings"

	"memeval/pkg/core"

	"go.uber.org/zap"
)

// GlobalAccuracy scores a split as the fraction of examples whose prediction
// contains the reference answer as a substring. Raw strings, case-sensitive.
type GlobalAccuracy struct {
	Logger *zap.Logger
}

func (g GlobalAccuracy) Name() string {
	return "global_accuracy"
}

func (g GlobalAccuracy) Score(_ context.Context, examples []core.Example) (float64, error) {
	if len(examples) == 0 {
		return 0, core.ErrEmptySet
	}

	var hits, misses int
	for _, ex := range examples {
		if strings.Contains(ex.Prediction, ex.CorrectAnswer) {
			hits++
		} else {
			misses++
		}
	}

	accuracy := float64(hits) / float64(hits+misses)
	if g.Logger != nil {
		g.Logger.Info("global accuracy",
			zap.Int("true", hits),
			zap.Int("false", misses),
			zap.Float64("accuracy", accuracy))
	}
	return accuracy, nil
}
