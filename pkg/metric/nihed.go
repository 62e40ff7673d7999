package metric

import (
	"context"
	"fmt"
	"strings"

	"memeval/pkg/core"
)

// Nihed is a hand-tuned composite heuristic. Each example accumulates 0.33
// for containing the reference answer, again for also containing the
// second-to-last prompt token, and again for also containing the last prompt
// token. Predictions mentioning "where" are penalized by 0.33, so the score
// can dip slightly below zero. Hedged predictions (a "?" or "not sure") are
// forced to zero. The split score is the mean over all examples.
type Nihed struct{}

func (n Nihed) Name() string {
	return "nihed"
}

func (n Nihed) Score(_ context.Context, examples []core.Example) (float64, error) {
	if len(examples) == 0 {
		return 0, core.ErrEmptySet
	}

	scores := make([]float64, 0, len(examples))
	for _, ex := range examples {
		score, err := compositeScore(ex)
		if err != nil {
			return 0, err
		}
		scores = append(scores, score)
	}
	return core.Mean(scores)
}

func compositeScore(ex core.Example) (float64, error) {
	secondLast, last, ok := ex.TrailingPromptTokens()
	if !ok {
		return 0, fmt.Errorf("metric: prompt %q has fewer than two tokens", ex.PromptText)
	}
	pred := ex.Prediction
	answer := ex.CorrectAnswer

	var score float64
	if strings.Contains(pred, answer) {
		score += 0.33
	}
	if strings.Contains(pred, secondLast) && strings.Contains(pred, answer) {
		score += 0.33
	}
	if strings.Contains(pred, secondLast) && strings.Contains(pred, last) && strings.Contains(pred, answer) {
		score += 0.33
	}
	if strings.Contains(pred, "where") {
		score -= 0.33
	}
	if strings.Contains(pred, "?") || strings.Contains(pred, "not sure") {
		score = 0
	}
	return score, nil
}
