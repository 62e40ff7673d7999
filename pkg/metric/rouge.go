package metric

import (
	"context"
	"io"

	"memeval/pkg/core"
)

// UnigramRouge scores each example 1 or 0 by unigram recall of the reference
// answer and averages over the split. This is a single-token containment
// check, not corpus ROUGE.
type UnigramRouge struct {
	Diagnostics io.Writer
}

func (u UnigramRouge) Name() string {
	return "rouge"
}

func (u UnigramRouge) Score(_ context.Context, examples []core.Example) (float64, error) {
	if len(examples) == 0 {
		return 0, core.ErrEmptySet
	}

	scores := make([]float64, 0, len(examples))
	for _, ex := range examples {
		score := unigramRecall(ex.CorrectAnswer, ex.Prediction)
		audit(u.Diagnostics, score, ex)
		scores = append(scores, score)
	}
	return core.Mean(scores)
}
