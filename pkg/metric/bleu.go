package metric

import (
	"context"
	"io"

	"memeval/pkg/core"
)

// UnigramBleu scores each example by unigram precision against the reference
// answer and averages over the split. This is a single-token exact-match
// heuristic, not corpus BLEU.
type UnigramBleu struct {
	Diagnostics io.Writer
}

func (u UnigramBleu) Name() string {
	return "bleu"
}

func (u UnigramBleu) Score(_ context.Context, examples []core.Example) (float64, error) {
	if len(examples) == 0 {
		return 0, core.ErrEmptySet
	}

	scores := make([]float64, 0, len(examples))
	for _, ex := range examples {
		score, err := unigramPrecision(ex.CorrectAnswer, ex.Prediction)
		if err != nil {
			return 0, err
		}
		audit(u.Diagnostics, score, ex)
		scores = append(scores, score)
	}
	return core.Mean(scores)
}
