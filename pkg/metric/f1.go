package metric

import (
	"context"
	"errors"
	"fmt"
	"io"

	"memeval/pkg/core"
)

// F1 combines the split's unigram-precision and unigram-recall averages as a
// harmonic mean.
type F1 struct {
	Diagnostics io.Writer
}

func (f F1) Name() string {
	return "f1"
}

func (f F1) Score(_ context.Context, examples []core.Example) (float64, error) {
	if len(examples) == 0 {
		return 0, core.ErrEmptySet
	}

	precisions := make([]float64, 0, len(examples))
	recalls := make([]float64, 0, len(examples))
	for _, ex := range examples {
		precision, err := unigramPrecision(ex.CorrectAnswer, ex.Prediction)
		if err != nil {
			return 0, err
		}
		audit(f.Diagnostics, precision, ex)
		precisions = append(precisions, precision)

		recall := unigramRecall(ex.CorrectAnswer, ex.Prediction)
		audit(f.Diagnostics, recall, ex)
		recalls = append(recalls, recall)
	}

	precisionAvg, err := core.Mean(precisions)
	if err != nil {
		return 0, err
	}
	recallAvg, err := core.Mean(recalls)
	if err != nil {
		return 0, err
	}
	if precisionAvg+recallAvg == 0 {
		return 0, errors.New("metric: f1 undefined, both unigram averages are zero")
	}

	f1 := 2 * precisionAvg * recallAvg / (precisionAvg + recallAvg)
	if f.Diagnostics != nil {
		fmt.Fprintf(f.Diagnostics, "%v\n", f1)
	}
	return f1, nil
}
