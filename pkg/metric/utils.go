package metric

import (
	"fmt"
	"io"
	"strings"

	"memeval/pkg/core"
)

// unigramPrecision is the fraction of the prediction's lower-cased tokens
// that exactly equal the lower-cased reference answer.
func unigramPrecision(answer, pred string) (float64, error) {
	answer = strings.ToLower(answer)
	tokens := strings.Fields(strings.ToLower(pred))
	if len(tokens) == 0 {
		return 0, fmt.Errorf("metric: prediction %q has no tokens", pred)
	}
	matches := 0
	for _, token := range tokens {
		if token == answer {
			matches++
		}
	}
	return float64(matches) / float64(len(tokens)), nil
}

// unigramRecall is 1 when the lower-cased reference answer appears as one of
// the prediction's lower-cased tokens, else 0.
func unigramRecall(answer, pred string) float64 {
	answer = strings.ToLower(answer)
	for _, token := range strings.Fields(strings.ToLower(pred)) {
		if token == answer {
			return 1
		}
	}
	return 0
}

// audit emits one per-example diagnostic line for manual inspection.
func audit(w io.Writer, score float64, ex core.Example) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "%v %s %s\n", score, ex.CorrectAnswer, ex.Prediction)
}
