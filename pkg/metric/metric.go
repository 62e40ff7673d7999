package metric

import (
	"fmt"
	"io"
	"strings"

	"memeval/pkg/core"

	"go.uber.org/zap"
)

// Kind enumerates the supported scoring strategies.
type Kind int

const (
	KindGlobalAccuracy Kind = iota
	KindBleu
	KindRouge
	KindF1
	KindNihed
)

// Kinds lists every supported metric in evaluation order.
var Kinds = []Kind{KindGlobalAccuracy, KindBleu, KindRouge, KindF1, KindNihed}

func (k Kind) String() string {
	switch k {
	case KindGlobalAccuracy:
		return "global_accuracy"
	case KindBleu:
		return "bleu"
	case KindRouge:
		return "rouge"
	case KindF1:
		return "f1"
	case KindNihed:
		return "nihed"
	default:
		return fmt.Sprintf("metric(%d)", int(k))
	}
}

// RoundsPerRun reports whether per-run scores are rounded before storage.
// Only global accuracy stores rounded per-run scores; the rest are kept raw.
func (k Kind) RoundsPerRun() bool {
	return k == KindGlobalAccuracy
}

// ParseKind resolves a metric name, case-insensitively. Unknown names are
// rejected here rather than falling through silently at scoring time.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "global_accuracy":
		return KindGlobalAccuracy, nil
	case "bleu":
		return KindBleu, nil
	case "rouge":
		return KindRouge, nil
	case "f1":
		return KindF1, nil
	case "nihed":
		return KindNihed, nil
	default:
		return 0, fmt.Errorf("metric: unknown metric %q", name)
	}
}

// ParseKinds resolves a list of metric names.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// Options carries the collaborators a metric may use for diagnostics.
// Diagnostics, when set, receives one audit line per scored example.
type Options struct {
	Logger      *zap.Logger
	Diagnostics io.Writer
}

// New builds the Metric for a kind.
func New(kind Kind, opts Options) (core.Metric, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	switch kind {
	case KindGlobalAccuracy:
		return GlobalAccuracy{Logger: logger}, nil
	case KindBleu:
		return UnigramBleu{Diagnostics: opts.Diagnostics}, nil
	case KindRouge:
		return UnigramRouge{Diagnostics: opts.Diagnostics}, nil
	case KindF1:
		return F1{Diagnostics: opts.Diagnostics}, nil
	case KindNihed:
		return Nihed{}, nil
	default:
		return nil, fmt.Errorf("metric: unknown kind %d", int(kind))
	}
}
