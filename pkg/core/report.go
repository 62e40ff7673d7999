package core

import (
	"encoding/json"
	"fmt"
)

// EvaluationReport aggregates one metric's scores across every run, plus the
// summary statistics over the val and test splits.
type EvaluationReport struct {
	Runs     map[string]RunResult
	ValMean  float64
	ValStd   float64
	TestMean float64
	TestStd  float64
}

// Summary key names in the persisted report. Run identifiers share the same
// namespace, so a run file must not be named after one of these.
const (
	keyValMean  = "val_mean"
	keyValStd   = "val_std"
	keyTestMean = "test_mean"
	keyTestStd  = "test_std"
)

// MarshalJSON flattens the report into a single object keyed by run
// identifier, with the four summary scalars as additional top-level keys.
func (r EvaluationReport) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Runs)+4)
	for id, run := range r.Runs {
		if isSummaryKey(id) {
			return nil, fmt.Errorf("core: run identifier %q collides with a summary key", id)
		}
		flat[id] = run
	}
	flat[keyValMean] = r.ValMean
	flat[keyValStd] = r.ValStd
	flat[keyTestMean] = r.TestMean
	flat[keyTestStd] = r.TestStd
	return json.Marshal(flat)
}

// UnmarshalJSON reverses MarshalJSON.
func (r *EvaluationReport) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	r.Runs = make(map[string]RunResult, len(flat))
	for key, raw := range flat {
		switch key {
		case keyValMean:
			if err := json.Unmarshal(raw, &r.ValMean); err != nil {
				return err
			}
		case keyValStd:
			if err := json.Unmarshal(raw, &r.ValStd); err != nil {
				return err
			}
		case keyTestMean:
			if err := json.Unmarshal(raw, &r.TestMean); err != nil {
				return err
			}
		case keyTestStd:
			if err := json.Unmarshal(raw, &r.TestStd); err != nil {
				return err
			}
		default:
			var run RunResult
			if err := json.Unmarshal(raw, &run); err != nil {
				return fmt.Errorf("core: run %q: %w", key, err)
			}
			r.Runs[key] = run
		}
	}
	return nil
}

func isSummaryKey(key string) bool {
	switch key {
	case keyValMean, keyValStd, keyTestMean, keyTestStd:
		return true
	default:
		return false
	}
}
