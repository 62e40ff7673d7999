package core

import "strings"

// Example is a single prediction/reference pair from one experiment run.
type Example struct {
	Prediction    string `json:"prediction"`
	CorrectAnswer string `json:"correct_answer"`
	PromptText    string `json:"prompt_text"`
}

// TrailingPromptTokens returns the last two whitespace-delimited tokens of
// PromptText. ok is false when the prompt carries fewer than two tokens.
func (e Example) TrailingPromptTokens() (secondLast, last string, ok bool) {
	tokens := strings.Fields(e.PromptText)
	if len(tokens) < 2 {
		return "", "", false
	}
	return tokens[len(tokens)-2], tokens[len(tokens)-1], true
}

// ResultRecord holds one run's examples, keyed by data split.
type ResultRecord struct {
	Val  []Example `json:"val"`
	Test []Example `json:"test"`
}

// SplitNames are the splits every result file must carry, in report order.
var SplitNames = []string{"val", "test"}

// Split returns the examples of the named split, or nil for an unknown name.
func (r ResultRecord) Split(name string) []Example {
	switch name {
	case "val":
		return r.Val
	case "test":
		return r.Test
	default:
		return nil
	}
}

// RunResult maps a split name to that split's aggregate score.
type RunResult map[string]float64
