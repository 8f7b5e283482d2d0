package domain

import "encoding/json"

// Analysis is what is known about one transcribed sound.
type Analysis struct {
	// Input is the text as given, after trimming.
	Input string

	// Phonet is the parsed feature bundle. Unrecognized when Recognized
	// is false.
	Phonet Phonet

	// Recognized reports whether Input was read.
	Recognized bool

	// Description is Phonet in words.
	Description string

	// Canonical is Phonet rendered back to IPA, which may differ from
	// Input in normalization or diacritic choice.
	Canonical string
}

// MarshalJSON writes the Phonet as its flat Features.
func (a Analysis) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Input       string   `json:"input"`
		Recognized  bool     `json:"recognized"`
		Features    Features `json:"features"`
		Description string   `json:"description"`
		Canonical   string   `json:"canonical"`
	}{a.Input, a.Recognized, FeaturesOf(a.Phonet), a.Description, a.Canonical})
}

// TransformOptions configures a rule application.
type TransformOptions struct {
	// Strict rejects unrecognized input with ErrUnrecognizedSymbol instead
	// of rendering the empty set.
	Strict bool
}

// Transformation is the result of applying a Rule to one sound.
type Transformation struct {
	// Rule is the rule that was applied.
	Rule Rule

	// Source is the analysis of the input.
	Source Analysis

	// Result is the rewritten feature bundle.
	Result Phonet

	// Output is Result rendered as IPA.
	Output string

	// Changed reports whether the rule altered any feature.
	Changed bool
}

// MarshalJSON writes the Phonets as their flat Features.
func (t Transformation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Rule    Rule     `json:"rule"`
		Source  Analysis `json:"source"`
		Result  Features `json:"result"`
		Output  string   `json:"output"`
		Changed bool     `json:"changed"`
	}{t.Rule, t.Source, FeaturesOf(t.Result), t.Output, t.Changed})
}
