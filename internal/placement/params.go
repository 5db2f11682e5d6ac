package placement

import "strings"

// Kind classifies a template by how the shirt is presented.
type Kind int

const (
	// Plain is a flat-lay or ghost template showing only the garment.
	Plain Kind = iota

	// Model is a template showing the garment worn by a model.
	Model
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k == Model {
		return "model"
	}
	return "plain"
}

// Classify derives a template's kind from its file name: any name containing
// the substring "model", case-insensitively, is a model shot. This naming
// convention is part of the system boundary and lives here, at the edge,
// rather than inside the placement math.
func Classify(templateName string) Kind {
	if strings.Contains(strings.ToLower(templateName), "model") {
		return Model
	}
	return Plain
}

// ParamSet holds one Params per template kind.
type ParamSet struct {
	Plain Params `json:"plain"`
	Model Params `json:"model"`
}

// DefaultParamSet returns the reference tuning: plain shirts get a larger
// print at a slight upward shift, model shots a smaller print nudged down.
func DefaultParamSet() ParamSet {
	return ParamSet{
		Plain: Params{PaddingRatio: 0.45, VerticalOffsetPct: -7},
		Model: Params{PaddingRatio: 0.35, VerticalOffsetPct: 3},
	}
}

// For selects the params for a template by classifying its name.
func (s ParamSet) For(templateName string) Params {
	if Classify(templateName) == Model {
		return s.Model
	}
	return s.Plain
}
