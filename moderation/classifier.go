package moderation

import (
	"fmt"

	"moderation-bot/model"
)

// Polarity states whether a case type applies or revokes a restriction.
type Polarity string

const (
	PolarityApplied Polarity = "applied"
	PolarityRevoked Polarity = "revoked"
)

// Classification is the presentation taxonomy of a case type: the
// polarity of the action and the category grouping paired types
// (BAN and UNBAN both belong to "ban").
type Classification struct {
	Polarity Polarity
	Category string
}

// classifications is total over the case type enumeration. Adding a new
// case type requires a row here; Classify treats a missing row as an
// invariant violation rather than defaulting silently.
var classifications = map[model.CaseType]Classification{
	model.CaseTypeBan:       {PolarityApplied, "ban"},
	model.CaseTypeUnban:     {PolarityRevoked, "ban"},
	model.CaseTypeKick:      {PolarityApplied, "kick"},
	model.CaseTypeTimeout:   {PolarityApplied, "timeout"},
	model.CaseTypeUntimeout: {PolarityRevoked, "timeout"},
	model.CaseTypeWarn:      {PolarityApplied, "warn"},
	model.CaseTypeJail:      {PolarityApplied, "jail"},
	model.CaseTypeUnjail:    {PolarityRevoked, "jail"},
}

// Classify maps a case type to its presentation classification.
func Classify(t model.CaseType) (Classification, error) {
	c, ok := classifications[t]
	if !ok {
		return Classification{}, fmt.Errorf("%w: %q", ErrUnknownCaseType, t)
	}
	return c, nil
}

// CaseTypes returns the enumerated case types in a stable order, for
// command option choices.
func CaseTypes() []model.CaseType {
	return []model.CaseType{
		model.CaseTypeBan,
		model.CaseTypeUnban,
		model.CaseTypeKick,
		model.CaseTypeTimeout,
		model.CaseTypeUntimeout,
		model.CaseTypeWarn,
		model.CaseTypeJail,
		model.CaseTypeUnjail,
	}
}
