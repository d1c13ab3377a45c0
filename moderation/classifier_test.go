package moderation

import (
	"testing"

	"moderation-bot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPairedTypes(t *testing.T) {
	tests := []struct {
		caseType model.CaseType
		polarity Polarity
		category string
	}{
		{model.CaseTypeBan, PolarityApplied, "ban"},
		{model.CaseTypeUnban, PolarityRevoked, "ban"},
		{model.CaseTypeKick, PolarityApplied, "kick"},
		{model.CaseTypeTimeout, PolarityApplied, "timeout"},
		{model.CaseTypeUntimeout, PolarityRevoked, "timeout"},
		{model.CaseTypeWarn, PolarityApplied, "warn"},
		{model.CaseTypeJail, PolarityApplied, "jail"},
		{model.CaseTypeUnjail, PolarityRevoked, "jail"},
	}

	for _, tt := range tests {
		t.Run(string(tt.caseType), func(t *testing.T) {
			c, err := Classify(tt.caseType)
			require.NoError(t, err)
			assert.Equal(t, tt.polarity, c.Polarity)
			assert.Equal(t, tt.category, c.Category)
		})
	}
}

func TestClassifyIsTotalOverEnumeration(t *testing.T) {
	for _, caseType := range CaseTypes() {
		_, err := Classify(caseType)
		assert.NoError(t, err, "case type %s has no classification", caseType)
	}
}

func TestClassifyUnknownType(t *testing.T) {
	_, err := Classify(model.CaseType("SHADOWREALM"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCaseType)
}
