package moderation

import (
	"fmt"
	"testing"

	"moderation-bot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCases(n int) []model.CaseRecord {
	cases := make([]model.CaseRecord, n)
	for i := range cases {
		cases[i] = model.CaseRecord{
			CaseID:     fmt.Sprintf("id-%d", i+1),
			GuildID:    "g1",
			CaseNumber: int64(i + 1),
			CaseType:   model.CaseTypeWarn,
		}
	}
	return cases
}

func TestPaginateEmptyInput(t *testing.T) {
	pages := Paginate(nil, 10, 0)

	require.Len(t, pages, 1)
	assert.True(t, pages[0].Empty)
	assert.Empty(t, pages[0].Cases)
	assert.Equal(t, "Total Cases (0)", pages[0].Header)
	assert.Equal(t, 1, pages[0].Count)
}

func TestPaginateChunksInOrder(t *testing.T) {
	pages := Paginate(makeCases(25), 10, 25)

	require.Len(t, pages, 3)
	assert.Len(t, pages[0].Cases, 10)
	assert.Len(t, pages[1].Cases, 10)
	assert.Len(t, pages[2].Cases, 5)

	number := int64(1)
	for idx, page := range pages {
		assert.Equal(t, idx, page.Index)
		assert.Equal(t, 3, page.Count)
		assert.Equal(t, "Total Cases (25)", page.Header)
		for _, record := range page.Cases {
			assert.Equal(t, number, record.CaseNumber)
			number++
		}
	}
}

func TestPaginateHeaderUsesUnfilteredTotal(t *testing.T) {
	// A filtered subset of 5 over a guild with 100 cases still reports
	// the full count on every page.
	pages := Paginate(makeCases(5), 10, 100)

	require.Len(t, pages, 1)
	assert.Equal(t, "Total Cases (100)", pages[0].Header)
}

func TestPaginateDefaultPageSize(t *testing.T) {
	pages := Paginate(makeCases(11), 0, 11)

	require.Len(t, pages, 2)
	assert.Len(t, pages[0].Cases, DefaultPageSize)
}

func TestNavigateClampsAtEdges(t *testing.T) {
	tests := []struct {
		name    string
		current int
		action  NavAction
		want    int
	}{
		{"back from first stays", 0, NavBack, 0},
		{"next from first advances", 0, NavNext, 1},
		{"back in middle", 2, NavBack, 1},
		{"next from last stays", 2, NavNext, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, done := Navigate(tt.current, 3, tt.action)
			assert.False(t, done)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestNavigateEndClosesSession(t *testing.T) {
	next, done := Navigate(1, 3, NavEnd)
	assert.True(t, done)
	assert.Equal(t, 1, next)
}
