package moderation

import (
	"path/filepath"
	"sync"
	"testing"

	"moderation-bot/model"
	casesdb "moderation-bot/utils/database/cases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := casesdb.Init(filepath.Join(t.TempDir(), "cases.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(db, DefaultPageSize)
}

func TestCreateCaseAssignsSequentialNumbers(t *testing.T) {
	svc := newTestService(t)

	for n := int64(1); n <= 3; n++ {
		record, err := svc.CreateCase("g1", "target-1", "mod-1", model.CaseTypeWarn, "spam")
		require.NoError(t, err)
		assert.Equal(t, n, record.CaseNumber)
		assert.NotEmpty(t, record.CaseID)
	}

	// A second guild starts its own sequence at 1.
	record, err := svc.CreateCase("g2", "target-1", "mod-1", model.CaseTypeWarn, "spam")
	require.NoError(t, err)
	assert.Equal(t, int64(1), record.CaseNumber)
}

func TestCreateCaseConcurrentNumbersAreDense(t *testing.T) {
	svc := newTestService(t)

	const n = 20
	numbers := make(chan int64, n)
	var wg sync.WaitGroup
	for j := 0; j < n; j++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record, err := svc.CreateCase("g1", "target-1", "mod-1", model.CaseTypeWarn, "spam")
			if assert.NoError(t, err) {
				numbers <- record.CaseNumber
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[int64]bool, n)
	for number := range numbers {
		assert.False(t, seen[number], "case number %d issued twice", number)
		seen[number] = true
	}
	require.Len(t, seen, n)
	for want := int64(1); want <= n; want++ {
		assert.True(t, seen[want], "case number %d missing from sequence", want)
	}
}

func TestCreateCaseStatusDefaults(t *testing.T) {
	svc := newTestService(t)

	ban, err := svc.CreateCase("g1", "target-1", "mod-1", model.CaseTypeBan, "raid")
	require.NoError(t, err)
	assert.Equal(t, model.CaseStatusActive, ban.Status)

	warn, err := svc.CreateCase("g1", "target-1", "mod-1", model.CaseTypeWarn, "spam")
	require.NoError(t, err)
	assert.Equal(t, model.CaseStatusNotApplicable, warn.Status)
}

func TestViewCaseNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ViewCase("g1", 42)
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestUpdateCasePartialFields(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateCase("g1", "target-1", "mod-1", model.CaseTypeBan, "raid")
	require.NoError(t, err)

	reason := "raid and ban evasion"
	updated, err := svc.UpdateCase("g1", created.CaseNumber, &reason, nil)
	require.NoError(t, err)
	assert.Equal(t, reason, updated.Reason)
	assert.Equal(t, created.Status, updated.Status, "status must survive a reason-only update")

	viewed, err := svc.ViewCase("g1", created.CaseNumber)
	require.NoError(t, err)
	assert.Equal(t, reason, viewed.Reason)
	assert.Equal(t, created.Status, viewed.Status)
	assert.Equal(t, created.CaseID, viewed.CaseID)
	assert.Equal(t, created.CreatedAt, viewed.CreatedAt)

	status := model.CaseStatusInactive
	updated, err = svc.UpdateCase("g1", created.CaseNumber, nil, &status)
	require.NoError(t, err)
	assert.Equal(t, model.CaseStatusInactive, updated.Status)
	assert.Equal(t, reason, updated.Reason, "reason must survive a status-only update")
}

func TestUpdateCaseNotFoundLeavesStateUntouched(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateCase("g1", "target-1", "mod-1", model.CaseTypeWarn, "spam")
	require.NoError(t, err)

	reason := "should not land"
	_, err = svc.UpdateCase("g1", 999, &reason, nil)
	assert.ErrorIs(t, err, ErrCaseNotFound)

	viewed, err := svc.ViewCase("g1", created.CaseNumber)
	require.NoError(t, err)
	assert.Equal(t, "spam", viewed.Reason)
}

func TestListCasesFiltersAndTotal(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateCase("g1", "target-1", "mod-1", model.CaseTypeWarn, "spam")
	require.NoError(t, err)
	_, err = svc.CreateCase("g1", "target-2", "mod-1", model.CaseTypeBan, "raid")
	require.NoError(t, err)
	_, err = svc.CreateCase("g1", "target-1", "mod-2", model.CaseTypeWarn, "spam again")
	require.NoError(t, err)

	all, total, err := svc.ListCases("g1", casesdb.Filters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 3, total)
	for idx := 1; idx < len(all); idx++ {
		assert.Less(t, all[idx-1].CaseNumber, all[idx].CaseNumber, "listing must ascend by case number")
	}

	warns, total, err := svc.ListCases("g1", casesdb.Filters{CaseType: model.CaseTypeWarn})
	require.NoError(t, err)
	assert.Len(t, warns, 2)
	assert.Equal(t, 3, total, "total stays unfiltered")
	for _, record := range warns {
		assert.Equal(t, model.CaseTypeWarn, record.CaseType)
	}

	byBoth, _, err := svc.ListCases("g1", casesdb.Filters{CaseType: model.CaseTypeWarn, ModeratorID: "mod-1"})
	require.NoError(t, err)
	require.Len(t, byBoth, 1)
	assert.Equal(t, "target-1", byBoth[0].TargetID)

	none, total, err := svc.ListCases("g2", casesdb.Filters{})
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Zero(t, total)
}
