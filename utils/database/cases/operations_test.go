package cases

import (
	"path/filepath"
	"testing"
	"time"

	"moderation-bot/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Init(filepath.Join(t.TempDir(), "cases.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testRecord(guildID string, caseType model.CaseType) model.CaseRecord {
	status := model.CaseStatusNotApplicable
	if caseType.Revocable() {
		status = model.CaseStatusActive
	}
	return model.CaseRecord{
		CaseID:      uuid.NewString(),
		GuildID:     guildID,
		CaseType:    caseType,
		TargetID:    "target-1",
		ModeratorID: "mod-1",
		Reason:      "test reason",
		Status:      status,
		CreatedAt:   time.Now().Unix(),
	}
}

func TestInsertCaseAllocatesPerGuildNumbers(t *testing.T) {
	db := newTestDB(t)

	first, err := InsertCase(db, testRecord("g1", model.CaseTypeWarn))
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.CaseNumber)

	second, err := InsertCase(db, testRecord("g1", model.CaseTypeBan))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.CaseNumber)

	other, err := InsertCase(db, testRecord("g2", model.CaseTypeKick))
	require.NoError(t, err)
	assert.Equal(t, int64(1), other.CaseNumber, "counters are guild scoped")
}

func TestGetCaseByNumber(t *testing.T) {
	db := newTestDB(t)

	inserted, err := InsertCase(db, testRecord("g1", model.CaseTypeJail))
	require.NoError(t, err)

	record, err := GetCaseByNumber(db, "g1", inserted.CaseNumber)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, inserted.CaseID, record.CaseID)
	assert.Equal(t, model.CaseTypeJail, record.CaseType)

	missing, err := GetCaseByNumber(db, "g1", 99)
	require.NoError(t, err, "a missing case is not an error")
	assert.Nil(t, missing)

	wrongGuild, err := GetCaseByNumber(db, "g2", inserted.CaseNumber)
	require.NoError(t, err)
	assert.Nil(t, wrongGuild)
}

func TestGetCasesByOptions(t *testing.T) {
	db := newTestDB(t)

	warn := testRecord("g1", model.CaseTypeWarn)
	_, err := InsertCase(db, warn)
	require.NoError(t, err)

	ban := testRecord("g1", model.CaseTypeBan)
	ban.TargetID = "target-2"
	_, err = InsertCase(db, ban)
	require.NoError(t, err)

	all, err := GetCasesByOptions(db, "g1", Filters{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].CaseNumber)
	assert.Equal(t, int64(2), all[1].CaseNumber)

	bans, err := GetCasesByOptions(db, "g1", Filters{CaseType: model.CaseTypeBan})
	require.NoError(t, err)
	require.Len(t, bans, 1)
	assert.Equal(t, "target-2", bans[0].TargetID)

	byTarget, err := GetCasesByOptions(db, "g1", Filters{TargetID: "target-1"})
	require.NoError(t, err)
	require.Len(t, byTarget, 1)
	assert.Equal(t, model.CaseTypeWarn, byTarget[0].CaseType)

	empty, err := GetCasesByOptions(db, "g1", Filters{CaseType: model.CaseTypeBan, TargetID: "target-1"})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCountCases(t *testing.T) {
	db := newTestDB(t)

	count, err := CountCases(db, "g1")
	require.NoError(t, err)
	assert.Zero(t, count)

	for j := 0; j < 3; j++ {
		_, err = InsertCase(db, testRecord("g1", model.CaseTypeWarn))
		require.NoError(t, err)
	}

	count, err = CountCases(db, "g1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestUpdateCasePartial(t *testing.T) {
	db := newTestDB(t)

	inserted, err := InsertCase(db, testRecord("g1", model.CaseTypeBan))
	require.NoError(t, err)

	reason := "updated reason"
	updated, err := UpdateCase(db, "g1", inserted.CaseNumber, Fields{Reason: &reason})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, reason, updated.Reason)
	assert.Equal(t, model.CaseStatusActive, updated.Status)

	status := model.CaseStatusInactive
	updated, err = UpdateCase(db, "g1", inserted.CaseNumber, Fields{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, model.CaseStatusInactive, updated.Status)
	assert.Equal(t, reason, updated.Reason)

	// No fields at all reads back the stored record unchanged.
	same, err := UpdateCase(db, "g1", inserted.CaseNumber, Fields{})
	require.NoError(t, err)
	require.NotNil(t, same)
	assert.Equal(t, reason, same.Reason)
}

func TestUpdateCaseMissing(t *testing.T) {
	db := newTestDB(t)

	reason := "nope"
	record, err := UpdateCase(db, "g1", 7, Fields{Reason: &reason})
	require.NoError(t, err)
	assert.Nil(t, record)
}
