package cases

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"moderation-bot/model"

	"github.com/jmoiron/sqlx"
)

// Filters is a conjunction of optional constraints for case queries.
// Zero-valued fields impose no constraint.
type Filters struct {
	CaseType    model.CaseType
	TargetID    string
	ModeratorID string
}

// Fields is a partial update for a case. Nil fields keep their stored
// value; reason and status are the only mutable columns.
type Fields struct {
	Reason *string
	Status *model.CaseStatus
}

// NextCaseNumber issues the next case number for a guild inside tx.
// The upsert is the atomic increment, so concurrent callers on separate
// transactions each observe a distinct number.
func NextCaseNumber(tx *sqlx.Tx, guildID string) (int64, error) {
	var number int64
	query := `INSERT INTO case_counters (guild_id, last_number) VALUES (?, 1)
			  ON CONFLICT(guild_id) DO UPDATE SET last_number = last_number + 1
			  RETURNING last_number`
	if err := tx.Get(&number, query, guildID); err != nil {
		return 0, fmt.Errorf("failed to allocate case number for guild %s: %w", guildID, err)
	}
	return number, nil
}

// InsertCase persists a new case record, assigning its case number from
// the guild's counter in the same transaction, and returns the stored
// record. CaseID and CreatedAt must already be set by the caller.
func InsertCase(db *sqlx.DB, record model.CaseRecord) (*model.CaseRecord, error) {
	tx, err := db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin case insert: %w", err)
	}
	defer tx.Rollback()

	record.CaseNumber, err = NextCaseNumber(tx, record.GuildID)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO cases (case_id, guild_id, case_number, case_type, target_id, moderator_id, reason, status, created_at)
			  VALUES (:case_id, :guild_id, :case_number, :case_type, :target_id, :moderator_id, :reason, :status, :created_at)`
	if _, err = tx.NamedExec(query, record); err != nil {
		return nil, fmt.Errorf("failed to insert case record: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit case insert: %w", err)
	}
	return &record, nil
}

// GetCaseByNumber retrieves a single case by its per-guild number.
// A missing case is reported as (nil, nil), not an error.
func GetCaseByNumber(db *sqlx.DB, guildID string, caseNumber int64) (*model.CaseRecord, error) {
	var record model.CaseRecord
	query := "SELECT * FROM cases WHERE guild_id = ? AND case_number = ?"
	err := db.Get(&record, query, guildID, caseNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get case %d for guild %s: %w", caseNumber, guildID, err)
	}
	return &record, nil
}

// GetCasesByOptions retrieves a guild's cases matching every filter
// present, in ascending case number order.
func GetCasesByOptions(db *sqlx.DB, guildID string, filters Filters) ([]model.CaseRecord, error) {
	clauses := []string{"guild_id = ?"}
	args := []interface{}{guildID}

	if filters.CaseType != "" {
		clauses = append(clauses, "case_type = ?")
		args = append(args, filters.CaseType)
	}
	if filters.TargetID != "" {
		clauses = append(clauses, "target_id = ?")
		args = append(args, filters.TargetID)
	}
	if filters.ModeratorID != "" {
		clauses = append(clauses, "moderator_id = ?")
		args = append(args, filters.ModeratorID)
	}

	records := []model.CaseRecord{}
	query := "SELECT * FROM cases WHERE " + strings.Join(clauses, " AND ") + " ORDER BY case_number ASC"
	if err := db.Select(&records, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query cases for guild %s: %w", guildID, err)
	}
	return records, nil
}

// CountCases retrieves the total number of cases recorded for a guild.
func CountCases(db *sqlx.DB, guildID string) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM cases WHERE guild_id = ?"
	if err := db.Get(&count, query, guildID); err != nil {
		return 0, fmt.Errorf("failed to count cases for guild %s: %w", guildID, err)
	}
	return count, nil
}

// UpdateCase applies the fields present in fields to the case at the
// given number, leaving absent fields untouched, and returns the
// updated record. A missing case is reported as (nil, nil).
func UpdateCase(db *sqlx.DB, guildID string, caseNumber int64, fields Fields) (*model.CaseRecord, error) {
	sets := []string{}
	args := []interface{}{}

	if fields.Reason != nil {
		sets = append(sets, "reason = ?")
		args = append(args, *fields.Reason)
	}
	if fields.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *fields.Status)
	}
	if len(sets) == 0 {
		return GetCaseByNumber(db, guildID, caseNumber)
	}

	query := "UPDATE cases SET " + strings.Join(sets, ", ") + " WHERE guild_id = ? AND case_number = ?"
	args = append(args, guildID, caseNumber)
	result, err := db.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update case %d for guild %s: %w", caseNumber, guildID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check rows affected for case %d: %w", caseNumber, err)
	}
	if rowsAffected == 0 {
		return nil, nil
	}
	return GetCaseByNumber(db, guildID, caseNumber)
}
