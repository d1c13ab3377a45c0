package moderation

import (
	"fmt"
	"time"

	"moderation-bot/model"
	casesdb "moderation-bot/utils/database/cases"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Service orchestrates creation, retrieval, and partial update of case
// records over the case repository. It holds no per-request state and
// never caches repository reads.
type Service struct {
	db       *sqlx.DB
	pageSize int
}

// NewService returns a case service over db. pageSize <= 0 falls back
// to DefaultPageSize.
func NewService(db *sqlx.DB, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{db: db, pageSize: pageSize}
}

// PageSize returns the configured listing page size.
func (s *Service) PageSize() int {
	return s.pageSize
}

// CreateCase records a moderation action. Authorization must already
// have passed at the command boundary. The underlying Discord action
// has already been attempted by the caller, so a storage failure is
// surfaced as-is and never retried here.
func (s *Service) CreateCase(guildID, targetID, moderatorID string, caseType model.CaseType, reason string) (*model.CaseRecord, error) {
	status := model.CaseStatusNotApplicable
	if caseType.Revocable() {
		status = model.CaseStatusActive
	}

	record := model.CaseRecord{
		CaseID:      uuid.NewString(),
		GuildID:     guildID,
		CaseType:    caseType,
		TargetID:    targetID,
		ModeratorID: moderatorID,
		Reason:      reason,
		Status:      status,
		CreatedAt:   time.Now().Unix(),
	}

	stored, err := casesdb.InsertCase(s.db, record)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailure, err)
	}
	return stored, nil
}

// ViewCase looks up a single case by number.
func (s *Service) ViewCase(guildID string, caseNumber int64) (*model.CaseRecord, error) {
	record, err := casesdb.GetCaseByNumber(s.db, guildID, caseNumber)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrCaseNotFound
	}
	return record, nil
}

// ListCases returns the guild's cases matching the filters in ascending
// case number order, plus the guild's full case count. The total is
// independent of the filters so listings can show "Total Cases (N)"
// even over a filtered subset.
func (s *Service) ListCases(guildID string, filters casesdb.Filters) ([]model.CaseRecord, int, error) {
	matched, err := casesdb.GetCasesByOptions(s.db, guildID, filters)
	if err != nil {
		return nil, 0, err
	}
	total, err := casesdb.CountCases(s.db, guildID)
	if err != nil {
		return nil, 0, err
	}
	return matched, total, nil
}

// UpdateCase applies a partial update to the case at the given number.
// Nil fields keep their previous value. ErrCaseNotFound distinguishes a
// missing case from the permission failure checked before this call.
func (s *Service) UpdateCase(guildID string, caseNumber int64, reason *string, status *model.CaseStatus) (*model.CaseRecord, error) {
	record, err := casesdb.UpdateCase(s.db, guildID, caseNumber, casesdb.Fields{Reason: reason, Status: status})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrCaseNotFound
	}
	return record, nil
}
