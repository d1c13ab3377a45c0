package model

// CaseType identifies the moderation action a case documents.
type CaseType string

const (
	CaseTypeBan       CaseType = "BAN"
	CaseTypeUnban     CaseType = "UNBAN"
	CaseTypeKick      CaseType = "KICK"
	CaseTypeTimeout   CaseType = "TIMEOUT"
	CaseTypeUntimeout CaseType = "UNTIMEOUT"
	CaseTypeWarn      CaseType = "WARN"
	CaseTypeJail      CaseType = "JAIL"
	CaseTypeUnjail    CaseType = "UNJAIL"
)

// CaseStatus is the tri-state lifecycle marker of a case. It only
// carries meaning for revocable actions (ban, timeout, jail); one-shot
// actions always hold CaseStatusNotApplicable.
type CaseStatus string

const (
	CaseStatusActive        CaseStatus = "active"
	CaseStatusInactive      CaseStatus = "inactive"
	CaseStatusNotApplicable CaseStatus = "not_applicable"
)

// CaseRecord represents a single moderation case in the database.
// The database table will be named 'cases'. Only Reason and Status are
// mutable after insertion; every other column is write-once.
type CaseRecord struct {
	CaseID      string     `db:"case_id"` // Primary key, assigned at creation
	GuildID     string     `db:"guild_id"`
	CaseNumber  int64      `db:"case_number"` // Sequential per guild
	CaseType    CaseType   `db:"case_type"`
	TargetID    string     `db:"target_id"`
	ModeratorID string     `db:"moderator_id"`
	Reason      string     `db:"reason"`
	Status      CaseStatus `db:"status"`
	CreatedAt   int64      `db:"created_at"` // Unix seconds
}

// Revocable reports whether the case type has an active/inactive
// lifecycle that a later revocation can flip.
func (t CaseType) Revocable() bool {
	switch t {
	case CaseTypeBan, CaseTypeTimeout, CaseTypeJail:
		return true
	}
	return false
}
