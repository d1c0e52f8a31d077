package domain

import (
	"strings"
	"time"
)

// Prospect is a sales contact owned by one user.
type Prospect struct {
	ID        string
	UserID    string
	Name      string
	Company   string
	Email     string
	Phone     string
	Stage     Stage
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Stage string

const (
	StageNew       Stage = "new"
	StageLead      Stage = "lead"
	StageQualified Stage = "qualified"
	StageProposal  Stage = "proposal"
	StageWon       Stage = "won"
	StageLost      Stage = "lost"
)

// DefaultStage is used when a prospect is created without a recognised stage.
const DefaultStage = StageLead

// ParseStage lowercases s and reports whether it names a known stage.
func ParseStage(s string) (Stage, bool) {
	st := Stage(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StageNew, StageLead, StageQualified, StageProposal, StageWon, StageLost:
		return st, true
	}
	return "", false
}
