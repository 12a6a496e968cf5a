package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActionItem is one row of the extraction record's action_items list.
type ActionItem struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
}

// ExtractionRecord is the authoritative JSON blob stored in
// Meeting.ActionItems. Every non-required field defaults to empty on read.
type ExtractionRecord struct {
	ActionItems       []ActionItem `json:"action_items"`
	FollowUpEmail     string       `json:"follow_up_email"`
	Summary           string       `json:"summary,omitempty"`
	OpenQuestions     []string     `json:"open_questions,omitempty"`
	ProposedSolutions []string     `json:"proposed_solutions,omitempty"`
}

// Meeting is a saved transcript plus its extraction record. The extraction
// record is written as a unit and parsed on read; it is never queried
// field-by-field at the storage layer.
type Meeting struct {
	Id        uuid.UUID
	OwnerId   uuid.UUID
	Title     string
	RawNotes  string
	Extracted ExtractionRecord
	CreatedAt time.Time
	UpdatedAt time.Time
}
