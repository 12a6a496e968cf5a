package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrackedIssue is auto-created from InsightEngine's unresolved-items cards
// and may be manually toggled resolved by its owner.
type TrackedIssue struct {
	Id                uuid.UUID
	OwnerId           uuid.UUID
	IssueText         string
	Notes             string
	SourceMeetingId   *uuid.UUID
	SourceMeetingTitle string
	Resolved          bool
	CreatedAt         time.Time
	ResolvedAt        *time.Time
}
