package entity

import (
	"time"

	"github.com/google/uuid"
)

type Plan string

const (
	PlanFree     Plan = "free"
	PlanLTD      Plan = "ltd"
	PlanFLTD     Plan = "fltd"
	PlanSubBasic Plan = "sub_basic"
	PlanSubPro   Plan = "sub_pro"
)

// User is the account record. Plan and IsLifetime gate UsageGate limits;
// the cloud-recording token fields cache third-party OAuth state for
// MeetingIngest's cloud-import flow.
type User struct {
	Id    uuid.UUID
	Email string
	Plan  Plan

	// IsLifetime is Invariant L: once true, no application-level update may
	// clear it. The storage layer enforces this with a guard trigger.
	IsLifetime bool

	CloudAccessToken    *string
	CloudRefreshToken   *string
	CloudTokenExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
