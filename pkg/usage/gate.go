// Package usage implements plan-based extraction and meeting-storage quota
// checks (UsageGate). Free plan sums usage across all months at read time
// to enforce a lifetime cap; every paid plan tracks a reset-on-month-
// rollover counter in a single current-month row.
package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/repository/contract"
)

// planLimit describes a single plan's extraction caps. Exactly one of
// LifetimeCap / MonthlyCap is meaningful per plan; free uses LifetimeCap,
// every paid plan uses MonthlyCap.
type planLimit struct {
	LifetimeCap int
	MonthlyCap  int
}

var planLimits = map[entity.Plan]planLimit{
	entity.PlanFree:     {LifetimeCap: 5},
	entity.PlanLTD:      {MonthlyCap: 50},
	entity.PlanFLTD:     {MonthlyCap: 100},
	entity.PlanSubBasic: {MonthlyCap: 50},
	entity.PlanSubPro:   {MonthlyCap: 100},
}

// FreeMeetingStorageCap is the separate, always-enforced cap on persisted
// meetings for the free plan. Checked before any work that would create a
// meeting record, so a quota rejection never wastes provider cost or
// leaves an orphaned temp file behind.
const FreeMeetingStorageCap = 3

// CheckResult is returned by Check.
type CheckResult struct {
	Allowed bool
	Used    int
	Max     int
	Message string
}

// Gate implements UsageGate's two operations: Check (read-only) and
// Consume (called only after a successful extraction).
type Gate struct {
	usageRepo contract.UsageCounterRepository
}

func NewGate(usageRepo contract.UsageCounterRepository) *Gate {
	return &Gate{usageRepo: usageRepo}
}

func currentMonth() string {
	return time.Now().UTC().Format("2006-01")
}

// Check evaluates whether a user may run another extraction without
// consuming one. Free plans sum extracts across all months against a
// lifetime cap; paid plans read (and lazily create) the current month's
// counter against a monthly cap.
func (g *Gate) Check(ctx context.Context, user *entity.User) (*CheckResult, error) {
	limit, ok := planLimits[user.Plan]
	if !ok {
		return &CheckResult{Allowed: false, Message: fmt.Sprintf("unknown plan %q", user.Plan)}, nil
	}

	if user.Plan == entity.PlanFree {
		used, err := g.usageRepo.SumAllTime(ctx, user.Id)
		if err != nil {
			return nil, err
		}
		if used >= limit.LifetimeCap {
			return &CheckResult{
				Allowed: false,
				Used:    used,
				Max:     limit.LifetimeCap,
				Message: fmt.Sprintf("Free plan limit reached (%d extracts). Upgrade to continue.", limit.LifetimeCap),
			}, nil
		}
		return &CheckResult{Allowed: true, Used: used, Max: limit.LifetimeCap}, nil
	}

	month := currentMonth()
	counter, err := g.usageRepo.EnsureRow(ctx, user.Id, month)
	if err != nil {
		return nil, err
	}
	if counter.Extracts >= limit.MonthlyCap {
		return &CheckResult{
			Allowed: false,
			Used:    counter.Extracts,
			Max:     limit.MonthlyCap,
			Message: fmt.Sprintf("Monthly limit reached (%d extracts). Limit resets next month.", limit.MonthlyCap),
		}, nil
	}
	return &CheckResult{Allowed: true, Used: counter.Extracts, Max: limit.MonthlyCap}, nil
}

// Consume atomically upserts-and-increments the current month's counter.
// Called only after a successful extraction — I-UsageMonotone.
func (g *Gate) Consume(ctx context.Context, ownerId uuid.UUID) error {
	return g.usageRepo.Increment(ctx, ownerId, currentMonth())
}

// MeetingStorageAllowed checks the separate, always-enforced cap on
// persisted meetings. Free is capped at FreeMeetingStorageCap; every other
// plan is unlimited.
func MeetingStorageAllowed(plan entity.Plan, currentMeetingCount int) bool {
	if plan != entity.PlanFree {
		return true
	}
	return currentMeetingCount < FreeMeetingStorageCap
}
