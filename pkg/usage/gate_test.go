package usage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsageCounterRepo struct {
	rows map[string]*entity.UsageCounter
}

func newFakeUsageCounterRepo() *fakeUsageCounterRepo {
	return &fakeUsageCounterRepo{rows: make(map[string]*entity.UsageCounter)}
}

func rowKey(ownerId uuid.UUID, month string) string {
	return ownerId.String() + ":" + month
}

func (r *fakeUsageCounterRepo) Get(ctx context.Context, ownerId uuid.UUID, month string) (*entity.UsageCounter, error) {
	return r.rows[rowKey(ownerId, month)], nil
}

func (r *fakeUsageCounterRepo) EnsureRow(ctx context.Context, ownerId uuid.UUID, month string) (*entity.UsageCounter, error) {
	key := rowKey(ownerId, month)
	if row, ok := r.rows[key]; ok {
		return row, nil
	}
	row := &entity.UsageCounter{Id: uuid.New(), OwnerId: ownerId, Month: month}
	r.rows[key] = row
	return row, nil
}

func (r *fakeUsageCounterRepo) Increment(ctx context.Context, ownerId uuid.UUID, month string) error {
	row, _ := r.EnsureRow(ctx, ownerId, month)
	row.Extracts++
	return nil
}

func (r *fakeUsageCounterRepo) SumAllTime(ctx context.Context, ownerId uuid.UUID) (int, error) {
	sum := 0
	for _, row := range r.rows {
		if row.OwnerId == ownerId {
			sum += row.Extracts
		}
	}
	return sum, nil
}

func TestGateCheckFreePlanLifetimeCap(t *testing.T) {
	repo := newFakeUsageCounterRepo()
	gate := NewGate(repo)
	ctx := context.Background()
	ownerId := uuid.New()
	user := &entity.User{Id: ownerId, Plan: entity.PlanFree}

	for i := 0; i < planLimits[entity.PlanFree].LifetimeCap; i++ {
		result, err := gate.Check(ctx, user)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "extract %d should be allowed", i)
		require.NoError(t, gate.Consume(ctx, ownerId))
	}

	result, err := gate.Check(ctx, user)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, planLimits[entity.PlanFree].LifetimeCap, result.Max)
}

func TestGateCheckPaidPlanMonthlyCap(t *testing.T) {
	repo := newFakeUsageCounterRepo()
	gate := NewGate(repo)
	ctx := context.Background()
	ownerId := uuid.New()
	user := &entity.User{Id: ownerId, Plan: entity.PlanSubBasic}

	result, err := gate.Check(ctx, user)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, planLimits[entity.PlanSubBasic].MonthlyCap, result.Max)

	require.NoError(t, gate.Consume(ctx, ownerId))
	result, err = gate.Check(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Used)
}

func TestGateCheckUnknownPlan(t *testing.T) {
	repo := newFakeUsageCounterRepo()
	gate := NewGate(repo)
	user := &entity.User{Id: uuid.New(), Plan: entity.Plan("mystery")}

	result, err := gate.Check(context.Background(), user)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
}

func TestMeetingStorageAllowed(t *testing.T) {
	assert.True(t, MeetingStorageAllowed(entity.PlanFree, 0))
	assert.True(t, MeetingStorageAllowed(entity.PlanFree, FreeMeetingStorageCap-1))
	assert.False(t, MeetingStorageAllowed(entity.PlanFree, FreeMeetingStorageCap))
	assert.True(t, MeetingStorageAllowed(entity.PlanSubPro, 10000))
}
