package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/events"
)

type staticFinder struct {
	snapshots []domain.OnboardingSnapshot
	err       error
	asked     time.Duration
}

func (f *staticFinder) Stale(_ context.Context, olderThan time.Duration) ([]domain.OnboardingSnapshot, error) {
	f.asked = olderThan
	return f.snapshots, f.err
}

type gauge struct{ value int }

func (g *gauge) StaleSnapshots(n int) { g.value = n }

func TestSweepPublishesOneEventPerSnapshot(t *testing.T) {
	finder := &staticFinder{snapshots: []domain.OnboardingSnapshot{
		domain.NewOnboardingSnapshot(3, time.Now()),
		domain.NewOnboardingSnapshot(8, time.Now()),
	}}
	rec := events.NewRecorder()
	g := &gauge{}

	n, err := NewStaleOnboardingSweeper(finder, rec, g, 48*time.Hour).Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, g.value)
	assert.Equal(t, 48*time.Hour, finder.asked)

	published := rec.Events()
	require.Len(t, published, 2)
	assert.Equal(t, "onboarding.stalled", published[0].RoutingKey())
	assert.Equal(t, "8", published[1].ResourceID)
}

func TestSweepPropagatesFinderError(t *testing.T) {
	finder := &staticFinder{err: errors.New("redis down")}

	_, err := NewStaleOnboardingSweeper(finder, events.NewRecorder(), &gauge{}, time.Hour).Sweep(context.Background())
	assert.Error(t, err)
}

func TestScheduleRejectsBadSpec(t *testing.T) {
	s := NewStaleOnboardingSweeper(&staticFinder{}, events.NewRecorder(), &gauge{}, time.Hour)
	c := cron.New()

	_, err := s.Schedule(c, "not a schedule")
	assert.Error(t, err)

	id, err := s.Schedule(c, "0 9 * * *")
	require.NoError(t, err)
	assert.NotZero(t, id)
}
