package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T, now time.Time) *Engine {
	t.Helper()
	return NewEngine(zap.NewNop(), WithClock(func() time.Time { return now }))
}

func noop(time.Time) error { return nil }

func TestEngine_TickFiresDueTasksOnce(t *testing.T) {
	now := mustTime(t, "2024-06-10 08:00", "UTC")
	e := newTestEngine(t, now)

	p, err := NewDailyPattern("09:00", "UTC", 1, nil)
	require.NoError(t, err)
	require.True(t, e.Schedule("prompt_1", p, noop))

	// Before the slot nothing fires.
	assert.Empty(t, e.Tick(mustTime(t, "2024-06-10 08:59", "UTC")))

	due := e.Tick(mustTime(t, "2024-06-10 09:00", "UTC"))
	require.Len(t, due, 1)
	assert.Equal(t, "prompt_1", due[0].ID)
	assert.Equal(t, mustTime(t, "2024-06-10 09:00", "UTC"), due[0].FiredAt)

	// A second tick at the same instant must not fire again.
	assert.Empty(t, e.Tick(mustTime(t, "2024-06-10 09:00", "UTC")))

	// The recurring task was re-queued for tomorrow.
	next, ok := e.NextRun("prompt_1")
	require.True(t, ok)
	assert.Equal(t, mustTime(t, "2024-06-11 09:00", "UTC"), next)
}

func TestEngine_RecurrenceDerivedFromFiredAtNotNow(t *testing.T) {
	now := mustTime(t, "2024-06-10 08:00", "UTC")
	e := newTestEngine(t, now)

	p, err := NewDailyPattern("09:00", "UTC", 1, nil)
	require.NoError(t, err)
	require.True(t, e.Schedule("prompt_1", p, noop))

	// A very late tick still advances by exactly one occurrence from the
	// fired slot, keeping the grid intact.
	due := e.Tick(mustTime(t, "2024-06-10 16:30", "UTC"))
	require.Len(t, due, 1)
	assert.Equal(t, mustTime(t, "2024-06-10 09:00", "UTC"), due[0].FiredAt)

	next, ok := e.NextRun("prompt_1")
	require.True(t, ok)
	assert.Equal(t, mustTime(t, "2024-06-11 09:00", "UTC"), next)
}

func TestEngine_ScheduleReplacesExistingID(t *testing.T) {
	now := mustTime(t, "2024-06-10 08:00", "UTC")
	e := newTestEngine(t, now)

	morning, err := NewDailyPattern("09:00", "UTC", 1, nil)
	require.NoError(t, err)
	evening, err := NewDailyPattern("18:00", "UTC", 1, nil)
	require.NoError(t, err)

	require.True(t, e.Schedule("prompt_1", morning, noop))
	require.True(t, e.Schedule("prompt_1", evening, noop))
	assert.Equal(t, 1, e.Len())

	// Only the replacement fires.
	assert.Empty(t, e.Tick(mustTime(t, "2024-06-10 09:00", "UTC")))
	due := e.Tick(mustTime(t, "2024-06-10 18:00", "UTC"))
	require.Len(t, due, 1)
}

func TestEngine_Cancel(t *testing.T) {
	now := mustTime(t, "2024-06-10 08:00", "UTC")
	e := newTestEngine(t, now)

	p, err := NewDailyPattern("09:00", "UTC", 1, nil)
	require.NoError(t, err)
	require.True(t, e.Schedule("prompt_1", p, noop))

	assert.True(t, e.Cancel("prompt_1"))
	assert.False(t, e.Cancel("prompt_1"))
	assert.Equal(t, 0, e.Len())
	assert.Empty(t, e.Tick(mustTime(t, "2024-06-10 09:00", "UTC")))
}

func TestEngine_ScheduleWithOffset(t *testing.T) {
	now := mustTime(t, "2024-06-10 08:00", "UTC")
	e := newTestEngine(t, now)

	p, err := NewDailyPattern("09:00", "UTC", 1, nil)
	require.NoError(t, err)
	require.True(t, e.ScheduleWithOffset("summary_1", p, 4*time.Hour, noop))

	next, ok := e.NextRun("summary_1")
	require.True(t, ok)
	assert.Equal(t, mustTime(t, "2024-06-10 13:00", "UTC"), next)

	// Re-queue derives from the occurrence (fireAt - offset), so the offset
	// never compounds.
	due := e.Tick(mustTime(t, "2024-06-10 13:00", "UTC"))
	require.Len(t, due, 1)

	next, ok = e.NextRun("summary_1")
	require.True(t, ok)
	assert.Equal(t, mustTime(t, "2024-06-11 13:00", "UTC"), next)
}

func TestEngine_ScheduleExhaustedPattern(t *testing.T) {
	now := mustTime(t, "2024-06-10 08:00", "UTC")
	e := newTestEngine(t, now)

	p, err := NewOneTimePattern("2024-06-01", "09:00", "UTC")
	require.NoError(t, err)

	assert.False(t, e.Schedule("prompt_1", p, noop))
	assert.Equal(t, 0, e.Len())
}

func TestEngine_OneTimeTaskNotRequeued(t *testing.T) {
	now := mustTime(t, "2024-06-10 08:00", "UTC")
	e := newTestEngine(t, now)

	p, err := NewOneTimePattern("2024-06-15", "09:00", "UTC")
	require.NoError(t, err)
	require.True(t, e.Schedule("prompt_1", p, noop))

	due := e.Tick(mustTime(t, "2024-06-15 09:00", "UTC"))
	require.Len(t, due, 1)
	assert.Equal(t, 0, e.Len())
}

func TestEngine_TickOrdersByFireTime(t *testing.T) {
	now := mustTime(t, "2024-06-10 08:00", "UTC")
	e := newTestEngine(t, now)

	e.ScheduleAt("b", mustTime(t, "2024-06-10 10:00", "UTC"), noop)
	e.ScheduleAt("a", mustTime(t, "2024-06-10 09:00", "UTC"), noop)

	due := e.Tick(mustTime(t, "2024-06-10 11:00", "UTC"))
	require.Len(t, due, 2)
	assert.Equal(t, "a", due[0].ID)
	assert.Equal(t, "b", due[1].ID)
}
