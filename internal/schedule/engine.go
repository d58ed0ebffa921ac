package schedule

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TaskFunc is a scheduled callback. firedAt is the occurrence instant the
// task was scheduled for, which can trail wall-clock time on a late tick.
type TaskFunc func(firedAt time.Time) error

// Due is one entry popped by a tick, ready for execution.
type Due struct {
	ID      string
	FiredAt time.Time
	Run     TaskFunc
}

type task struct {
	fireAt  time.Time
	id      string
	pattern *Pattern      // nil for one-off tasks
	offset  time.Duration // fixed shift from the pattern occurrence
	fn      TaskFunc
	seq     uint64 // insertion order, breaks fire-time ties deterministically
	removed bool   // lazy deletion marker
	index   int
}

// taskHeap is a min-heap ordered by (fireAt, seq).
type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].fireAt.Equal(h[j].fireAt) {
		return h[i].seq < h[j].seq
	}
	return h[i].fireAt.Before(h[j].fireAt)
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Engine is the single-process task scheduler: an ordered queue of
// (fire-time, task id, pattern, callback) entries with an id index for
// O(1) cancel/replace. Scheduling under an existing id replaces the old
// entry, never duplicates it. Tasks are derived state; nothing here is
// persisted.
type Engine struct {
	mu    sync.Mutex
	tasks taskHeap
	index map[string]*task
	seq   uint64

	now func() time.Time
	log *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's wall-clock source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(log *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		index: make(map[string]*task),
		now:   time.Now,
		log:   log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Schedule registers a recurring task at the pattern's next occurrence.
// It returns false without scheduling when the pattern is exhausted.
func (e *Engine) Schedule(id string, p *Pattern, fn TaskFunc) bool {
	return e.ScheduleWithOffset(id, p, 0, fn)
}

// ScheduleWithOffset registers a task firing at a fixed offset after each
// pattern occurrence (e.g. a summary trailing the prompt by the standup
// duration).
func (e *Engine) ScheduleWithOffset(id string, p *Pattern, offset time.Duration, fn TaskFunc) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, ok := p.NextOccurrence(e.now())
	if !ok {
		e.log.Info("pattern exhausted, not scheduling", zap.String("task_id", id))
		return false
	}
	e.insert(&task{fireAt: next.Add(offset), id: id, pattern: p, offset: offset, fn: fn})
	return true
}

// ScheduleAt registers a one-off task at an explicit instant.
func (e *Engine) ScheduleAt(id string, at time.Time, fn TaskFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.insert(&task{fireAt: at, id: id, fn: fn})
}

// insert upserts under the task id. Caller holds e.mu.
func (e *Engine) insert(t *task) {
	if old, ok := e.index[t.id]; ok {
		old.removed = true
	}
	e.seq++
	t.seq = e.seq
	e.index[t.id] = t
	heap.Push(&e.tasks, t)
}

// Cancel removes a task if present. Idempotent, and safe while the task's
// callback is mid-execution: the in-flight run completes but no further
// occurrence fires.
func (e *Engine) Cancel(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.index[id]
	if !ok {
		return false
	}
	t.removed = true
	delete(e.index, id)
	return true
}

// NextRun reports the next fire time for a task id.
func (e *Engine) NextRun(id string) (time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.index[id]
	if !ok {
		return time.Time{}, false
	}
	return t.fireAt, true
}

// Len returns the number of live scheduled tasks.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.index)
}

// Tick pops every entry due at or before now, in fire-time order, and
// re-inserts the next occurrence of each recurring entry before returning.
// Recurrence is re-derived from the fired occurrence, not from now, so a
// late tick neither skips backlogged occurrences nor shifts the grid.
func (e *Engine) Tick(now time.Time) []Due {
	e.mu.Lock()
	defer e.mu.Unlock()

	var due []Due
	for e.tasks.Len() > 0 {
		head := e.tasks[0]
		if head.removed {
			heap.Pop(&e.tasks)
			continue
		}
		if head.fireAt.After(now) {
			break
		}
		t := heap.Pop(&e.tasks).(*task)
		delete(e.index, t.id)
		due = append(due, Due{ID: t.id, FiredAt: t.fireAt, Run: t.fn})

		if t.pattern != nil && t.pattern.IsRecurring() {
			occurrence := t.fireAt.Add(-t.offset)
			if next, ok := t.pattern.NextOccurrence(occurrence); ok {
				e.insert(&task{fireAt: next.Add(t.offset), id: t.id, pattern: t.pattern, offset: t.offset, fn: t.fn})
			} else {
				e.log.Info("pattern exhausted, dropping task", zap.String("task_id", t.id))
			}
		}
	}
	return due
}

// Run drives the tick loop until ctx is done. Due callbacks are handed to
// exec; a tick always completes queue maintenance before the next one
// starts, so overlapping pops of the same entry cannot happen.
func (e *Engine) Run(ctx context.Context, interval time.Duration, exec func(Due)) {
	if exec == nil {
		exec = e.execInline
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.log.Info("schedule engine started", zap.Duration("tick_interval", interval))
	for {
		select {
		case <-ctx.Done():
			e.log.Info("schedule engine stopped")
			return
		case <-ticker.C:
			for _, d := range e.Tick(e.now()) {
				exec(d)
			}
		}
	}
}

// execInline runs a due task with panic isolation; a failing callback must
// never take down the loop or the other due entries.
func (e *Engine) execInline(d Due) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("scheduled task panicked", zap.String("task_id", d.ID), zap.Any("panic", r))
		}
	}()
	if err := d.Run(d.FiredAt); err != nil {
		e.log.Error("scheduled task failed", zap.String("task_id", d.ID), zap.Error(err))
	}
}
