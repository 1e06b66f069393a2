// Package engine implements the core task-execution engine: registration of
// erased callables under integer task types, dispatch with group-exclusion
// admission, a single serialising context owning all scheduler state, and
// cooperative-stop-then-terminate control. See SPEC_FULL.md for the full
// component breakdown (C1-C7).
package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	apperrors "github.com/darkkaiser/task-engine/internal/pkg/errors"
)

// Engine is the scheduler core (C5). All of its mutable scheduling state
// (active, queued, blockStartTask, byID) is owned exclusively by the
// goroutine running loop; every other method only ever communicates with
// that goroutine by posting a closure onto ops, which is what SPEC_FULL.md
// calls the "serialising context".
type Engine struct {
	reg       *registry
	nextID    atomic.Int64
	observers []Observer

	ops chan func(*Engine)

	active         []*record
	queued         []*record
	byID           map[int64]*record
	blockStartTask bool
}

// NewEngine constructs an Engine and starts its serialising loop. Observers
// passed here receive every Started/Finished/Terminated event for the
// engine's lifetime; more may be added later with AddObserver.
func NewEngine(observers ...Observer) *Engine {
	e := &Engine{
		reg:       newRegistry(),
		observers: append([]Observer(nil), observers...),
		ops:       make(chan func(*Engine), 256),
		byID:      make(map[int64]*record),
	}
	go e.loop()
	return e
}

func (e *Engine) loop() {
	for op := range e.ops {
		op(e)
	}
}

// Close stops the serialising loop goroutine by closing ops. It must only be
// called once, after the caller is done posting work — a post to a closed
// engine panics, the same way a send on any closed channel would. Existing
// worker goroutines are not affected; use StopAll first if they must be
// drained before Close.
func (e *Engine) Close() {
	close(e.ops)
}

// post queues op to run on the serialising context and returns immediately.
func (e *Engine) post(op func(*Engine)) {
	e.ops <- op
}

// postSync queues op and blocks until it has run, for read operations that
// need a consistent snapshot of loop-owned state.
func (e *Engine) postSync(op func(*Engine)) {
	done := make(chan struct{})
	e.post(func(e *Engine) {
		op(e)
		close(done)
	})
	<-done
}

// AddObserver registers an additional Observer.
func (e *Engine) AddObserver(obs Observer) {
	e.post(func(e *Engine) {
		e.observers = append(e.observers, obs)
	})
}

// Register adds a task descriptor for taskType, building its erased invoker
// from callable's reflected signature once, here, per §4.2.
func (e *Engine) Register(taskType int, callable any, opts ...RegisterOption) error {
	return e.reg.register(taskType, callable, opts...)
}

// Unregister removes taskType's descriptor; it does not affect already
// dispatched records.
func (e *Engine) Unregister(taskType int) bool {
	return e.reg.unregister(taskType)
}

// IsRegistered reports whether taskType currently has a descriptor.
func (e *Engine) IsRegistered(taskType int) bool {
	return e.reg.isRegistered(taskType)
}

// GroupOf reports taskType's exclusion group, if registered.
func (e *Engine) GroupOf(taskType int) (int, bool) {
	return e.reg.groupOf(taskType)
}

// AddTask dispatches one invocation of taskType with args, per §4.4's
// five-step Dispatch algorithm. It assigns the id synchronously (outside the
// loop) so ids stay strictly increasing even under concurrent callers, then
// hands the new record to the loop for admission.
func (e *Engine) AddTask(taskType int, args ...Box) (int64, error) {
	d, ok := e.reg.lookup(taskType)
	if !ok {
		return 0, apperrors.New(apperrors.NotRegistered, fmt.Sprintf("task type %d는 등록되어 있지 않습니다", taskType))
	}
	if err := d.coerceArgs(args); err != nil {
		return 0, err
	}

	id := e.nextID.Add(1) - 1
	frozenArgs := append([]Box(nil), args...)
	boundCall := func(ctx context.Context) (Box, error) {
		return d.invoke(ctx, frozenArgs)
	}
	rec := newRecord(id, taskType, d.group, d.stopTimeout, frozenArgs, boundCall)

	e.post(func(e *Engine) {
		e.byID[rec.id] = rec
		e.submitRecord(rec)
	})

	return id, nil
}

// submitRecord runs admission for a freshly dispatched or re-queued record:
// start it immediately if its group is clear and admission is open,
// otherwise append it to the FIFO queue.
func (e *Engine) submitRecord(rec *record) {
	if e.canStart(rec.group) {
		e.start(rec)
	} else {
		e.queued = append(e.queued, rec)
	}
}

func (e *Engine) canStart(group int) bool {
	if e.blockStartTask {
		return false
	}
	return e.activeByGroup(group) == nil
}

func (e *Engine) start(rec *record) {
	rec.state = StateActive
	e.active = append(e.active, rec)
	e.emit(func(o Observer) { o.OnStarted(rec.id, rec.taskType, rec.argsList) })
	e.spawnWorker(rec)
}

// handleDone is posted by a worker goroutine exactly once. A record that is
// no longer tracked, or no longer Active, has already been resolved by a
// forced terminate; the report is a stale straggler and is dropped.
func (e *Engine) handleDone(id int64, result Box) {
	rec, ok := e.byID[id]
	if !ok || rec.state != StateActive {
		return
	}
	rec.state = StateFinished
	e.removeActive(id)
	e.emit(func(o Observer) { o.OnFinished(rec.id, rec.taskType, rec.argsList, result) })
	delete(e.byID, id)
	e.drain()
}

// drain walks queued front-to-back exactly once, starting every record
// whose group is currently clear and leaving the rest in place, per §4.4.
func (e *Engine) drain() {
	if len(e.queued) == 0 {
		return
	}
	remaining := e.queued[:0:0]
	for _, rec := range e.queued {
		if e.canStart(rec.group) {
			e.start(rec)
		} else {
			remaining = append(remaining, rec)
		}
	}
	e.queued = remaining
}

func (e *Engine) activeByID(id int64) *record {
	for _, r := range e.active {
		if r.id == id {
			return r
		}
	}
	return nil
}

func (e *Engine) activeByType(taskType int) *record {
	for _, r := range e.active {
		if r.taskType == taskType {
			return r
		}
	}
	return nil
}

func (e *Engine) activeByGroup(group int) *record {
	for _, r := range e.active {
		if r.group == group {
			return r
		}
	}
	return nil
}

func (e *Engine) removeActive(id int64) {
	for i, r := range e.active {
		if r.id == id {
			e.active = append(e.active[:i], e.active[i+1:]...)
			return
		}
	}
}

// IsIdle reports whether no task is currently active.
func (e *Engine) IsIdle() bool {
	var idle bool
	e.postSync(func(e *Engine) { idle = len(e.active) == 0 })
	return idle
}

// IsTaskAddedByType searches active then queued for taskType, reporting
// whether it was found at all and, if so, whether that was in active.
func (e *Engine) IsTaskAddedByType(taskType int) (present, active bool) {
	e.postSync(func(e *Engine) {
		if e.activeByType(taskType) != nil {
			present, active = true, true
			return
		}
		for _, r := range e.queued {
			if r.taskType == taskType {
				present, active = true, false
				return
			}
		}
	})
	return
}

// IsTaskAddedByGroup searches active then queued for group, reporting
// whether it was found at all and, if so, whether that was in active.
func (e *Engine) IsTaskAddedByGroup(group int) (present, active bool) {
	e.postSync(func(e *Engine) {
		if e.activeByGroup(group) != nil {
			present, active = true, true
			return
		}
		for _, r := range e.queued {
			if r.group == group {
				present, active = true, false
				return
			}
		}
	})
	return
}

// afterFunc is indirected so tests can substitute a deterministic timer
// without racing real wall-clock delays; control.go always calls through
// this var rather than time.AfterFunc directly.
var afterFunc = time.AfterFunc
