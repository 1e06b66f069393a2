package engine

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// StopByID requests cooperative stop of the active record with id, if any.
// An absent id is a no-op, not an error, per §7.
func (e *Engine) StopByID(id int64) {
	e.post(func(e *Engine) {
		if rec := e.activeByID(id); rec != nil {
			e.stopRecord(rec)
		}
	})
}

// StopByType requests cooperative stop of the first active record of
// taskType (start order), if any.
func (e *Engine) StopByType(taskType int) {
	e.post(func(e *Engine) {
		if rec := e.activeByType(taskType); rec != nil {
			e.stopRecord(rec)
		}
	})
}

// StopByGroup requests cooperative stop of the first active record of
// group (start order), if any.
func (e *Engine) StopByGroup(group int) {
	e.post(func(e *Engine) {
		if rec := e.activeByGroup(group); rec != nil {
			e.stopRecord(rec)
		}
	})
}

// TerminateByID forces an immediate end of the active record with id, if
// any, skipping the cooperative phase entirely.
func (e *Engine) TerminateByID(id int64) {
	e.post(func(e *Engine) {
		if rec := e.activeByID(id); rec != nil {
			e.terminateRecord(rec)
		}
	})
}

// stopRecord is the cooperative phase of §4.5: set the flag the worker is
// expected to poll, then arm a deferred check that forces termination if
// the worker has not returned by descriptor.stopTimeout. Calling this twice
// on the same record (double-stop, §9) is safe: each arm re-checks state
// when it fires, and only the first one to find the record still Active
// has any effect.
func (e *Engine) stopRecord(rec *record) {
	rec.stopFlag.Store(true)
	if rec.stopTimerArmed {
		log.WithField("taskID", rec.id).Debug("이미 정지가 요청된 작업에 대해 추가 정지 타이머를 등록합니다")
	}
	rec.stopTimerArmed = true

	id, timeout := rec.id, rec.stopTimeout
	afterFunc(timeout, func() {
		e.post(func(e *Engine) {
			e.checkDeferredStop(id)
		})
	})
}

// checkDeferredStop is the forced phase of §4.5, invoked once per armed
// timer on the serialising context.
func (e *Engine) checkDeferredStop(id int64) {
	rec, ok := e.byID[id]
	if !ok {
		return
	}
	switch rec.state {
	case StateFinished, StateTerminated:
		// Resolved already, cooperatively or by another forced path; no action.
	case StateActive:
		e.terminateRecord(rec)
	default:
		log.WithFields(log.Fields{"taskID": id, "state": rec.state}).Warn("정지 대기 중 예상치 못한 작업 상태를 발견했습니다")
	}
}

// terminateRecord is the Forced half of §4.5: since safe Go offers no way
// to kill a running goroutine outright, this stops tracking the worker (so
// handleDone silently drops its eventual, stale completion report) rather
// than truly aborting it mid-flight — the documented weaker guarantee from
// §9 and SPEC_FULL.md §4.5.
func (e *Engine) terminateRecord(rec *record) {
	rec.state = StateTerminated
	e.removeActive(rec.id)
	e.emit(func(o Observer) { o.OnTerminated(rec.id, rec.taskType, rec.argsList) })
	delete(e.byID, rec.id)
	e.drain()
}

// StopAll requests cooperative stop of every currently active record and
// blocks new admissions until the longest of their stop timeouts has
// elapsed, per §4.5's engine-wide drain. With no active tasks it is an
// immediate no-op that leaves admission open. Admission reopens
// unconditionally after the window: every active record's own deferred
// check, armed here, is responsible for forcing it by then.
func (e *Engine) StopAll() {
	e.post(func(e *Engine) {
		e.blockStartTask = true

		if len(e.active) == 0 {
			e.blockStartTask = false
			return
		}

		toStop := append([]*record(nil), e.active...)
		var maxTimeout time.Duration
		for _, rec := range toStop {
			if rec.stopTimeout > maxTimeout {
				maxTimeout = rec.stopTimeout
			}
		}
		for _, rec := range toStop {
			e.stopRecord(rec)
		}

		afterFunc(maxTimeout, func() {
			e.post(func(e *Engine) {
				e.blockStartTask = false
				e.drain()
			})
		})
	})
}
