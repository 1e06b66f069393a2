package engine

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// spawnWorker starts a fresh goroutine — never pooled, one per active task —
// that evaluates rec.boundCall and posts its result back to the engine's
// serialising loop exactly once. A panic inside boundCall is recovered here
// at the worker boundary and reported as a normal Finished with an Empty
// result, per §7.
func (e *Engine) spawnWorker(rec *record) {
	ctx := withStopFlag(context.Background(), rec.stopFlag)
	id := rec.id

	go func() {
		result := e.runBoundCall(ctx, rec)
		e.post(func(e *Engine) {
			e.handleDone(id, result)
		})
	}()
}

// runBoundCall isolates the panic-recovery boundary so a callable panic can
// never unwind past the worker goroutine into engine machinery.
func (e *Engine) runBoundCall(ctx context.Context, rec *record) (result Box) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"taskID":   rec.id,
				"taskType": rec.taskType,
			}).Errorf("등록된 콜러블에서 panic이 발생하여 복구합니다: %v", r)
			result = Empty()
		}
	}()

	boxed, err := rec.boundCall(ctx)
	if err != nil {
		log.WithFields(log.Fields{
			"taskID":   rec.id,
			"taskType": rec.taskType,
		}).Errorf("작업 실행 중 에러가 발생했습니다: %v", err)
		return Empty()
	}
	return boxed
}
