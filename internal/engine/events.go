package engine

import log "github.com/sirupsen/logrus"

// Observer receives the engine's three lifecycle signals. All three are
// invoked synchronously from the engine's serialising loop goroutine, never
// from a worker — an Observer implementation must not block for long, and
// must not call back into the Engine from within a callback (that would
// deadlock the loop).
type Observer interface {
	OnStarted(id int64, taskType int, args []Box)
	OnFinished(id int64, taskType int, args []Box, result Box)
	OnTerminated(id int64, taskType int, args []Box)
}

// ObserverFuncs adapts up to three plain functions into an Observer,
// leaving any signal the caller doesn't care about as a no-op.
type ObserverFuncs struct {
	Started    func(id int64, taskType int, args []Box)
	Finished   func(id int64, taskType int, args []Box, result Box)
	Terminated func(id int64, taskType int, args []Box)
}

func (o ObserverFuncs) OnStarted(id int64, taskType int, args []Box) {
	if o.Started != nil {
		o.Started(id, taskType, args)
	}
}

func (o ObserverFuncs) OnFinished(id int64, taskType int, args []Box, result Box) {
	if o.Finished != nil {
		o.Finished(id, taskType, args, result)
	}
}

func (o ObserverFuncs) OnTerminated(id int64, taskType int, args []Box) {
	if o.Terminated != nil {
		o.Terminated(id, taskType, args)
	}
}

// emit fans a signal out to every registered observer, recovering any
// observer panic so a misbehaving observer cannot corrupt the serialising
// context it was called from.
func (e *Engine) emit(fn func(Observer)) {
	for _, obs := range e.observers {
		e.emitOne(obs, fn)
	}
}

func (e *Engine) emitOne(obs Observer, fn func(Observer)) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("observer 콜백에서 panic이 발생하여 복구합니다: %v", r)
		}
	}()
	fn(obs)
}
