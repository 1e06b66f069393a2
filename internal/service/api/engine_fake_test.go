package api

import "github.com/darkkaiser/task-engine/internal/engine"

// fakeTaskEngine은 Service 테스트에서 사용하는 TaskEngine 테스트 더블입니다.
type fakeTaskEngine struct {
	idle bool
}

func (f *fakeTaskEngine) AddTask(taskType int, args ...engine.Box) (int64, error) {
	return 1, nil
}

func (f *fakeTaskEngine) StopByID(id int64) {}

func (f *fakeTaskEngine) TerminateByID(id int64) {}

func (f *fakeTaskEngine) StopAll() {}

func (f *fakeTaskEngine) IsIdle() bool {
	return f.idle
}
