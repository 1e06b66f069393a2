package handler

import "github.com/darkkaiser/task-engine/internal/engine"

// fakeEngine은 TaskEngine의 테스트 더블입니다. 실제 engine.Engine의 직렬화 루프
// 없이 핸들러가 호출한 메서드와 인자를 그대로 기록합니다.
type fakeEngine struct {
	addTaskType int
	addTaskArgs []engine.Box
	addTaskID   int64
	addTaskErr  error

	stoppedID      int64
	terminatedID   int64
	stopAllCalled  bool
	idle           bool
}

func (f *fakeEngine) AddTask(taskType int, args ...engine.Box) (int64, error) {
	f.addTaskType = taskType
	f.addTaskArgs = args
	if f.addTaskErr != nil {
		return 0, f.addTaskErr
	}
	return f.addTaskID, nil
}

func (f *fakeEngine) StopByID(id int64) {
	f.stoppedID = id
}

func (f *fakeEngine) TerminateByID(id int64) {
	f.terminatedID = id
}

func (f *fakeEngine) StopAll() {
	f.stopAllCalled = true
}

func (f *fakeEngine) IsIdle() bool {
	return f.idle
}
