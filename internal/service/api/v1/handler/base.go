// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 이 패키지는 HTTP 요청을 받아 검증하고, 작업 엔진(engine.Engine)을 호출한 후,
// 적절한 HTTP 응답을 반환하는 핸들러 함수들을 포함합니다.
package handler

import (
	"github.com/darkkaiser/task-engine/internal/engine"
	"github.com/darkkaiser/task-engine/internal/service/api/constants"
)

// TaskEngine은 v1 핸들러가 작업을 디스패치/제어하기 위해 필요로 하는
// engine.Engine의 부분집합입니다. 실제 구현체는 *engine.Engine이며,
// 여기서는 테스트 용이성을 위해 구조적 인터페이스로 받습니다.
type TaskEngine interface {
	AddTask(taskType int, args ...engine.Box) (int64, error)
	StopByID(id int64)
	TerminateByID(id int64)
	StopAll()
	IsIdle() bool
}

// Handler v1 API 요청을 처리하고 작업 엔진을 호출하는 핸들러입니다.
//
// 이 구조체는 다음 역할을 수행합니다:
//   - HTTP 요청 바인딩 및 검증
//   - 작업 엔진(TaskEngine) 호출 (작업 등록, 중지, 강제 종료)
//   - HTTP 응답 생성
//
// 애플리케이션 인증은 미들웨어(api/middleware)가 수행하며, 인증된 Application은
// Context를 통해 핸들러에 전달됩니다(auth.MustGetApplication). Handler는 인증 자체를
// 수행하지 않습니다.
type Handler struct {
	// engine 작업 디스패치/제어를 담당하는 작업 엔진
	engine TaskEngine
}

// New Handler 인스턴스를 생성합니다.
func New(engine TaskEngine) *Handler {
	if engine == nil {
		panic(constants.PanicMsgTaskEngineRequired)
	}

	return &Handler{
		engine: engine,
	}
}
