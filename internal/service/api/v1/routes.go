// Package v1 Notify API의 v1 버전 라우트를 정의하고 설정합니다.
//
// 이 패키지는 /api/v1 경로 하위의 모든 엔드포인트를 관리하며,
// 작업 엔진(engine.Engine)을 제어하는 작업 디스패치 API를 제공합니다.
//
// 주요 엔드포인트:
//   - POST /api/v1/tasks/:type         - 작업 디스패치
//   - POST /api/v1/tasks/:id/stop      - 작업 중지 요청
//   - POST /api/v1/tasks/:id/terminate - 작업 강제 종료 요청
//   - POST /api/v1/tasks/stop-all      - 전체 작업 중지 요청
//   - GET  /api/v1/status              - 작업 엔진 상태 조회
//
// 모든 엔드포인트는 애플리케이션 인증(app_key)을 요구하며,
// 인증 미들웨어를 통해 요청을 검증합니다.
package v1

import (
	"github.com/darkkaiser/task-engine/internal/service/api/auth"
	"github.com/darkkaiser/task-engine/internal/service/api/middleware"
	"github.com/darkkaiser/task-engine/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 설정합니다.
//
// 이 함수는 /api/v1 그룹을 생성하고, 인증 미들웨어를 적용한 후
// 작업 디스패치/제어 엔드포인트를 등록합니다.
//
// Parameters:
//   - e: Echo 서버 인스턴스
//   - h: 작업 디스패치 요청을 처리하는 핸들러
//   - authenticator: 애플리케이션 인증을 담당하는 인증자
//
// 등록되는 엔드포인트:
//   - POST /api/v1/tasks/:type         - 작업 디스패치
//   - POST /api/v1/tasks/:id/stop      - 작업 중지 요청
//   - POST /api/v1/tasks/:id/terminate - 작업 강제 종료 요청
//   - POST /api/v1/tasks/stop-all      - 전체 작업 중지 요청
//   - GET  /api/v1/status              - 작업 엔진 상태 조회
//
// 미들웨어 적용:
//   - 모든 엔드포인트: RequireAuthentication (인증)
//   - 디스패치 엔드포인트: ValidateContentType (JSON 검증)
func RegisterRoutes(e *echo.Echo, h *handler.Handler, authenticator *auth.Authenticator) {
	// 1. API v1 그룹 생성 (/api/v1 prefix)
	v1Group := e.Group("/api/v1")

	// 2. 인증 미들웨어 생성 (app_key 검증)
	authMiddleware := middleware.RequireAuthentication(authenticator)
	jsonContentType := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	// 3. 작업 디스패치 (타입별 1건 실행 요청)
	v1Group.POST("/tasks/:type", h.DispatchTaskHandler, authMiddleware, jsonContentType)

	// 4. 작업 제어 (중지, 강제 종료, 전체 중지)
	//    stop-all은 정적 경로이므로 Echo 라우터에서 :type 파라미터 라우트보다 우선 매칭된다.
	v1Group.POST("/tasks/stop-all", h.StopAllTasksHandler, authMiddleware)
	v1Group.POST("/tasks/:id/stop", h.StopTaskHandler, authMiddleware)
	v1Group.POST("/tasks/:id/terminate", h.TerminateTaskHandler, authMiddleware)

	// 5. 작업 엔진 상태 조회
	v1Group.GET("/status", h.EngineStatusHandler, authMiddleware)
}
