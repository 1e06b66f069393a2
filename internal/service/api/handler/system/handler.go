// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 인증이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/task-engine/internal/pkg/version"
	"github.com/darkkaiser/task-engine/internal/service/api/constants"
	"github.com/darkkaiser/task-engine/internal/service/api/model/system"
	applog "github.com/darkkaiser/task-engine/pkg/log"
	"github.com/labstack/echo/v4"
)

// EngineStatus는 헬스체크가 조회하는 engine.Engine의 최소 부분집합입니다.
// 실제 구현체는 *engine.Engine이며, 여기서는 테스트 용이성을 위해 구조적 인터페이스로 받습니다.
type EngineStatus interface {
	IsIdle() bool
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	engineStatus EngineStatus

	buildInfo version.Info

	serverStartTime time.Time
}

// New Handler 인스턴스를 생성합니다.
func New(engineStatus EngineStatus, buildInfo version.Info) *Handler {
	if engineStatus == nil {
		panic(constants.PanicMsgHealthCheckerRequired)
	}

	return &Handler{
		engineStatus: engineStatus,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 작업 엔진의 상태를 확인합니다.
// @Description 인증 없이 호출 가능하며, 모니터링 시스템에서 사용됩니다.
// @Description
// @Description 응답 필드:
// @Description - status: 전체 서버 상태 (healthy, unhealthy)
// @Description - uptime: 서버 가동 시간(초)
// @Description - dependencies: 외부 의존성별 상태 (engine 등)
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	uptime := int64(time.Since(h.serverStartTime).Seconds())

	deps := map[string]system.DependencyStatus{
		constants.DependencyEngine: {
			Status:  constants.HealthStatusHealthy,
			Message: h.engineDependencyMessage(),
		},
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       constants.HealthStatusHealthy,
		Uptime:       uptime,
		Dependencies: deps,
	})
}

func (h *Handler) engineDependencyMessage() string {
	if h.engineStatus.IsIdle() {
		return "실행 중인 작업 없음"
	}
	return "작업 실행 중"
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Description 디버깅 및 배포 버전 확인에 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
	})
}
