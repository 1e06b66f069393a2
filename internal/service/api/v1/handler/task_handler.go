package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/darkkaiser/task-engine/internal/engine"
	apperrors "github.com/darkkaiser/task-engine/internal/pkg/errors"
	"github.com/darkkaiser/task-engine/internal/service/api/constants"
	"github.com/darkkaiser/task-engine/internal/service/api/httputil"
	"github.com/darkkaiser/task-engine/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"
)

// DispatchTaskHandler godoc
// @Summary 작업 디스패치
// @Description 등록된 작업 타입 하나를 실행 큐에 넣습니다. 요청 본문의 args는
// @Description 순서가 있는 자유 형식 JSON 배열이며, 각 원소는 gjson으로 값을 추출한 뒤
// @Description engine.Box로 변환되어 등록된 작업의 인자로 positional하게 전달됩니다.
// @Description
// @Description ## 사용 예시
// @Description ```bash
// @Description curl -X POST "http://localhost:2443/api/v1/tasks/1" \
// @Description   -H "Content-Type: application/json" \
// @Description   -d '{"args":["https://example.com"]}'
// @Description ```
// @Tags Task
// @Accept json
// @Produce json
// @Param type path int true "작업 타입"
// @Param body body object false "작업 인자 (args 배열)"
// @Success 200 {object} response.TaskDispatchedResponse "디스패치된 작업의 ID"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (타입 파싱 실패, 인자 변환 실패 등)"
// @Failure 404 {object} response.ErrorResponse "등록되지 않은 작업 타입"
// @Router /api/v1/tasks/{type} [post]
func (h *Handler) DispatchTaskHandler(c echo.Context) error {
	taskType, err := strconv.Atoi(c.Param("type"))
	if err != nil {
		return NewErrInvalidTaskType(c.Param("type"))
	}

	body, err := readBody(c)
	if err != nil || !gjson.ValidBytes(body) {
		return NewErrInvalidBody()
	}

	args, err := parseTaskArgs(body)
	if err != nil {
		return err
	}

	id, err := h.engine.AddTask(taskType, args...)
	if err != nil {
		if apperrors.Is(err, apperrors.NotRegistered) {
			return NewErrTaskTypeNotFound(taskType)
		}
		return NewErrValidationFailed(err.Error())
	}

	return c.JSON(http.StatusOK, response.TaskDispatchedResponse{
		ResultCode: 0,
		Message:    constants.MsgSuccess,
		TaskID:     id,
	})
}

// StopTaskHandler godoc
// @Summary 작업 중지 요청
// @Description 지정된 ID의 작업에 정상 종료(Stop)를 요청합니다. Fire-and-forget 방식으로
// @Description 즉시 응답하며, 실제 중지 완료 여부는 보장하지 않습니다.
// @Tags Task
// @Produce json
// @Param id path int true "작업 ID"
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 400 {object} response.ErrorResponse "ID 파싱 실패"
// @Router /api/v1/tasks/{id}/stop [post]
func (h *Handler) StopTaskHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewErrInvalidTaskID(c.Param("id"))
	}

	h.engine.StopByID(id)

	return httputil.Success(c)
}

// TerminateTaskHandler godoc
// @Summary 작업 강제 종료 요청
// @Description 지정된 ID의 작업에 강제 종료(Terminate)를 요청합니다. Fire-and-forget 방식으로
// @Description 즉시 응답합니다.
// @Tags Task
// @Produce json
// @Param id path int true "작업 ID"
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 400 {object} response.ErrorResponse "ID 파싱 실패"
// @Router /api/v1/tasks/{id}/terminate [post]
func (h *Handler) TerminateTaskHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewErrInvalidTaskID(c.Param("id"))
	}

	h.engine.TerminateByID(id)

	return httputil.Success(c)
}

// StopAllTasksHandler godoc
// @Summary 전체 작업 중지 요청
// @Description 현재 실행 중인 모든 작업에 정상 종료(Stop)를 요청합니다.
// @Tags Task
// @Produce json
// @Success 200 {object} response.SuccessResponse "성공"
// @Router /api/v1/tasks/stop-all [post]
func (h *Handler) StopAllTasksHandler(c echo.Context) error {
	h.engine.StopAll()

	return httputil.Success(c)
}

// EngineStatusHandler godoc
// @Summary 작업 엔진 상태 조회
// @Description 작업 엔진이 유휴 상태(실행 중인 작업 없음)인지 조회합니다.
// @Tags Task
// @Produce json
// @Success 200 {object} response.EngineStatusResponse "엔진 상태"
// @Router /api/v1/status [get]
func (h *Handler) EngineStatusHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, response.EngineStatusResponse{
		Idle: h.engine.IsIdle(),
	})
}

// readBody는 요청 본문을 바이트 슬라이스로 읽는다. 본문이 비어있으면 빈 JSON 객체로 취급한다.
func readBody(c echo.Context) ([]byte, error) {
	req := c.Request()
	if req.Body == nil {
		return []byte("{}"), nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return []byte("{}"), nil
	}

	return body, nil
}

// parseTaskArgs는 요청 본문의 "args" 배열을 gjson으로 순회하며 각 원소를
// engine.Box로 변환한다. args가 없거나 빈 배열이면 인자 없이 디스패치한다.
func parseTaskArgs(body []byte) ([]engine.Box, error) {
	result := gjson.GetBytes(body, "args")
	if !result.Exists() || !result.IsArray() {
		return nil, nil
	}

	elements := result.Array()
	args := make([]engine.Box, 0, len(elements))
	for i, elem := range elements {
		box, err := engine.Wrap(elem.Value())
		if err != nil {
			return nil, NewErrInvalidTaskArgs(i, err.Error())
		}
		args = append(args, box)
	}

	return args, nil
}
