package handler

import (
	"fmt"

	"github.com/darkkaiser/task-engine/internal/service/api/constants"
	"github.com/darkkaiser/task-engine/internal/service/api/httputil"
)

// NewErrAppIDMismatch 요청 본문(Body)의 Application ID와 인증 정보(Header/Query)가 불일치할 때 발생하는 보안 에러를 생성합니다.
func NewErrAppIDMismatch(reqAppID, authAppID string) error {
	return httputil.NewBadRequestError(fmt.Sprintf(constants.ErrMsgBadRequestAppIdMismatch, reqAppID, authAppID))
}

// NewErrInvalidBody 요청 본문(Body)의 데이터 형식이 올바르지 않거나(예: 잘못된 JSON), 파싱에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
}

// NewErrValidationFailed 요청 데이터의 필수 값 누락, 형식 위반 등 유효성 검증(Validation)에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// NewErrServiceStopped 서버 종료(Graceful Shutdown) 등으로 인해 서비스가 잠시 중지되었을 때 발생하는 에러를 생성합니다.
func NewErrServiceStopped() error {
	return httputil.NewServiceUnavailableError(constants.ErrMsgServiceUnavailable)
}

// NewErrServiceOverloaded 요청 대기열(Queue)이 가득 찼거나, 시스템 부하가 심해 요청을 처리할 수 없을 때 발생하는 에러를 생성합니다.
func NewErrServiceOverloaded() error {
	return httputil.NewServiceUnavailableError(constants.ErrMsgServiceUnavailableOverloaded)
}

// NewErrServiceInterrupted 요청 처리 중 예기치 않은 시스템 오류나 인터럽트(Context Cancelled)가 발생했을 때 발생하는 에러를 생성합니다.
func NewErrServiceInterrupted() error {
	return httputil.NewInternalServerError(constants.ErrMsgInternalServerInterrupted)
}

// NewErrNotifierNotFound 지정된 알림 채널(Notifier)을 찾을 수 없거나, 존재하지 않을 때 발생하는 에러를 생성합니다.
func NewErrNotifierNotFound() error {
	return httputil.NewNotFoundError(constants.ErrMsgNotFoundNotifier)
}

// NewErrInvalidTaskType 경로 파라미터로 전달된 작업 타입이 정수로 파싱되지 않을 때 발생하는 에러를 생성합니다.
func NewErrInvalidTaskType(raw string) error {
	return httputil.NewBadRequestError(fmt.Sprintf(constants.ErrMsgBadRequestInvalidTaskType, raw))
}

// NewErrInvalidTaskID 경로 파라미터로 전달된 작업 ID가 정수로 파싱되지 않을 때 발생하는 에러를 생성합니다.
func NewErrInvalidTaskID(raw string) error {
	return httputil.NewBadRequestError(fmt.Sprintf(constants.ErrMsgBadRequestInvalidTaskID, raw))
}

// NewErrInvalidTaskArgs 요청 본문의 args 배열 원소를 engine.Box로 변환하지 못했을 때 발생하는 에러를 생성합니다.
func NewErrInvalidTaskArgs(index int, reason string) error {
	return httputil.NewBadRequestError(fmt.Sprintf(constants.ErrMsgBadRequestInvalidTaskArgs, index, reason))
}

// NewErrTaskTypeNotFound 등록되지 않은 작업 타입을 디스패치하려고 시도했을 때 발생하는 에러를 생성합니다.
func NewErrTaskTypeNotFound(taskType int) error {
	return httputil.NewNotFoundError(fmt.Sprintf(constants.ErrMsgNotFoundTaskType, taskType))
}
