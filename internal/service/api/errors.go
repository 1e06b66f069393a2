package api

import (
	apperrors "github.com/darkkaiser/task-engine/internal/pkg/errors"
)

var (
	// ErrTaskEngineNotInitialized 서비스 시작 시 핵심 의존성 객체인 TaskEngine이 올바르게 초기화되지 않았을 때 반환하는 에러입니다.
	ErrTaskEngineNotInitialized = apperrors.New(apperrors.Internal, "TaskEngine 객체가 초기화되지 않았습니다")
)
