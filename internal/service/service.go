package service

import (
	"context"
	"sync"
)

// Service는 독립적인 생명주기를 가지고 고루틴에서 실행되는 서비스 컴포넌트입니다.
//
// Start는 즉시 반환되며, 실제 작업은 별도의 고루틴에서 수행됩니다. 서비스는
// serviceStopCtx의 취소를 종료 신호로 사용하며, 종료가 완료되면 serviceStopWG.Done()을
// 호출합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
