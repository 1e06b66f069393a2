package constants

import "time"

// 보안 관련 상수입니다.
const (
	// DefaultMaxBodySize 요청 본문의 최대 크기 (128KB)
	// DoS 공격 방지 및 메모리 보호를 위해 제한합니다.
	DefaultMaxBodySize = "128K"

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (10초)
	// Slowloris DoS 공격을 방어하기 위해 헤더를 매우 느리게 전송하는
	// 악의적인 클라이언트의 연결 고갈 공격을 방지합니다.
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultReadTimeout 요청 본문 전체를 읽는 최대 대기 시간 (30초)
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout 응답을 쓰는 최대 대기 시간 (30초)
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결이 유지되는 최대 유휴 시간 (120초)
	DefaultIdleTimeout = 120 * time.Second

	// DefaultRateLimitPerSecond RateLimiting 미들웨어의 기본 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst RateLimiting 미들웨어의 기본 버스트 허용량
	DefaultRateLimitBurst = 40

	// DefaultHSTSMaxAge TLS 서버에서 Strict-Transport-Security 헤더에 사용하는 기본 유효 기간 (1년)
	DefaultHSTSMaxAge = 365 * 24 * time.Hour
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	AppKeyQuery,
	"api_key",
	"password",
	"token",
	"secret",
}
