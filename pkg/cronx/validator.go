package cronx

import "fmt"

// Validate는 spec이 프로젝트 표준(6필드, 초 단위 포함)의 유효한 Cron 표현식인지 검증합니다.
// "@every 1h" 등의 Descriptor도 허용됩니다.
func Validate(spec string) error {
	if _, err := StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패: %w", err)
	}
	return nil
}
