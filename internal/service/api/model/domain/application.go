// Package domain API 서비스의 핵심 도메인 모델을 정의합니다.
//
// 이 패키지는 config 패키지의 설정 구조체와는 별도로,
// 런타임에서 사용되는 도메인 엔티티를 제공합니다.
package domain

// Application 작업 디스패치 API를 사용하는 클라이언트 애플리케이션을 나타내는 도메인 엔티티입니다.
//
// 인증(Authenticator)이 config.ApplicationConfig로부터 이 구조체를 만들어
// Context에 저장하고, 이후 핸들러는 Context를 통해서만 이 값을 조회합니다.
//
// 사용 예시:
//
//	// 인증 미들웨어에서 Context에 저장
//	auth.SetApplication(c, app)
//
//	// 핸들러에서 사용
//	app := auth.MustGetApplication(c)
type Application struct {
	ID                string // 애플리케이션 식별자 (인증 키)
	Title             string // 애플리케이션 이름
	Description       string // 애플리케이션 설명
	AppKey            string // 인증에 사용되는 App Key
	DefaultNotifierID string // 애플리케이션과 연관된 기본 알림 채널 ID (텔레그램 등)
}
