package main

import (
	"context"
	"runtime"

	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/task-engine/internal/config"
	"github.com/darkkaiser/task-engine/internal/engine"
	"github.com/darkkaiser/task-engine/internal/notify"
	"github.com/darkkaiser/task-engine/internal/pkg/version"
	"github.com/darkkaiser/task-engine/internal/sampletask"
	"github.com/darkkaiser/task-engine/internal/schedule"
	"github.com/darkkaiser/task-engine/internal/service"
	"github.com/darkkaiser/task-engine/internal/service/api"
	applog "github.com/darkkaiser/task-engine/pkg/log"
	log "github.com/sirupsen/logrus"
)

// @title Task Engine API
// @version 1.0.0
// @description 작업 엔진(engine.Engine)이 관리하는 작업을 디스패치하고 제어하는 REST API입니다.
// @description
// @description 등록된 작업 타입을 HTTP로 요청하면 엔진이 그룹 배타 규칙에 따라 즉시 실행하거나
// @description 대기열에 넣으며, 작업 시작/종료/강제종료는 텔레그램으로 알려줍니다.
// @description
// @description ## 주요 기능
// @description - 작업 디스패치, 중지, 강제 종료, 전체 중지
// @description - 작업 엔진 상태(유휴 여부) 조회
// @description - Cron 스케줄에 따른 작업 자동 디스패치
// @description - 작업 생명주기 이벤트의 텔레그램 알림
// @description
// @description ## 인증 방법
// @description API 사용을 위해서는 사전에 등록된 애플리케이션 ID와 App Key가 필요합니다.
// @description 설정 파일(notify-server.json)의 notify_api.applications에 애플리케이션을 등록한 후 사용하세요.
// @description
// @description ## 인증 플로우
// @description 1. **사전 준비**: notify-server.json의 notify_api.applications에 애플리케이션 등록
// @description    - application_id, app_key 설정
// @description 2. **API 호출**: 헤더(X-App-Key) 또는 Query Parameter(app_key)로 전달
// @description    - POST /api/v1/tasks/{type}?app_key=YOUR_KEY
// @description 3. **인증 검증**: 서버에서 application_id와 app_key 확인
// @description    - 미등록 앱: 401 Unauthorized
// @description    - 잘못된 app_key: 401 Unauthorized
// @description 4. **작업 디스패치**: 인증 성공 시 작업 엔진에 작업이 등록됨
// @description    - 성공: 200 OK

// @termsOfService http://swagger.io/terms/

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT
// @license.url https://github.com/DarkKaiser/notify-server/blob/master/LICENSE

// @host api.darkkaiser.com:2443
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in query
// @name app_key
// @description Application Key for authentication

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentConfig(config.AppName)
	} else {
		logOpts = applog.NewProductionConfig(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, Version)

	// 빌드 정보 설정 (전역 싱글톤 등록)
	buildInfo := version.Info{
		Version:     Version,
		BuildDate:   BuildDate,
		BuildNumber: BuildNumber,
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
	}
	version.Set(buildInfo)

	// 빌드 정보 출력
	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 텔레그램 Observer 구성 (설정된 모든 텔레그램 Notifier가 작업 생명주기 이벤트를 수신한다)
	telegramObservers, err := buildTelegramObservers(appConfig.Notifiers.Telegrams)
	if err != nil {
		log.Fatalf("텔레그램 Observer 초기화 실패: %v", err)
	}

	// 작업 엔진을 생성하고, 텔레그램 Observer를 구독시킨다.
	observers := make([]engine.Observer, 0, len(telegramObservers))
	for _, o := range telegramObservers {
		observers = append(observers, o)
	}
	eng := engine.NewEngine(observers...)

	// 샘플 작업(웹 페이지 제목 조회)을 등록한다.
	if err := eng.Register(taskTypeWebTitle, sampletask.FetchPageTitle); err != nil {
		log.Fatalf("샘플 작업 등록 실패: %v", err)
	}

	// Cron 스케줄 디스패처를 설정 파일에 정의된 스케줄로 구성한다.
	dispatcher := schedule.New(eng)
	if err := schedule.LoadFromConfig(dispatcher, appConfig); err != nil {
		log.Fatalf("Cron 스케줄 로드 실패: %v", err)
	}
	dispatcher.Start()

	// API 서비스를 생성한다. 작업 디스패치/제어는 모두 작업 엔진으로 위임된다.
	apiService := api.NewService(appConfig, eng, buildInfo)

	// Set up cancellation context and waitgroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()
			dispatcher.Stop()
			eng.Close()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	// Handle sigterm and await termC signal
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC // Blocks here until interrupted

	// Handle shutdown
	applog.WithComponent("main").Info("Shutdown signal received")
	cancel()             // Signal cancellation to context.Context
	serviceStopWG.Wait() // Block here until are workers are done

	// Cron 스케줄이 더 이상 새 작업을 추가하지 않도록 먼저 정지한 뒤, 엔진을 닫는다.
	dispatcher.Stop()
	eng.Close()

	// 텔레그램 발송 대기열에 남은 메시지를 최대한 비운다.
	for _, o := range telegramObservers {
		o.Close()
	}
}

// buildTelegramObservers는 설정된 모든 텔레그램 Notifier마다 하나의
// notify.TelegramObserver를 생성한다.
func buildTelegramObservers(telegrams []config.TelegramConfig) ([]*notify.TelegramObserver, error) {
	observers := make([]*notify.TelegramObserver, 0, len(telegrams))
	for _, t := range telegrams {
		o, err := notify.NewTelegramObserver(t.BotToken, t.ChatID)
		if err != nil {
			return nil, fmt.Errorf("텔레그램 Notifier['%s'] 초기화 실패: %w", t.ID, err)
		}
		observers = append(observers, o)
	}
	return observers, nil
}

// 빌드 정보 변수 (Dockerfile의 ldflags로 주입됨)
var (
	Version     = "dev"     // Git 커밋 해시
	BuildDate   = "unknown" // 빌드 날짜
	BuildNumber = "0"       // 빌드 번호
)

// taskTypeWebTitle은 sampletask.FetchPageTitle이 등록되는 작업 타입 식별자이다.
// 설정 파일의 tasks[].commands[].task_type을 이 값으로 지정하면 Cron 스케줄로도
// 디스패치할 수 있다.
const taskTypeWebTitle = 1

const (
	banner = `
  _   _         _    _   __          ____
 | \ | |  ___  | |_ (_) / _| _   _  / ___|   ___  _ __ __   __  ___  _ __
 |  \| | / _ \ | __|| || |_ | | | | \___ \  / _ \| '__|\ \ / / / _ \| '__|
 | |\  || (_) || |_ | ||  _|| |_| |  ___) ||  __/| |    \ V / |  __/| |
 |_| \_| \___/  \__||_||_|   \__, | |____/  \___||_|     \_/   \___||_|
                             |___/                           %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)
