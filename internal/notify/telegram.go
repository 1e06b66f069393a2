// Package notify는 engine.Observer를 구현하여 엔진의 작업 생명주기 이벤트를
// 텔레그램으로 전달하는 알림기를 제공합니다.
package notify

import (
	"fmt"
	"time"

	"github.com/darkkaiser/task-engine/internal/engine"
	apperrors "github.com/darkkaiser/task-engine/internal/pkg/errors"
	applog "github.com/darkkaiser/task-engine/pkg/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// componentTelegram 로깅용 컴포넌트 이름입니다.
const componentTelegram = "notify.telegram"

// queueCapacity engine의 직렬화 루프를 절대 블로킹하지 않기 위한 발송 대기열의 크기입니다.
// OnStarted/OnFinished/OnTerminated는 이 대기열이 가득 찼을 때 메시지를 버리고 즉시 반환합니다.
const queueCapacity = 256

// drainTimeout Close가 대기열에 남은 메시지를 최대한 발송하기 위해 기다리는 시간입니다.
const drainTimeout = 10 * time.Second

// TelegramObserver는 engine.Observer를 구현하며, 작업 시작/종료/강제 종료 이벤트를
// 사람이 읽을 수 있는 메시지로 변환하여 텔레그램 채팅방으로 전달합니다.
//
// engine.Observer의 세 메서드는 모두 Engine의 직렬화 루프 고루틴에서 동기적으로
// 호출되므로(events.go 참조), 실제 텔레그램 API 호출은 별도의 워커 고루틴으로
// 넘기고 여기서는 채널에 넣기만 한다.
type TelegramObserver struct {
	bot    *tgbotapi.BotAPI
	chatID int64

	jobs chan string
	done chan struct{}
}

// NewTelegramObserver는 botToken으로 텔레그램 Bot API 클라이언트를 생성하고,
// chatID로 향하는 메시지를 전달하는 TelegramObserver를 시작합니다.
func NewTelegramObserver(botToken string, chatID int64) (*TelegramObserver, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "텔레그램 Bot API 초기화에 실패했습니다")
	}

	o := &TelegramObserver{
		bot:    bot,
		chatID: chatID,
		jobs:   make(chan string, queueCapacity),
		done:   make(chan struct{}),
	}

	go o.run()

	return o, nil
}

// Close는 발송 워커를 정지시킨다. drainTimeout 동안 대기열에 남은 메시지를
// 최대한 발송한 뒤, 아직 남은 메시지는 버린다.
func (o *TelegramObserver) Close() {
	close(o.jobs)
	select {
	case <-o.done:
	case <-time.After(drainTimeout):
		applog.WithComponent(componentTelegram).Warn("종료 대기 시간 초과: 대기열에 남은 메시지를 전송하지 못했습니다")
	}
}

func (o *TelegramObserver) run() {
	defer close(o.done)
	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(componentTelegram, applog.Fields{"panic": r}).Error("발송 워커에서 panic이 발생했습니다")
		}
	}()

	for text := range o.jobs {
		o.send(text)
	}
}

func (o *TelegramObserver) send(text string) {
	msg := tgbotapi.NewMessage(o.chatID, text)
	if _, err := o.bot.Send(msg); err != nil {
		applog.WithComponentAndFields(componentTelegram, applog.Fields{"error": err}).Error("텔레그램 메시지 발송에 실패했습니다")
	}
}

// enqueue는 text를 발송 대기열에 넣는다. 대기열이 가득 찬 경우, Engine의
// 직렬화 루프를 블로킹하지 않도록 즉시 포기하고 경고를 남긴다.
func (o *TelegramObserver) enqueue(text string) {
	select {
	case o.jobs <- text:
	default:
		applog.WithComponent(componentTelegram).Warn("발송 대기열이 가득 차서 메시지를 버렸습니다")
	}
}

// OnStarted는 engine.Observer를 구현한다.
func (o *TelegramObserver) OnStarted(id int64, taskType int, args []engine.Box) {
	o.enqueue(fmt.Sprintf("▶️ 작업 시작\ntask_id=%d type=%d args=%d개", id, taskType, len(args)))
}

// OnFinished는 engine.Observer를 구현한다.
func (o *TelegramObserver) OnFinished(id int64, taskType int, args []engine.Box, result engine.Box) {
	o.enqueue(fmt.Sprintf("✅ 작업 완료\ntask_id=%d type=%d result=%s", id, taskType, result.String()))
}

// OnTerminated는 engine.Observer를 구현한다.
func (o *TelegramObserver) OnTerminated(id int64, taskType int, args []engine.Box) {
	o.enqueue(fmt.Sprintf("⏹️ 작업 강제 종료\ntask_id=%d type=%d", id, taskType))
}
