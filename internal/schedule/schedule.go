// Package schedule은 robfig/cron/v3 기반의 Cron 트리거를 engine.Engine.AddTask
// 호출로 변환하는 디스패처를 제공합니다.
package schedule

import (
	"fmt"

	"github.com/darkkaiser/task-engine/internal/config"
	"github.com/darkkaiser/task-engine/internal/engine"
	apperrors "github.com/darkkaiser/task-engine/internal/pkg/errors"
	"github.com/darkkaiser/task-engine/pkg/cronx"
	applog "github.com/darkkaiser/task-engine/pkg/log"
	"github.com/darkkaiser/task-engine/pkg/maputil"
	"github.com/robfig/cron/v3"
)

// componentSchedule 로깅용 컴포넌트 이름입니다.
const componentSchedule = "schedule"

// Dispatcher는 등록된 Cron 스케줄이 발동될 때마다 engine.Engine.AddTask를 호출합니다.
// 작업 자체의 실행, 재시도, 동시성 제어는 전부 engine.Engine이 담당하므로,
// Dispatcher는 "언제 AddTask를 부를지"만 책임진다.
type Dispatcher struct {
	cron   *cron.Cron
	engine *engine.Engine
}

// New는 초 단위를 포함하는 6필드 Cron 파서를 사용하는 빈 Dispatcher를 생성합니다.
func New(eng *engine.Engine) *Dispatcher {
	return &Dispatcher{
		cron:   cron.New(cron.WithParser(cronx.StandardParser())),
		engine: eng,
	}
}

// AddSchedule은 spec이 발동될 때마다 engine.AddTask(taskType, args...)를 호출하는
// Cron 엔트리를 등록합니다. spec이 프로젝트 표준(6필드)을 따르지 않으면 등록 전에 거부합니다.
func (d *Dispatcher) AddSchedule(spec string, taskType int, args ...engine.Box) error {
	if err := cronx.Validate(spec); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("task type %d의 스케줄(%s)이 유효하지 않습니다", taskType, spec))
	}

	_, err := d.cron.AddFunc(spec, func() {
		id, err := d.engine.AddTask(taskType, args...)
		if err != nil {
			applog.WithComponentAndFields(componentSchedule, applog.Fields{
				"task_type": taskType,
				"schedule":  spec,
				"error":     err,
			}).Error("스케줄된 작업 등록에 실패했습니다")
			return
		}

		applog.WithComponentAndFields(componentSchedule, applog.Fields{
			"task_id":   id,
			"task_type": taskType,
			"schedule":  spec,
		}).Info("스케줄에 따라 작업을 등록했습니다")
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("Cron 엔트리 등록에 실패했습니다(spec=%s)", spec))
	}

	return nil
}

// LoadFromConfig는 appConfig.Tasks에 정의된, 스케줄러가 활성화된(Scheduler.Runnable)
// 모든 Command를 Dispatcher에 등록합니다. Task.Data와 Command.Data에 정의된 "args"
// 배열이 있으면 이를 디코딩하여 매 스케줄 발동 시 engine.AddTask에 그대로 전달한다.
func LoadFromConfig(d *Dispatcher, appConfig *config.AppConfig) error {
	for _, task := range appConfig.Tasks {
		for _, cmd := range task.Commands {
			if !cmd.Scheduler.Runnable {
				continue
			}

			args, err := decodeScheduleArgs(task.Data, cmd.Data)
			if err != nil {
				return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("Task['%s'] > Command['%s']의 args 데이터 디코딩에 실패했습니다", task.ID, cmd.ID))
			}

			if err := d.AddSchedule(cmd.Scheduler.TimeSpec, cmd.TaskType, args...); err != nil {
				return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("Task['%s'] > Command['%s']의 스케줄 등록에 실패했습니다", task.ID, cmd.ID))
			}
		}
	}
	return nil
}

// scheduleArgsData는 Task/Command의 Data 맵 중 "args" 키만을 추출하기 위한 디코딩 대상이다.
type scheduleArgsData struct {
	Args []interface{} `json:"args"`
}

// decodeScheduleArgs는 taskData와 cmdData를 순서대로 병합 디코딩하여(Command가 Task를 덮어씀)
// "args" 배열을 engine.Box 슬라이스로 변환한다. args가 없으면 nil을 반환해 무인자로 디스패치한다.
func decodeScheduleArgs(taskData, cmdData map[string]interface{}) ([]engine.Box, error) {
	data := &scheduleArgsData{}
	if len(taskData) > 0 {
		if err := maputil.DecodeTo(taskData, data); err != nil {
			return nil, fmt.Errorf("task data 디코딩 실패: %w", err)
		}
	}
	if len(cmdData) > 0 {
		if err := maputil.DecodeTo(cmdData, data); err != nil {
			return nil, fmt.Errorf("command data 디코딩 실패: %w", err)
		}
	}
	if len(data.Args) == 0 {
		return nil, nil
	}

	args := make([]engine.Box, 0, len(data.Args))
	for _, v := range data.Args {
		box, err := engine.Wrap(v)
		if err != nil {
			return nil, fmt.Errorf("args 원소를 engine.Box로 변환하는데 실패했습니다: %w", err)
		}
		args = append(args, box)
	}
	return args, nil
}

// Start는 등록된 모든 스케줄의 실행을 시작합니다.
func (d *Dispatcher) Start() {
	d.cron.Start()
}

// Stop은 실행 중인 스케줄을 정지시키고, 이미 실행 중인 엔트리가 끝날 때까지
// 대기한 뒤 반환합니다.
func (d *Dispatcher) Stop() {
	<-d.cron.Stop().Done()
}
