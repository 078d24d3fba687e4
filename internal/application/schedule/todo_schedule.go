package schedule

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

type TodoScheduler struct {
	cron    *cron.Cron
	useCase todo.UseCase
}

func NewTodoScheduler(useCase todo.UseCase) *TodoScheduler {
	return &TodoScheduler{cron: cron.New(), useCase: useCase}
}

// InitTodoScheduleTasks initializes todo schedule tasks
func (scheduler *TodoScheduler) InitTodoScheduleTasks() {
	_, err := scheduler.cron.AddFunc(resource.GetString("app.todo.overdue-report.cron"), scheduler.ReportOverdueTodos)

	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
}

// ReportOverdueTodos logs how many incomplete todos are past their due date.
func (scheduler *TodoScheduler) ReportOverdueTodos() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := scheduler.useCase.CountOverdue(ctx, time.Now())
	if err != nil {
		log.Errorw(msg.GetMessage("todo.cron.overdue-failed"), "error", err)
		return
	}

	log.Infow(msg.GetMessage("todo.cron.overdue-report"), "overdue", count)
}
