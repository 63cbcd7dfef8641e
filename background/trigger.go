package background

import (
	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
)

const (
	// TaskRunAlertEngine matches accepting listings against alert
	// subscriptions and dispatches emails
	TaskRunAlertEngine = "run_alert_engine"
)

// MachineryAlertTrigger submits alert-engine runs to the task queue. It
// satisfies consensus.AlertTrigger so the report-submission path never
// waits on alert fan-out.
type MachineryAlertTrigger struct {
	taskServer *machinery.Server
}

func NewAlertTrigger(taskServer *machinery.Server) *MachineryAlertTrigger {
	return &MachineryAlertTrigger{taskServer: taskServer}
}

func (t *MachineryAlertTrigger) TriggerAlertEngine(listingID string) error {
	_, err := t.taskServer.SendTask(&tasks.Signature{
		Name: TaskRunAlertEngine,
		Args: []tasks.Arg{
			{Type: "string", Value: listingID},
		},
	})
	return err
}
