package connector

import (
	"context"
	"math"

	"github.com/mnikita/scenario-worker/pkg/common"
	"github.com/mnikita/scenario-worker/pkg/log"
)

//Notification is the per task instance channel implementing common.Notifier.
//It is used by a single execution and is not safe for concurrent use
type Notification struct {
	ctx            context.Context
	taskInstanceId common.InstanceId
	reporter       *Connector

	isError    bool
	terminated bool
}

func (n *Notification) Notify(status common.Status, message string) {
	n.send(&common.TaskStatus{TaskInstanceId: n.taskInstanceId, Status: status, Message: message})
}

func (n *Notification) NotifyOutputs(status common.Status, message string, outputs common.Values) {
	n.send(&common.TaskStatus{TaskInstanceId: n.taskInstanceId, Status: status, Message: message,
		OutputValues: outputs})
}

//NotifyProgress reports an InProgress status with a completion fraction in [0,1].
//NaN is reported as 0
func (n *Notification) NotifyProgress(message string, progress float64) {
	clamped := progress

	if math.IsNaN(clamped) || clamped < 0 {
		clamped = 0
	} else if clamped > 1 {
		clamped = 1
	}

	if clamped != progress {
		log.Logger().TaskProgressClamped(n.taskInstanceId.String(), progress, clamped)
	}

	n.send(&common.TaskStatus{TaskInstanceId: n.taskInstanceId, Status: common.InProgress, Message: message,
		ProgressPercentage: &clamped})
}

//IsError reports whether an Error status was sent. The flag is never reset
func (n *Notification) IsError() bool {
	return n.isError
}

//Terminated reports whether a terminal status was sent through this channel
func (n *Notification) Terminated() bool {
	return n.terminated
}

func (n *Notification) send(status *common.TaskStatus) {
	if n.terminated && status.Status.IsTerminal() {
		log.Logger().TaskTerminalIgnored(n.taskInstanceId.String(), string(status.Status))

		return
	}

	if status.Status == common.Error {
		n.isError = true
	}

	if status.Status.IsTerminal() {
		n.terminated = true
	}

	n.reporter.Report(n.ctx, status)
}
