package mocks

import (
	"context"
	"errors"

	"github.com/mnikita/scenario-worker/pkg/common"
)

const (
	Short = iota
	SignalError
	Failing
	ZeroDivision
	Progress
	SelfComplete
)

var Tasks = []string{"short", "signal_error", "failing", "zero_division", "progress", "self_complete"}

var ErrorTaskErr = errors.New("ErrorTask test error")

var ShortTaskResult = common.Values{"x": 1}

func HandleShortTask(_ context.Context, _ common.Notifier, _ common.Values) (common.Values, error) {
	return ShortTaskResult, nil
}

func HandleSignalErrorTask(_ context.Context, n common.Notifier, _ common.Values) (common.Values, error) {
	n.Notify(common.Error, "boom")

	return ShortTaskResult, nil
}

func HandleFailingTask(_ context.Context, _ common.Notifier, _ common.Values) (common.Values, error) {
	return nil, ErrorTaskErr
}

func HandleZeroDivisionTask(_ context.Context, _ common.Notifier, inputs common.Values) (common.Values, error) {
	zero := len(inputs) * 0

	return common.Values{"x": 1 / zero}, nil
}

func HandleProgressTask(_ context.Context, n common.Notifier, _ common.Values) (common.Values, error) {
	n.NotifyProgress("0", 0)
	n.NotifyProgress("1", 0.5)
	n.NotifyProgress("2", 1)

	return common.Values{"result": "ok"}, nil
}

func HandleSelfCompleteTask(_ context.Context, n common.Notifier, _ common.Values) (common.Values, error) {
	n.NotifyOutputs(common.Completed, "done", common.Values{"y": 2})

	return ShortTaskResult, nil
}

func RegisterTasks(registry *common.Registry) error {
	handlers := []common.HandlerFunc{HandleShortTask, HandleSignalErrorTask, HandleFailingTask,
		HandleZeroDivisionTask, HandleProgressTask, HandleSelfCompleteTask}

	for i, handler := range handlers {
		if err := registry.Register(Tasks[i], handler); err != nil {
			return err
		}
	}

	return nil
}
