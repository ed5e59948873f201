package common

import (
	"context"

	"github.com/mnikita/scenario-worker/pkg/log"
)

//HandlerExecutionError wraps any failure raised from handler code
type HandlerExecutionError struct {
	TaskName string
	Err      error
}

func (e *HandlerExecutionError) Error() string {
	return e.TaskName + ": " + e.Err.Error()
}

func (e *HandlerExecutionError) Unwrap() error {
	return e.Err
}

//Result is the outcome of one handler invocation
type Result struct {
	Outputs Values
	Err     error
}

//Failed reports whether the handler returned an error or panicked
func (r *Result) Failed() bool {
	return r.Err != nil
}

//Invoke calls handler and turns returned errors and panics into a HandlerExecutionError
func Invoke(ctx context.Context, taskName string, handler HandlerFunc,
	notifier Notifier, inputs Values) (result *Result) {
	result = &Result{}

	defer func() {
		if r := recover(); r != nil {
			result.Outputs = nil
			result.Err = &HandlerExecutionError{TaskName: taskName,
				Err: log.HandlerPanicError(taskName, r)}
		}
	}()

	outputs, err := handler(ctx, notifier, inputs)

	if err != nil {
		result.Err = &HandlerExecutionError{TaskName: taskName, Err: err}

		return result
	}

	result.Outputs = outputs

	return result
}
