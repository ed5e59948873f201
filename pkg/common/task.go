// Package common provides primitives for task registration and the data exchanged with the Scenario server
package common

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mnikita/scenario-worker/pkg/log"
)

//Status is the state carried by a TaskStatus
type Status string

const (
	InProgress Status = "InProgress"
	Error      Status = "Error"
	Completed  Status = "Completed"
)

//Reserved suffixes of inputData keys carrying type hints
const (
	TypeSuffix    = "#type"
	SubtypeSuffix = "#subtype"
)

//IsTerminal reports whether no further status is expected after s
func (s Status) IsTerminal() bool {
	return s == Error || s == Completed
}

//Values maps parameter names to values
type Values map[string]interface{}

//InstanceId is the opaque task instance identifier. The server may encode it
//as a JSON string or a JSON number
type InstanceId string

//TaskInstance is one unit of work dequeued from the remote queue
type TaskInstance struct {
	Id        InstanceId `json:"id"`
	Namespace string     `json:"catalogTaskDefinitionNamespace"`
	Name      string     `json:"catalogTaskDefinitionName"`
	InputData Values     `json:"inputData"`
}

//TaskStatus is a point-in-time report for one task instance
type TaskStatus struct {
	TaskInstanceId     InstanceId `json:"taskInstanceId"`
	Status             Status     `json:"status"`
	Message            string     `json:"message"`
	OutputValues       Values     `json:"outputValues"`
	ProgressPercentage *float64   `json:"progressPercentage,omitempty"`
}

//Notifier is handed to task handlers to report progress or an explicit error
type Notifier interface {
	Notify(status Status, message string)
	NotifyOutputs(status Status, message string, outputs Values)
	NotifyProgress(message string, progress float64)

	//IsError reports whether an Error status was sent through this notifier
	IsError() bool
}

//HandlerFunc implements one named task
type HandlerFunc func(ctx context.Context, notifier Notifier, inputs Values) (Values, error)

func (id *InstanceId) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var s string

		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*id = InstanceId(s)

		return nil
	}

	var n json.Number

	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	*id = InstanceId(n.String())

	return nil
}

func (id InstanceId) String() string {
	return string(id)
}

//CleanInputs returns a copy of inputs without the reserved type hint keys
func CleanInputs(inputs Values) Values {
	cleaned := make(Values, len(inputs))

	for k, v := range inputs {
		if strings.HasSuffix(k, TypeSuffix) || strings.HasSuffix(k, SubtypeSuffix) {
			continue
		}

		cleaned[k] = v
	}

	return cleaned
}

//String returns the named input as a string. Numbers and booleans are formatted
func (v Values) String(name string) (string, error) {
	value, ok := v[name]

	if !ok || value == nil {
		return "", log.MissingInputError(name)
	}

	switch t := value.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool, int, int64:
		return fmt.Sprint(t), nil
	}

	return "", log.InvalidInputError(name, fmt.Sprintf("unsupported type %T", value))
}

//Int returns the named input as an integer, parsing strings when needed
func (v Values) Int(name string) (int, error) {
	value, ok := v[name]

	if !ok || value == nil {
		return 0, log.MissingInputError(name)
	}

	switch t := value.(type) {
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case float64:
		if t != float64(int(t)) {
			return 0, log.InvalidInputError(name, fmt.Sprintf("%v is not an integer", t))
		}

		return int(t), nil
	case json.Number:
		n, err := t.Int64()

		if err != nil {
			return 0, log.InvalidInputError(name, err.Error())
		}

		return int(n), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))

		if err != nil {
			return 0, log.InvalidInputError(name, fmt.Sprintf("%q is not an integer", t))
		}

		return n, nil
	}

	return 0, log.InvalidInputError(name, fmt.Sprintf("unsupported type %T", value))
}
