//Package sample is an example handler module. Copy it to implement a new namespace
package sample

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mnikita/scenario-worker/pkg/catalog"
	"github.com/mnikita/scenario-worker/pkg/common"
	"github.com/mnikita/scenario-worker/pkg/log"
)

const Namespace = "sample"

const (
	Simple           = "simple"
	Double           = "double"
	ReportingTask    = "reporting_task"
	ErrorPlaceholder = "error_placeholder"
	ZeroDivision     = "zero_division"
)

const baseType = "String"

//SleepStep is the pause between two progress reports of reporting_task
var SleepStep = time.Second

//Register adds every handler of the module to registry
func Register(registry *common.Registry) error {
	handlers := map[string]common.HandlerFunc{
		Simple:           simple,
		Double:           double,
		ReportingTask:    reportingTask,
		ErrorPlaceholder: errorPlaceholder,
		ZeroDivision:     zeroDivision,
	}

	for name, handler := range handlers {
		if err := registry.Register(name, handler); err != nil {
			return err
		}
	}

	return nil
}

//simple echoes its input argument
func simple(_ context.Context, _ common.Notifier, inputs common.Values) (common.Values, error) {
	arg, err := inputs.String("arg")

	if err != nil {
		return nil, err
	}

	log.Logger().Debugf("[%s] simple: arg=%s", Namespace, arg)

	return common.Values{"msg": fmt.Sprintf("The argument received was \"%s\".", arg)}, nil
}

func double(_ context.Context, notifier common.Notifier, inputs common.Values) (common.Values, error) {
	strIn, err := inputs.String("str_in")

	if err != nil {
		return nil, err
	}

	nbrIn, err := inputs.String("nbr_in")

	if err != nil {
		return nil, err
	}

	log.Logger().Debugf("[%s] double: str_in=%s, nbr_in=%s", Namespace, strIn, nbrIn)

	n, err := strconv.Atoi(nbrIn)

	if err != nil {
		notifier.Notify(common.Error, fmt.Sprintf("Incorrect value '%s' for nbr_in, should be integer", nbrIn))

		return common.Values{}, nil
	}

	return common.Values{"str_out": strIn + strIn, "nbr_out": strconv.Itoa(2 * n)}, nil
}

//reportingTask sleeps n steps and reports its progress after each one
func reportingTask(ctx context.Context, notifier common.Notifier, inputs common.Values) (common.Values, error) {
	param, err := inputs.String("param")

	if err != nil {
		return nil, err
	}

	n, err := inputs.Int("n")

	if err != nil {
		nText, _ := inputs.String("n")

		notifier.Notify(common.Error, fmt.Sprintf("Incorrect value \"%s\" for n, should be integer", nText))

		return common.Values{}, nil
	}

	notifier.NotifyProgress(fmt.Sprintf("Input \"%s\": going to sleep for %d seconds.", param, n), 0)

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(SleepStep):
		}

		notifier.NotifyProgress(strconv.Itoa(i+1), float64(i+1)/float64(n))
	}

	notifier.Notify(common.InProgress, "Waking up.")

	return common.Values{"result": fmt.Sprintf("Input \"%s\", result is ok", param)}, nil
}

func errorPlaceholder(_ context.Context, notifier common.Notifier, _ common.Values) (common.Values, error) {
	notifier.Notify(common.Error, "Task \"error_placeholder\" reports a fatal error.")

	return common.Values{}, nil
}

//zeroDivision panics with a runtime error
func zeroDivision(_ context.Context, _ common.Notifier, _ common.Values) (common.Values, error) {
	zero := 0

	return common.Values{"x": 1 / zero}, nil
}

func parameter(name string, description string) *catalog.ParameterDefinition {
	return &catalog.ParameterDefinition{Name: name, BaseType: baseType, Description: description}
}

//Definitions returns the catalog advertised for the sample namespace
func Definitions() []*catalog.TaskDefinition {
	return []*catalog.TaskDefinition{
		{
			Namespace:   Namespace,
			Name:        Simple,
			DisplayName: "Single argument echoing task",
			Inputs:      []*catalog.ParameterDefinition{parameter("arg", "Some input data")},
			Outputs:     []*catalog.ParameterDefinition{parameter("msg", "Text output")},
		},
		{
			Namespace:   Namespace,
			Name:        Double,
			DisplayName: "Immediate processing task",
			Inputs: []*catalog.ParameterDefinition{
				{Name: "str_in", BaseType: baseType, DefaultValue: "xyz (default)", Description: "Text argument"},
				{Name: "nbr_in", BaseType: baseType, DefaultValue: "123", Description: "Numeric argument"},
			},
			Outputs: []*catalog.ParameterDefinition{
				parameter("str_out", "Text output"),
				parameter("nbr_out", "Numeric result"),
			},
		},
		{
			Namespace:   Namespace,
			Name:        ReportingTask,
			DisplayName: "Sleep N seconds",
			Inputs: []*catalog.ParameterDefinition{
				parameter("n", "Number of seconds to sleep"),
				parameter("param", "Free-form text parameter"),
			},
			Outputs: []*catalog.ParameterDefinition{parameter("result", "Resulting value")},
		},
		{
			Namespace:   Namespace,
			Name:        ErrorPlaceholder,
			DisplayName: "Send an error status",
		},
		{
			Namespace:   Namespace,
			Name:        ZeroDivision,
			DisplayName: "Force a runtime panic",
		},
	}
}
