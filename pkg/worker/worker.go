//go:generate mockgen -destination=./mocks/mock_worker.go -package=mocks . EventHandler
//Package worker provides the poll, dispatch, execute and report loop
package worker

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/mnikita/scenario-worker/pkg/common"
	"github.com/mnikita/scenario-worker/pkg/connector"
	"github.com/mnikita/scenario-worker/pkg/consumer"
	"github.com/mnikita/scenario-worker/pkg/locale"
	"github.com/mnikita/scenario-worker/pkg/log"
	"github.com/mnikita/scenario-worker/pkg/util"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var WireSet = wire.NewSet(NewWorker,
	wire.Bind(new(Handler), new(*Worker)))

const tracerName = "github.com/mnikita/scenario-worker/pkg/worker"

type EventHandler interface {
	OnStartWorker()
	OnEndWorker()

	OnQueueEmpty()
	OnUnknownTask(task *common.TaskInstance)
	OnPreTask(task *common.TaskInstance)
	OnPostTask(task *common.TaskInstance, result *common.Result, elapsed time.Duration)
}

type Handler interface {
	Config() *Configuration

	Run(ctx context.Context) error
	Cycle(ctx context.Context) error
	SetEventHandler(eventHandler EventHandler)
}

//Worker runs one task instance at a time
type Worker struct {
	*Configuration

	consumerHandler  consumer.Handler
	connectorHandler connector.Handler
	registry         *common.Registry
	localizer        *locale.Localizer

	eventHandler EventHandler
	tracer       trace.Tracer
}

//Configuration stores the dispatch policy
type Configuration struct {
	//Fixed pause after every cycle, idle or not
	PollingInterval time.Duration `mapstructure:"polling_interval" toml:"polling_interval" validate:"gt=0"`

	//Report Completed for handlers that return without error
	Autocomplete bool `mapstructure:"autocomplete" toml:"autocomplete"`

	//Append the handler error to the generic Error message
	ForwardErrorDetail bool `mapstructure:"forward_error_detail" toml:"forward_error_detail"`
}

func NewConfiguration() *Configuration {
	//make default configuration
	return &Configuration{
		PollingInterval: time.Second,
		Autocomplete:    true,
	}
}

//NewWorker creates and configures Worker instance
func NewWorker(config *Configuration, consumerHandler consumer.Handler,
	connectorHandler connector.Handler, registry *common.Registry, localizer *locale.Localizer) *Worker {
	return &Worker{
		Configuration:    config,
		consumerHandler:  consumerHandler,
		connectorHandler: connectorHandler,
		registry:         registry,
		localizer:        localizer,
		tracer:           otel.Tracer(tracerName),
	}
}

func (w *Worker) Config() *Configuration {
	return w.Configuration
}

//SetEventHandler
func (w *Worker) SetEventHandler(eventHandler EventHandler) {
	w.eventHandler = eventHandler
}

//Run repeats Cycle until ctx is done. A poll failure stops the loop and is returned
func (w *Worker) Run(ctx context.Context) error {
	if w.registry == nil {
		return log.MissingRegistryError()
	}

	w.OnStartWorker()
	defer w.OnEndWorker()

	for {
		if err := w.Cycle(ctx); err != nil {
			if ctx.Err() != nil {
				log.Logger().WorkerStopping()

				return nil
			}

			return err
		}

		if !util.Sleep(ctx, w.PollingInterval) {
			log.Logger().WorkerStopping()

			return nil
		}
	}
}

//Cycle polls once and handles the task instance received, if any
func (w *Worker) Cycle(ctx context.Context) error {
	task, err := w.consumerHandler.Poll(ctx)

	if err != nil {
		return err
	}

	if task == nil {
		w.OnQueueEmpty()

		return nil
	}

	ctx, span := w.tracer.Start(ctx, "worker.dispatch",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("task.id", task.Id.String()),
			attribute.String("task.namespace", task.Namespace),
			attribute.String("task.name", task.Name)))
	defer span.End()

	handler, ok := w.registry.Resolve(task.Name)

	if !ok {
		w.OnUnknownTask(task)

		span.SetStatus(codes.Error, "unknown task")

		w.connectorHandler.Report(context.WithoutCancel(ctx), &common.TaskStatus{TaskInstanceId: task.Id,
			Status: common.Error, Message: w.localizer.UnknownTask(task.Namespace, task.Name)})

		return nil
	}

	inputs := common.CleanInputs(task.InputData)
	notification := w.connectorHandler.NewNotification(ctx, task)

	w.OnPreTask(task)

	start := time.Now()
	result := common.Invoke(ctx, task.Name, handler, notification, inputs)

	w.OnPostTask(task, result, time.Since(start))

	//the terminal status is still reported when shutdown interrupted the handler
	ctx = context.WithoutCancel(ctx)

	switch {
	case result.Failed():
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, "handler failed")

		if notification.Terminated() {
			//the handler already reported its terminal status
			return nil
		}

		message := w.localizer.HandlerFailed()

		if w.ForwardErrorDetail {
			message += ": " + result.Err.Error()
		}

		w.connectorHandler.Report(ctx, &common.TaskStatus{TaskInstanceId: task.Id, Status: common.Error,
			Message: message})
	case notification.IsError():
		span.SetStatus(codes.Error, "handler signaled error")
	case w.Autocomplete && !notification.Terminated():
		w.connectorHandler.Report(ctx, &common.TaskStatus{TaskInstanceId: task.Id, Status: common.Completed,
			OutputValues: result.Outputs})
	}

	return nil
}

func (w *Worker) OnStartWorker() {
	log.Logger().WorkerStarted(w.registry.Namespace(), w.Autocomplete)

	if !util.IsNil(w.eventHandler) {
		w.eventHandler.OnStartWorker()
	}
}

func (w *Worker) OnEndWorker() {
	log.Logger().WorkerEnded()

	if !util.IsNil(w.eventHandler) {
		w.eventHandler.OnEndWorker()
	}
}

func (w *Worker) OnQueueEmpty() {
	if !util.IsNil(w.eventHandler) {
		w.eventHandler.OnQueueEmpty()
	}
}

func (w *Worker) OnUnknownTask(task *common.TaskInstance) {
	log.Logger().TaskUnknown(task.Namespace, task.Name, task.Id.String())

	if !util.IsNil(w.eventHandler) {
		w.eventHandler.OnUnknownTask(task)
	}
}

func (w *Worker) OnPreTask(task *common.TaskInstance) {
	log.Logger().TaskPre(task.Name, task.Id.String())

	if !util.IsNil(w.eventHandler) {
		w.eventHandler.OnPreTask(task)
	}
}

func (w *Worker) OnPostTask(task *common.TaskInstance, result *common.Result, elapsed time.Duration) {
	if result.Failed() {
		log.Logger().TaskFailed(task.Name, task.Id.String(), result.Err)
	} else {
		log.Logger().TaskPost(task.Name, task.Id.String(), elapsed)
	}

	if !util.IsNil(w.eventHandler) {
		w.eventHandler.OnPostTask(task, result, elapsed)
	}
}
