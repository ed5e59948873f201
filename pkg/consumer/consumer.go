//Package consumer polls the Scenario task queue of one namespace
package consumer

import (
	"context"

	"github.com/google/wire"
	"github.com/mnikita/scenario-worker/pkg/common"
	"github.com/mnikita/scenario-worker/pkg/connection"
	"github.com/mnikita/scenario-worker/pkg/log"
	"github.com/mnikita/scenario-worker/pkg/util"
)

var WireSet = wire.NewSet(NewConsumer,
	wire.Bind(new(Handler), new(*Consumer)))

type EventHandler interface {
	OnTaskReceived(task *common.TaskInstance)
	OnQueueEmpty()
}

type Handler interface {
	Config() *Configuration

	Poll(ctx context.Context) (*common.TaskInstance, error)
	SetEventHandler(eventHandler EventHandler)
}

//Consumer stores configuration for queue polling
type Consumer struct {
	*Configuration

	connectionHandler connection.Handler

	eventHandler EventHandler
}

//Configuration stores the polled namespace
type Configuration struct {
	//Namespace to poll. It also selects the handler module
	Namespace string `mapstructure:"namespace" toml:"namespace"`

	//Optional task name filter
	TaskName string `mapstructure:"task_name" toml:"task_name"`
}

//NewConsumer creates consumer instance with given connection
func NewConsumer(config *Configuration, connectionHandler connection.Handler) *Consumer {
	if config == nil {
		config = NewConfiguration()
	}

	return &Consumer{Configuration: config, connectionHandler: connectionHandler}
}

func NewConfiguration() *Configuration {
	return &Configuration{}
}

func (con *Consumer) Config() *Configuration {
	return con.Configuration
}

func (con *Consumer) SetEventHandler(handler EventHandler) {
	con.eventHandler = handler
}

//Poll returns the next task instance, or nil when the queue is empty.
//Transport errors are returned to the caller untouched
func (con *Consumer) Poll(ctx context.Context) (*common.TaskInstance, error) {
	if util.IsNil(con.connectionHandler) {
		return nil, log.MissingConnectionHandlerError()
	}

	log.Logger().ConsumerPoll(con.Namespace, con.TaskName)

	task, err := con.connectionHandler.Poll(ctx, con.Namespace, con.TaskName)

	if err != nil {
		return nil, err
	}

	if task == nil {
		con.OnQueueEmpty()

		return nil, nil
	}

	con.OnTaskReceived(task)

	return task, nil
}

func (con *Consumer) OnTaskReceived(task *common.TaskInstance) {
	log.Logger().TaskReceived(task.Id.String(), task.Namespace, task.Name)

	if !util.IsNil(con.eventHandler) {
		con.eventHandler.OnTaskReceived(task)
	}
}

func (con *Consumer) OnQueueEmpty() {
	log.Logger().TaskQueueEmpty(con.Namespace)

	if !util.IsNil(con.eventHandler) {
		con.eventHandler.OnQueueEmpty()
	}
}
