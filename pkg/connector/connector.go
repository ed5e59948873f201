//Package connector reports task statuses to the Scenario server on behalf of the dispatch loop and of task handlers
package connector

import (
	"context"

	"github.com/google/wire"
	"github.com/mnikita/scenario-worker/pkg/common"
	"github.com/mnikita/scenario-worker/pkg/connection"
	"github.com/mnikita/scenario-worker/pkg/log"
	"github.com/mnikita/scenario-worker/pkg/util"
)

var WireSet = wire.NewSet(NewConnector,
	wire.Bind(new(Handler), new(*Connector)))

type EventHandler interface {
	OnStatusPosted(status *common.TaskStatus)
	OnStatusDropped(status *common.TaskStatus, err error)
}

type Handler interface {
	Report(ctx context.Context, status *common.TaskStatus)
	NewNotification(ctx context.Context, task *common.TaskInstance) *Notification
	SetEventHandler(eventHandler EventHandler)
}

type Connector struct {
	connectionHandler connection.Handler

	eventHandler EventHandler
}

func NewConnector(connectionHandler connection.Handler) *Connector {
	return &Connector{connectionHandler: connectionHandler}
}

func (c *Connector) SetEventHandler(eventHandler EventHandler) {
	c.eventHandler = eventHandler
}

//Report posts status. A failed post is logged and dropped, it is never retried
//nor returned to the caller
func (c *Connector) Report(ctx context.Context, status *common.TaskStatus) {
	if util.IsNil(c.connectionHandler) {
		c.OnStatusDropped(status, log.MissingConnectionHandlerError())

		return
	}

	if err := c.connectionHandler.PostStatus(ctx, status); err != nil {
		c.OnStatusDropped(status, err)

		return
	}

	c.OnStatusPosted(status)
}

//NewNotification creates the notification channel handed to the handler of task
func (c *Connector) NewNotification(ctx context.Context, task *common.TaskInstance) *Notification {
	return &Notification{ctx: ctx, taskInstanceId: task.Id, reporter: c}
}

func (c *Connector) OnStatusPosted(status *common.TaskStatus) {
	log.Logger().StatusPosted(string(status.Status), status.TaskInstanceId.String(), status.Message)

	if !util.IsNil(c.eventHandler) {
		c.eventHandler.OnStatusPosted(status)
	}
}

func (c *Connector) OnStatusDropped(status *common.TaskStatus, err error) {
	log.Logger().StatusDropped(string(status.Status), status.TaskInstanceId.String(), err)

	if !util.IsNil(c.eventHandler) {
		c.eventHandler.OnStatusDropped(status, err)
	}
}
