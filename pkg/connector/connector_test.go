package connector

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mnikita/scenario-worker/pkg/common"
	"github.com/mnikita/scenario-worker/pkg/connection"
	cmocks "github.com/mnikita/scenario-worker/pkg/connection/mocks"
	"github.com/mnikita/scenario-worker/pkg/util"
	"github.com/stretchr/testify/assert"
)

type eventRecorder struct {
	posted  []*common.TaskStatus
	dropped []*common.TaskStatus
}

func (r *eventRecorder) OnStatusPosted(status *common.TaskStatus) {
	r.posted = append(r.posted, status)
}

func (r *eventRecorder) OnStatusDropped(status *common.TaskStatus, _ error) {
	r.dropped = append(r.dropped, status)
}

type Mock struct {
	t *testing.T

	ctrl *gomock.Controller

	handler  *cmocks.MockHandler
	recorder *eventRecorder

	connector *Connector
	task      *common.TaskInstance
}

func newMock(t *testing.T) *Mock {
	m := &Mock{}
	m.t = t
	m.ctrl = gomock.NewController(t)

	m.handler = cmocks.NewMockHandler(m.ctrl)
	m.recorder = &eventRecorder{}
	m.task = &common.TaskInstance{Id: "13", Namespace: "sample", Name: "simple"}

	return m
}

func setupTest(m *Mock) func() {
	if m == nil {
		panic("Mock not initialized")
	}

	m.connector = NewConnector(m.handler)
	m.connector.SetEventHandler(m.recorder)

	return func() {
		defer m.ctrl.Finish()
		defer util.AssertPanic(m.t)
	}
}

func TestReport(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	status := &common.TaskStatus{TaskInstanceId: "13", Status: common.Completed}

	m.handler.EXPECT().PostStatus(gomock.Any(), status).Return(nil)

	m.connector.Report(context.Background(), status)

	assert.Equal(t, []*common.TaskStatus{status}, m.recorder.posted)
	assert.Empty(t, m.recorder.dropped)
}

func TestReportDropsFailedPost(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	status := &common.TaskStatus{TaskInstanceId: "13", Status: common.Error, Message: "boom"}

	m.handler.EXPECT().PostStatus(gomock.Any(), status).
		Return(&connection.TransportError{StatusCode: 500, Body: "oops"}).Times(1)

	m.connector.Report(context.Background(), status)

	assert.Empty(t, m.recorder.posted)
	assert.Equal(t, []*common.TaskStatus{status}, m.recorder.dropped)
}

func TestNotificationStatuses(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	n := m.connector.NewNotification(context.Background(), m.task)

	gomock.InOrder(
		m.handler.EXPECT().PostStatus(gomock.Any(), &common.TaskStatus{TaskInstanceId: "13",
			Status: common.InProgress, Message: "started"}),
		m.handler.EXPECT().PostStatus(gomock.Any(), &common.TaskStatus{TaskInstanceId: "13",
			Status: common.InProgress, Message: "partial", OutputValues: common.Values{"x": 1}}),
	)

	n.Notify(common.InProgress, "started")
	n.NotifyOutputs(common.InProgress, "partial", common.Values{"x": 1})

	assert.False(t, n.IsError())
	assert.False(t, n.Terminated())
}

func TestNotificationProgress(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	n := m.connector.NewNotification(context.Background(), m.task)

	var progress []float64

	m.handler.EXPECT().PostStatus(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, status *common.TaskStatus) error {
			assert.Equal(t, common.InProgress, status.Status)
			progress = append(progress, *status.ProgressPercentage)

			return nil
		}).Times(3)

	n.NotifyProgress("half", 0.5)
	n.NotifyProgress("over", 1.5)
	n.NotifyProgress("under", -0.1)

	assert.Equal(t, []float64{0.5, 1, 0}, progress)
}

func TestNotificationProgressNaN(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	n := m.connector.NewNotification(context.Background(), m.task)

	m.handler.EXPECT().PostStatus(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, status *common.TaskStatus) error {
			_, err := json.Marshal(status)

			assert.NoError(t, err)
			assert.Equal(t, float64(0), *status.ProgressPercentage)

			return nil
		}).Times(1)

	n.NotifyProgress("unknown", math.NaN())

	assert.Len(t, m.recorder.posted, 1)
}

func TestNotificationErrorFlag(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	n := m.connector.NewNotification(context.Background(), m.task)

	m.handler.EXPECT().PostStatus(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	n.Notify(common.Error, "boom")

	assert.True(t, n.IsError())
	assert.True(t, n.Terminated())

	n.Notify(common.InProgress, "still running")

	assert.True(t, n.IsError())
}

func TestNotificationErrorFlagSetWhenPostFails(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	n := m.connector.NewNotification(context.Background(), m.task)

	m.handler.EXPECT().PostStatus(gomock.Any(), gomock.Any()).Return(errors.New("unreachable"))

	n.Notify(common.Error, "boom")

	assert.True(t, n.IsError())
	assert.Len(t, m.recorder.dropped, 1)
}

func TestNotificationSingleTerminalStatus(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	n := m.connector.NewNotification(context.Background(), m.task)

	m.handler.EXPECT().PostStatus(gomock.Any(), &common.TaskStatus{TaskInstanceId: "13",
		Status: common.Completed, Message: "done"}).Return(nil)

	n.Notify(common.Completed, "done")
	n.Notify(common.Error, "late error")
	n.Notify(common.Completed, "again")

	assert.False(t, n.IsError())
	assert.True(t, n.Terminated())
}
