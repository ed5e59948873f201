package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mnikita/scenario-worker/pkg/common"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectorCounters(t *testing.T) {
	c := NewCollector("sample", "w-1")
	task := &common.TaskInstance{Id: "13", Namespace: "sample", Name: "double"}

	c.OnStartWorker()
	c.OnQueueEmpty()
	c.OnQueueEmpty()
	c.OnPreTask(task)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.TasksInFlight))

	c.OnPostTask(task, &common.Result{Err: errors.New("boom")}, time.Millisecond)
	c.OnStatusPosted(&common.TaskStatus{Status: common.Error})
	c.OnStatusDropped(&common.TaskStatus{Status: common.Completed}, errors.New("unreachable"))
	c.OnUnknownTask(task)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.WorkerRunning))
	assert.Equal(t, float64(0), testutil.ToFloat64(c.TasksInFlight))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.PollsTotal.WithLabelValues("empty")))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.PollsTotal.WithLabelValues("task")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.TasksTotal.WithLabelValues("double", "failed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.StatusesTotal.WithLabelValues("Error", "posted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.StatusesTotal.WithLabelValues("Completed", "dropped")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.UnknownTasks))

	c.OnEndWorker()

	assert.Equal(t, float64(0), testutil.ToFloat64(c.WorkerRunning))
}

func TestServerRoutes(t *testing.T) {
	c := NewCollector("sample", "w-1")
	c.OnQueueEmpty()

	s := NewServer(&Configuration{Addr: "127.0.0.1:0"}, c)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "scenario_worker_polls_total"))

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
