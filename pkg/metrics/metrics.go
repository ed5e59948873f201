//Package metrics exposes Prometheus counters fed by the worker and connector event hooks
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/gorilla/mux"
	"github.com/mnikita/scenario-worker/pkg/common"
	"github.com/mnikita/scenario-worker/pkg/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var WireSet = wire.NewSet(NewServer)

//Configuration stores the metrics endpoint address. Metrics are served only when Addr is set
type Configuration struct {
	Addr string `mapstructure:"addr" toml:"addr" validate:"omitempty,hostname_port"`
}

func NewConfiguration() *Configuration {
	return &Configuration{}
}

//Collector implements worker.EventHandler and connector.EventHandler
type Collector struct {
	Registry *prometheus.Registry

	PollsTotal    *prometheus.CounterVec
	TasksTotal    *prometheus.CounterVec
	StatusesTotal *prometheus.CounterVec
	TaskDuration  *prometheus.HistogramVec
	WorkerRunning prometheus.Gauge
	TasksInFlight prometheus.Gauge
	UnknownTasks  prometheus.Counter
}

func NewCollector(namespace string, workerId string) *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	labels := prometheus.Labels{"namespace": namespace, "worker_id": workerId}

	return &Collector{
		Registry: registry,
		PollsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "scenario_worker_polls_total",
			Help:        "Total number of task queue polls, by result (task or empty).",
			ConstLabels: labels,
		}, []string{"result"}),
		TasksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "scenario_worker_tasks_total",
			Help:        "Total number of executed task instances, by task name and outcome.",
			ConstLabels: labels,
		}, []string{"task", "outcome"}),
		StatusesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "scenario_worker_statuses_total",
			Help:        "Total number of task statuses, by status and delivery (posted or dropped).",
			ConstLabels: labels,
		}, []string{"status", "delivery"}),
		TaskDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "scenario_worker_task_duration_seconds",
			Help:        "Handler execution time.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{"task"}),
		WorkerRunning: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "scenario_worker_running",
			Help:        "1 while the dispatch loop runs, 0 otherwise.",
			ConstLabels: labels,
		}),
		TasksInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "scenario_worker_tasks_in_flight",
			Help:        "Task instances currently executing (0 or 1).",
			ConstLabels: labels,
		}),
		UnknownTasks: factory.NewCounter(prometheus.CounterOpts{
			Name:        "scenario_worker_unknown_tasks_total",
			Help:        "Task instances received without a registered handler.",
			ConstLabels: labels,
		}),
	}
}

func (c *Collector) OnStartWorker() {
	c.WorkerRunning.Set(1)
}

func (c *Collector) OnEndWorker() {
	c.WorkerRunning.Set(0)
}

func (c *Collector) OnQueueEmpty() {
	c.PollsTotal.WithLabelValues("empty").Inc()
}

func (c *Collector) OnUnknownTask(_ *common.TaskInstance) {
	c.PollsTotal.WithLabelValues("task").Inc()
	c.UnknownTasks.Inc()
}

func (c *Collector) OnPreTask(_ *common.TaskInstance) {
	c.PollsTotal.WithLabelValues("task").Inc()
	c.TasksInFlight.Inc()
}

func (c *Collector) OnPostTask(task *common.TaskInstance, result *common.Result, elapsed time.Duration) {
	c.TasksInFlight.Dec()

	outcome := "returned"

	if result.Failed() {
		outcome = "failed"
	}

	c.TasksTotal.WithLabelValues(task.Name, outcome).Inc()
	c.TaskDuration.WithLabelValues(task.Name).Observe(elapsed.Seconds())
}

func (c *Collector) OnStatusPosted(status *common.TaskStatus) {
	c.StatusesTotal.WithLabelValues(string(status.Status), "posted").Inc()
}

func (c *Collector) OnStatusDropped(status *common.TaskStatus, _ error) {
	c.StatusesTotal.WithLabelValues(string(status.Status), "dropped").Inc()
}

//Server serves /metrics and /healthz
type Server struct {
	*Configuration

	server *http.Server
}

func NewServer(config *Configuration, collector *Collector) *Server {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.HandlerFor(collector.Registry, promhttp.HandlerOpts{})).
		Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	return &Server{Configuration: config,
		server: &http.Server{Addr: config.Addr, Handler: router, ReadHeaderTimeout: time.Second * 5}}
}

//Handler returns the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

//Start listens in the background
func (s *Server) Start() {
	log.Logger().MetricsListening(s.Addr)

	go func() {
		err := s.server.ListenAndServe()

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger().Error(err)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	err := s.server.Shutdown(ctx)

	log.Logger().MetricsStopped(err)

	return err
}
