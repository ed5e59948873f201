//Package container provides primitives for configuration and starting all primitives in the module
package container

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/mnikita/scenario-worker/pkg/common"
	"github.com/mnikita/scenario-worker/pkg/connection"
	"github.com/mnikita/scenario-worker/pkg/connector"
	"github.com/mnikita/scenario-worker/pkg/consumer"
	"github.com/mnikita/scenario-worker/pkg/locale"
	"github.com/mnikita/scenario-worker/pkg/log"
	"github.com/mnikita/scenario-worker/pkg/metrics"
	"github.com/mnikita/scenario-worker/pkg/tracing"
	"github.com/mnikita/scenario-worker/pkg/util"
	"github.com/mnikita/scenario-worker/pkg/worker"
	"github.com/spf13/viper"
)

var WireSet = wire.NewSet(NewContainer, NewCollector,
	wire.FieldsOf(new(*Configuration), "Connection", "Consumer", "Worker", "Locale", "Metrics"),
	wire.Bind(new(Handler), new(*Container)), worker.WireSet, consumer.WireSet,
	connector.WireSet, connection.WireSet, locale.WireSet, metrics.WireSet)

//Environment variables shared with the other Scenario workers
const (
	EnvServer       = "XC_SCENARIO_SERVER"
	EnvServerLegacy = "X4B_SCENARIO_SERVER"
	EnvApiKey       = "XC_SCENARIO_APIKEY"
	EnvApiKeyLegacy = "X4B_APIKEY"

	EnvPrefix = "SCENARIO"
)

type Handler interface {
	Init() error
	Close() error

	Connection() connection.Handler
	Consumer() consumer.Handler
	Connector() connector.Handler
	Worker() worker.Handler
	Registry() *common.Registry
	Localizer() *locale.Localizer
	Collector() *metrics.Collector
	MetricsServer() *metrics.Server

	Config() *Configuration
}

//Configuration aggregates the configuration of every package.
//It is loaded once and shared read-only
type Configuration struct {
	LogLevel string `mapstructure:"log_level" toml:"log_level"`
	WorkerId string `mapstructure:"worker_id" toml:"worker_id"`

	Connection *connection.Configuration `mapstructure:"connection" toml:"connection"`
	Consumer   *consumer.Configuration   `mapstructure:"consumer" toml:"consumer"`
	Worker     *worker.Configuration     `mapstructure:"worker" toml:"worker"`
	Locale     *locale.Configuration     `mapstructure:"locale" toml:"locale"`
	Metrics    *metrics.Configuration    `mapstructure:"metrics" toml:"metrics"`
	Tracing    *tracing.Configuration    `mapstructure:"tracing" toml:"tracing"`

	ConfigFile string `mapstructure:"-" toml:"-" validate:"-"`

	configWatcher *util.ConfigWatcher
}

type Container struct {
	*Configuration

	connection    connection.Handler
	consumer      consumer.Handler
	connector     connector.Handler
	worker        worker.Handler
	registry      *common.Registry
	localizer     *locale.Localizer
	collector     *metrics.Collector
	metricsServer *metrics.Server
}

var validate = validator.New()

func NewConfiguration() *Configuration {
	return &Configuration{
		LogLevel:   "info",
		Connection: connection.NewConfiguration(),
		Consumer:   consumer.NewConfiguration(),
		Worker:     worker.NewConfiguration(),
		Locale:     locale.NewConfiguration(),
		Metrics:    metrics.NewConfiguration(),
		Tracing:    tracing.NewConfiguration(),
	}
}

//LoadConfiguration merges defaults, the optional configuration file and the environment
func LoadConfiguration(configFile string) (*Configuration, error) {
	v := viper.New()

	defaults := NewConfiguration()

	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("worker_id", "")
	v.SetDefault("connection.url", defaults.Connection.Url)
	v.SetDefault("connection.apikey", defaults.Connection.ApiKey)
	v.SetDefault("connection.timeout", defaults.Connection.Timeout)
	v.SetDefault("connection.remove_previous_tasks", defaults.Connection.RemovePreviousTasks)
	v.SetDefault("consumer.namespace", defaults.Consumer.Namespace)
	v.SetDefault("consumer.task_name", defaults.Consumer.TaskName)
	v.SetDefault("worker.polling_interval", defaults.Worker.PollingInterval)
	v.SetDefault("worker.autocomplete", defaults.Worker.Autocomplete)
	v.SetDefault("worker.forward_error_detail", defaults.Worker.ForwardErrorDetail)
	v.SetDefault("locale.language", defaults.Locale.Language)
	v.SetDefault("metrics.addr", defaults.Metrics.Addr)
	v.SetDefault("tracing.enabled", defaults.Tracing.Enabled)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("connection.url", EnvServer, EnvServerLegacy); err != nil {
		return nil, err
	}

	if err := v.BindEnv("connection.apikey", EnvApiKey, EnvApiKeyLegacy); err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}

		log.Logger().ContainerConfigLoaded(configFile)
	}

	config := NewConfiguration()

	if err := v.Unmarshal(config); err != nil {
		return nil, log.InvalidConfigurationError(err)
	}

	config.ConfigFile = configFile

	if config.WorkerId == "" {
		config.WorkerId = uuid.NewString()
	}

	return config, nil
}

//Validate checks the configuration before any connection is made
func (c *Configuration) Validate() error {
	if c.Connection.Url == "" {
		return log.MissingServerUrlError()
	}

	if c.Connection.ApiKey == "" {
		return log.MissingApiKeyError()
	}

	if err := validate.Struct(c); err != nil {
		return log.InvalidConfigurationError(err)
	}

	return nil
}

func (c *Configuration) initConfigWatcher() (err error) {
	if c.ConfigFile == "" {
		//nothing to watch
		return nil
	}

	c.configWatcher, err = util.NewConfigWatcher(c)

	if err != nil {
		return err
	}

	return c.configWatcher.WatchConfigFile(c.ConfigFile)
}

func (c *Configuration) closeConfigWatcher() error {
	if c.configWatcher == nil {
		return nil
	}

	return c.configWatcher.StopWatch()
}

//OnConfigModified is a no-op: the configuration is immutable while the worker runs
func (c *Configuration) OnConfigModified() {
}

//NewCollector labels the metrics with the polled namespace and the worker id
func NewCollector(config *Configuration) *metrics.Collector {
	return metrics.NewCollector(config.Consumer.Namespace, config.WorkerId)
}

func NewContainer(config *Configuration, connectionHandler connection.Handler,
	consumerHandler consumer.Handler, connectorHandler connector.Handler,
	workerHandler worker.Handler, registry *common.Registry, localizer *locale.Localizer,
	collector *metrics.Collector, metricsServer *metrics.Server) *Container {

	return &Container{
		Configuration: config,
		connection:    connectionHandler,
		consumer:      consumerHandler,
		connector:     connectorHandler,
		worker:        workerHandler,
		registry:      registry,
		localizer:     localizer,
		collector:     collector,
		metricsServer: metricsServer,
	}
}

func (c *Container) Init() (err error) {
	if err = log.SetLevel(c.LogLevel); err != nil {
		return err
	}

	if err = c.Validate(); err != nil {
		return err
	}

	if err = c.Connection().Init(); err != nil {
		return err
	}

	c.connector.SetEventHandler(c.collector)
	c.worker.SetEventHandler(c.collector)

	return c.initConfigWatcher()
}

func (c *Container) Close() (err error) {
	if err = c.Connection().Close(); err != nil {
		return err
	}

	return c.closeConfigWatcher()
}

func (c *Container) Connection() connection.Handler {
	return c.connection
}

func (c *Container) Consumer() consumer.Handler {
	return c.consumer
}

func (c *Container) Connector() connector.Handler {
	return c.connector
}

func (c *Container) Worker() worker.Handler {
	return c.worker
}

func (c *Container) Registry() *common.Registry {
	return c.registry
}

func (c *Container) Localizer() *locale.Localizer {
	return c.localizer
}

func (c *Container) Collector() *metrics.Collector {
	return c.collector
}

func (c *Container) MetricsServer() *metrics.Server {
	return c.metricsServer
}

func (c *Container) Config() *Configuration {
	return c.Configuration
}
