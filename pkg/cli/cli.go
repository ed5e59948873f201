//Package cli implements the process level operations of the worker command
package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mnikita/scenario-worker/pkg/catalog"
	"github.com/mnikita/scenario-worker/pkg/common"
	"github.com/mnikita/scenario-worker/pkg/container"
	"github.com/mnikita/scenario-worker/pkg/log"
	"github.com/mnikita/scenario-worker/pkg/tracing"
	"github.com/mnikita/scenario-worker/tasks"
)

//CompletedStatusCode is the output sent by Complete for externally executed HTTP tasks
const CompletedStatusCode = "200"

type OsSignalCallback func(chan os.Signal)

type Handler interface {
	Init() error
	Close() error

	Container() container.Handler

	Start(OsSignalCallback) error
	Complete(taskInstanceId string) error
}

//Configuration stores command line overrides applied on top of the loaded configuration
type Configuration struct {
	ConfigFile string
	LogLevel   string
	Namespace  string

	//nil keeps the configured value
	Autocomplete *bool
}

type Cli struct {
	*Configuration

	container container.Handler
	module    *tasks.Module
}

func NewConfiguration() *Configuration {
	return &Configuration{}
}

func NewCli(config *Configuration) *Cli {
	return &Cli{Configuration: config}
}

//ParseArgs reads the positional arguments: <namespace> [true|false]
func ParseArgs(args []string) (namespace string, autocomplete *bool, err error) {
	if len(args) < 1 || len(args) > 2 || args[0] == "" {
		return "", nil, log.InvalidArgumentsError(len(args))
	}

	namespace = args[0]

	if len(args) == 2 {
		var value bool

		switch strings.ToLower(args[1]) {
		case "true":
			value = true
		case "false":
			value = false
		default:
			return "", nil, log.InvalidBooleanError(args[1])
		}

		autocomplete = &value
	}

	return namespace, autocomplete, nil
}

func (cli *Cli) Init() (err error) {
	config, err := container.LoadConfiguration(cli.ConfigFile)

	if err != nil {
		return err
	}

	if cli.LogLevel != "" {
		config.LogLevel = cli.LogLevel
	}

	if cli.Namespace != "" {
		config.Consumer.Namespace = cli.Namespace
	}

	if cli.Autocomplete != nil {
		config.Worker.Autocomplete = *cli.Autocomplete
	}

	registry := common.NewRegistry(config.Consumer.Namespace)

	//complete does not need a namespace
	if config.Consumer.Namespace != "" {
		if cli.module, err = tasks.Lookup(config.Consumer.Namespace); err != nil {
			return err
		}

		if registry, err = cli.module.NewRegistry(); err != nil {
			return err
		}
	}

	if cli.container, err = container.InitializeContainer(config, registry); err != nil {
		return err
	}

	return cli.container.Init()
}

func (cli *Cli) Close() error {
	if cli.container == nil {
		return nil
	}

	return cli.container.Close()
}

func (cli *Cli) Container() container.Handler {
	return cli.container
}

//Start publishes the catalog and runs the dispatch loop until SIGINT or SIGTERM
func (cli *Cli) Start(callback OsSignalCallback) (err error) {
	config := cli.container.Config()

	if cli.module == nil {
		return log.UnknownNamespaceError(config.Consumer.Namespace)
	}

	namespace := cli.module.Namespace
	definitions := cli.module.Definitions()

	if err = catalog.Validate(namespace, definitions); err != nil {
		return err
	}

	if _, err = catalog.CheckRegistry(definitions, cli.container.Registry()); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err = cli.container.Connection().PublishCatalog(ctx, namespace, definitions,
		config.Connection.RemovePreviousTasks); err != nil {
		return err
	}

	shutdown, err := tracing.InitTracer(config.Tracing, namespace)

	if err != nil {
		return err
	}

	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Logger().Error(err)
		}
	}()

	if config.Metrics.Addr != "" {
		server := cli.container.MetricsServer()
		server.Start()

		defer func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second*5)
			defer stopCancel()

			_ = server.Stop(stopCtx)
		}()
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	if callback != nil {
		callback(sigs)
	}

	go func() {
		select {
		case <-sigs:
			cancel()
		case <-ctx.Done():
		}
	}()

	return cli.container.Worker().Run(ctx)
}

//Complete reports an externally executed HTTP task as Completed
func (cli *Cli) Complete(taskInstanceId string) error {
	status := &common.TaskStatus{
		TaskInstanceId: common.InstanceId(taskInstanceId),
		Status:         common.Completed,
		Message:        cli.container.Localizer().ExternalCompletion(),
		OutputValues:   common.Values{"statusCode": CompletedStatusCode},
	}

	return cli.container.Connection().PostStatus(context.Background(), status)
}

//WriteDefaultConfiguration renders the default configuration as TOML
func WriteDefaultConfiguration(writer io.Writer) error {
	return toml.NewEncoder(writer).Encode(container.NewConfiguration())
}

func WriteDefaultConfigurationToFile(name string) (err error) {
	file, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)

	if err != nil {
		return err
	}

	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	return WriteDefaultConfiguration(file)
}

//WriteCatalog prints the catalog of namespace as indented JSON
func WriteCatalog(writer io.Writer, namespace string) error {
	module, err := tasks.Lookup(namespace)

	if err != nil {
		return err
	}

	bytes, err := json.MarshalIndent(module.Definitions(), "", "  ")

	if err != nil {
		return err
	}

	_, err = writer.Write(append(bytes, '\n'))

	return err
}
