//Package tracing installs the OpenTelemetry tracer provider used by the dispatch loop
package tracing

import (
	"context"
	"io"
	"os"

	"github.com/mnikita/scenario-worker/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const ServiceName = "scenario-worker"

//Configuration enables span export. Spans go to stdout when enabled
type Configuration struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled"`
}

func NewConfiguration() *Configuration {
	return &Configuration{}
}

//InitTracer installs the global tracer provider and returns its shutdown func.
//When tracing is disabled the global no-op provider stays in place
func InitTracer(config *Configuration, namespace string) (func(context.Context) error, error) {
	if config == nil || !config.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	return initTracer(os.Stdout, namespace)
}

func initTracer(w io.Writer, namespace string) (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(ServiceName),
			semconv.ServiceNamespace(namespace),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	)

	otel.SetTracerProvider(tp)

	log.Logger().TracerStarted(ServiceName)

	return tp.Shutdown, nil
}
