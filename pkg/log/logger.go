//Package log provides primitives for structured log generation.
//It declares all available error and log messages for the module
package log

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

//Event stores messages to log later, from our standard interface
type Event struct {
	message string
}

//Error stores messages to log later, from our standard interface
type Error struct {
	message string
}

//StandardLogger enforces specific log message formats
type StandardLogger struct {
	*logrus.Logger
}

type loggerSingleton *StandardLogger

var (
	once   sync.Once
	logger loggerSingleton
)

//errors
var (
	missingConnectionHandler = Event{"ConnectionHandler not specified"}
	missingRegistry          = Event{"Task registry not specified"}
	missingServerUrl         = Event{"Missing Scenario server URL (XC_SCENARIO_SERVER)"}
	missingApiKey            = Event{"Missing Scenario API key (XC_SCENARIO_APIKEY)"}
	invalidServerUrl         = Event{"Invalid Scenario server URL (%s): %s"}
	invalidConfiguration     = Event{"Invalid configuration: %s"}
	unknownNamespace         = Event{"Unknown namespace: %s"}
	unknownLogLevel          = Event{"Unknown log level: %s"}
	invalidBoolean           = Event{"\"%s\" unrecognized boolean value"}
	invalidArguments         = Event{"Expected arguments: <namespace> [true|false], got %d"}
	duplicateTask            = Event{"Task(%s) already registered in namespace %s"}
	invalidTask              = Event{"Invalid task registration in namespace %s: %s"}
	missingTaskHandler       = Event{"Catalog advertises %s/%s but no handler is registered"}
	missingInput             = Event{"Missing input parameter: %s"}
	invalidInput             = Event{"Invalid input parameter %s: %s"}
	handlerPanic             = Event{"Task(%s) panicked: %v"}
	invalidCatalog           = Event{"Invalid catalog for namespace %s: %s"}
)

//messages
var (
	taskRegistered      = Event{"Task registered: %s/%s"}
	taskUnregistered    = Event{"Handler %s/%s is not advertised in the catalog"}
	taskReceived        = Event{"Task(%s) received: %s/%s"}
	taskPre             = Event{"Calling task \"%s\" (id: %s)"}
	taskPost            = Event{"Task %s returned (id: %s)"}
	taskFailed          = Event{"Task %s raised an error (id: %s): %s"}
	taskUnknown         = Event{"Unknown task: %s/%s (id: %s)"}
	taskQueueEmpty      = Event{"Task queue is empty (namespace: %s)"}
	taskTerminalIgnored = Event{"Task(%s) already reported a terminal status, %s ignored"}
	taskProgressClamped = Event{"Task(%s) progress %v out of range, clamped to %v"}

	statusPosted  = Event{"Task status (%s) posted for task(%s): %s"}
	statusDropped = Event{"Posting task status (%s) failed for task(%s): %s"}

	workerStarted  = Event{"Worker started (namespace: %s, autocomplete: %t)"}
	workerStopping = Event{"Worker stopping"}
	workerEnded    = Event{"Worker ended"}

	consumerPoll = Event{"Poll (namespace: %s, task: %s)"}

	catalogPublished = Event{"Catalog published for namespace %s (%d tasks)"}

	configWatchError    = Event{"Configuration watcher error: %s"}
	configWatchModified = Event{"Configuration file modified: %s (restart the worker to apply)"}
	configWatchStart    = Event{"Configuration watch started"}
	configWatchStop     = Event{"Configuration watch stopped"}
	configWatchFile     = Event{"Configuration watch added file: %s"}

	containerConfigLoaded = Event{"Configuration loaded successfully: %s"}
	serverUrl             = Event{"Scenario server URL configured: %s"}

	metricsListening = Event{"Metrics server listening on %s"}
	metricsStopped   = Event{"Metrics server stopped: %s"}
	tracerStarted    = Event{"OpenTelemetry tracer initialized for %s"}
)

//Logger initializes the standard logger
func Logger() *StandardLogger {
	once.Do(func() { // <-- atomic, does not allow repeating
		var baseLogger = logrus.New()

		logger = &StandardLogger{baseLogger}

		// Log as JSON instead of the default ASCII formatter.
		logger.Formatter = &logrus.JSONFormatter{}

		// Output to stdout instead of the default stderr, could also be a file.
		logger.Out = os.Stdout

		logger.Level = logrus.InfoLevel
	})

	return logger
}

//SetLevel parses the textual level and applies it to the standard logger
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := logrus.ParseLevel(level)

	if err != nil {
		return UnknownLogLevelError(level)
	}

	Logger().Level = lvl

	return nil
}

//Error provides implementation of Error interface
func (e *Error) Error() string {
	return e.message
}

//Error message
func MissingConnectionHandlerError() error {
	return &Error{missingConnectionHandler.message}
}

//Error message
func MissingRegistryError() error {
	return &Error{missingRegistry.message}
}

//Error message
func MissingServerUrlError() error {
	return &Error{missingServerUrl.message}
}

//Error message
func MissingApiKeyError() error {
	return &Error{missingApiKey.message}
}

//Error message
func InvalidServerUrlError(url string, err error) error {
	return &Error{fmt.Sprintf(invalidServerUrl.message, url, err)}
}

//Error message
func InvalidConfigurationError(err error) error {
	return &Error{fmt.Sprintf(invalidConfiguration.message, err)}
}

//Error message
func UnknownNamespaceError(namespace string) error {
	return &Error{fmt.Sprintf(unknownNamespace.message, namespace)}
}

//Error message
func UnknownLogLevelError(level string) error {
	return &Error{fmt.Sprintf(unknownLogLevel.message, level)}
}

//Error message
func InvalidArgumentsError(count int) error {
	return &Error{fmt.Sprintf(invalidArguments.message, count)}
}

//Error message
func InvalidBooleanError(value string) error {
	return &Error{fmt.Sprintf(invalidBoolean.message, value)}
}

//Error message
func DuplicateTaskError(namespace string, taskName string) error {
	return &Error{fmt.Sprintf(duplicateTask.message, taskName, namespace)}
}

//Error message
func InvalidTaskError(namespace string, reason string) error {
	return &Error{fmt.Sprintf(invalidTask.message, namespace, reason)}
}

//Error message
func MissingTaskHandlerError(namespace string, taskName string) error {
	return &Error{fmt.Sprintf(missingTaskHandler.message, namespace, taskName)}
}

//Error message
func MissingInputError(name string) error {
	return &Error{fmt.Sprintf(missingInput.message, name)}
}

//Error message
func InvalidInputError(name string, reason string) error {
	return &Error{fmt.Sprintf(invalidInput.message, name, reason)}
}

//Error message
func HandlerPanicError(taskName string, recovered interface{}) error {
	return &Error{fmt.Sprintf(handlerPanic.message, taskName, recovered)}
}

//Error message
func InvalidCatalogError(namespace string, err error) error {
	return &Error{fmt.Sprintf(invalidCatalog.message, namespace, err)}
}

//Log message
func (l *StandardLogger) TaskRegistered(namespace string, taskName string) {
	l.Debugf(taskRegistered.message, namespace, taskName)
}

//Log message
func (l *StandardLogger) TaskUnregistered(namespace string, taskName string) {
	l.Warnf(taskUnregistered.message, namespace, taskName)
}

//Log message
func (l *StandardLogger) TaskReceived(id string, namespace string, taskName string) {
	l.Infof(taskReceived.message, id, namespace, taskName)
}

//Log message
func (l *StandardLogger) TaskPre(taskName string, id string) {
	l.Infof(taskPre.message, taskName, id)
}

//Log message
func (l *StandardLogger) TaskPost(taskName string, id string, elapsed time.Duration) {
	l.WithField("elapsed", elapsed.String()).Infof(taskPost.message, taskName, id)
}

//Log message
func (l *StandardLogger) TaskFailed(taskName string, id string, err error) {
	l.Errorf(taskFailed.message, taskName, id, err)
}

//Log message
func (l *StandardLogger) TaskUnknown(namespace string, taskName string, id string) {
	l.Errorf(taskUnknown.message, namespace, taskName, id)
}

//Log message
func (l *StandardLogger) TaskQueueEmpty(namespace string) {
	l.Debugf(taskQueueEmpty.message, namespace)
}

//Log message
func (l *StandardLogger) TaskTerminalIgnored(id string, status string) {
	l.Warnf(taskTerminalIgnored.message, id, status)
}

//Log message
func (l *StandardLogger) TaskProgressClamped(id string, progress float64, clamped float64) {
	l.Warnf(taskProgressClamped.message, id, progress, clamped)
}

//Log message
func (l *StandardLogger) StatusPosted(status string, id string, message string) {
	l.Infof(statusPosted.message, status, id, message)
}

//Log message
func (l *StandardLogger) StatusDropped(status string, id string, err error) {
	l.Errorf(statusDropped.message, status, id, err)
}

//Log message
func (l *StandardLogger) WorkerStarted(namespace string, autocomplete bool) {
	l.Infof(workerStarted.message, namespace, autocomplete)
}

//Log message
func (l *StandardLogger) WorkerStopping() {
	l.Infof(workerStopping.message)
}

//Log message
func (l *StandardLogger) WorkerEnded() {
	l.Infof(workerEnded.message)
}

//Log message
func (l *StandardLogger) ConsumerPoll(namespace string, taskName string) {
	l.Tracef(consumerPoll.message, namespace, taskName)
}

//Log message
func (l *StandardLogger) CatalogPublished(namespace string, count int) {
	l.Infof(catalogPublished.message, namespace, count)
}

//Log message
func (l *StandardLogger) ConfigWatchError(err error) {
	l.Infof(configWatchError.message, err.Error())
}

//Log message
func (l *StandardLogger) ConfigWatchModified(path string) {
	l.Warnf(configWatchModified.message, path)
}

//Log message
func (l *StandardLogger) ConfigWatchStart() {
	l.Infof(configWatchStart.message)
}

//Log message
func (l *StandardLogger) ConfigWatchStop() {
	l.Infof(configWatchStop.message)
}

//Log message
func (l *StandardLogger) ConfigWatchFile(path string) {
	l.Infof(configWatchFile.message, path)
}

//Log message
func (l *StandardLogger) ContainerConfigLoaded(path string) {
	l.Infof(containerConfigLoaded.message, path)
}

//Log message
func (l *StandardLogger) ServerUrl(url string) {
	l.Infof(serverUrl.message, url)
}

//Log message
func (l *StandardLogger) MetricsListening(addr string) {
	l.Infof(metricsListening.message, addr)
}

//Log message
func (l *StandardLogger) MetricsStopped(err error) {
	l.Infof(metricsStopped.message, err)
}

//Log message
func (l *StandardLogger) TracerStarted(serviceName string) {
	l.Infof(tracerStarted.message, serviceName)
}
