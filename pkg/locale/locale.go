//Package locale renders the messages the worker sends to the Scenario server
package locale

import (
	"github.com/google/wire"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var WireSet = wire.NewSet(NewLocalizer)

var (
	unknownTask = &i18n.Message{
		ID:    "UnknownTask",
		Other: "worker[{{.Namespace}}]: unknown task: {{.Namespace}}/{{.Name}}",
	}
	handlerFailed = &i18n.Message{
		ID:    "HandlerFailed",
		Other: "Exception raised by worker task",
	}
	externalCompletion = &i18n.Message{
		ID:    "ExternalCompletion",
		Other: "Completion by scenario-worker complete",
	}
)

var french = []*i18n.Message{
	{ID: unknownTask.ID, Other: "worker[{{.Namespace}}] : tâche inconnue : {{.Namespace}}/{{.Name}}"},
	{ID: handlerFailed.ID, Other: "Exception levée par la tâche du worker"},
	{ID: externalCompletion.ID, Other: "Complétion par scenario-worker complete"},
}

//Configuration selects the language of status messages
type Configuration struct {
	Language string `mapstructure:"language" toml:"language" validate:"omitempty,oneof=en fr"`
}

//Localizer renders status messages in the configured language
type Localizer struct {
	*Configuration

	localizer *i18n.Localizer
}

func NewConfiguration() *Configuration {
	return &Configuration{Language: language.English.String()}
}

func NewLocalizer(config *Configuration) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)

	if err := bundle.AddMessages(language.English, unknownTask, handlerFailed, externalCompletion); err != nil {
		return nil, err
	}

	if err := bundle.AddMessages(language.French, french...); err != nil {
		return nil, err
	}

	return &Localizer{Configuration: config,
		localizer: i18n.NewLocalizer(bundle, config.Language)}, nil
}

func (l *Localizer) localize(message *i18n.Message, data map[string]string) string {
	//a missing translation still renders the English default, so the error is dropped
	text, _ := l.localizer.Localize(&i18n.LocalizeConfig{DefaultMessage: message, TemplateData: data})

	return text
}

//UnknownTask names a task the worker has no handler for
func (l *Localizer) UnknownTask(namespace string, taskName string) string {
	return l.localize(unknownTask, map[string]string{"Namespace": namespace, "Name": taskName})
}

//HandlerFailed is the generic message reported when a handler fails
func (l *Localizer) HandlerFailed() string {
	return l.localize(handlerFailed, nil)
}

//ExternalCompletion is reported when a task is completed from the command line
func (l *Localizer) ExternalCompletion() string {
	return l.localize(externalCompletion, nil)
}
