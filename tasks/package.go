//Package tasks maps a namespace to the module implementing its task handlers
package tasks

import (
	"github.com/mnikita/scenario-worker/pkg/catalog"
	"github.com/mnikita/scenario-worker/pkg/common"
	"github.com/mnikita/scenario-worker/pkg/log"
	"github.com/mnikita/scenario-worker/tasks/sample"
)

//Module is a namespace worth of task handlers and their catalog
type Module struct {
	Namespace string

	Register    func(registry *common.Registry) error
	Definitions func() []*catalog.TaskDefinition
}

var modules = map[string]*Module{
	sample.Namespace: {
		Namespace:   sample.Namespace,
		Register:    sample.Register,
		Definitions: sample.Definitions,
	},
}

//Lookup returns the module serving namespace
func Lookup(namespace string) (*Module, error) {
	module, ok := modules[namespace]

	if !ok {
		return nil, log.UnknownNamespaceError(namespace)
	}

	return module, nil
}

//NewRegistry creates the registry of the module and registers its handlers
func (m *Module) NewRegistry() (*common.Registry, error) {
	registry := common.NewRegistry(m.Namespace)

	if err := m.Register(registry); err != nil {
		return nil, err
	}

	return registry, nil
}
