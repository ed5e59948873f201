//Package catalog describes the task definitions a namespace advertises to the Scenario server
package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mnikita/scenario-worker/pkg/common"
	"github.com/mnikita/scenario-worker/pkg/log"
	"github.com/thoas/go-funk"
)

//ParameterDefinition declares one input or output parameter of a task
type ParameterDefinition struct {
	Name         string `json:"name" toml:"name" validate:"required"`
	BaseType     string `json:"baseType" toml:"baseType" validate:"required"`
	DefaultValue string `json:"defaultValue,omitempty" toml:"defaultValue,omitempty"`
	Description  string `json:"description,omitempty" toml:"description,omitempty"`
}

//TaskDefinition mirrors the CatalogTaskDefinition object of the task catalog API
type TaskDefinition struct {
	Namespace     string                 `json:"namespace" validate:"required"`
	Name          string                 `json:"name" validate:"required"`
	DisplayName   string                 `json:"displayName,omitempty"`
	SchemaVersion int                    `json:"schemaVersion" validate:"gte=0"`
	Inputs        []*ParameterDefinition `json:"inputs,omitempty" validate:"dive,required"`
	Outputs       []*ParameterDefinition `json:"outputs,omitempty" validate:"dive,required"`
}

var validate = validator.New()

//Validate checks required fields, namespace consistency and name uniqueness
func Validate(namespace string, definitions []*TaskDefinition) error {
	seen := make(map[string]bool, len(definitions))

	for _, def := range definitions {
		if def == nil {
			return log.InvalidCatalogError(namespace, fmt.Errorf("nil task definition"))
		}

		if err := validate.Struct(def); err != nil {
			return log.InvalidCatalogError(namespace, err)
		}

		if def.Namespace != namespace {
			return log.InvalidCatalogError(namespace,
				fmt.Errorf("task %s declares namespace %s", def.Name, def.Namespace))
		}

		if seen[def.Name] {
			return log.InvalidCatalogError(namespace, fmt.Errorf("task %s declared twice", def.Name))
		}

		seen[def.Name] = true
	}

	return nil
}

//CheckRegistry verifies that every advertised task has a registered handler.
//It returns the registered handlers that the catalog does not advertise
func CheckRegistry(definitions []*TaskDefinition, registry *common.Registry) (unadvertised []string, err error) {
	names := make([]string, 0, len(definitions))

	for _, def := range definitions {
		if _, ok := registry.Resolve(def.Name); !ok {
			return nil, log.MissingTaskHandlerError(def.Namespace, def.Name)
		}

		names = append(names, def.Name)
	}

	unadvertised = []string{}

	for _, name := range registry.Names() {
		if !funk.ContainsString(names, name) {
			log.Logger().TaskUnregistered(registry.Namespace(), name)

			unadvertised = append(unadvertised, name)
		}
	}

	return unadvertised, nil
}
