package common

import (
	"sort"

	"github.com/mnikita/scenario-worker/pkg/log"
	"github.com/thoas/go-funk"
)

//Registry maps task names of one namespace to their handlers.
//It is populated once at startup and only read afterwards
type Registry struct {
	namespace string
	handlers  map[string]HandlerFunc
}

//NewRegistry creates an empty registry for namespace
func NewRegistry(namespace string) *Registry {
	return &Registry{namespace: namespace, handlers: make(map[string]HandlerFunc)}
}

//Namespace returns the namespace served by the registered handlers
func (r *Registry) Namespace() string {
	return r.namespace
}

//Register stores handler under taskName. Names can not be registered twice
func (r *Registry) Register(taskName string, handler HandlerFunc) error {
	if taskName == "" {
		return log.InvalidTaskError(r.namespace, "empty task name")
	}

	if handler == nil {
		return log.InvalidTaskError(r.namespace, "nil handler for "+taskName)
	}

	if _, ok := r.handlers[taskName]; ok {
		return log.DuplicateTaskError(r.namespace, taskName)
	}

	log.Logger().TaskRegistered(r.namespace, taskName)

	r.handlers[taskName] = handler

	return nil
}

//Resolve retrieves the handler registered for taskName
func (r *Registry) Resolve(taskName string) (HandlerFunc, bool) {
	handler, ok := r.handlers[taskName]

	return handler, ok
}

//Names returns the sorted names of all registered tasks
func (r *Registry) Names() []string {
	if len(r.handlers) == 0 {
		return []string{}
	}

	names := funk.Keys(r.handlers).([]string)

	sort.Strings(names)

	return names
}
