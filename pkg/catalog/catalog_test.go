package catalog

import (
	"context"
	"testing"

	"github.com/mnikita/scenario-worker/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleNoop(_ context.Context, _ common.Notifier, _ common.Values) (common.Values, error) {
	return common.Values{}, nil
}

func newDefinitions() []*TaskDefinition {
	return []*TaskDefinition{
		{
			Namespace: "sample",
			Name:      "simple",
			Inputs:    []*ParameterDefinition{{Name: "arg", BaseType: "String"}},
			Outputs:   []*ParameterDefinition{{Name: "msg", BaseType: "String"}},
		},
		{Namespace: "sample", Name: "error_placeholder"},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("sample", newDefinitions()))
}

func TestValidateRejectsInvalidDefinitions(t *testing.T) {
	defs := newDefinitions()
	defs[0].Inputs[0].BaseType = ""
	assert.Error(t, Validate("sample", defs))

	defs = newDefinitions()
	defs[1].Namespace = "other"
	assert.EqualError(t, Validate("sample", defs),
		"Invalid catalog for namespace sample: task error_placeholder declares namespace other")

	defs = newDefinitions()
	defs[1].Name = "simple"
	assert.Error(t, Validate("sample", defs))

	defs = newDefinitions()
	defs[0].Name = ""
	assert.Error(t, Validate("sample", defs))

	assert.Error(t, Validate("sample", []*TaskDefinition{nil}))
}

func TestCheckRegistry(t *testing.T) {
	registry := common.NewRegistry("sample")
	require.NoError(t, registry.Register("simple", handleNoop))
	require.NoError(t, registry.Register("error_placeholder", handleNoop))
	require.NoError(t, registry.Register("hidden", handleNoop))

	unadvertised, err := CheckRegistry(newDefinitions(), registry)

	assert.NoError(t, err)
	assert.Equal(t, []string{"hidden"}, unadvertised)
}

func TestCheckRegistryMissingHandler(t *testing.T) {
	registry := common.NewRegistry("sample")
	require.NoError(t, registry.Register("simple", handleNoop))

	_, err := CheckRegistry(newDefinitions(), registry)

	assert.EqualError(t, err, "Catalog advertises sample/error_placeholder but no handler is registered")
}
