package common

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanInputs(t *testing.T) {
	tests := []struct {
		name   string
		inputs Values
		want   Values
	}{
		{
			name:   "mixed",
			inputs: Values{"arg": "x", "arg#type": "String", "list#subtype": "Int", "list": "1"},
			want:   Values{"arg": "x", "list": "1"},
		},
		{
			name:   "no reserved keys",
			inputs: Values{"a": "1", "b": 2.0, "type": "kept", "#typed": "kept"},
			want:   Values{"a": "1", "b": 2.0, "type": "kept", "#typed": "kept"},
		},
		{
			name:   "only reserved keys",
			inputs: Values{"a#type": "String", "b#subtype": "String"},
			want:   Values{},
		},
		{
			name:   "nil",
			inputs: nil,
			want:   Values{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanInputs(tt.inputs))
		})
	}
}

func TestCleanInputsDoesNotMutate(t *testing.T) {
	inputs := Values{"a": "1", "a#type": "String"}

	CleanInputs(inputs)

	assert.Len(t, inputs, 2)
}

func TestUnmarshalTaskInstance(t *testing.T) {
	var ti TaskInstance

	err := json.Unmarshal([]byte(`{"id": "a1b2", "catalogTaskDefinitionNamespace": "sample",
		"catalogTaskDefinitionName": "simple", "inputData": {"arg": "x", "arg#type": "String"}}`), &ti)

	require.NoError(t, err)
	assert.Equal(t, InstanceId("a1b2"), ti.Id)
	assert.Equal(t, "sample", ti.Namespace)
	assert.Equal(t, "simple", ti.Name)
	assert.Equal(t, Values{"arg": "x", "arg#type": "String"}, ti.InputData)

	err = json.Unmarshal([]byte(`{"id": 42}`), &ti)

	require.NoError(t, err)
	assert.Equal(t, InstanceId("42"), ti.Id)
}

func TestMarshalTaskStatus(t *testing.T) {
	data, err := json.Marshal(&TaskStatus{TaskInstanceId: "42", Status: Completed, Message: ""})

	require.NoError(t, err)
	assert.JSONEq(t, `{"taskInstanceId": "42", "status": "Completed", "message": "", "outputValues": null}`,
		string(data))

	progress := 0.5
	data, err = json.Marshal(&TaskStatus{TaskInstanceId: "42", Status: InProgress, Message: "half",
		ProgressPercentage: &progress})

	require.NoError(t, err)
	assert.JSONEq(t, `{"taskInstanceId": "42", "status": "InProgress", "message": "half",
		"outputValues": null, "progressPercentage": 0.5}`, string(data))
}

func TestValuesAccessors(t *testing.T) {
	v := Values{"s": "abc", "n": "12", "f": 3.0, "half": 2.5, "b": true}

	s, err := v.String("s")
	assert.NoError(t, err)
	assert.Equal(t, "abc", s)

	s, err = v.String("f")
	assert.NoError(t, err)
	assert.Equal(t, "3", s)

	n, err := v.Int("n")
	assert.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = v.Int("f")
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = v.Int("half")
	assert.Error(t, err)

	_, err = v.Int("s")
	assert.EqualError(t, err, `Invalid input parameter s: "abc" is not an integer`)

	_, err = v.String("missing")
	assert.EqualError(t, err, "Missing input parameter: missing")
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, InProgress.IsTerminal())
	assert.True(t, Error.IsTerminal())
	assert.True(t, Completed.IsTerminal())
}

func TestInvoke(t *testing.T) {
	ctx := context.Background()

	result := Invoke(ctx, "ok", func(_ context.Context, _ Notifier, inputs Values) (Values, error) {
		return Values{"x": inputs["in"]}, nil
	}, nil, Values{"in": 1})

	assert.False(t, result.Failed())
	assert.Equal(t, Values{"x": 1}, result.Outputs)

	cause := errors.New("boom")
	result = Invoke(ctx, "failing", func(_ context.Context, _ Notifier, _ Values) (Values, error) {
		return Values{"x": 1}, cause
	}, nil, Values{})

	var execErr *HandlerExecutionError

	assert.True(t, result.Failed())
	assert.True(t, errors.As(result.Err, &execErr))
	assert.True(t, errors.Is(result.Err, cause))
	assert.Equal(t, "failing", execErr.TaskName)
}

func TestInvokeRecoversPanic(t *testing.T) {
	result := Invoke(context.Background(), "zero_division",
		func(_ context.Context, _ Notifier, inputs Values) (Values, error) {
			zero := len(inputs)

			return Values{"x": 1 / zero}, nil
		}, nil, Values{})

	var execErr *HandlerExecutionError

	assert.True(t, result.Failed())
	assert.Nil(t, result.Outputs)
	assert.True(t, errors.As(result.Err, &execErr))
	assert.Contains(t, result.Err.Error(), "divide by zero")
}
