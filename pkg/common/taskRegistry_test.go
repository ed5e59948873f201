package common

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type Mock struct {
	t *testing.T

	registry *Registry
}

func newMock(t *testing.T) (m *Mock) {
	m = &Mock{}
	m.t = t
	m.registry = NewRegistry("sample")

	return
}

func setupTest(m *Mock) func() {
	if m == nil {
		panic("Mock not initialized")
	}

	if err := m.registry.Register("short", HandleShortTest); err != nil {
		panic(err)
	}

	return func() {
	}
}

func HandleShortTest(_ context.Context, _ Notifier, _ Values) (Values, error) {
	return Values{}, nil
}

func TestMain(m *testing.M) {
	//	log.Logger().Level = logrus.TraceLevel

	os.Exit(m.Run())
}

func TestResolveRegisteredTask(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	handler, ok := m.registry.Resolve("short")

	assert.True(t, ok)
	assert.NotNil(t, handler)
}

func TestResolveUnknownTask(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	handler, ok := m.registry.Resolve("long")

	assert.False(t, ok)
	assert.Nil(t, handler)
}

func TestRegisterDuplicateTask(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	err := m.registry.Register("short", HandleShortTest)

	assert.EqualError(t, err, "Task(short) already registered in namespace sample")
}

func TestRegisterInvalidTask(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	assert.Error(t, m.registry.Register("", HandleShortTest))
	assert.Error(t, m.registry.Register("nil", nil))
}

func TestGetRegisterTasks(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	assert.Nil(t, m.registry.Register("alpha", HandleShortTest))

	assert.Equal(t, []string{"alpha", "short"}, m.registry.Names())
	assert.Equal(t, "sample", m.registry.Namespace())
}

func TestEmptyRegistryNames(t *testing.T) {
	assert.Equal(t, []string{}, NewRegistry("empty").Names())
}
