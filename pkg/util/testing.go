package util

import (
	"runtime/debug"
	"testing"
)

func AssertPanic(t *testing.T) {
	if r := recover(); r != nil {
		t.Errorf("PANIC %+v\n%s", r, string(debug.Stack()))
	}
}
