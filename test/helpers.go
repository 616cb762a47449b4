// Package test holds shared helpers for tests elsewhere in this module.
package test

import (
	"context"
	"testing"
)

// Context returns a context cancelled automatically at the end of the test.
func Context(t testing.TB) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return ctx
}
