// Package must helps you do things that must not fail.
//
// Example:
//
//	var apiURL = must.Get(url.Parse(...))
//	must.Do(telemetry.Shutdown(ctx))
package must

// Do panics if err is non-nil.
func Do(err error) {
	if err != nil {
		panic(err)
	}
}

// Get returns v, and panics if err is non-nil.
func Get[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
