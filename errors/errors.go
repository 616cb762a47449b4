// Package errors wires error reporting to Sentry.
package errors

import (
	"net/http"
	"os"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/warblr/go/logging"
	"github.com/warblr/go/version"
)

var logger = logging.New("errors").Sugar()

// Init configures the global Sentry client from SENTRY_DSN. Reporting is
// skipped entirely when the variable is unset.
func Init() {
	sentryDSN := os.Getenv("SENTRY_DSN")
	if sentryDSN == "" {
		logger.Warn("SENTRY_DSN not set: skipping Sentry initialization")
		return
	}

	logger.Info("initializing Sentry")
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              sentryDSN,
		AttachStacktrace: true,
		Release:          version.Version(),
	})
	if err != nil {
		logger.Warnf("failed to initialize Sentry client: %v", err)
	}
}

// Middleware returns HTTP middleware that reports panics to Sentry before
// re-panicking for the server's own recovery handling.
func Middleware() func(http.Handler) http.Handler {
	handler := sentryhttp.New(sentryhttp.Options{
		Repanic: true,
	})
	return handler.Handle
}
