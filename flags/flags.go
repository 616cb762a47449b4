// Package flags looks up feature flags in LaunchDarkly.
package flags

import (
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v6"

	"github.com/warblr/go/logging"
)

var currentClient *ld.LDClient
var logger = logging.New("flags")

var overrides = make(map[string]bool)

// Init connects to LaunchDarkly with the given SDK key. An empty key puts
// the client in offline mode, where every lookup returns its default.
func Init(key string) {
	log := logger.Sugar()

	config := ld.Config{
		Logging: configureLogger(logger),
	}

	if key == "" {
		config.Offline = true
	}

	client, err := ld.MakeCustomClient(key, config, 5*time.Second)
	if err != nil {
		log.Warnw("failed to make LaunchDarkly client", "error", err)
	}

	if !client.Initialized() {
		log.Warn("failed to initialize LaunchDarkly client")
	}

	currentClient = client
}

func Close() error {
	if currentClient == nil {
		return nil
	}
	return currentClient.Close()
}

// Flag looks up a boolean flag for the given context, defaulting to false.
func Flag(context *ldcontext.Context, name string) bool {
	return lookupDefault(context, name, false)
}

// Override sets flag overrides, which take precedence over LaunchDarkly.
// This is usually only used in tests.
func Override(f func(map[string]bool)) {
	f(overrides)
}

func ClearOverrides() {
	overrides = make(map[string]bool)
}

// FlagSystem looks up a boolean flag for the system context, for behavior
// that is not scoped to any particular user.
func FlagSystem(name string) bool {
	return lookupDefault(&systemUser, name, false)
}

// KillSwitch is like Flag but defaults to true, so losing contact with
// LaunchDarkly leaves the guarded behavior enabled.
func KillSwitch(context *ldcontext.Context, name string) bool {
	return lookupDefault(context, name, true)
}

func KillSwitchSystem(name string) bool {
	return lookupDefault(&systemUser, name, true)
}

func lookupDefault(context *ldcontext.Context, name string, defaultVal bool) bool {
	log := logger.Sugar()

	if result, ok := overrides[name]; ok {
		return result
	}
	if currentClient == nil {
		return defaultVal
	}
	if context == nil {
		log.Warnw("flags package was passed a nil context: returning default value", "flag", name, "default_value", defaultVal)
		return defaultVal
	}
	// BoolVariation only returns an error when flags are unavailable, in
	// which case it has already fallen back to the default.
	result, err := currentClient.BoolVariation(name, *context, defaultVal)
	if err != nil {
		log.Warnf("failed to fetch value for flag '%s' (returning default %v to caller): %v", name, defaultVal, err)
	}
	return result
}
