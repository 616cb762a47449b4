package flags

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-server-sdk/v6/ldcomponents"
	"github.com/launchdarkly/go-server-sdk/v6/subsystems"
	"go.uber.org/zap"
)

func configureLogger(log *zap.Logger) subsystems.ComponentConfigurer[subsystems.LoggingConfiguration] {
	sugar := log.Sugar().With("component", "launchdarkly")

	loggers := ldlog.NewDefaultLoggers()
	loggers.SetBaseLoggerForLevel(ldlog.Debug, &wrapLog{sugar.Debugln, sugar.Debugf})
	loggers.SetBaseLoggerForLevel(ldlog.Info, &wrapLog{sugar.Infoln, sugar.Infof})
	loggers.SetBaseLoggerForLevel(ldlog.Warn, &wrapLog{sugar.Warnln, sugar.Warnf})
	loggers.SetBaseLoggerForLevel(ldlog.Error, &wrapLog{sugar.Errorln, sugar.Errorf})

	return ldcomponents.Logging().Loggers(loggers)
}

type wrapLog struct {
	println func(values ...interface{})
	printf  func(format string, values ...interface{})
}

func (l *wrapLog) Println(values ...interface{}) {
	l.println(values...)
}

func (l *wrapLog) Printf(format string, values ...interface{}) {
	l.printf(format, values...)
}
