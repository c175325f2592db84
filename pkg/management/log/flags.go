/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package log

import (
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"k8s.io/klog/v2"
	ctrl "sigs.k8s.io/controller-runtime"
)

// Flags is the set of command line flags controlling the logging
// behavior of the process
type Flags struct {
	logLevel       string
	logDestination string
}

// AddFlags binds the logging flags to the passed flag set
func (flags *Flags) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&flags.logLevel, "log-level", InfoLevelString,
		"the desired log level, one of error, warning, info, debug and trace")
	flagSet.StringVar(&flags.logDestination, "log-destination", "",
		"where the log stream will be written")
}

// ConfigureLogging sets up the logging subsystem according to the
// flag values, installing the resulting logger as the default one for
// this package, for controller-runtime, and for klog
func (flags *Flags) ConfigureLogging() {
	logger := flags.buildZapper()
	logrLogger := zapr.NewLogger(logger)

	SetLogger(logrLogger)
	ctrl.SetLogger(logrLogger)
	klog.SetLogger(logrLogger.WithName("klog"))
}

func (flags *Flags) buildZapper() *zap.Logger {
	verbosity := infoLevel
	switch flags.logLevel {
	case ErrorLevelString:
		verbosity = 0
	case WarningLevelString:
		verbosity = warningLevel
	case InfoLevelString:
		verbosity = infoLevel
	case DebugLevelString:
		verbosity = debugLevel
	case TraceLevelString:
		verbosity = traceLevel
	}

	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// zapr translates logr verbosities into negative zap levels
	config.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity)) // #nosec G115
	if flags.logDestination != "" {
		config.OutputPaths = []string{flags.logDestination}
		config.ErrorOutputPaths = []string{flags.logDestination}
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return logger
}
