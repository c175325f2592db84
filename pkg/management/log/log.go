/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

// Package log contains the logging infrastructure of the operator,
// wrapping a logr.Logger with the leveled interface used across the
// codebase
package log

import (
	"context"

	"github.com/go-logr/logr"
)

// Log levels, mapped onto logr verbosities
const (
	// ErrorLevelString is the string representation of the error level
	ErrorLevelString = "error"

	// WarningLevelString is the string representation of the warning level
	WarningLevelString = "warning"

	// InfoLevelString is the string representation of the info level
	InfoLevelString = "info"

	// DebugLevelString is the string representation of the debug level
	DebugLevelString = "debug"

	// TraceLevelString is the string representation of the trace level
	TraceLevelString = "trace"
)

const (
	warningLevel = 1
	infoLevel    = 2
	debugLevel   = 3
	traceLevel   = 4
)

// Logger is the leveled interface used by the operator code
type Logger interface {
	Enabled() bool
	Error(err error, msg string, keysAndValues ...interface{})
	Warning(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Trace(msg string, keysAndValues ...interface{})

	WithValues(keysAndValues ...interface{}) Logger
	WithName(name string) Logger

	// GetLogger returns the wrapped logr.Logger
	GetLogger() logr.Logger
}

type logger struct {
	logr.Logger
}

var defaultLog = logger{Logger: logr.Discard()}

// SetLogger installs the logr.Logger backing the package-level
// functions and the Logger returned by GetLogger. A Logger obtained
// from WithName or WithValues before this call keeps the logr.Logger
// that was installed when it was derived.
func SetLogger(logrLogger logr.Logger) {
	defaultLog.Logger = logrLogger
}

// GetLogger returns the default Logger
func GetLogger() Logger {
	return &defaultLog
}

func (l *logger) GetLogger() logr.Logger {
	return l.Logger
}

func (l *logger) Enabled() bool {
	return l.Logger.Enabled()
}

func (l *logger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.Logger.Error(err, msg, keysAndValues...)
}

func (l *logger) Warning(msg string, keysAndValues ...interface{}) {
	l.Logger.V(warningLevel).Info(msg, keysAndValues...)
}

func (l *logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.V(infoLevel).Info(msg, keysAndValues...)
}

func (l *logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.V(debugLevel).Info(msg, keysAndValues...)
}

func (l *logger) Trace(msg string, keysAndValues ...interface{}) {
	l.Logger.V(traceLevel).Info(msg, keysAndValues...)
}

func (l *logger) WithValues(keysAndValues ...interface{}) Logger {
	return &logger{Logger: l.Logger.WithValues(keysAndValues...)}
}

func (l *logger) WithName(name string) Logger {
	return &logger{Logger: l.Logger.WithName(name)}
}

// WithName returns the default Logger with a name attached
func WithName(name string) Logger {
	return defaultLog.WithName(name)
}

// WithValues returns the default Logger with key/value pairs attached
func WithValues(keysAndValues ...interface{}) Logger {
	return defaultLog.WithValues(keysAndValues...)
}

// Error logs an error line through the default Logger
func Error(err error, msg string, keysAndValues ...interface{}) {
	defaultLog.Error(err, msg, keysAndValues...)
}

// Warning logs a warning line through the default Logger
func Warning(msg string, keysAndValues ...interface{}) {
	defaultLog.Warning(msg, keysAndValues...)
}

// Info logs an info line through the default Logger
func Info(msg string, keysAndValues ...interface{}) {
	defaultLog.Info(msg, keysAndValues...)
}

// Debug logs a debug line through the default Logger
func Debug(msg string, keysAndValues ...interface{}) {
	defaultLog.Debug(msg, keysAndValues...)
}

// Trace logs a trace line through the default Logger
func Trace(msg string, keysAndValues ...interface{}) {
	defaultLog.Trace(msg, keysAndValues...)
}

// FromContext builds a Logger from the logr.Logger inside the passed
// context, falling back to the default Logger when no logger is there
func FromContext(ctx context.Context) Logger {
	logrLogger, err := logr.FromContext(ctx)
	if err != nil {
		return GetLogger()
	}

	return &logger{Logger: logrLogger}
}

// IntoContext injects a Logger into a context
func IntoContext(ctx context.Context, log Logger) context.Context {
	return logr.NewContext(ctx, log.GetLogger())
}

// SetupLogger returns the Logger of the passed context together with
// a context carrying it, creating one from the default Logger when
// needed
func SetupLogger(ctx context.Context) (Logger, context.Context) {
	log := FromContext(ctx)
	return log, IntoContext(ctx, log)
}
