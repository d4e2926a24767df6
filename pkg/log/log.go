/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log provides a logging abstraction for the stream access
// subsystem: warnings and trace output are routed through a small
// interface so callers can plug in whatever logging backend their
// host document engine already uses.
package log

import (
	stdlog "log"
	"io"
)

// Logger defines an interface for logging messages. Any backend that
// implements it (the standard library's *log.Logger, the zap adapter
// NewZap returns, a test spy) can be installed with the SetXxxLogger
// family.
type Logger interface {
	Printf(format string, args ...interface{})
	Println(args ...interface{})
}

type logger struct {
	log Logger
}

// The subsystem's defined loggers, matching the host engine's
// convention of a Debug/Info/Trace/Stats quadruple rather than a
// single severity-leveled logger.
var (
	Debug = &logger{}
	Info  = &logger{}
	Trace = &logger{}
	Stats = &logger{}
)

// SetDebugLogger sets the debug logger. Pass nil to silence it.
func SetDebugLogger(l Logger) { Debug.log = l }

// SetInfoLogger sets the info logger, used for advisory/warning
// conditions such as an unknown filter name or a Crypt filter in an
// unencrypted document.
func SetInfoLogger(l Logger) { Info.log = l }

// SetTraceLogger sets the trace logger, used for per-stage pipeline
// construction detail.
func SetTraceLogger(l Logger) { Trace.log = l }

// SetStatsLogger sets the stats logger.
func SetStatsLogger(l Logger) { Stats.log = l }

// SetDefaultLoggers wires Debug, Info and Stats to w (os.Stderr in
// production), each with its own prefix and a date/time stamp. Trace
// is installed with an io.Discard writer, so TraceEnabled reports true
// but trace output is dropped.
func SetDefaultLoggers(w io.Writer) {
	SetDebugLogger(stdlog.New(w, "DEBUG: ", stdlog.Ldate|stdlog.Ltime))
	SetInfoLogger(stdlog.New(w, "INFO: ", stdlog.Ldate|stdlog.Ltime))
	SetStatsLogger(stdlog.New(w, "STATS: ", stdlog.Ldate|stdlog.Ltime))
	SetTraceLogger(stdlog.New(io.Discard, "TRACE: ", stdlog.Ldate|stdlog.Ltime))
}

// DisableLoggers turns off all logging.
func DisableLoggers() {
	SetDebugLogger(nil)
	SetInfoLogger(nil)
	SetStatsLogger(nil)
	SetTraceLogger(nil)
}

// DebugEnabled reports whether a debug logger is installed, so a
// caller can skip building an expensive log message.
func DebugEnabled() bool { return Debug.log != nil }

// TraceEnabled reports whether a trace logger is installed.
func TraceEnabled() bool { return Trace.log != nil }

// InfoEnabled reports whether an info logger is installed.
func InfoEnabled() bool { return Info.log != nil }

func (l *logger) Printf(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Printf(format, args...)
}

func (l *logger) Println(args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Println(args...)
}
