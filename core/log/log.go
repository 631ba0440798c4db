// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log provides context carried logging.
//
// The logger travels inside a context.Context. Helpers such as I and E pull it
// back out, so code that is handed a context can log without being handed a
// logger. Values bound with V.Bind are attached to every message logged from
// the returned context.
package log

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type loggerKeyTy string

const loggerKey loggerKeyTy = "log.loggerKey"

// Logger is the logger in use for a context, with the bound values applied.
type Logger struct {
	s *zap.SugaredLogger
}

// Put returns a new context with the zap logger l installed.
func Put(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Get returns the zap logger installed in ctx, or a no-op logger if there
// is none.
func Get(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// From returns a new Logger from the context ctx.
func From(ctx context.Context) *Logger {
	l := Get(ctx)
	if n := getName(ctx); n != "" {
		l = l.Named(n)
	}
	if f := getValues(ctx).fields(); len(f) > 0 {
		l = l.With(f...)
	}
	return &Logger{s: l.Sugar()}
}

// Enter returns a context whose messages are tagged with the name n.
// Nested calls join the names with a dot.
func Enter(ctx context.Context, n string) context.Context {
	if p := getName(ctx); p != "" {
		n = p + "." + n
	}
	return context.WithValue(ctx, nameKey, n)
}

type nameKeyTy string

const nameKey nameKeyTy = "log.nameKey"

func getName(ctx context.Context) string {
	n, _ := ctx.Value(nameKey).(string)
	return n
}

// D logs a debug message to the logging target.
func D(ctx context.Context, fmt string, args ...interface{}) { From(ctx).D(fmt, args...) }

// I logs a info message to the logging target.
func I(ctx context.Context, fmt string, args ...interface{}) { From(ctx).I(fmt, args...) }

// W logs a warning message to the logging target.
func W(ctx context.Context, fmt string, args ...interface{}) { From(ctx).W(fmt, args...) }

// E logs a error message to the logging target.
func E(ctx context.Context, fmt string, args ...interface{}) { From(ctx).E(fmt, args...) }

// F logs a fatal message to the logging target.
// If stopProcess is true then the message indicates the process should stop.
func F(ctx context.Context, stopProcess bool, fmt string, args ...interface{}) {
	From(ctx).F(fmt, stopProcess, args...)
}

// D logs a debug message to the logging target.
func (l *Logger) D(fmt string, args ...interface{}) { l.s.Debugf(fmt, args...) }

// I logs a info message to the logging target.
func (l *Logger) I(fmt string, args ...interface{}) { l.s.Infof(fmt, args...) }

// W logs a warning message to the logging target.
func (l *Logger) W(fmt string, args ...interface{}) { l.s.Warnf(fmt, args...) }

// E logs a error message to the logging target.
func (l *Logger) E(fmt string, args ...interface{}) { l.s.Errorf(fmt, args...) }

// F logs a fatal message to the logging target.
// Unlike zap's own Fatal, the process is only stopped when stopProcess is set,
// and it is stopped with a panic so deferred cleanup still runs. Stopping
// messages are logged at DPanic level, which test loggers treat as fatal.
func (l *Logger) F(msg string, stopProcess bool, args ...interface{}) {
	text := fmt.Sprintf(msg, args...)
	if !stopProcess {
		l.s.Errorf("%s", text)
		return
	}
	l.s.DPanicf("%s", text)
	panic(Stop(text))
}

// Stop is the panic value raised by a fatal message that stops the process.
type Stop string

func (s Stop) String() string { return string(s) }
