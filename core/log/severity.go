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

package log

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Severity defines the severity of a logging message.
type Severity int

// The values must be identical to values in zapcore.Level, offset so that the
// zero value is Info.
const (
	Debug   = Severity(zapcore.DebugLevel)
	Info    = Severity(zapcore.InfoLevel)
	Warning = Severity(zapcore.WarnLevel)
	Error   = Severity(zapcore.ErrorLevel)
	Fatal   = Severity(zapcore.FatalLevel)
)

var severityNames = map[Severity]string{
	Debug:   "Debug",
	Info:    "Info",
	Warning: "Warning",
	Error:   "Error",
	Fatal:   "Fatal",
}

func (s Severity) String() string {
	if n, ok := severityNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Set parses s into the severity, matching the name or its first letter.
// It implements flag.Value.
func (s *Severity) Set(v string) error {
	for sev, name := range severityNames {
		if strings.EqualFold(v, name) || strings.EqualFold(v, name[:1]) {
			*s = sev
			return nil
		}
	}
	return fmt.Errorf("Unknown severity %q", v)
}

func (s Severity) level() zapcore.Level { return zapcore.Level(s) }

// New returns a zap logger that writes human readable lines at or above the
// severity s to w.
func New(w io.Writer, s Severity) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		s.level(),
	)
	return zap.New(core)
}
