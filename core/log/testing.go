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
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Testing returns a context whose logger writes to t at debug level.
// Errors fail the test and fatal messages stop it.
func Testing(t zaptest.TestingT) context.Context {
	return SubTest(context.Background(), t)
}

// SubTest keeps the values bound to ctx but sends its log output to t, so
// sub-tests report their own messages.
func SubTest(ctx context.Context, t zaptest.TestingT) context.Context {
	verdict := zap.Hooks(func(e zapcore.Entry) error {
		switch {
		case e.Level >= zapcore.DPanicLevel:
			t.FailNow()
		case e.Level >= zapcore.ErrorLevel:
			t.Fail()
		}
		return nil
	})
	l := zaptest.NewLogger(t, zaptest.Level(Debug.level()), zaptest.WrapOptions(verdict))
	return Put(ctx, l)
}
