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

package log_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/assert"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
)

func TestMessages(t *testing.T) {
	ctx := log.Testing(t)
	buf := &bytes.Buffer{}
	lctx := log.Put(context.Background(), log.New(buf, log.Info))
	lctx = log.Enter(lctx, "archive")
	lctx = log.V{"file": "scene.bar"}.Bind(lctx)

	log.D(lctx, "hidden %d", 1)
	log.I(lctx, "shown %d", 2)
	log.W(lctx, "warned")

	out := assert.For(ctx, "output").ThatString(buf.String())
	out.DoesNotContain("hidden")
	out.Contains("shown 2")
	out.Contains("warned")
	out.Contains("archive")
	out.Contains("scene.bar")
}

func TestNoLogger(t *testing.T) {
	// Must not panic without an installed logger.
	log.I(context.Background(), "dropped")
}

func TestFatalStops(t *testing.T) {
	ctx := log.Testing(t)
	buf := &bytes.Buffer{}
	lctx := log.Put(context.Background(), log.New(buf, log.Info))
	defer func() {
		assert.For(ctx, "recover").That(recover()).Equals(log.Stop("stop now"))
		assert.For(ctx, "output").ThatString(buf.String()).Contains("stop now")
	}()
	log.F(lctx, true, "stop %s", "now")
}

func TestFatalWithoutStop(t *testing.T) {
	ctx := log.Testing(t)
	buf := &bytes.Buffer{}
	log.F(log.Put(context.Background(), log.New(buf, log.Info)), false, "carry %s", "on")
	assert.For(ctx, "output").ThatString(buf.String()).Contains("carry on")
}

func TestErr(t *testing.T) {
	ctx := log.Testing(t)
	vctx := log.V{"id": 1000, "type": "Mesh"}.Bind(context.Background())
	cause := errors.New("short read")
	err := log.Err(vctx, cause, "Reading object")
	assert.For(ctx, "cause").ThatError(err).HasCause(cause)
	assert.For(ctx, "message").ThatError(err).HasMessage("Reading object [id: 1000, type: Mesh]: short read")

	err = log.Errf(context.Background(), nil, "Level %d", 2)
	assert.For(ctx, "no cause").ThatError(err).HasMessage("Level 2")
}

func TestValuesOverride(t *testing.T) {
	ctx := log.Testing(t)
	vctx := log.V{"a": 1, "b": 2}.Bind(context.Background())
	vctx = log.V{"b": 3}.Bind(vctx)
	assert.For(ctx, "message").ThatError(log.Err(vctx, nil, "msg")).HasMessage("msg [a: 1, b: 3]")
}

func TestSeverityFlag(t *testing.T) {
	ctx := log.Testing(t)
	var s log.Severity
	assert.For(ctx, "set warning").ThatError(s.Set("warning")).Succeeded()
	assert.For(ctx, "warning").That(s).Equals(log.Warning)
	assert.For(ctx, "set D").ThatError(s.Set("D")).Succeeded()
	assert.For(ctx, "debug").That(s).Equals(log.Debug)
	assert.For(ctx, "set loud").ThatError(s.Set("loud")).Failed()
	assert.For(ctx, "name").ThatString(s.String()).Equals("Debug")
}

type recorder struct {
	failed, stopped bool
	lines           []string
}

func (r *recorder) Logf(f string, args ...interface{})   { r.lines = append(r.lines, f) }
func (r *recorder) Errorf(f string, args ...interface{}) { r.failed = true }
func (r *recorder) Fail()                                { r.failed = true }
func (r *recorder) Failed() bool                         { return r.failed }
func (r *recorder) Name() string                         { return "recorder" }
func (r *recorder) FailNow()                             { r.failed, r.stopped = true, true }

func TestTestingVerdicts(t *testing.T) {
	ctx := log.Testing(t)
	r := &recorder{}
	rctx := log.Testing(r)
	log.I(rctx, "fine")
	assert.For(ctx, "info").ThatBoolean(r.failed).IsFalse()
	log.E(rctx, "broken")
	assert.For(ctx, "error").ThatBoolean(r.failed).IsTrue()
	assert.For(ctx, "error stops").ThatBoolean(r.stopped).IsFalse()
	func() {
		defer func() { recover() }()
		log.F(rctx, true, "fatal")
	}()
	assert.For(ctx, "fatal stops").ThatBoolean(r.stopped).IsTrue()
}
