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

// Package assert is a fluent assertion library for tests.
//
// Assertions start from a target, usually the context returned by
// log.Testing, and a title:
//
//	ctx := log.Testing(t)
//	assert.For(ctx, "count").That(n).Equals(3)
//	assert.For(ctx, "load").Critical().ThatError(err).Succeeded()
//
// A failed assertion reports the title, what was found, what was expected
// and where the assertion was made. Critical assertions stop the test.
package assert
