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

// Package binary declares the primitive value readers and writers that the
// archive codec is layered on.
//
// Both interfaces carry a sticky error: once a read or write fails every
// following call is a no-op returning a zero value, and Error reports the
// first failure. Callers can therefore issue a run of primitive calls and
// check for failure once at the end.
package binary
