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

package assert

import "reflect"

// OnMap is the result of calling ThatMap on an Assertion.
type OnMap struct {
	Assertion
	m interface{}
}

// ThatMap returns an OnMap for assertions on map type objects.
func (a Assertion) ThatMap(m interface{}) OnMap {
	return OnMap{Assertion: a, m: m}
}

// IsLength asserts that the map has exactly length entries.
func (o OnMap) IsLength(length int) bool {
	n := reflect.ValueOf(o.m).Len()
	return o.Compare(n, "length ==", length).Test(n == length)
}

// DeepEquals asserts that the map is structurally equal to expected.
func (o OnMap) DeepEquals(expected interface{}) bool {
	return testDiff(&o.Assertion, o.m, expected)
}
