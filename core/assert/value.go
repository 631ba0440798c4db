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

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// OnValue is the result of calling That on an Assertion.
// It provides assertion tests that work for any type.
type OnValue struct {
	Assertion
	value interface{}
}

// That returns an OnValue for the specified untyped value.
func (a Assertion) That(value interface{}) OnValue {
	return OnValue{Assertion: a, value: value}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr, reflect.Interface, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// IsNil asserts that the value is nil. Typed nils are allowed.
func (o OnValue) IsNil() bool {
	return o.Compare(o.value, "==", "nil").Test(isNil(o.value))
}

// IsNotNil asserts that the value is not nil. Typed nils also fail.
func (o OnValue) IsNotNil() bool {
	return o.Compare(o.value, "!=", "nil").Test(!isNil(o.value))
}

// Equals asserts that the value is equal to expect. Values of different
// types are never equal; byte slices compare by content.
func (o OnValue) Equals(expect interface{}) bool {
	return o.Compare(o.value, "==", expect).Test(assert.ObjectsAreEqual(expect, o.value))
}

// NotEquals asserts that the value is not equal to test.
func (o OnValue) NotEquals(test interface{}) bool {
	return o.Compare(o.value, "!=", test).Test(!assert.ObjectsAreEqual(test, o.value))
}

// DeepEquals asserts that the value is structurally equal to expect,
// printing the differences if it is not.
func (o OnValue) DeepEquals(expect interface{}) bool {
	return testDiff(&o.Assertion, o.value, expect)
}

// testDiff commits a (-expect +got) diff if value and expect differ.
func testDiff(a *Assertion, value, expect interface{}) bool {
	diff := cmp.Diff(expect, value)
	if diff == "" {
		return true
	}
	a.Add("Diff", "(-expect +got)")
	a.Printf("%s", diff)
	a.Println()
	return a.Test(false)
}
