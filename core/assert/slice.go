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

	"github.com/stretchr/testify/assert"
)

// OnSlice is the result of calling ThatSlice on an Assertion.
// It provides assertion tests that are specific to slice types.
type OnSlice struct {
	Assertion
	slice interface{}
}

// ThatSlice returns an OnSlice for assertions on slices and arrays.
// Calling this with any other type will result in panics.
func (a Assertion) ThatSlice(slice interface{}) OnSlice {
	return OnSlice{Assertion: a, slice: slice}
}

func (o OnSlice) len() int { return reflect.ValueOf(o.slice).Len() }

// IsEmpty asserts that the slice has no elements.
func (o OnSlice) IsEmpty() bool {
	return o.Compare(o.len(), "length ==", 0).Test(o.len() == 0)
}

// IsNotEmpty asserts that the slice has elements.
func (o OnSlice) IsNotEmpty() bool {
	return o.Compare(o.len(), "length >", 0).Test(o.len() > 0)
}

// IsLength asserts that the slice has exactly length elements.
func (o OnSlice) IsLength(length int) bool {
	return o.Compare(o.len(), "length ==", length).Test(o.len() == length)
}

// Equals asserts that the slice has the elements of expected, listing each
// element and marking the ones that differ.
func (o OnSlice) Equals(expected interface{}) bool {
	return o.Test(func() bool {
		gs, es := reflect.ValueOf(o.slice), reflect.ValueOf(expected)
		n := gs.Len()
		if es.Len() > n {
			n = es.Len()
		}
		equal := true
		for i := 0; i < n; i++ {
			switch {
			case i >= gs.Len():
				o.Printf("-\t%d\t", i)
				o.Println(es.Index(i).Interface())
				equal = false
			case i >= es.Len():
				o.Printf("+\t%d\t", i)
				o.Println(gs.Index(i).Interface())
				equal = false
			default:
				g, e := gs.Index(i).Interface(), es.Index(i).Interface()
				if assert.ObjectsAreEqual(e, g) {
					o.Printf("\t%d\t", i)
					o.Println(g)
				} else {
					o.Printf("*\t%d\t", i)
					o.Print(g)
					o.Printf("\t==>\t")
					o.Println(e)
					equal = false
				}
			}
		}
		return equal
	}())
}

// DeepEquals asserts that the slice is structurally equal to expected.
func (o OnSlice) DeepEquals(expected interface{}) bool {
	return testDiff(&o.Assertion, o.slice, expected)
}
