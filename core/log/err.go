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
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Err creates a new error that wraps cause with the message and the values
// bound to ctx.
func Err(ctx context.Context, cause error, msg string) error {
	msg += describe(getValues(ctx))
	if cause == nil {
		return errors.New(msg)
	}
	return errors.Wrap(cause, msg)
}

// Errf creates a new error that wraps cause with the formatted message and the
// values bound to ctx.
func Errf(ctx context.Context, cause error, format string, args ...interface{}) error {
	return Err(ctx, cause, fmt.Sprintf(format, args...))
}

func describe(n *values) string {
	if n == nil {
		return ""
	}
	flat := n.flatten()
	if len(flat) == 0 {
		return ""
	}
	parts := make([]string, 0, len(flat))
	for k, v := range flat {
		parts = append(parts, fmt.Sprintf("%s: %v", k, v))
	}
	sort.Strings(parts)
	return " [" + strings.Join(parts, ", ") + "]"
}
