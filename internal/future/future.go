// Copyright 2024 The javafmt Authors
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

// Package future implements future/promise primitives. cmd/javafmt uses
// it to format a batch of files concurrently, one future per file: each
// file is an independent Format call with its own internal/gen.Context
// (spec.md 5 - "each file is an independent call, no synchronization
// required"), so fanning them out this way needs no locking beyond
// waiting on each future's Get. Adapted from the teacher's
// jadep/future package.
package future

// Value implements a future/promise for an arbitrary value.
type Value struct {
	value interface{}

	// ready is a broadcast channel.
	ready chan bool
}

// New returns a new Value future, whose value is computed by f().
// f() is called concurrently - New doesn't block.
func New(f func() interface{}) *Value {
	result := &Value{nil, make(chan bool)}
	go func() {
		result.value = f()
		close(result.ready)
	}()
	return result
}

// Get returns the value computed by the function given to New. It
// blocks until the value is ready.
func (f *Value) Get() interface{} {
	<-f.ready
	return f.value
}

// Immediate returns a Value which resolves to value without spawning a
// goroutine.
func Immediate(value interface{}) *Value {
	v := &Value{value: value, ready: make(chan bool)}
	close(v.ready)
	return v
}
