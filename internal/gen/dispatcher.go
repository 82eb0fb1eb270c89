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

package gen

import (
	"github.com/speakeasy-api/javafmt/config"
	"github.com/speakeasy-api/javafmt/internal/ir"
	"github.com/speakeasy-api/javafmt/internal/syntax"
)

// HandlerFunc emits IR items for n into c's builder.
type HandlerFunc func(c *Context, n syntax.Node)

// Dispatcher routes a syntax.Kind to the handler that knows how to
// print it. Kinds with no registered handler, and category fallbacks
// for type-like nodes, are handled directly in Context.Emit.
type Dispatcher struct {
	table map[syntax.Kind]HandlerFunc
}

func (d *Dispatcher) register(k syntax.Kind, h HandlerFunc) {
	d.table[k] = h
}

func (d *Dispatcher) lookup(k syntax.Kind) (HandlerFunc, bool) {
	h, ok := d.table[k]
	return h, ok
}

// NewDispatcher builds a Dispatcher with every handler registered.
// Handlers are grouped by construct family (declarations, statements,
// expressions, types, annotations) for the same reason the teacher's
// parser.go groups its visit cases: each family reads as a unit
// against the grammar's own production list.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{table: make(map[syntax.Kind]HandlerFunc)}
	registerDeclHandlers(d)
	registerStmtHandlers(d)
	registerExprHandlers(d)
	registerTypeHandlers(d)
	registerAnnotationHandlers(d)
	return d
}

var defaultDispatcher = NewDispatcher()

// Generate runs the full generation pass over root, producing the IR
// document internal/breaker renders. It is the single entry point the
// root javafmt package calls.
func Generate(source []byte, root syntax.Node, cfg *config.Config) ir.Doc {
	c := NewContext(source, cfg, root)
	c.Emit(root)
	c.FlushRemainingComments()
	return c.B.Build()
}
