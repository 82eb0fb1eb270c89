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

import "github.com/speakeasy-api/javafmt/internal/syntax"

func registerTypeHandlers(d *Dispatcher) {
	d.register(syntax.KindArrayType, emitChildrenSpaced)
	d.register(syntax.KindScopedTypeIdent, emitChildrenSpaced)
	d.register(syntax.KindWildcard, emitChildrenSpaced)
	d.register(syntax.KindGenericType, emitChildrenSpaced)
	d.register(syntax.KindTypeArguments, emitTypeArguments)
	d.register(syntax.KindTypeParameters, emitTypeParameters)
	d.register(syntax.KindTypeParameter, emitChildrenSpaced)
}

// emitTypeGeneric is the category fallback Context.Emit uses for
// type-like kinds with no registered handler (bare identifiers used as
// a type name): they carry no internal structure, so their text is
// already the whole answer.
func emitTypeGeneric(c *Context, n syntax.Node) {
	c.Text(n.Text())
}

func emitTypeArguments(c *Context, n syntax.Node) {
	emitDelimitedNodes(c, "<", n.NamedChildren(), ">")
}

func emitTypeParameters(c *Context, n syntax.Node) {
	emitDelimitedNodes(c, "<", n.NamedChildren(), ">")
}
