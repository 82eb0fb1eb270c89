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

func registerAnnotationHandlers(d *Dispatcher) {
	d.register(syntax.KindMarkerAnnotation, emitChildrenSpaced)
	d.register(syntax.KindAnnotation, emitChildrenSpaced)
	d.register(syntax.KindAnnotationArgList, emitAnnotationArgList)
	d.register(syntax.KindElementValuePair, emitChildrenSpaced)
}

func emitAnnotationArgList(c *Context, n syntax.Node) {
	emitDelimitedNodes(c, "(", n.NamedChildren(), ")")
}
