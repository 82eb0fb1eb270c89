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

func registerDeclHandlers(d *Dispatcher) {
	d.register(syntax.KindProgram, emitProgram)
	d.register(syntax.KindPackageDeclaration, emitChildrenSpaced)
	// import_declaration has no registered handler: it only ever occurs
	// as a direct child of program, and emitProgram's import block
	// (imports.go) handles the whole contiguous run itself, since
	// reordering imports for spec.md 8's import-group invariant can't be
	// expressed as a per-node handler.

	d.register(syntax.KindClassDeclaration, emitClassDeclaration)
	d.register(syntax.KindInterfaceDeclaration, emitInterfaceDeclaration)
	d.register(syntax.KindEnumDeclaration, emitEnumDeclaration)
	d.register(syntax.KindEnumBody, emitEnumBody)
	d.register(syntax.KindEnumConstant, emitChildrenSpaced)
	d.register(syntax.KindRecordDeclaration, emitRecordDeclaration)
	d.register(syntax.KindAnnotationTypeDecl, emitAnnotationTypeDeclaration)
	d.register(syntax.Kind("annotation_type_body"), emitMemberBody)

	d.register(syntax.KindMethodDeclaration, emitMethodDeclaration)
	d.register(syntax.KindConstructorDeclaration, emitConstructorDeclaration)
	d.register(syntax.KindFieldDeclaration, emitFieldDeclaration)
	d.register(syntax.KindLocalVariableDecl, emitLocalVariableDeclaration)
	d.register(syntax.KindVariableDeclarator, emitVariableDeclarator)

	d.register(syntax.KindFormalParameters, emitFormalParameters)
	d.register(syntax.KindFormalParameter, emitFormalParameter)
	d.register(syntax.KindSpreadParameter, emitChildrenSpaced)

	d.register(syntax.KindStaticInitializer, emitStaticInitializer)
	d.register(syntax.KindClassBody, emitMemberBody)
	d.register(syntax.KindInterfaceBody, emitMemberBody)
	d.register(syntax.KindThrows, emitThrows)
}

// emitProgram prints the compilation unit: package declaration, import
// block, then top-level type declarations. Imports are regrouped and
// resorted rather than kept in source order (spec.md 8, invariant 6:
// java.*, javax.*, other, static, each group ascending lexicographic).
// A blank line is forced after the import block even when the source
// had none, the way google-java-format and palantir-java-format both
// normalize it; every other blank-line gap is preserved (clamped to
// one, spec.md 4's blank-line rule).
func emitProgram(c *Context, n syntax.Node) {
	children := n.NamedChildren()
	var prevEnd uint32
	havePrev := false
	forceBlank := false

	for i := 0; i < len(children); {
		ch := children[i]
		if ch.Kind() == syntax.KindImportDeclaration {
			start := i
			for i < len(children) && children[i].Kind() == syntax.KindImportDeclaration {
				i++
			}
			imports := children[start:i]
			emitImportBlock(c, imports, havePrev, prevEnd)
			prevEnd = imports[len(imports)-1].EndByte()
			havePrev = true
			forceBlank = true
			continue
		}

		if havePrev {
			c.Newline()
			if forceBlank || c.BlankLineBefore(prevEnd, ch.StartByte()) {
				c.Newline()
			}
		}
		c.Emit(ch)
		c.emitTrailingComment(ch.EndByte())
		prevEnd = ch.EndByte()
		havePrev = true
		forceBlank = false
		i++
	}
}

// emitModifiers prints a declaration's "modifiers" child, if present:
// each annotation on its own line, each keyword modifier (public,
// static, final, ...) inline followed by a space, in source order.
func emitModifiers(c *Context, n syntax.Node) {
	mods := n.FirstChildOfKind(syntax.Kind("modifiers"))
	if !mods.IsValid() {
		return
	}
	for _, child := range mods.Children() {
		switch child.Kind() {
		case syntax.KindMarkerAnnotation, syntax.KindAnnotation:
			c.Emit(child)
			c.Newline()
		default:
			if !child.IsNamed() {
				c.Emit(child)
				c.Space()
			}
		}
	}
}

func emitClassDeclaration(c *Context, n syntax.Node) {
	emitModifiers(c, n)
	c.Text("class")
	c.Space()
	c.Emit(n.ChildByFieldName("name"))
	if tp := n.ChildByFieldName("type_parameters"); tp.IsValid() {
		c.Emit(tp)
	}
	if sc := n.ChildByFieldName("superclass"); sc.IsValid() {
		c.Space()
		c.Text("extends")
		c.Space()
		c.Emit(sc)
	}
	if ifaces := n.ChildByFieldName("interfaces"); ifaces.IsValid() {
		c.Space()
		c.Text("implements")
		c.Space()
		emitJoined(c, ifaces.NamedChildren(), ", ")
	}
	c.Space()
	c.Emit(n.ChildByFieldName("body"))
}

func emitInterfaceDeclaration(c *Context, n syntax.Node) {
	emitModifiers(c, n)
	c.Text("interface")
	c.Space()
	c.Emit(n.ChildByFieldName("name"))
	if tp := n.ChildByFieldName("type_parameters"); tp.IsValid() {
		c.Emit(tp)
	}
	if ext := n.ChildByFieldName("interfaces"); ext.IsValid() {
		c.Space()
		c.Text("extends")
		c.Space()
		emitJoined(c, ext.NamedChildren(), ", ")
	}
	c.Space()
	c.Emit(n.ChildByFieldName("body"))
}

func emitEnumDeclaration(c *Context, n syntax.Node) {
	emitModifiers(c, n)
	c.Text("enum")
	c.Space()
	c.Emit(n.ChildByFieldName("name"))
	if ifaces := n.ChildByFieldName("interfaces"); ifaces.IsValid() {
		c.Space()
		c.Text("implements")
		c.Space()
		emitJoined(c, ifaces.NamedChildren(), ", ")
	}
	c.Space()
	c.Emit(n.ChildByFieldName("body"))
}

func emitEnumBody(c *Context, n syntax.Node) {
	c.Text("{")
	consts := n.ChildrenOfKind(syntax.KindEnumConstant)
	c.PushIndent(false)
	for i, ec := range consts {
		c.Newline()
		c.Emit(ec)
		if i < len(consts)-1 {
			c.Text(",")
		}
	}
	if n.FirstChildOfKind(syntax.KindSemicolon).IsValid() {
		c.Text(";")
	}
	for _, decls := range n.ChildrenOfKind(syntax.Kind("enum_body_declarations")) {
		for _, m := range decls.NamedChildren() {
			c.Newline()
			c.Emit(m)
		}
	}
	c.PopIndent(false)
	c.Newline()
	c.Text("}")
}

func emitRecordDeclaration(c *Context, n syntax.Node) {
	emitModifiers(c, n)
	c.Text("record")
	c.Space()
	c.Emit(n.ChildByFieldName("name"))
	if tp := n.ChildByFieldName("type_parameters"); tp.IsValid() {
		c.Emit(tp)
	}
	if params := n.FirstChildOfKind(syntax.KindFormalParameters); params.IsValid() {
		c.Emit(params)
	}
	if ifaces := n.ChildByFieldName("interfaces"); ifaces.IsValid() {
		c.Space()
		c.Text("implements")
		c.Space()
		emitJoined(c, ifaces.NamedChildren(), ", ")
	}
	c.Space()
	c.Emit(n.ChildByFieldName("body"))
}

func emitAnnotationTypeDeclaration(c *Context, n syntax.Node) {
	emitModifiers(c, n)
	c.Text("@interface")
	c.Space()
	c.Emit(n.ChildByFieldName("name"))
	c.Space()
	c.Emit(n.FirstChildOfKind(syntax.Kind("annotation_type_body")))
}

// emitMemberBody backs class_body, interface_body, and
// annotation_type_body: a brace-delimited, one-indent-level list of
// members, each on its own line, preserving at most one blank line
// between members (spec.md 4's clamp).
func emitMemberBody(c *Context, n syntax.Node) {
	c.Text("{")
	members := n.NamedChildren()
	if len(members) == 0 {
		c.Text("}")
		return
	}
	c.PushIndent(false)
	var prevEnd uint32
	havePrev := false
	for _, m := range members {
		c.Newline()
		if havePrev && c.BlankLineBefore(prevEnd, m.StartByte()) {
			c.Newline()
		}
		c.Emit(m)
		c.emitTrailingComment(m.EndByte())
		prevEnd = m.EndByte()
		havePrev = true
	}
	c.PopIndent(false)
	c.Newline()
	c.Text("}")
}

func emitFieldDeclaration(c *Context, n syntax.Node) {
	emitModifiers(c, n)
	c.Emit(n.ChildByFieldName("type"))
	c.Space()
	emitDeclaratorList(c, n.ChildrenOfKind(syntax.KindVariableDeclarator))
	c.Text(";")
}

func emitLocalVariableDeclaration(c *Context, n syntax.Node) {
	emitModifiers(c, n)
	c.Emit(n.ChildByFieldName("type"))
	c.Space()
	emitDeclaratorList(c, n.ChildrenOfKind(syntax.KindVariableDeclarator))
	// A for-statement's init clause shares this node kind but carries no
	// semicolon of its own - the enclosing for_statement supplies it.
	if n.FirstChildOfKind(syntax.KindSemicolon).IsValid() {
		c.Text(";")
	}
}

func emitVariableDeclarator(c *Context, n syntax.Node) {
	c.Emit(n.ChildByFieldName("name"))
	if dims := n.FirstChildOfKind(syntax.Kind("dimensions")); dims.IsValid() {
		c.Emit(dims)
	}
	if val := n.ChildByFieldName("value"); val.IsValid() {
		c.Text(" = ")
		c.Emit(val)
	}
}

func emitFormalParameters(c *Context, n syntax.Node) {
	emitDelimitedNodes(c, "(", n.NamedChildren(), ")")
}

func emitFormalParameter(c *Context, n syntax.Node) {
	emitModifiers(c, n)
	c.Emit(n.ChildByFieldName("type"))
	c.Space()
	c.Emit(n.ChildByFieldName("name"))
	if dims := n.FirstChildOfKind(syntax.Kind("dimensions")); dims.IsValid() {
		c.Emit(dims)
	}
}

func emitStaticInitializer(c *Context, n syntax.Node) {
	c.Text("static")
	c.Space()
	c.Emit(n.FirstChildOfKind(syntax.KindBlock))
}

func emitThrows(c *Context, n syntax.Node) {
	c.Text("throws")
	c.Space()
	emitJoined(c, n.NamedChildren(), ", ")
}

func emitMethodDeclaration(c *Context, n syntax.Node) {
	emitModifiers(c, n)
	if tp := n.ChildByFieldName("type_parameters"); tp.IsValid() {
		c.Emit(tp)
		c.Space()
	}
	c.Emit(n.ChildByFieldName("type"))
	c.Space()
	c.Emit(n.ChildByFieldName("name"))
	c.Emit(n.ChildByFieldName("parameters"))
	if dims := n.FirstChildOfKind(syntax.Kind("dimensions")); dims.IsValid() {
		c.Emit(dims)
	}
	if th := n.FirstChildOfKind(syntax.KindThrows); th.IsValid() {
		c.Space()
		c.Emit(th)
	}
	if body := n.ChildByFieldName("body"); body.IsValid() {
		c.Space()
		c.Emit(body)
	} else {
		c.Text(";")
	}
}

func emitConstructorDeclaration(c *Context, n syntax.Node) {
	emitModifiers(c, n)
	if tp := n.ChildByFieldName("type_parameters"); tp.IsValid() {
		c.Emit(tp)
		c.Space()
	}
	c.Emit(n.ChildByFieldName("name"))
	c.Emit(n.ChildByFieldName("parameters"))
	if th := n.FirstChildOfKind(syntax.KindThrows); th.IsValid() {
		c.Space()
		c.Emit(th)
	}
	c.Space()
	c.Emit(n.ChildByFieldName("body"))
}
