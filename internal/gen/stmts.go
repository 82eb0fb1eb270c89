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

func registerStmtHandlers(d *Dispatcher) {
	d.register(syntax.KindBlock, emitBlock)
	d.register(syntax.KindExpressionStatement, emitExpressionStatement)
	d.register(syntax.KindIfStatement, emitIfStatement)
	d.register(syntax.KindForStatement, emitForStatement)
	d.register(syntax.KindEnhancedForStatement, emitEnhancedForStatement)
	d.register(syntax.KindWhileStatement, emitWhileStatement)
	d.register(syntax.KindDoStatement, emitDoStatement)
	d.register(syntax.KindSwitchExpression, emitSwitchExpression)
	d.register(syntax.KindSwitchBlock, emitSwitchBlock)
	d.register(syntax.KindSwitchBlockStmtGroup, emitSwitchBlockStmtGroup)
	d.register(syntax.KindSwitchRule, emitSwitchRule)
	d.register(syntax.KindSwitchLabel, emitChildrenSpaced)
	d.register(syntax.KindTryStatement, emitTryStatement)
	d.register(syntax.KindTryWithResourcesStmt, emitTryWithResourcesStatement)
	d.register(syntax.KindResourceSpecification, emitResourceSpecification)
	d.register(syntax.KindCatchClause, emitCatchClause)
	d.register(syntax.KindCatchFormalParameter, emitChildrenSpaced)
	d.register(syntax.KindFinallyClause, emitFinallyClause)
	d.register(syntax.KindReturnStatement, emitReturnStatement)
	d.register(syntax.KindThrowStatement, emitThrowStatement)
	d.register(syntax.KindBreakStatement, emitBreakOrContinue("break"))
	d.register(syntax.KindContinueStatement, emitBreakOrContinue("continue"))
	d.register(syntax.KindYieldStatement, emitYieldStatement)
	d.register(syntax.KindSynchronizedStatement, emitSynchronizedStatement)
	d.register(syntax.KindAssertStatement, emitAssertStatement)
	d.register(syntax.KindLabeledStatement, emitLabeledStatement)
}

// firstNamedChild returns n's first named child, or the zero Node.
func firstNamedChild(n syntax.Node) syntax.Node {
	nc := n.NamedChildren()
	if len(nc) == 0 {
		return syntax.Node{}
	}
	return nc[0]
}

// emitBlock backs the { stmt; stmt; } shape shared with class/
// interface/annotation bodies (emitMemberBody).
func emitBlock(c *Context, n syntax.Node) {
	emitMemberBody(c, n)
}

func emitExpressionStatement(c *Context, n syntax.Node) {
	if e := firstNamedChild(n); e.IsValid() {
		c.Emit(e)
	}
	c.Text(";")
}

// emitControlBody prints a loop/if body: braced and same-line if it's
// a block, otherwise indented onto its own line (Java permits a bare
// statement body without braces).
func emitControlBody(c *Context, body syntax.Node) {
	if !body.IsValid() {
		return
	}
	if body.Kind() == syntax.KindBlock {
		c.Space()
		c.Emit(body)
		return
	}
	c.PushIndent(false)
	c.Newline()
	c.Emit(body)
	c.PopIndent(false)
}

func emitIfStatement(c *Context, n syntax.Node) {
	c.Text("if")
	c.Space()
	c.Text("(")
	c.Emit(n.ChildByFieldName("condition"))
	c.Text(")")
	consequence := n.ChildByFieldName("consequence")
	emitControlBody(c, consequence)

	alt := n.ChildByFieldName("alternative")
	if !alt.IsValid() {
		return
	}
	if consequence.Kind() == syntax.KindBlock {
		c.Space()
	} else {
		c.Newline()
	}
	c.Text("else")
	if alt.Kind() == syntax.KindIfStatement {
		c.Space()
		c.Emit(alt)
		return
	}
	emitControlBody(c, alt)
}

// emitForClauses prints a for-statement's parenthesized interior
// (init; condition; update). inner is the caller's raw run of children
// between the parentheses; the top-level ";" and "," anonymous tokens
// in it are printed here with their following space.
func emitForClauses(c *Context, inner []syntax.Node) {
	for i, ch := range inner {
		switch ch.Kind() {
		case syntax.KindSemicolon:
			c.Text(";")
			if i < len(inner)-1 {
				c.Space()
			}
		case syntax.KindComma:
			c.Text(",")
			c.Space()
		default:
			c.Emit(ch)
		}
	}
}

func emitForStatement(c *Context, n syntax.Node) {
	children := n.Children()
	lparen, rparen := -1, -1
	for i, ch := range children {
		if ch.Kind() == syntax.KindLParen && lparen == -1 {
			lparen = i
		}
		if ch.Kind() == syntax.KindRParen {
			rparen = i
		}
	}
	c.Text("for")
	c.Space()
	c.Text("(")
	if lparen >= 0 && rparen > lparen {
		emitForClauses(c, children[lparen+1:rparen])
	}
	c.Text(")")
	emitControlBody(c, n.ChildByFieldName("body"))
}

func emitEnhancedForStatement(c *Context, n syntax.Node) {
	c.Text("for")
	c.Space()
	c.Text("(")
	c.Emit(n.ChildByFieldName("type"))
	c.Space()
	c.Emit(n.ChildByFieldName("name"))
	c.Space()
	c.Text(":")
	c.Space()
	c.Emit(n.ChildByFieldName("value"))
	c.Text(")")
	emitControlBody(c, n.ChildByFieldName("body"))
}

func emitWhileStatement(c *Context, n syntax.Node) {
	c.Text("while")
	c.Space()
	c.Text("(")
	c.Emit(n.ChildByFieldName("condition"))
	c.Text(")")
	emitControlBody(c, n.ChildByFieldName("body"))
}

func emitDoStatement(c *Context, n syntax.Node) {
	c.Text("do")
	body := n.ChildByFieldName("body")
	if body.Kind() == syntax.KindBlock {
		c.Space()
		c.Emit(body)
		c.Space()
	} else {
		c.PushIndent(false)
		c.Newline()
		c.Emit(body)
		c.PopIndent(false)
		c.Newline()
	}
	c.Text("while")
	c.Space()
	c.Text("(")
	c.Emit(n.ChildByFieldName("condition"))
	c.Text(")")
	c.Text(";")
}

func emitSwitchExpression(c *Context, n syntax.Node) {
	c.Text("switch")
	c.Space()
	c.Text("(")
	c.Emit(n.ChildByFieldName("condition"))
	c.Text(")")
	c.Space()
	c.Emit(n.FirstChildOfKind(syntax.KindSwitchBlock))
}

func emitSwitchBlock(c *Context, n syntax.Node) {
	c.Text("{")
	members := n.NamedChildren()
	if len(members) == 0 {
		c.Text("}")
		return
	}
	c.PushIndent(false)
	for _, m := range members {
		c.Newline()
		c.Emit(m)
	}
	c.PopIndent(false)
	c.Newline()
	c.Text("}")
}

func emitSwitchBlockStmtGroup(c *Context, n syntax.Node) {
	var stmts []syntax.Node
	for _, ch := range n.NamedChildren() {
		if ch.Kind() == syntax.KindSwitchLabel {
			c.Emit(ch)
			c.Text(":")
			c.Newline()
			continue
		}
		stmts = append(stmts, ch)
	}
	c.PushIndent(false)
	for i, s := range stmts {
		if i > 0 {
			c.Newline()
		}
		c.Emit(s)
	}
	c.PopIndent(false)
}

func emitSwitchRule(c *Context, n syntax.Node) {
	var body syntax.Node
	for _, ch := range n.NamedChildren() {
		if ch.Kind() == syntax.KindSwitchLabel {
			c.Emit(ch)
			continue
		}
		if !body.IsValid() {
			body = ch
		}
	}
	c.Text(" ->")
	if body.IsValid() {
		c.Space()
		c.Emit(body)
	}
	if n.FirstChildOfKind(syntax.KindSemicolon).IsValid() {
		c.Text(";")
	}
}

func emitTryStatement(c *Context, n syntax.Node) {
	c.Text("try")
	c.Space()
	c.Emit(n.ChildByFieldName("body"))
	for _, cc := range n.ChildrenOfKind(syntax.KindCatchClause) {
		c.Space()
		c.Emit(cc)
	}
	if f := n.FirstChildOfKind(syntax.KindFinallyClause); f.IsValid() {
		c.Space()
		c.Emit(f)
	}
}

func emitTryWithResourcesStatement(c *Context, n syntax.Node) {
	c.Text("try")
	c.Space()
	c.Emit(n.FirstChildOfKind(syntax.KindResourceSpecification))
	c.Space()
	c.Emit(n.ChildByFieldName("body"))
	for _, cc := range n.ChildrenOfKind(syntax.KindCatchClause) {
		c.Space()
		c.Emit(cc)
	}
	if f := n.FirstChildOfKind(syntax.KindFinallyClause); f.IsValid() {
		c.Space()
		c.Emit(f)
	}
}

// emitResourceSpecification joins resources with "; ", the separator
// Java's try-with-resources grammar uses (not a comma).
func emitResourceSpecification(c *Context, n syntax.Node) {
	items := n.NamedChildren()
	c.Text("(")
	for i, item := range items {
		if i > 0 {
			c.Text("; ")
		}
		c.Emit(item)
	}
	c.Text(")")
}

func emitCatchClause(c *Context, n syntax.Node) {
	c.Text("catch")
	c.Space()
	c.Text("(")
	c.Emit(n.FirstChildOfKind(syntax.KindCatchFormalParameter))
	c.Text(")")
	c.Space()
	c.Emit(n.FirstChildOfKind(syntax.KindBlock))
}

func emitFinallyClause(c *Context, n syntax.Node) {
	c.Text("finally")
	c.Space()
	c.Emit(n.FirstChildOfKind(syntax.KindBlock))
}

func emitReturnStatement(c *Context, n syntax.Node) {
	c.Text("return")
	if e := firstNamedChild(n); e.IsValid() {
		c.Space()
		c.Emit(e)
	}
	c.Text(";")
}

func emitThrowStatement(c *Context, n syntax.Node) {
	c.Text("throw")
	c.Space()
	c.Emit(firstNamedChild(n))
	c.Text(";")
}

// emitBreakOrContinue returns a handler for break/continue, which
// share the same "keyword [label] ;" shape.
func emitBreakOrContinue(keyword string) HandlerFunc {
	return func(c *Context, n syntax.Node) {
		c.Text(keyword)
		if l := firstNamedChild(n); l.IsValid() {
			c.Space()
			c.Emit(l)
		}
		c.Text(";")
	}
}

func emitYieldStatement(c *Context, n syntax.Node) {
	c.Text("yield")
	c.Space()
	c.Emit(firstNamedChild(n))
	c.Text(";")
}

func emitSynchronizedStatement(c *Context, n syntax.Node) {
	c.Text("synchronized")
	c.Space()
	c.Text("(")
	c.Emit(firstNamedChild(n))
	c.Text(")")
	c.Space()
	c.Emit(n.FirstChildOfKind(syntax.KindBlock))
}

func emitAssertStatement(c *Context, n syntax.Node) {
	c.Text("assert")
	c.Space()
	named := n.NamedChildren()
	if len(named) > 0 {
		c.Emit(named[0])
	}
	if len(named) > 1 {
		c.Text(" : ")
		c.Emit(named[1])
	}
	c.Text(";")
}

func emitLabeledStatement(c *Context, n syntax.Node) {
	named := n.NamedChildren()
	if len(named) == 0 {
		c.Text(n.Text())
		return
	}
	c.Emit(named[0])
	c.Text(":")
	c.Newline()
	if len(named) > 1 {
		c.Emit(named[1])
	}
}
