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
	"strings"

	"github.com/speakeasy-api/javafmt/internal/ir"
	"github.com/speakeasy-api/javafmt/internal/syntax"
)

func registerExprHandlers(d *Dispatcher) {
	d.register(syntax.KindBinaryExpression, emitBinaryExpression)
	d.register(syntax.KindUnaryExpression, emitUnaryExpression)
	d.register(syntax.KindUpdateExpression, emitUpdateExpression)
	d.register(syntax.KindAssignmentExpression, emitAssignmentExpression)
	d.register(syntax.KindMethodInvocation, emitMethodInvocation)
	d.register(syntax.KindArgumentList, emitArgumentList)
	d.register(syntax.KindFieldAccess, emitFieldAccess)
	d.register(syntax.KindLambdaExpression, emitLambdaExpression)
	d.register(syntax.KindTernaryExpression, emitTernaryExpression)
	d.register(syntax.KindObjectCreationExpr, emitObjectCreationExpression)
	d.register(syntax.KindArrayCreationExpr, emitArrayCreationExpression)
	d.register(syntax.KindArrayInitializer, emitArrayInitializer)
	d.register(syntax.KindArrayAccess, emitArrayAccess)
	d.register(syntax.KindCastExpression, emitCastExpression)
	d.register(syntax.KindInstanceofExpression, emitChildrenSpaced)
	d.register(syntax.KindParenthesizedExpr, emitParenthesizedExpression)
	d.register(syntax.KindMethodReference, emitChildrenSpaced)
}

// operatorBetween returns the trimmed token text lying between two
// sibling nodes - used for binary/assignment operators, which
// tree-sitter-java exposes as an unnamed token with no field name of
// its own, sitting between the "left" and "right" fields.
func operatorBetween(c *Context, left, right syntax.Node) string {
	if !left.IsValid() || !right.IsValid() {
		return ""
	}
	return strings.TrimSpace(string(c.Source[left.EndByte():right.StartByte()]))
}

// binaryPrecedence ranks the operators tree-sitter-java's
// binary_expression rule covers (higher binds tighter), per the JLS
// precedence table. Operators of equal rank form one left-associative
// chain in the grammar (nested on the "left" field only). A
// subexpression of a different rank can sit on either field (a*b + c
// nests the "*" on the left), so flattenBinaryChain follows the "left"
// field only while the nested operator's rank in this table equals the
// outer one; that comparison alone finds where an equal-precedence run
// ends.
var binaryPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"|":  3,
	"^":  4,
	"&":  5,
	"==": 6, "!=": 6,
	"<": 7, ">": 7, "<=": 7, ">=": 7,
	"<<": 8, ">>": 8, ">>>": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
}

// binaryOperand is one operand of a flattened equal-precedence chain.
// op is the operator joining it to the previous operand; empty for the
// first (leftmost) operand.
type binaryOperand struct {
	op   string
	node syntax.Node
}

// topOperator returns n's own top-level operator text, or "" if n
// isn't a two-operand binary expression.
func topOperator(c *Context, n syntax.Node) string {
	named := n.NamedChildren()
	if len(named) < 2 {
		return ""
	}
	return operatorBetween(c, named[0], named[len(named)-1])
}

// flattenBinaryChain collects every operand of the equal-precedence
// run n belongs to into one flat, left-to-right sequence, recursing
// down the left spine only while the nested node is a binary
// expression at the same precedence as n (spec.md 4.4: "operators of
// equal precedence at the same level break together").
func flattenBinaryChain(c *Context, n syntax.Node) []binaryOperand {
	named := n.NamedChildren()
	if len(named) < 2 {
		return []binaryOperand{{node: n}}
	}
	left, right := named[0], named[len(named)-1]
	op := operatorBetween(c, left, right)

	var out []binaryOperand
	if left.Kind() == syntax.KindBinaryExpression && binaryPrecedence[topOperator(c, left)] == binaryPrecedence[op] {
		out = flattenBinaryChain(c, left)
	} else {
		out = []binaryOperand{{node: left}}
	}
	return append(out, binaryOperand{op: op, node: right})
}

// emitBinaryExpression prints a whole equal-precedence operator chain
// as one group: every break point shares a single break decision
// (spec.md 4.4), and a broken continuation line leads with the
// operator rather than trailing it after the previous line (spec.md
// 4.4, scenario S5: "a\n&& b", not "a &&\nb").
func emitBinaryExpression(c *Context, n syntax.Node) {
	operands := flattenBinaryChain(c, n)
	if len(operands) < 2 {
		c.Text(n.Text())
		return
	}

	gid := c.B.StartGroup()
	c.Emit(operands[0].node)
	c.PushIndent(true)
	for _, opnd := range operands[1:] {
		c.B.SoftNewline(ir.FlatSpace)
		c.Text(opnd.op)
		c.Space()
		c.Emit(opnd.node)
	}
	c.PopIndent(true)
	c.B.FinishGroup(gid)
}

// emitUnaryExpression prints a prefix operator glued to its operand
// ("-x", "!flag", "~mask" - no space in Java's grammar either).
func emitUnaryExpression(c *Context, n syntax.Node) {
	children := n.Children()
	if len(children) < 2 {
		c.Text(n.Text())
		return
	}
	c.Emit(children[0])
	c.Emit(children[1])
}

// emitUpdateExpression prints prefix or postfix ++/-- with no
// separating space, in whichever order the grammar already put them.
func emitUpdateExpression(c *Context, n syntax.Node) {
	for _, ch := range n.Children() {
		c.Emit(ch)
	}
}

func emitAssignmentExpression(c *Context, n syntax.Node) {
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	op := operatorBetween(c, left, right)
	if op == "" {
		op = "="
	}
	c.Emit(left)
	c.Text(" " + op + " ")
	c.Emit(right)
}

// chainLink is one ".name(args)" hop of a method-invocation chain.
type chainLink struct {
	typeArgs syntax.Node
	name     syntax.Node
	args     syntax.Node
}

// collectChainLinks walks n's "object" field down through nested
// method_invocation nodes, returning the hops in source (outermost-
// last-applied) order together with the innermost non-invocation
// receiver (may be the zero Node for an implicit-this call).
func collectChainLinks(n syntax.Node) ([]chainLink, syntax.Node) {
	var links []chainLink
	cur := n
	for cur.IsValid() && cur.Kind() == syntax.KindMethodInvocation {
		links = append([]chainLink{{
			typeArgs: cur.ChildByFieldName("type_arguments"),
			name:     cur.ChildByFieldName("name"),
			args:     cur.ChildByFieldName("arguments"),
		}}, links...)
		cur = cur.ChildByFieldName("object")
	}
	return links, cur
}

func emitMethodInvocation(c *Context, n syntax.Node) {
	links, base := collectChainLinks(n)
	if len(links) <= 1 {
		emitSingleInvocation(c, n)
		return
	}
	// Method-chain wrapping is a generation-time, all-or-nothing
	// decision against methodChainThreshold - a different, usually
	// tighter bound than lineWidth - so it's made here with the
	// estimator rather than left to internal/breaker's generic
	// group-fit check (estimator.go's doc comment explains why).
	if c.Config.MethodChainThreshold > 0 && !FitsWithin(c.Col(), n.Text(), c.Config.MethodChainThreshold) {
		emitBrokenChain(c, base, links)
		return
	}
	emitInlineChain(c, base, links)
}

func emitSingleInvocation(c *Context, n syntax.Node) {
	if obj := n.ChildByFieldName("object"); obj.IsValid() {
		c.Emit(obj)
		c.Text(".")
	}
	if ta := n.ChildByFieldName("type_arguments"); ta.IsValid() {
		c.Emit(ta)
	}
	c.Emit(n.ChildByFieldName("name"))
	c.Emit(n.ChildByFieldName("arguments"))
}

func emitInlineChain(c *Context, base syntax.Node, links []chainLink) {
	if base.IsValid() {
		c.Emit(base)
	}
	for _, l := range links {
		c.Text(".")
		if l.typeArgs.IsValid() {
			c.Emit(l.typeArgs)
		}
		c.Emit(l.name)
		c.Emit(l.args)
	}
}

func emitBrokenChain(c *Context, base syntax.Node, links []chainLink) {
	if base.IsValid() {
		c.Emit(base)
	}
	c.PushIndent(true)
	for _, l := range links {
		c.Newline()
		c.Text(".")
		if l.typeArgs.IsValid() {
			c.Emit(l.typeArgs)
		}
		c.Emit(l.name)
		c.Emit(l.args)
	}
	c.PopIndent(true)
}

func emitArgumentList(c *Context, n syntax.Node) {
	emitDelimitedNodes(c, "(", n.NamedChildren(), ")")
}

func emitFieldAccess(c *Context, n syntax.Node) {
	c.Emit(n.ChildByFieldName("object"))
	c.Text(".")
	c.Emit(n.ChildByFieldName("field"))
}

func emitLambdaExpression(c *Context, n syntax.Node) {
	if params := n.ChildByFieldName("parameters"); params.IsValid() {
		c.Emit(params)
	} else if id := n.FirstChildOfKind(syntax.KindIdentifier); id.IsValid() {
		c.Emit(id)
	}
	c.Text(" -> ")
	c.Emit(n.ChildByFieldName("body"))
}

func emitTernaryExpression(c *Context, n syntax.Node) {
	gid := c.B.StartGroup()
	c.Emit(n.ChildByFieldName("condition"))
	c.PushIndent(true)
	c.B.SoftNewline(ir.FlatSpace)
	c.Text("? ")
	c.Emit(n.ChildByFieldName("consequence"))
	c.B.SoftNewline(ir.FlatSpace)
	c.Text(": ")
	c.Emit(n.ChildByFieldName("alternative"))
	c.PopIndent(true)
	c.B.FinishGroup(gid)
}

func emitObjectCreationExpression(c *Context, n syntax.Node) {
	c.Text("new")
	c.Space()
	c.Emit(n.ChildByFieldName("type"))
	c.Emit(n.ChildByFieldName("arguments"))
	if body := n.ChildByFieldName("body"); body.IsValid() {
		c.Space()
		c.Emit(body)
	}
}

func emitArrayCreationExpression(c *Context, n syntax.Node) {
	c.Text("new")
	c.Space()
	c.Emit(n.ChildByFieldName("type"))
	for _, d := range n.ChildrenOfKind(syntax.Kind("dimensions_expr")) {
		c.Emit(d)
	}
	for _, d := range n.ChildrenOfKind(syntax.Kind("dimensions")) {
		c.Emit(d)
	}
	if val := n.ChildByFieldName("value"); val.IsValid() {
		c.Space()
		c.Emit(val)
	}
}

func emitArrayInitializer(c *Context, n syntax.Node) {
	emitDelimitedNodes(c, "{", n.NamedChildren(), "}")
}

func emitArrayAccess(c *Context, n syntax.Node) {
	c.Emit(n.ChildByFieldName("array"))
	c.Text("[")
	c.Emit(n.ChildByFieldName("index"))
	c.Text("]")
}

func emitCastExpression(c *Context, n syntax.Node) {
	c.Text("(")
	c.Emit(n.ChildByFieldName("type"))
	c.Text(") ")
	c.Emit(n.ChildByFieldName("value"))
}

func emitParenthesizedExpression(c *Context, n syntax.Node) {
	c.Text("(")
	c.Emit(firstNamedChild(n))
	c.Text(")")
}
