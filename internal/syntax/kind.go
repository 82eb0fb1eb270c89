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

package syntax

// Kind is the node-kind tag of a syntax node. It mirrors the type
// vocabulary reported by the underlying Java grammar (tree-sitter-java):
// named kinds for real grammar productions, and the literal token text
// for anonymous/punctuation nodes (e.g. "{" or ";").
type Kind string

// Declaration kinds.
const (
	KindProgram                  Kind = "program"
	KindPackageDeclaration       Kind = "package_declaration"
	KindImportDeclaration        Kind = "import_declaration"
	KindClassDeclaration         Kind = "class_declaration"
	KindInterfaceDeclaration     Kind = "interface_declaration"
	KindEnumDeclaration          Kind = "enum_declaration"
	KindEnumBody                 Kind = "enum_body"
	KindEnumConstant             Kind = "enum_constant"
	KindRecordDeclaration        Kind = "record_declaration"
	KindAnnotationTypeDecl       Kind = "annotation_type_declaration"
	KindMethodDeclaration        Kind = "method_declaration"
	KindConstructorDeclaration   Kind = "constructor_declaration"
	KindFieldDeclaration         Kind = "field_declaration"
	KindLocalVariableDecl        Kind = "local_variable_declaration"
	KindVariableDeclarator       Kind = "variable_declarator"
	KindFormalParameters         Kind = "formal_parameters"
	KindFormalParameter          Kind = "formal_parameter"
	KindSpreadParameter          Kind = "spread_parameter"
	KindStaticInitializer        Kind = "static_initializer"
	KindClassBody                Kind = "class_body"
	KindInterfaceBody            Kind = "interface_body"
	KindThrows                   Kind = "throws"
)

// Statement kinds.
const (
	KindBlock                   Kind = "block"
	KindExpressionStatement     Kind = "expression_statement"
	KindIfStatement              Kind = "if_statement"
	KindForStatement             Kind = "for_statement"
	KindEnhancedForStatement     Kind = "enhanced_for_statement"
	KindWhileStatement           Kind = "while_statement"
	KindDoStatement              Kind = "do_statement"
	KindSwitchExpression         Kind = "switch_expression"
	KindSwitchBlock              Kind = "switch_block"
	KindSwitchBlockStmtGroup     Kind = "switch_block_statement_group"
	KindSwitchRule               Kind = "switch_rule"
	KindSwitchLabel              Kind = "switch_label"
	KindTryStatement             Kind = "try_statement"
	KindTryWithResourcesStmt     Kind = "try_with_resources_statement"
	KindResourceSpecification    Kind = "resource_specification"
	KindCatchClause              Kind = "catch_clause"
	KindCatchFormalParameter     Kind = "catch_formal_parameter"
	KindFinallyClause            Kind = "finally_clause"
	KindReturnStatement          Kind = "return_statement"
	KindThrowStatement           Kind = "throw_statement"
	KindBreakStatement           Kind = "break_statement"
	KindContinueStatement        Kind = "continue_statement"
	KindYieldStatement           Kind = "yield_statement"
	KindSynchronizedStatement    Kind = "synchronized_statement"
	KindAssertStatement          Kind = "assert_statement"
	KindLabeledStatement         Kind = "labeled_statement"
	KindLocalVariableDeclStmt    Kind = "local_variable_declaration"
)

// Expression kinds.
const (
	KindBinaryExpression        Kind = "binary_expression"
	KindUnaryExpression         Kind = "unary_expression"
	KindUpdateExpression        Kind = "update_expression"
	KindAssignmentExpression    Kind = "assignment_expression"
	KindMethodInvocation        Kind = "method_invocation"
	KindArgumentList            Kind = "argument_list"
	KindFieldAccess             Kind = "field_access"
	KindLambdaExpression        Kind = "lambda_expression"
	KindTernaryExpression       Kind = "ternary_expression"
	KindObjectCreationExpr      Kind = "object_creation_expression"
	KindArrayCreationExpr       Kind = "array_creation_expression"
	KindArrayInitializer        Kind = "array_initializer"
	KindArrayAccess             Kind = "array_access"
	KindCastExpression          Kind = "cast_expression"
	KindInstanceofExpression    Kind = "instanceof_expression"
	KindParenthesizedExpr       Kind = "parenthesized_expression"
	KindMethodReference         Kind = "method_reference"
	KindIdentifier              Kind = "identifier"
	KindThis                    Kind = "this"
	KindSuper                   Kind = "super"
)

// Type and annotation kinds.
const (
	KindGenericType        Kind = "generic_type"
	KindArrayType          Kind = "array_type"
	KindTypeArguments      Kind = "type_arguments"
	KindTypeParameters     Kind = "type_parameters"
	KindTypeParameter      Kind = "type_parameter"
	KindWildcard           Kind = "wildcard"
	KindScopedTypeIdent    Kind = "scoped_type_identifier"
	KindMarkerAnnotation   Kind = "marker_annotation"
	KindAnnotation         Kind = "annotation"
	KindAnnotationArgList  Kind = "annotation_argument_list"
	KindElementValuePair   Kind = "element_value_pair"
)

// Comment and trivia kinds.
const (
	KindLineComment  Kind = "line_comment"
	KindBlockComment Kind = "block_comment"
	KindERROR        Kind = "ERROR"
)

// Anonymous punctuation kinds (the literal token text reported by the
// grammar). The dispatcher never routes these; parent handlers consume
// them by position. Listed here only so callers can compare against a
// named constant instead of a string literal.
const (
	KindLBrace     Kind = "{"
	KindRBrace     Kind = "}"
	KindLParen     Kind = "("
	KindRParen     Kind = ")"
	KindSemicolon  Kind = ";"
	KindComma      Kind = ","
	KindDot        Kind = "."
)

// IsTypeLike reports whether k is one of the node kinds that represents
// a Java type reference. Used by the dispatcher's category guards, which
// must run after specific-kind routing (spec.md 4.1).
func IsTypeLike(k Kind) bool {
	switch k {
	case KindGenericType, KindArrayType, KindScopedTypeIdent, KindWildcard, KindIdentifier:
		return true
	}
	return false
}

// IsCommentLike reports whether k tags a comment token.
func IsCommentLike(k Kind) bool {
	return k == KindLineComment || k == KindBlockComment
}
