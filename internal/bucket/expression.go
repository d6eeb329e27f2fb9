// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines CppExpression, a user-written C++ expression attached to
// a field or coefficient.
package bucket

import "strings"

// CppExpression is a piece of user C++ code evaluated as a dolfin expression.
// Type says what the expression is used for (e.g. "initial_condition",
// "value"); Name distinguishes several expressions of the same type.
type CppExpression struct {
	Type    string
	Name    string
	Init    string
	Eval    string
	Members string

	system   *System
	function string
}

// System returns the owning system.
func (e *CppExpression) System() *System { return e.system }

// Function returns the name of the field or coefficient the expression
// belongs to.
func (e *CppExpression) Function() string { return e.function }

// ClassName returns the name of the generated C++ class.
func (e *CppExpression) ClassName() string {
	return "CppExpression" + systemName(e.system) + e.function + camel(e.Type) + e.Name
}

// Header returns the file name of the generated C++ header.
func (e *CppExpression) Header() string {
	return e.ClassName() + ".h"
}

// camel turns "initial_condition" into "InitialCondition".
func camel(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}
	return sb.String()
}
