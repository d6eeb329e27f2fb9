// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the System and the functions it owns.
package bucket

// System groups the fields solved for together, the coefficients they depend
// on, and the solvers and functionals compiled for them.
type System struct {
	Name   string
	Symbol string
	Mesh   string

	Fields        []*Field
	Coeffs        []*Coefficient
	SpecialCoeffs []*Coefficient
	Solvers       []*Solver
	Functionals   []*Functional

	bucket *Bucket
}

// NewSystem creates an empty system.
func NewSystem(name, symbol, mesh string) *System {
	return &System{Name: name, Symbol: symbol, Mesh: mesh}
}

// Bucket returns the bucket the system was added to, if any.
func (s *System) Bucket() *Bucket {
	return s.bucket
}

// AddField appends a field to the system.
func (s *System) AddField(f *Field) {
	f.system = s
	for _, e := range f.Cpp {
		e.system, e.function = s, f.Name
	}
	s.Fields = append(s.Fields, f)
}

// AddCoeff appends a coefficient. An attached functional is bound to the
// system and named after the coefficient.
func (s *System) AddCoeff(c *Coefficient) {
	s.bindCoeff(c)
	s.Coeffs = append(s.Coeffs, c)
}

// AddSpecialCoeff appends a special coefficient such as the timestep.
func (s *System) AddSpecialCoeff(c *Coefficient) {
	s.bindCoeff(c)
	s.SpecialCoeffs = append(s.SpecialCoeffs, c)
}

func (s *System) bindCoeff(c *Coefficient) {
	c.system = s
	if c.Functional != nil {
		c.Functional.Name = c.Name
		c.Functional.system = s
	}
	for _, e := range c.Cpp {
		e.system, e.function = s, c.Name
	}
}

// AddSolver appends a solver to the system.
func (s *System) AddSolver(sv *Solver) {
	sv.system = s
	s.Solvers = append(s.Solvers, sv)
}

// AddFunctional appends a functional to the system.
func (s *System) AddFunctional(f *Functional) {
	f.system = s
	s.Functionals = append(s.Functionals, f)
}

// CoeffFunctionals returns the coefficients that carry a functional, in
// declaration order.
func (s *System) CoeffFunctionals() []*Coefficient {
	var out []*Coefficient
	for _, c := range s.Coeffs {
		if c.Functional != nil {
			out = append(out, c)
		}
	}
	return out
}

// CppExpressions returns every C++ expression of the system: field
// expressions first, then coefficient expressions.
func (s *System) CppExpressions() []*CppExpression {
	var out []*CppExpression
	for _, f := range s.Fields {
		out = append(out, f.Cpp...)
	}
	for _, c := range s.Coeffs {
		out = append(out, c.Cpp...)
	}
	return out
}

// Field is a function solved for by its system.
type Field struct {
	Name   string
	Symbol string
	Cpp    []*CppExpression

	system *System
}

// System returns the owning system.
func (f *Field) System() *System { return f.system }

// Coefficient is a function the system's forms depend on but do not solve for.
type Coefficient struct {
	Name       string
	Symbol     string
	Type       string
	Functional *Functional
	Cpp        []*CppExpression

	system *System
}

// System returns the owning system.
func (c *Coefficient) System() *System { return c.system }
