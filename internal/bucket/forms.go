// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the entities that are compiled into numerical forms:
// solvers with their forms, and functionals.
package bucket

// Form is a single compiled form of a solver. Rank 1 forms are linear
// (residuals, right hand sides), rank 2 forms are bilinear (Jacobians).
type Form struct {
	Name   string
	Symbol string
	Rank   int
}

// Solver owns the forms used to solve its system. Coefficients lists the ufl
// symbols of the coefficients its forms reference.
type Solver struct {
	Name         string
	Type         string
	Coefficients []string
	Forms        []*Form

	system *System
}

// System returns the owning system.
func (s *Solver) System() *System { return s.system }

// Namespace returns the generated-code namespace of the solver.
func (s *Solver) Namespace() string {
	return systemName(s.system) + s.Name
}

// LocalSymbols returns the form symbols of the solver.
func (s *Solver) LocalSymbols() []string {
	out := make([]string, 0, len(s.Forms))
	for _, f := range s.Forms {
		out = append(out, f.Symbol)
	}
	return out
}

// Functional is a scalar-valued form. It either belongs to a system directly
// or is attached to a coefficient, in which case it is named after it.
type Functional struct {
	Name         string
	Symbol       string
	Coefficients []string

	system *System
}

// System returns the owning system.
func (f *Functional) System() *System { return f.system }

// Namespace returns the generated-code namespace of the functional.
func (f *Functional) Namespace() string {
	return systemName(f.system) + f.Name
}

// LocalSymbols returns the symbols declared inside the functional's form.
func (f *Functional) LocalSymbols() []string {
	return []string{f.Symbol}
}

func systemName(s *System) string {
	if s == nil {
		return ""
	}
	return s.Name
}
