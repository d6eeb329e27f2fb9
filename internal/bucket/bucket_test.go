// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package bucket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_AddMesh(t *testing.T) {
	b := New()

	require.True(t, b.AddMesh("Domain", "triangle"))
	require.False(t, b.AddMesh("Domain", "interval"), "a second mesh with the same name must be refused")

	require.Len(t, b.Meshes, 1)
	assert.Equal(t, "triangle", b.Mesh("Domain").Cell)
	assert.Nil(t, b.Mesh("Surface"))
}

func TestBucket_ListCppLibraries(t *testing.T) {
	b := New()
	assert.Equal(t, []string{}, b.ListCppLibraries())

	b.CppLibraries = []string{"libspud"}
	assert.Equal(t, []string{"libspud"}, b.ListCppLibraries())
}

func TestSystem_BackPointers(t *testing.T) {
	b := New()
	sys := NewSystem("Stokes", "us", "Domain")

	field := &Field{Name: "Velocity", Symbol: "u", Cpp: []*CppExpression{{Type: "initial_condition", Name: "Shear"}}}
	coeff := &Coefficient{
		Name:       "Viscosity",
		Symbol:     "mu",
		Functional: &Functional{Symbol: "mu_int"},
		Cpp:        []*CppExpression{{Type: "value", Name: "Constant"}},
	}
	solver := &Solver{Name: "Solver", Type: "SNES"}
	functional := &Functional{Name: "Energy", Symbol: "E"}

	sys.AddField(field)
	sys.AddCoeff(coeff)
	sys.AddSolver(solver)
	sys.AddFunctional(functional)
	b.AddSystem(sys)

	assert.Same(t, b, sys.Bucket())
	assert.Same(t, sys, field.System())
	assert.Same(t, sys, coeff.System())
	assert.Same(t, sys, solver.System())
	assert.Same(t, sys, functional.System())
	assert.Same(t, sys, coeff.Functional.System())

	assert.Equal(t, "Viscosity", coeff.Functional.Name, "attached functionals are named after their coefficient")
	assert.Equal(t, "StokesViscosity", coeff.Functional.Namespace())
	assert.Equal(t, "StokesSolver", solver.Namespace())
	assert.Equal(t, "StokesEnergy", functional.Namespace())

	assert.Equal(t, "Velocity", field.Cpp[0].Function())
	assert.Equal(t, "Viscosity", coeff.Cpp[0].Function())
	assert.Same(t, sys, coeff.Cpp[0].System())
}

func TestSystem_Listings(t *testing.T) {
	sys := NewSystem("Stokes", "us", "Domain")
	fieldExpr := &CppExpression{Type: "initial_condition", Name: "A"}
	coeffExpr := &CppExpression{Type: "value", Name: "B"}

	sys.AddCoeff(&Coefficient{Name: "Plain", Symbol: "k", Cpp: []*CppExpression{coeffExpr}})
	sys.AddCoeff(&Coefficient{Name: "Integrated", Symbol: "m", Functional: &Functional{Symbol: "m_int"}})
	sys.AddField(&Field{Name: "Velocity", Symbol: "u", Cpp: []*CppExpression{fieldExpr}})

	cf := sys.CoeffFunctionals()
	require.Len(t, cf, 1)
	assert.Equal(t, "Integrated", cf[0].Name)

	assert.Equal(t, []*CppExpression{fieldExpr, coeffExpr}, sys.CppExpressions(), "field expressions come first")
}

func TestLocalSymbols(t *testing.T) {
	solver := &Solver{Forms: []*Form{{Symbol: "F"}, {Symbol: "J"}}}
	assert.Equal(t, []string{"F", "J"}, solver.LocalSymbols())
	assert.Equal(t, []string{}, (&Solver{}).LocalSymbols())
	assert.Equal(t, []string{"E"}, (&Functional{Symbol: "E"}).LocalSymbols())
}

func TestCppExpression_ClassName(t *testing.T) {
	sys := NewSystem("Stokes", "us", "Domain")
	expr := &CppExpression{Type: "initial_condition", Name: "Shear"}
	sys.AddField(&Field{Name: "Velocity", Symbol: "u", Cpp: []*CppExpression{expr}})

	assert.Equal(t, "CppExpressionStokesVelocityInitialConditionShear", expr.ClassName())
	assert.Equal(t, "CppExpressionStokesVelocityInitialConditionShear.h", expr.Header())
}

func TestNamespace_DetachedEntities(t *testing.T) {
	assert.Equal(t, "Solver", (&Solver{Name: "Solver"}).Namespace())
	assert.Equal(t, "Energy", (&Functional{Name: "Energy"}).Namespace())
}
