package codegen

import (
	"strings"
	"testing"

	"github.com/cianwilson/TerraFERMA/internal/bucket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func systemWithSolver(name string) *bucket.System {
	sys := bucket.NewSystem(name, strings.ToLower(name), "Domain")
	sys.AddSolver(&bucket.Solver{
		Name:         "Solver",
		Type:         "SNES",
		Coefficients: []string{"k"},
		Forms: []*bucket.Form{
			{Name: "Residual", Symbol: "F", Rank: 1},
			{Name: "Jacobian", Symbol: "J", Rank: 2},
		},
	})
	return sys
}

func TestVisualization_SingleMesh(t *testing.T) {
	b := bucket.New()
	require.True(t, b.AddMesh("Domain", "triangle"))

	res := Visualization.Build(b)
	require.Empty(t, res.Duplicates)

	expected := `
#include "VisualizationWrapper.h"
#include "BoostTypes.h"
#include "Logger.h"
#include <dolfin.h>

#include "_VisualizationOnMeshDomain.h"

namespace buckettools
{
  // A function to return a functionspace for visualization given a mesh and a mesh name.
  FunctionSpace_ptr ufc_fetch_visualization_functionspace(const std::string &meshname, Mesh_ptr mesh)
  {
    FunctionSpace_ptr functionspace;
    if (meshname == "Domain")
    {
      functionspace.reset( new _VisualizationOnMeshDomain::FunctionSpace(mesh) );
    }
    else
    {
      tf_err("Unknown meshname in ufc_fetch_visualization_functionspace", "Mesh name: %s", meshname.c_str());
    }
    return functionspace;
  }

}

`
	assert.Equal(t, expected, res.Document.String())
}

func TestSystemSolvers_BranchOrder(t *testing.T) {
	b := bucket.New()
	b.AddSystem(systemWithSolver("A"))
	b.AddSystem(systemWithSolver("B"))

	doc := SystemSolvers.Build(b).Document
	body := functionBody(t, doc, "FunctionSpace_ptr ufc_fetch_functionspace(const std::string &systemname, Mesh_ptr mesh)")

	assert.Equal(t, []string{
		`if (systemname == "A")`,
		`else if (systemname == "B")`,
		"else",
	}, topLevelBranches(body))
	assert.Contains(t, body, "      functionspace.reset( new ASolver::FunctionSpace(mesh) );")
	assert.Contains(t, body, "      functionspace.reset( new BSolver::FunctionSpace(mesh) );")

	out := doc.String()
	assert.Less(t, strings.Index(out, `#include "ASolver.h"`), strings.Index(out, `#include "BSolver.h"`))
}

func TestSystemSolvers_Forms(t *testing.T) {
	b := bucket.New()
	b.AddSystem(systemWithSolver("Stokes"))
	b.AddSystem(bucket.NewSystem("Empty", "e", "Domain"))

	doc := SystemSolvers.Build(b).Document
	body := functionBody(t, doc, "Form_ptr ufc_fetch_form(const std::string &systemname, const std::string &solvername, const std::string &solvertype, const std::string &formname, const FunctionSpace_ptr functionspace)")
	joined := strings.Join(body, "\n")

	assert.Equal(t, []string{`if (systemname == "Stokes")`, "else"}, topLevelBranches(body), "systems without solvers do not contribute")
	assert.Contains(t, joined, `if (solvername == "Solver")`)
	assert.Contains(t, joined, `if (solvertype == "SNES")`)
	assert.Contains(t, joined, `if (formname == "Residual")`)
	assert.Contains(t, joined, `else if (formname == "Jacobian")`)
	assert.Contains(t, joined, "form.reset( new StokesSolver::Form_F(functionspace) );")
	assert.Contains(t, joined, "form.reset( new StokesSolver::Form_J(functionspace, functionspace) );")
	assert.Contains(t, joined, `tf_err("Unknown formname in ufc_fetch_form", "Form name: %s", formname.c_str());`)
	assert.Contains(t, joined, `tf_err("Unknown solvertype in ufc_fetch_form", "Solver type: %s", solvertype.c_str());`)

	coeffs := strings.Join(functionBody(t, doc, "FunctionSpace_ptr ufc_fetch_coefficientspace_from_solver(const std::string &systemname, const std::string &solvername, const std::string &uflsymbol, Mesh_ptr mesh)"), "\n")
	assert.Contains(t, coeffs, `if (uflsymbol == "k")`)
	assert.Contains(t, coeffs, "coefficientspace.reset( new StokesSolver::CoefficientSpace_k(mesh) );")
}

func TestSystemFunctionals(t *testing.T) {
	b := bucket.New()
	sys := bucket.NewSystem("Stokes", "us", "Domain")
	sys.AddCoeff(&bucket.Coefficient{Name: "Flux", Symbol: "q", Type: "Constant", Functional: &bucket.Functional{Symbol: "qint", Coefficients: []string{"u"}}})
	sys.AddCoeff(&bucket.Coefficient{Name: "Plain", Symbol: "c"})
	sys.AddFunctional(&bucket.Functional{Name: "Energy", Symbol: "E", Coefficients: []string{"u", "p"}})
	b.AddSystem(sys)
	b.AddSystem(bucket.NewSystem("Bare", "b", "Domain"))

	doc := SystemFunctionals.Build(b).Document
	out := doc.String()

	assert.Contains(t, out, "#include \"StokesFlux.h\"\n#include \"StokesEnergy.h\"\n")
	assert.NotContains(t, out, `"Bare"`)

	functional := strings.Join(functionBody(t, doc, "Form_ptr ufc_fetch_functional(const std::string &systemname, const std::string &functionalname, Mesh_ptr mesh)"), "\n")
	assert.Contains(t, functional, `if (functionalname == "Energy")`)
	assert.Contains(t, functional, "functional.reset( new StokesEnergy::Form_E(mesh) );")

	constant := strings.Join(functionBody(t, doc, "Form_ptr ufc_fetch_constant_functional(const std::string &systemname, const std::string &coefficientname, Mesh_ptr mesh)"), "\n")
	assert.Contains(t, constant, `if (coefficientname == "Flux")`)
	assert.NotContains(t, constant, `"Plain"`)
	assert.Contains(t, constant, "functional.reset( new StokesFlux::Form_qint(mesh) );")

	spaces := functionBody(t, doc, "FunctionSpace_ptr ufc_fetch_coefficientspace_from_functional(const std::string &systemname, const std::string &functionalname, const std::string &uflsymbol, Mesh_ptr mesh)")
	joined := strings.Join(spaces, "\n")
	assert.Contains(t, joined, `if (uflsymbol == "u")`)
	assert.Contains(t, joined, `else if (uflsymbol == "p")`)
	assert.Contains(t, joined, "coefficientspace.reset( new StokesEnergy::CoefficientSpace_p(mesh) );")
}

func TestSystemExpressions(t *testing.T) {
	b := bucket.New()
	sys := bucket.NewSystem("Heat", "Ts", "Domain")
	sys.AddCoeff(&bucket.Coefficient{Name: "Source", Symbol: "H", Cpp: []*bucket.CppExpression{
		{Type: "value", Name: "Gaussian", Eval: "values[0] = 1.0;"},
	}})
	sys.AddField(&bucket.Field{Name: "Temperature", Symbol: "T", Cpp: []*bucket.CppExpression{
		{Type: "initial_condition", Name: "Hot", Eval: "values[0] = 2.0;"},
		{Type: "initial_condition", Name: "Cold", Eval: "values[0] = 0.0;"},
		{Type: "boundary_condition", Name: "Wall", Eval: "values[0] = 0.0;"},
	}})
	b.AddSystem(sys)

	doc := SystemExpressions.Build(b).Document
	out := doc.String()

	// Field expressions precede coefficient expressions.
	assert.Less(t, strings.Index(out, `#include "CppExpressionHeatTemperatureInitialConditionHot.h"`), strings.Index(out, `#include "CppExpressionHeatSourceValueGaussian.h"`))

	fetch := strings.Join(functionBody(t, doc, SystemExpressions.Functions[0].Signature), "\n")
	assert.Contains(t, fetch, `if (functionname == "Temperature")`)
	assert.Contains(t, fetch, `else if (functionname == "Source")`)
	assert.Contains(t, fetch, `if (expressiontype == "initial_condition")`)
	assert.Contains(t, fetch, `else if (expressiontype == "boundary_condition")`)
	assert.Contains(t, fetch, `else if (expressionname == "Cold")`)
	assert.Contains(t, fetch, "expression.reset( new CppExpressionHeatTemperatureInitialConditionCold(size, shape, bucket, system, time) );")
	assert.Equal(t, 1, strings.Count(fetch, `(functionname == "Temperature")`))

	init := functionBody(t, doc, SystemExpressions.Functions[1].Signature)
	joined := strings.Join(init, "\n")
	assert.Contains(t, joined, "(*boost::dynamic_pointer_cast< CppExpressionHeatSourceValueGaussian >(expression)).init();")
	assert.NotContains(t, joined, "return")
}

func TestExpressionHeader(t *testing.T) {
	sys := bucket.NewSystem("Heat", "Ts", "Domain")
	e := &bucket.CppExpression{
		Type:    "value",
		Name:    "Ramp",
		Init:    "\nscale_ = 2.0;\n",
		Eval:    "values[0] = scale_*x[0];",
		Members: "double scale_;",
	}
	sys.AddCoeff(&bucket.Coefficient{Name: "Source", Symbol: "H", Cpp: []*bucket.CppExpression{e}})

	doc := ExpressionHeader(e)
	out := doc.String()

	assert.Equal(t, "CppExpressionHeatSourceValueRamp.h", doc.Filename)
	assert.Contains(t, out, "#ifndef __CPPEXPRESSIONHEATSOURCEVALUERAMP_H\n#define __CPPEXPRESSIONHEATSOURCEVALUERAMP_H\n")
	assert.Contains(t, out, "  class CppExpressionHeatSourceValueRamp : public dolfin::Expression\n")
	assert.Contains(t, out, "    void init()\n    {\n      scale_ = 2.0;\n    }\n")
	assert.Contains(t, out, "      values[0] = scale_*x[0];\n")
	assert.Contains(t, out, "    const double_ptr time_;\n    double scale_;\n  };\n")
	assert.True(t, strings.HasSuffix(out, "#endif\n"))
}

func TestVisualizationUFL(t *testing.T) {
	b := bucket.New()
	b.VisElement = bucket.VisElement{Family: "P", Degree: 1}
	b.AddMesh("Domain", "triangle")

	doc := VisualizationUFL(b, b.Mesh("Domain"))
	assert.Equal(t, "_VisualizationOnMeshDomain.ufl", doc.Filename)

	out := doc.String()
	assert.Contains(t, out, "# Element declaration for Function VisualizationOnMeshDomain\n")
	assert.Contains(t, out, "vis_e = FiniteElement(\"P\", triangle, 1)\n")
	assert.Contains(t, out, "vis_t = TestFunction(vis_e)\n")
	assert.Contains(t, out, "vis_a = TrialFunction(vis_e)\n")
	assert.Contains(t, out, "a = vis_t*vis_a*dx\nforms = [a]\n")
}
