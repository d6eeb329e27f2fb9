package codegen

import "github.com/cianwilson/TerraFERMA/internal/bucket"

// SystemFunctionals generates SystemFunctionalsWrapper.cpp, which returns the
// functionals of every system and the coefficient spaces they need.
var SystemFunctionals = &Artifact{
	Filename: "SystemFunctionalsWrapper.cpp",
	Preamble: []string{"SystemFunctionalsWrapper.h", "BoostTypes.h", "Logger.h", "<dolfin.h>"},
	Functions: []*Function{
		{
			ID:         FetchCoefficientSpaceFromFunctional,
			Name:       "ufc_fetch_coefficientspace_from_functional",
			Comment:    "A function to return a functionspace (for a coefficient) from a system given a mesh, a functionalname and a uflsymbol.",
			Signature:  "FunctionSpace_ptr ufc_fetch_coefficientspace_from_functional(const std::string &systemname, const std::string &functionalname, const std::string &uflsymbol, Mesh_ptr mesh)",
			ResultType: "FunctionSpace_ptr",
			Result:     "coefficientspace",
			Key:        keySystem,
			KeyLabel:   labelSystem,
		},
		{
			ID:         FetchCoefficientSpaceFromConstantFunctional,
			Name:       "ufc_fetch_coefficientspace_from_constant_functional",
			Comment:    "A function to return a functionspace (for a coefficient) from a system given a mesh, a coefficientname and a uflsymbol.",
			Signature:  "FunctionSpace_ptr ufc_fetch_coefficientspace_from_constant_functional(const std::string &systemname, const std::string &coefficientname, const std::string &uflsymbol, Mesh_ptr mesh)",
			ResultType: "FunctionSpace_ptr",
			Result:     "coefficientspace",
			Key:        keySystem,
			KeyLabel:   labelSystem,
		},
		{
			ID:         FetchFunctional,
			Name:       "ufc_fetch_functional",
			Comment:    "A function to return a functional from a system-function set given a mesh and a functionalname.",
			Signature:  "Form_ptr ufc_fetch_functional(const std::string &systemname, const std::string &functionalname, Mesh_ptr mesh)",
			ResultType: "Form_ptr",
			Result:     "functional",
			Key:        keySystem,
			KeyLabel:   labelSystem,
		},
		{
			ID:         FetchConstantFunctional,
			Name:       "ufc_fetch_constant_functional",
			Comment:    "A function to return a functional for a constant from a system-function set given a mesh.",
			Signature:  "Form_ptr ufc_fetch_constant_functional(const std::string &systemname, const std::string &coefficientname, Mesh_ptr mesh)",
			ResultType: "Form_ptr",
			Result:     "functional",
			Key:        keySystem,
			KeyLabel:   labelSystem,
		},
	},
	Contributors: func(b *bucket.Bucket) []Contributor {
		out := make([]Contributor, 0, len(b.Systems))
		for _, sys := range b.Systems {
			out = append(out, functionalsSystem{sys})
		}
		return out
	},
}

type functionalsSystem struct{ sys *bucket.System }

func (s functionalsSystem) Key() string { return s.sys.Name }

func (s functionalsSystem) Includes() []string {
	var out []string
	for _, c := range s.sys.CoeffFunctionals() {
		out = append(out, c.Functional.Namespace()+".h")
	}
	for _, f := range s.sys.Functionals {
		out = append(out, f.Namespace()+".h")
	}
	return out
}

func (s functionalsSystem) Fragment(fn *Function, _ int) []string {
	coeffs := s.sys.CoeffFunctionals()
	coeffName := func(c *bucket.Coefficient) string { return c.Name }
	functionalName := func(f *bucket.Functional) string { return f.Name }

	switch fn.ID {
	case FetchCoefficientSpaceFromFunctional:
		if len(s.sys.Functionals) == 0 {
			return nil
		}
		return nested(fn, keyFunctional, labelFunctional, s.sys.Functionals, functionalName, func(f *bucket.Functional) []string {
			return coefficientSpaces(fn, f.Namespace(), f.Coefficients)
		})
	case FetchCoefficientSpaceFromConstantFunctional:
		if len(coeffs) == 0 {
			return nil
		}
		return nested(fn, keyCoefficient, labelCoefficient, coeffs, coeffName, func(c *bucket.Coefficient) []string {
			return coefficientSpaces(fn, c.Functional.Namespace(), c.Functional.Coefficients)
		})
	case FetchFunctional:
		if len(s.sys.Functionals) == 0 {
			return nil
		}
		return nested(fn, keyFunctional, labelFunctional, s.sys.Functionals, functionalName, func(f *bucket.Functional) []string {
			return fn.Reset(f.Namespace() + "::Form_" + f.Symbol + "(mesh)")
		})
	case FetchConstantFunctional:
		if len(coeffs) == 0 {
			return nil
		}
		return nested(fn, keyCoefficient, labelCoefficient, coeffs, coeffName, func(c *bucket.Coefficient) []string {
			return fn.Reset(c.Functional.Namespace() + "::Form_" + c.Functional.Symbol + "(mesh)")
		})
	}
	return nil
}

// coefficientSpaces dispatches on uflsymbol to the coefficient spaces of the
// form compiled into namespace ns.
func coefficientSpaces(fn *Function, ns string, symbols []string) []string {
	return nested(fn, keySymbol, labelSymbol, symbols, identity, func(sym string) []string {
		return fn.Reset(ns + "::CoefficientSpace_" + sym + "(mesh)")
	})
}
