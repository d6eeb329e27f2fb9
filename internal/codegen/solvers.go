package codegen

import "github.com/cianwilson/TerraFERMA/internal/bucket"

// SystemSolvers generates SystemSolversWrapper.cpp, which returns the
// function spaces, coefficient spaces and forms of every solver.
var SystemSolvers = &Artifact{
	Filename: "SystemSolversWrapper.cpp",
	Preamble: []string{"SystemSolversWrapper.h", "BoostTypes.h", "Logger.h", "<dolfin.h>"},
	Functions: []*Function{
		{
			ID:         FetchFunctionSpace,
			Name:       "ufc_fetch_functionspace",
			Comment:    "A function to return a functionspace from a system given a mesh (defaults to first solver in system as they should all be the same).",
			Signature:  "FunctionSpace_ptr ufc_fetch_functionspace(const std::string &systemname, Mesh_ptr mesh)",
			ResultType: "FunctionSpace_ptr",
			Result:     "functionspace",
			Key:        keySystem,
			KeyLabel:   labelSystem,
		},
		{
			ID:         FetchSolverFunctionSpace,
			Name:       "ufc_fetch_functionspace",
			Comment:    "A function to return a functionspace from a system given a mesh and a solvername.",
			Signature:  "FunctionSpace_ptr ufc_fetch_functionspace(const std::string &systemname, const std::string &solvername, Mesh_ptr mesh)",
			ResultType: "FunctionSpace_ptr",
			Result:     "functionspace",
			Key:        keySystem,
			KeyLabel:   labelSystem,
		},
		{
			ID:         FetchCoefficientSpaceFromSolver,
			Name:       "ufc_fetch_coefficientspace_from_solver",
			Comment:    "A function to return a functionspace (for a coefficient) from a system given a mesh, a solvername and a uflsymbol.",
			Signature:  "FunctionSpace_ptr ufc_fetch_coefficientspace_from_solver(const std::string &systemname, const std::string &solvername, const std::string &uflsymbol, Mesh_ptr mesh)",
			ResultType: "FunctionSpace_ptr",
			Result:     "coefficientspace",
			Key:        keySystem,
			KeyLabel:   labelSystem,
		},
		{
			ID:         FetchForm,
			Name:       "ufc_fetch_form",
			Comment:    "A function to return a form for a solver from a system given a functionspace, a solvername, a solvertype and a formname.",
			Signature:  "Form_ptr ufc_fetch_form(const std::string &systemname, const std::string &solvername, const std::string &solvertype, const std::string &formname, const FunctionSpace_ptr functionspace)",
			ResultType: "Form_ptr",
			Result:     "form",
			Key:        keySystem,
			KeyLabel:   labelSystem,
		},
	},
	Contributors: func(b *bucket.Bucket) []Contributor {
		out := make([]Contributor, 0, len(b.Systems))
		for _, sys := range b.Systems {
			out = append(out, solversSystem{sys})
		}
		return out
	},
}

type solversSystem struct{ sys *bucket.System }

func (s solversSystem) Key() string { return s.sys.Name }

func (s solversSystem) Includes() []string {
	var out []string
	for _, sv := range s.sys.Solvers {
		out = append(out, sv.Namespace()+".h")
	}
	return out
}

func (s solversSystem) Fragment(fn *Function, _ int) []string {
	solvers := s.sys.Solvers
	if len(solvers) == 0 {
		return nil
	}
	solverName := func(sv *bucket.Solver) string { return sv.Name }

	switch fn.ID {
	case FetchFunctionSpace:
		return fn.Reset(solvers[0].Namespace() + "::FunctionSpace(mesh)")
	case FetchSolverFunctionSpace:
		return nested(fn, keySolver, labelSolver, solvers, solverName, func(sv *bucket.Solver) []string {
			return fn.Reset(sv.Namespace() + "::FunctionSpace(mesh)")
		})
	case FetchCoefficientSpaceFromSolver:
		return nested(fn, keySolver, labelSolver, solvers, solverName, func(sv *bucket.Solver) []string {
			return coefficientSpaces(fn, sv.Namespace(), sv.Coefficients)
		})
	case FetchForm:
		return nested(fn, keySolver, labelSolver, solvers, solverName, func(sv *bucket.Solver) []string {
			return nested(fn, keySolverType, labelSolverType, []string{sv.Type}, identity, func(string) []string {
				return nested(fn, keyForm, labelForm, sv.Forms, func(f *bucket.Form) string { return f.Name }, func(f *bucket.Form) []string {
					return fn.Reset(sv.Namespace() + "::Form_" + f.Symbol + formArgs(f))
				})
			})
		})
	}
	return nil
}

// formArgs returns the constructor arguments of a compiled form: one
// function space per argument of the form.
func formArgs(f *bucket.Form) string {
	if f.Rank == 2 {
		return "(functionspace, functionspace)"
	}
	return "(functionspace)"
}
