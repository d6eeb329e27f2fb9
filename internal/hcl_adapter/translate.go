package hcl_adapter

import (
	"fmt"

	"github.com/cianwilson/TerraFERMA/internal/bucket"
	"github.com/hashicorp/hcl/v2"
)

func translateVisualization(v *hclVisualization) bucket.VisElement {
	degree := v.Degree
	if degree == 0 {
		degree = 1
	}
	return bucket.VisElement{Family: v.Family, Degree: degree}
}

// translateSystem converts a decoded system block into the bucket model.
// Children are fully built before they are added so that back pointers reach
// their expressions and functionals.
func translateSystem(block *hcl.Block, s *hclSystem) (*bucket.System, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	sys := bucket.NewSystem(block.Labels[0], s.Symbol, s.Mesh)

	for _, f := range s.Fields {
		sys.AddField(&bucket.Field{
			Name:   f.Name,
			Symbol: f.Symbol,
			Cpp:    translateExpressions(f.Expressions),
		})
	}
	for _, c := range s.Coefficients {
		sys.AddCoeff(translateCoefficient(c))
	}
	for _, c := range s.SpecialCoefficients {
		sys.AddSpecialCoeff(translateCoefficient(c))
	}
	for _, sv := range s.Solvers {
		solver := &bucket.Solver{
			Name:         sv.Name,
			Type:         sv.Type,
			Coefficients: sv.Coefficients,
		}
		for _, f := range sv.Forms {
			rank := f.Rank
			if rank == 0 {
				rank = 1
			}
			if rank != 1 && rank != 2 {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid form rank",
					Detail:   fmt.Sprintf("Form %q of solver %q in system %q has rank %d; only 1 and 2 are supported.", f.Name, sv.Name, sys.Name, f.Rank),
					Subject:  block.DefRange.Ptr(),
				})
				continue
			}
			solver.Forms = append(solver.Forms, &bucket.Form{Name: f.Name, Symbol: f.Symbol, Rank: rank})
		}
		sys.AddSolver(solver)
	}
	for _, f := range s.Functionals {
		sys.AddFunctional(&bucket.Functional{
			Name:         f.Name,
			Symbol:       f.Symbol,
			Coefficients: f.Coefficients,
		})
	}

	return sys, diags
}

func translateCoefficient(c *hclCoefficient) *bucket.Coefficient {
	coeff := &bucket.Coefficient{
		Name:   c.Name,
		Symbol: c.Symbol,
		Type:   c.Type,
		Cpp:    translateExpressions(c.Expressions),
	}
	if c.Functional != nil {
		coeff.Functional = &bucket.Functional{
			Symbol:       c.Functional.Symbol,
			Coefficients: c.Functional.Coefficients,
		}
	}
	return coeff
}

func translateExpressions(exprs []*hclExpression) []*bucket.CppExpression {
	var out []*bucket.CppExpression
	for _, e := range exprs {
		out = append(out, &bucket.CppExpression{
			Type:    e.Type,
			Name:    e.Name,
			Init:    e.Init,
			Eval:    e.Eval,
			Members: e.Members,
		})
	}
	return out
}
