package codegen

import "fmt"

// FunctionID identifies a generated dispatch function. C++ overloads share a
// name, so contributors switch on the ID.
type FunctionID int

const (
	FetchCoefficientSpaceFromFunctional FunctionID = iota + 1
	FetchCoefficientSpaceFromConstantFunctional
	FetchFunctional
	FetchConstantFunctional
	FetchFunctionSpace
	FetchSolverFunctionSpace
	FetchCoefficientSpaceFromSolver
	FetchForm
	FetchVisualizationFunctionSpace
	FetchExpression
	InitExpression
)

// Function describes one generated dispatch function. Key is the C++
// parameter the top level chain switches on and KeyLabel how the error
// message names it. Void functions leave ResultType empty.
type Function struct {
	ID         FunctionID
	Name       string
	Comment    string
	Signature  string
	ResultType string
	Result     string
	Key        string
	KeyLabel   string
}

// Unknown returns the statement reporting that key matched no branch.
func (f *Function) Unknown(key, label string) []string {
	return []string{
		fmt.Sprintf("tf_err(\"Unknown %s in %s\", \"%s: %%s\", %s.c_str());", key, f.Name, label, key),
	}
}

// NewChain returns an empty chain over key whose fallback reports the key as
// unknown in this function.
func (f *Function) NewChain(key, label string) *Chain {
	return &Chain{Var: key, Fallback: f.Unknown(key, label)}
}

// Lines renders the whole function around its top level chain.
func (f *Function) Lines(chain *Chain) []string {
	out := []string{"// " + f.Comment, f.Signature, "{"}
	if f.ResultType != "" {
		out = append(out, indentUnit+f.ResultType+" "+f.Result+";")
	}
	out = append(out, indent(1, chain.Lines())...)
	if f.ResultType != "" {
		out = append(out, indentUnit+"return "+f.Result+";")
	}
	return append(out, "}")
}

// Reset returns the statement storing a newly constructed object in the
// function's result handle.
func (f *Function) Reset(expr string) []string {
	return []string{fmt.Sprintf("%s.reset( new %s );", f.Result, expr)}
}
