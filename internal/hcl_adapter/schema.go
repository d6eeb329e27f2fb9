package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// rootSchema lists the top level blocks and attributes of an options file.
var rootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "cpp_libraries"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "visualization"},
		{Type: "mesh", LabelNames: []string{"name"}},
		{Type: "system", LabelNames: []string{"name"}},
	},
}

type hclVisualization struct {
	Family string `hcl:"family"`
	Degree int    `hcl:"degree,optional"`
}

type hclMesh struct {
	Cell string `hcl:"cell"`
}

type hclSystem struct {
	Symbol              string            `hcl:"symbol"`
	Mesh                string            `hcl:"mesh,optional"`
	Fields              []*hclField       `hcl:"field,block"`
	Coefficients        []*hclCoefficient `hcl:"coefficient,block"`
	SpecialCoefficients []*hclCoefficient `hcl:"special_coefficient,block"`
	Solvers             []*hclSolver      `hcl:"solver,block"`
	Functionals         []*hclFunctional  `hcl:"functional,block"`
}

type hclField struct {
	Name        string           `hcl:"name,label"`
	Symbol      string           `hcl:"symbol"`
	Expressions []*hclExpression `hcl:"expression,block"`
}

type hclCoefficient struct {
	Name        string                    `hcl:"name,label"`
	Symbol      string                    `hcl:"symbol"`
	Type        string                    `hcl:"type,optional"`
	Functional  *hclCoefficientFunctional `hcl:"functional,block"`
	Expressions []*hclExpression          `hcl:"expression,block"`
}

type hclCoefficientFunctional struct {
	Symbol       string   `hcl:"symbol"`
	Coefficients []string `hcl:"coefficients,optional"`
}

type hclSolver struct {
	Name         string     `hcl:"name,label"`
	Type         string     `hcl:"type"`
	Coefficients []string   `hcl:"coefficients,optional"`
	Forms        []*hclForm `hcl:"form,block"`
}

type hclForm struct {
	Name   string `hcl:"name,label"`
	Symbol string `hcl:"symbol"`
	Rank   int    `hcl:"rank,optional"`
}

type hclFunctional struct {
	Name         string   `hcl:"name,label"`
	Symbol       string   `hcl:"symbol"`
	Coefficients []string `hcl:"coefficients,optional"`
}

type hclExpression struct {
	Type    string `hcl:"type,label"`
	Name    string `hcl:"name,label"`
	Init    string `hcl:"init,optional"`
	Eval    string `hcl:"eval"`
	Members string `hcl:"members,optional"`
}
