package codegen

// nested renders a chain over key with one branch per item, for use inside a
// contributor's branch body. The fallback still names the enclosing function.
func nested[T any](fn *Function, key, label string, items []T, name func(T) string, body func(T) []string) []string {
	chain := fn.NewChain(key, label)
	for _, it := range items {
		chain.Add(name(it), body(it))
	}
	return chain.Lines()
}

// Keys and labels of the nested chains.
const (
	keySystem      = "systemname"
	keySolver      = "solvername"
	keySolverType  = "solvertype"
	keyForm        = "formname"
	keyFunctional  = "functionalname"
	keyCoefficient = "coefficientname"
	keySymbol      = "uflsymbol"
	keyMesh        = "meshname"
	keyFunction    = "functionname"
	keyExprType    = "expressiontype"
	keyExprName    = "expressionname"

	labelSystem      = "System name"
	labelSolver      = "Solver name"
	labelSolverType  = "Solver type"
	labelForm        = "Form name"
	labelFunctional  = "Functional name"
	labelCoefficient = "Coefficient name"
	labelSymbol      = "UFL symbol"
	labelMesh        = "Mesh name"
	labelFunction    = "Function name"
	labelExprType    = "Expression type"
	labelExprName    = "Expression name"
)

func identity(s string) string { return s }
