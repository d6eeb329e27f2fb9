package registry

import "github.com/cianwilson/TerraFERMA/internal/bucket"

// ReservedSuffixes are appended by the form compiler to a symbol when it
// derives secondary symbols from it: iterate, previous timestep, test and
// trial function. The empty suffix stands for the symbol itself.
var ReservedSuffixes = []string{"", "_i", "_n", "_t", "_a"}

// Collect returns every global ufl symbol of b in traversal order: the
// special coefficients of the first system, then for each system its own
// symbol, its field symbols and its coefficient symbols.
//
// Only the first system contributes special coefficients; they are shared by
// all systems.
func Collect(b *bucket.Bucket) []string {
	var symbols []string
	if len(b.Systems) > 0 {
		for _, c := range b.Systems[0].SpecialCoeffs {
			symbols = append(symbols, c.Symbol)
		}
	}
	for _, sys := range b.Systems {
		symbols = append(symbols, sys.Symbol)
		for _, f := range sys.Fields {
			symbols = append(symbols, f.Symbol)
		}
		for _, c := range sys.Coeffs {
			symbols = append(symbols, c.Symbol)
		}
	}
	return symbols
}

// localScope is a compiled form whose own symbols share the global namespace.
type localScope interface {
	Namespace() string
	LocalSymbols() []string
}

// scopes returns the solvers and functionals of b in traversal order.
func scopes(b *bucket.Bucket) []localScope {
	var out []localScope
	for _, sys := range b.Systems {
		for _, c := range sys.CoeffFunctionals() {
			out = append(out, c.Functional)
		}
		for _, sv := range sys.Solvers {
			out = append(out, sv)
		}
		for _, f := range sys.Functionals {
			out = append(out, f)
		}
	}
	return out
}
