// Package namespace names the generated-code namespaces of a bucket.
//
// A namespace is the C++ scope under which a compiled numerical form for one
// mesh, solver or functional lives. The same names are used for the form
// description files handed to the form compiler and for the #include lines
// of the generated dispatch code, so both sides must go through this package.
package namespace

import "github.com/cianwilson/TerraFERMA/internal/bucket"

// VisualizationPrefix starts every visualization namespace.
const VisualizationPrefix = "_VisualizationOnMesh"

// Visualization returns the namespace of the visualization function space of
// the named mesh.
func Visualization(meshName string) string {
	return VisualizationPrefix + meshName
}

// List returns every namespace of b: one visualization namespace per mesh,
// then per system the namespaces of the coefficient functionals, the solvers
// and the functionals, in that order.
func List(b *bucket.Bucket) []string {
	var namespaces []string
	for _, m := range b.Meshes {
		namespaces = append(namespaces, Visualization(m.Name))
	}
	for _, sys := range b.Systems {
		for _, c := range sys.CoeffFunctionals() {
			namespaces = append(namespaces, c.Functional.Namespace())
		}
		for _, sv := range sys.Solvers {
			namespaces = append(namespaces, sv.Namespace())
		}
		for _, f := range sys.Functionals {
			namespaces = append(namespaces, f.Namespace())
		}
	}
	return namespaces
}
