package codegen

import (
	"fmt"
	"strconv"

	"github.com/cianwilson/TerraFERMA/internal/bucket"
	"github.com/cianwilson/TerraFERMA/internal/namespace"
)

// Visualization generates VisualizationWrapper.cpp, which returns the
// visualization function space of every mesh.
var Visualization = &Artifact{
	Filename: "VisualizationWrapper.cpp",
	Preamble: []string{"VisualizationWrapper.h", "BoostTypes.h", "Logger.h", "<dolfin.h>"},
	Functions: []*Function{
		{
			ID:         FetchVisualizationFunctionSpace,
			Name:       "ufc_fetch_visualization_functionspace",
			Comment:    "A function to return a functionspace for visualization given a mesh and a mesh name.",
			Signature:  "FunctionSpace_ptr ufc_fetch_visualization_functionspace(const std::string &meshname, Mesh_ptr mesh)",
			ResultType: "FunctionSpace_ptr",
			Result:     "functionspace",
			Key:        keyMesh,
			KeyLabel:   labelMesh,
		},
	},
	Contributors: func(b *bucket.Bucket) []Contributor {
		out := make([]Contributor, 0, len(b.Meshes))
		for _, m := range b.Meshes {
			out = append(out, visualizationMesh{m})
		}
		return out
	},
}

type visualizationMesh struct{ mesh *bucket.Mesh }

func (m visualizationMesh) Key() string { return m.mesh.Name }

func (m visualizationMesh) Includes() []string {
	return []string{namespace.Visualization(m.mesh.Name) + ".h"}
}

func (m visualizationMesh) Fragment(fn *Function, _ int) []string {
	if fn.ID != FetchVisualizationFunctionSpace {
		return nil
	}
	return fn.Reset(namespace.Visualization(m.mesh.Name) + "::FunctionSpace(mesh)")
}

// VisualizationUFL returns the form description of the visualization
// function space of mesh, named after its namespace so the compiled header
// matches the #include emitted by Visualization.
func VisualizationUFL(b *bucket.Bucket, mesh *bucket.Mesh) *Document {
	ns := namespace.Visualization(mesh.Name)
	space := ns[1:]
	doc := NewDocument(ns + ".ufl")

	doc.Append(0, declaration("Element", "Function", space))
	doc.Append(0, fmt.Sprintf("vis_e = FiniteElement(%s, %s, %d)", strconv.Quote(b.VisElement.Family), mesh.Cell, b.VisElement.Degree))
	doc.Blank()
	doc.Append(0, declaration("Test space", "Function", space))
	doc.Append(0, "vis_t = TestFunction(vis_e)")
	doc.Blank()
	doc.Append(0, declaration("Trial space", "Function", space))
	doc.Append(0, "vis_a = TrialFunction(vis_e)")
	doc.Blank()
	doc.Append(0, declaration("Form", "form", "Bilinear"))
	doc.Append(0, "a = vis_t*vis_a*dx", "forms = [a]")
	doc.Blank()
	doc.Append(0, "# Produced by: tfgen")
	return doc
}

func declaration(what, kind, name string) string {
	return fmt.Sprintf("# %s declaration for %s %s", what, kind, name)
}
