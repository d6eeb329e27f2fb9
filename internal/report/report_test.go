package report

import (
	"testing"

	"github.com/cianwilson/TerraFERMA/internal/bucket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Marshal(t *testing.T) {
	b := bucket.New()
	b.AddMesh("Domain", "triangle")
	b.CppLibraries = []string{"libfoo"}
	sys := bucket.NewSystem("Stokes", "us", "Domain")
	sys.AddSolver(&bucket.Solver{Name: "Solver", Type: "SNES"})
	b.AddSystem(sys)

	r := New(b)
	r.Record("SystemSolversWrapper.cpp", "changed")
	r.Record("SystemExpressionsWrapper.cpp", "unchanged")

	out, err := r.Marshal()
	require.NoError(t, err)

	want := `namespaces:
    - _VisualizationOnMeshDomain
    - StokesSolver
cpp_libraries:
    - libfoo
artifacts:
    - file: SystemExpressionsWrapper.cpp
      outcome: unchanged
    - file: SystemSolversWrapper.cpp
      outcome: changed
`
	assert.Equal(t, want, string(out))
	assert.Equal(t, "SystemSolversWrapper.cpp", r.Artifacts[0].File, "Marshal must not reorder the report itself")
}

func TestReport_RoundTripEmpty(t *testing.T) {
	out, err := New(bucket.New()).Marshal()
	require.NoError(t, err)

	r, err := Unmarshal(out)
	require.NoError(t, err)
	assert.Empty(t, r.Namespaces)
	assert.Empty(t, r.CppLibraries)
	assert.Empty(t, r.Artifacts)
}

func TestUnmarshal_Invalid(t *testing.T) {
	_, err := Unmarshal([]byte("namespaces: {"))
	require.Error(t, err)
}
