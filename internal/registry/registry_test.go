package registry

import (
	"testing"

	"github.com/cianwilson/TerraFERMA/internal/bucket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSystem builds a system with one field per symbol in fields and one
// coefficient per symbol in coeffs.
func newSystem(name, symbol string, fields, coeffs []string) *bucket.System {
	sys := bucket.NewSystem(name, symbol, "Domain")
	for _, s := range fields {
		sys.AddField(&bucket.Field{Name: "Field" + s, Symbol: s})
	}
	for _, s := range coeffs {
		sys.AddCoeff(&bucket.Coefficient{Name: "Coeff" + s, Symbol: s})
	}
	return sys
}

func TestCollect_TraversalOrder(t *testing.T) {
	b := bucket.New()
	first := newSystem("Stokes", "us", []string{"u", "p"}, []string{"mu"})
	first.AddSpecialCoeff(&bucket.Coefficient{Name: "Timestep", Symbol: "dt"})
	second := newSystem("Heat", "Ts", []string{"T"}, []string{"kappa", "H"})
	// Only the first system's special coefficients are collected.
	second.AddSpecialCoeff(&bucket.Coefficient{Name: "Time", Symbol: "t"})
	b.AddSystem(first)
	b.AddSystem(second)

	expected := []string{"dt", "us", "u", "p", "mu", "Ts", "T", "kappa", "H"}
	assert.Equal(t, expected, Collect(b))
}

func TestCollect_Empty(t *testing.T) {
	assert.Empty(t, Collect(bucket.New()))
}

func TestCheck(t *testing.T) {
	testCases := []struct {
		name               string
		systems            []*bucket.System
		expectedStatus     Status
		expectedDuplicates []string
		expectedCollisions []Collision
	}{
		{
			name: "unique symbols pass",
			systems: []*bucket.System{
				newSystem("Stokes", "us", []string{"u", "p"}, []string{"mu"}),
				newSystem("Heat", "Ts", []string{"T"}, []string{"kappa"}),
			},
			expectedStatus: StatusOK,
		},
		{
			name: "symbol shared by two systems",
			systems: []*bucket.System{
				newSystem("A", "a", []string{"p"}, nil),
				newSystem("B", "b", nil, []string{"p"}),
			},
			expectedStatus:     StatusViolated,
			expectedDuplicates: []string{"p"},
		},
		{
			name: "symbol shared many times is reported once",
			systems: []*bucket.System{
				newSystem("A", "a", []string{"p", "p"}, []string{"p"}),
				newSystem("B", "b", []string{"p"}, nil),
			},
			expectedStatus:     StatusViolated,
			expectedDuplicates: []string{"p"},
		},
		{
			name: "suffix collision",
			systems: []*bucket.System{
				newSystem("Heat", "Ts", []string{"T"}, []string{"T_t"}),
			},
			expectedStatus:     StatusViolated,
			expectedCollisions: []Collision{{Parent: "T", Conflicting: "T_t"}},
		},
		{
			name: "duplicate and collision are independent",
			systems: []*bucket.System{
				newSystem("A", "a", []string{"u", "u_n"}, []string{"u_n"}),
			},
			expectedStatus:     StatusViolated,
			expectedDuplicates: []string{"u_n"},
			expectedCollisions: []Collision{{Parent: "u", Conflicting: "u_n"}},
		},
		{
			name: "unreserved ending is fine",
			systems: []*bucket.System{
				newSystem("A", "a", []string{"u", "u_x"}, nil),
			},
			expectedStatus: StatusOK,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			b := bucket.New()
			for _, sys := range tc.systems {
				b.AddSystem(sys)
			}

			r := Check(b)
			assert.Equal(t, tc.expectedStatus, r.Status())
			assert.Equal(t, tc.expectedDuplicates, r.Duplicates)
			assert.Equal(t, tc.expectedCollisions, r.Collisions)
			if tc.expectedStatus == StatusOK {
				assert.NoError(t, r.Err())
				assert.Empty(t, r.Diagnostics())
			} else {
				assert.ErrorIs(t, r.Err(), ErrValidation)
			}
		})
	}
}

func TestCheck_SpecialCoefficientsOfLaterSystemsIgnored(t *testing.T) {
	b := bucket.New()
	first := newSystem("A", "a", []string{"u"}, nil)
	second := newSystem("B", "b", nil, nil)
	second.AddSpecialCoeff(&bucket.Coefficient{Name: "Clash", Symbol: "u"})
	b.AddSystem(first)
	b.AddSystem(second)

	assert.Equal(t, StatusOK, Check(b).Status())

	first.AddSpecialCoeff(&bucket.Coefficient{Name: "Clash", Symbol: "u"})
	r := Check(b)
	assert.Equal(t, StatusViolated, r.Status())
	assert.Equal(t, []string{"u"}, r.Duplicates)
}

func TestCheck_LocalSymbols(t *testing.T) {
	b := bucket.New()
	sys := newSystem("Stokes", "us", []string{"u"}, nil)
	sys.AddSolver(&bucket.Solver{
		Name: "Solver",
		Forms: []*bucket.Form{
			{Name: "Residual", Symbol: "F", Rank: 1},
			{Name: "Jacobian", Symbol: "J", Rank: 2},
			{Name: "Again", Symbol: "F", Rank: 1},
			{Name: "Thrice", Symbol: "F", Rank: 1},
		},
	})
	sys.AddFunctional(&bucket.Functional{Name: "Norm", Symbol: "u"})
	b.AddSystem(sys)

	r := Check(b)
	require.Equal(t, StatusViolated, r.Status())
	assert.Empty(t, r.Duplicates)
	assert.Empty(t, r.Collisions)
	assert.Equal(t, []LocalConflict{
		{Namespace: "StokesSolver", Symbol: "F"},
		{Namespace: "StokesNorm", Symbol: "u"},
	}, r.Local)
}

func TestResult_Diagnostics(t *testing.T) {
	r := &Result{
		Duplicates: []string{"p"},
		Collisions: []Collision{{Parent: "T", Conflicting: "T_t"}},
	}

	msgs := r.Diagnostics()
	require.Len(t, msgs, 2)
	assert.Equal(t, "global ufl_symbol p repeated! Change one of its instances.", msgs[0])
	assert.Contains(t, msgs[1], "global ufl_symbol T conflicts with global ufl_symbol T_t")

	err := r.Err()
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "\n- global ufl_symbol p repeated!")
}
