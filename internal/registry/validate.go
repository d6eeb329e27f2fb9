package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cianwilson/TerraFERMA/internal/bucket"
)

// ErrValidation is wrapped by Result.Err when a check found violations.
var ErrValidation = errors.New("ufl symbol validation failed")

// Status is the outcome of a check as a process-style status code.
type Status int

const (
	StatusOK       Status = 0
	StatusViolated Status = 1
)

// Collision ties a declared symbol to another declared symbol that equals it
// plus a reserved suffix.
type Collision struct {
	Parent      string
	Conflicting string
}

// LocalConflict is a symbol of a solver or functional that is repeated
// inside it or shadows a global symbol.
type LocalConflict struct {
	Namespace string
	Symbol    string
}

// Result holds everything Check found.
type Result struct {
	Symbols    []string
	Duplicates []string
	Collisions []Collision
	Local      []LocalConflict
}

// Status reports whether any violation was found.
func (r *Result) Status() Status {
	if len(r.Duplicates) > 0 || len(r.Collisions) > 0 || len(r.Local) > 0 {
		return StatusViolated
	}
	return StatusOK
}

// Diagnostics returns one message per violation.
func (r *Result) Diagnostics() []string {
	var msgs []string
	for _, s := range r.Duplicates {
		msgs = append(msgs, fmt.Sprintf("global ufl_symbol %s repeated! Change one of its instances.", s))
	}
	for _, c := range r.Collisions {
		msgs = append(msgs, fmt.Sprintf("ufl_symbol generated from global ufl_symbol %s conflicts with global ufl_symbol %s! Change global ufl_symbol %s to avoid reserved endings.",
			c.Parent, c.Conflicting, c.Conflicting))
	}
	for _, l := range r.Local {
		msgs = append(msgs, fmt.Sprintf("ufl_symbol %s in %s repeated or shadows a global ufl_symbol! Change one of its instances.", l.Symbol, l.Namespace))
	}
	return msgs
}

// Err returns nil when the check passed, or an error wrapping ErrValidation
// that lists every diagnostic.
func (r *Result) Err() error {
	if r.Status() == StatusOK {
		return nil
	}
	return fmt.Errorf("%w:\n- %s", ErrValidation, strings.Join(r.Diagnostics(), "\n- "))
}

// Check validates the symbols of b. Duplicates and suffix collisions are two
// independent passes over the collected symbols; each offending symbol or
// pair is reported once no matter how often it occurs.
func Check(b *bucket.Bucket) *Result {
	symbols := Collect(b)
	counts := make(map[string]int, len(symbols))
	for _, s := range symbols {
		counts[s]++
	}

	r := &Result{Symbols: symbols}

	reported := make(map[string]bool)
	for _, s := range symbols {
		if counts[s] > 1 && !reported[s] {
			reported[s] = true
			r.Duplicates = append(r.Duplicates, s)
		}
	}

	seen := make(map[Collision]bool)
	for _, s := range symbols {
		for _, suffix := range ReservedSuffixes {
			if suffix == "" {
				continue
			}
			c := Collision{Parent: s, Conflicting: s + suffix}
			if counts[c.Conflicting] >= 1 && !seen[c] {
				seen[c] = true
				r.Collisions = append(r.Collisions, c)
			}
		}
	}

	for _, scope := range scopes(b) {
		local := make(map[string]int)
		for _, s := range scope.LocalSymbols() {
			local[s]++
			if local[s] == 1 && counts[s] > 0 || local[s] == 2 && counts[s] == 0 {
				r.Local = append(r.Local, LocalConflict{Namespace: scope.Namespace(), Symbol: s})
			}
		}
	}

	return r
}
