package codegen

import (
	"fmt"
	"strings"
)

const indentUnit = "  "

// Branch is one arm of a Chain, taken when the chain's variable equals Key.
type Branch struct {
	Key  string
	Body []string
}

// Chain is an if / else if / else cascade comparing one string variable
// against literal keys. The first matching branch wins, so a repeated key
// makes every later branch with that key unreachable.
type Chain struct {
	Var      string
	Branches []Branch
	Fallback []string
}

// Add appends a branch.
func (c *Chain) Add(key string, body []string) {
	c.Branches = append(c.Branches, Branch{Key: key, Body: body})
}

// Lines renders the chain at zero indentation, branch bodies one level in.
// A chain without branches renders only its fallback, as a plain block.
func (c *Chain) Lines() []string {
	var out []string
	for i, b := range c.Branches {
		keyword := "else if"
		if i == 0 {
			keyword = "if"
		}
		out = append(out, fmt.Sprintf("%s (%s == %s)", keyword, c.Var, quote(b.Key)), "{")
		out = append(out, indent(1, b.Body)...)
		out = append(out, "}")
	}
	if len(c.Branches) > 0 {
		out = append(out, "else")
	}
	out = append(out, "{")
	out = append(out, indent(1, c.Fallback)...)
	out = append(out, "}")
	return out
}

// DuplicateKeys returns the keys that appear on more than one branch, in the
// order their first repeat was found.
func (c *Chain) DuplicateKeys() []string {
	var dups []string
	seen := make(map[string]int)
	for _, b := range c.Branches {
		seen[b.Key]++
		if seen[b.Key] == 2 {
			dups = append(dups, b.Key)
		}
	}
	return dups
}

// indent prefixes every non-empty line with depth indentation units.
func indent(depth int, lines []string) []string {
	prefix := strings.Repeat(indentUnit, depth)
	out := make([]string, len(lines))
	for i, l := range lines {
		if l != "" {
			l = prefix + l
		}
		out[i] = l
	}
	return out
}

// quote renders s as a C++ string literal.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}
