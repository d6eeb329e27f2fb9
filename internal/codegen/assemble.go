package codegen

import "github.com/cianwilson/TerraFERMA/internal/bucket"

// Contributor is a model entity that takes part in one generated file.
// Fragment returns the body of the entity's branch in fn, or nil when the
// entity has nothing to dispatch to in that function. index is the
// contributor's position in traversal order.
type Contributor interface {
	Key() string
	Includes() []string
	Fragment(fn *Function, index int) []string
}

// Artifact describes a generated file: its name, its fixed includes and its
// dispatch functions in output order.
type Artifact struct {
	Filename  string
	Preamble  []string
	Functions []*Function
	// Contributors extracts the artifact's contributors from a bucket.
	Contributors func(b *bucket.Bucket) []Contributor
}

// Duplicate is a dispatch key that appears on more than one top level branch.
type Duplicate struct {
	Function string
	Key      string
}

// Result is an assembled artifact.
type Result struct {
	Document   *Document
	Duplicates []Duplicate
}

// Build assembles a from the contributors of b.
func (a *Artifact) Build(b *bucket.Bucket) *Result {
	return Assemble(a, a.Contributors(b))
}

// Assemble builds the document of a from contributors, visited in order.
func Assemble(a *Artifact, contributors []Contributor) *Result {
	doc := NewDocument(a.Filename)
	res := &Result{Document: doc}

	doc.Blank()
	for _, inc := range a.Preamble {
		doc.Append(0, include(inc))
	}
	doc.Blank()
	for _, c := range contributors {
		for _, inc := range c.Includes() {
			doc.Append(0, include(inc))
		}
	}
	doc.Blank()

	doc.Append(0, "namespace buckettools", "{")
	for _, fn := range a.Functions {
		chain := fn.NewChain(fn.Key, fn.KeyLabel)
		for i, c := range contributors {
			if body := c.Fragment(fn, i); body != nil {
				chain.Add(c.Key(), body)
			}
		}
		for _, key := range chain.DuplicateKeys() {
			res.Duplicates = append(res.Duplicates, Duplicate{Function: fn.Name, Key: key})
		}
		doc.Append(1, fn.Lines(chain)...)
		doc.Blank()
	}
	doc.Append(0, "}")
	doc.Blank()

	return res
}

// include renders an #include directive. Names already in angle brackets are
// system headers and are kept as they are.
func include(name string) string {
	if len(name) > 1 && name[0] == '<' {
		return "#include " + name
	}
	return "#include " + quote(name)
}
