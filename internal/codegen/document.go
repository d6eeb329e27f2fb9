package codegen

import "strings"

// Document accumulates the lines of one generated file.
type Document struct {
	Filename string
	lines    []string
}

// NewDocument returns an empty document that will be written to filename.
func NewDocument(filename string) *Document {
	return &Document{Filename: filename}
}

// Append adds lines at the given indentation depth.
func (d *Document) Append(depth int, lines ...string) {
	d.lines = append(d.lines, indent(depth, lines)...)
}

// Blank adds an empty line.
func (d *Document) Blank() {
	d.lines = append(d.lines, "")
}

// Lines returns a copy of the document's lines.
func (d *Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// String renders the document, one newline after every line.
func (d *Document) String() string {
	var sb strings.Builder
	for _, l := range d.lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}
