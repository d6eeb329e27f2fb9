// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Bucket root and the Mesh record.
package bucket

// VisElement describes the finite element used for visualization output.
type VisElement struct {
	Family string
	Degree int
}

// Mesh is a named mesh and the reference cell type of its elements.
type Mesh struct {
	Name string
	Cell string
}

// Bucket is the root of the model. Meshes and Systems keep declaration order,
// which fixes the order of everything generated from them.
type Bucket struct {
	Meshes       []*Mesh
	Systems      []*System
	VisElement   VisElement
	CppLibraries []string
}

// New creates and returns an initialized, empty Bucket.
func New() *Bucket {
	return &Bucket{
		Meshes:  []*Mesh{},
		Systems: []*System{},
	}
}

// AddMesh appends a mesh. It returns false, leaving the bucket untouched, if a
// mesh with the same name is already present.
func (b *Bucket) AddMesh(name, cell string) bool {
	if b.Mesh(name) != nil {
		return false
	}
	b.Meshes = append(b.Meshes, &Mesh{Name: name, Cell: cell})
	return true
}

// Mesh looks a mesh up by name.
func (b *Bucket) Mesh(name string) *Mesh {
	for _, m := range b.Meshes {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// AddSystem appends sys and points it back at b.
func (b *Bucket) AddSystem(sys *System) {
	sys.bucket = b
	b.Systems = append(b.Systems, sys)
}

// ListCppLibraries returns the external C++ libraries to link against, or an
// empty slice when none were declared.
func (b *Bucket) ListCppLibraries() []string {
	if b.CppLibraries == nil {
		return []string{}
	}
	return b.CppLibraries
}
