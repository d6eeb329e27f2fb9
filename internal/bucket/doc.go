// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package bucket provides the in-memory model of a simulation options file.
// It is the single input of the generator: the loader builds a Bucket once
// per run and every later stage (symbol validation, namespace listing, code
// assembly) only reads it.
//
// # Core Concepts
//
//   - Bucket: the root. It owns the meshes, the systems, the visualization
//     element and the list of external C++ libraries.
//
//   - Mesh: a named mesh and the reference cell type of its elements. Every
//     mesh gets its own visualization function space.
//
//   - System: a set of fields and coefficients that are solved for together.
//     A system owns its solvers and functionals.
//
//   - Field / Coefficient: named functions carrying the ufl symbol used for
//     them inside the generated forms. Both may carry C++ expressions; a
//     coefficient may also carry a functional that evaluates it.
//
//   - Solver / Functional: the compiled numerical forms. Each lives in its
//     own generated namespace, derived from the system and entity names.
//
// The model is deliberately inert: it holds names and text only. Turning it
// into C++ is the job of the codegen package.
package bucket
