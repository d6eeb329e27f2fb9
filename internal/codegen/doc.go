// Package codegen assembles the C++ dispatch sources that map runtime names
// (system, solver, mesh, ...) to compiled forms and function spaces.
//
// Every generated file has the same shape: a fixed preamble of #include
// lines, one #include per contributing namespace, then a set of dispatch
// functions inside namespace buckettools. A dispatch function is a Chain of
// if / else if branches, one per contributor in declaration order, closed by
// an else branch that reports the unknown name. Contributors supply their
// includes and branch bodies through the Contributor interface; the files
// are built by appending blocks to a Document, never by editing text.
package codegen
