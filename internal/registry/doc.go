// Package registry collects the ufl symbols declared across a bucket and
// checks them for collisions before any code is generated.
//
// Symbols become identifiers inside the generated numerical forms, and the
// form compiler derives further identifiers from them by appending reserved
// suffixes (test and trial functions, iterates, previous timesteps). Two
// user symbols that are equal, or one user symbol that equals another plus a
// reserved suffix, would silently alias each other in the compiled forms.
//
// The registry only reports. Deciding to stop is left to the caller, which
// gets a Result carrying a status code and one diagnostic per violation.
package registry
