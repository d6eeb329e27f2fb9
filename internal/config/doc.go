// Package config defines the boundary between the generator and the format
// its options are written in.
//
// The bucket.Bucket model is the single source of truth for the registry and
// codegen packages. Concrete loaders, such as the HCL one, live in separate
// packages and only have to satisfy Loader.
package config
