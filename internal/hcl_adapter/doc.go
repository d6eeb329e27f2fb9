// Package hcl_adapter loads simulation options written in HCL into a bucket.Bucket.
//
// An options directory may be split over any number of .hcl files; blocks
// from all of them are merged in file order. Expressions are evaluated with
// a small set of string functions and an env object holding the process
// environment, e.g.
//
//	mesh "Domain" {
//	  cell = "triangle"
//	}
//
//	system "Stokes" {
//	  symbol = "us"
//	  mesh   = "Domain"
//	  field "Velocity" { symbol = "u" }
//	  solver "Solver" {
//	    type = "SNES"
//	    form "Residual" {
//	      symbol = "F"
//	      rank   = 1
//	    }
//	  }
//	}
package hcl_adapter
