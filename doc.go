// Package parm provides typed parameter declarations for Go.
//
// This repository contains a small progression of pieces built around one
// idea: attributes declared by name and kind, with an explicit unset
// sentinel, override-vs-inherit semantics across schema extension, and
// per-kind validation:
//
//   - parm: declarations, schemas, objects, overrides, YAML snapshots
//   - conformance: the kind/sample-value table and subtest runners used to
//     exercise every kind uniformly
//   - cmd/parmgen: code generator for typed accessor facades over schemas
//   - examples/*: runnable examples
//
// The goal is to keep declarations explicit (no struct tags, no reflection
// over user types) and keep the surface area intentionally small.
//
// Start with the examples in the repo for end-to-end declaration style.
package parm
