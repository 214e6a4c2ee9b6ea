// Command parmgen — typed accessor facades for parameter schemas (Go)
//
// parmgen keeps schema declarations as the single source of truth while
// giving call sites compile-time ergonomics:
//
//   - You write a tiny *.schema.json spec next to your schema variable.
//   - You add a //go:generate ... directive in the owner Go file.
//   - parmgen generates a facade with:
//       - a <Name>() (<GoType>, bool) getter per parameter
//       - a Set<Name>(<GoType>) error setter per parameter
//       - an Object() escape hatch for untyped access
//
// There is no reflection over user types and no struct-tag mapping: the
// facade is plain generated code over parm.Object's Get/Set, so kind
// validation and Constant/ReadOnly enforcement keep working unchanged.
//
// When to use parmgen
//
// Use it when a schema is stable enough that stringly Get("scale") calls at
// every use site hurt more than a generated file helps: the getter's
// (value, ok) shape folds the unset sentinel and the type assertion into
// one check.
//
// Avoid it for throwaway schemas or tests; parm.Object's untyped API is
// enough there.
//
// Spec format (*.schema.json)
//
// Minimal example:
//
//	{
//	  "package": "gen",
//	  "facadeName": "Station",
//	  "schemaVar": "StationSchema",
//	  "imports": {
//	    "parm": "github.com/sghaida/parm/parm"
//	  },
//	  "params": [
//	    { "name": "City",      "param": "city",      "goType": "string" },
//	    { "name": "Threshold", "param": "threshold", "goType": "float64" }
//	  ]
//	}
//
// Typical go:generate usage
//
// Put this in the owner Go file (same package directory as the spec):
//
//	//go:generate go run ../../cmd/parmgen -spec ./station.schema.json -out ./station.gen.go
//
// Then:
//
//	go generate ./...
//
// imports.parm is only a fallback: when the owner file already imports the
// parm package under a usable identifier, the generated file reuses the
// owner's imports so it matches local style.
//
// See examples/gen for end-to-end usage.
package main
