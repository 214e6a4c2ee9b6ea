// Package parm provides small, explicit typed parameter declarations for Go.
//
// The package models three things:
//
//   - Decl — a single named, kinded attribute declaration. A declaration may
//     carry an explicit default value; an explicit nil default is distinct
//     from no default at all. A declaration with no default observes the
//     unset sentinel (nil).
//
//   - Schema — a named, immutable set of declarations. Schemas extend one
//     another: a redeclaration that supplies a default overrides the base
//     value, a bare redeclaration inherits the base's effective value, and a
//     brand-new bare declaration is unset.
//
//   - Object — an instance of a schema. Reads resolve the instance value
//     first, then the schema default. Writes are validated per kind and
//     respect the Constant and ReadOnly flags.
//
// All failure modes are structured/typed errors (unknown parameter,
// duplicate parameter, validation failure, constant/read-only writes) so
// they can be asserted in tests without string matching.
//
// Quick guidance
//
// Declare with the per-kind helpers and options:
//
//	base := parm.MustSchema("Pattern",
//		parm.String("name", parm.Default("pattern")),
//		parm.Magnitude("scale", parm.Default(0.5)),
//		parm.Number("offset"),
//	)
//
// Extend and instantiate:
//
//	gaussian := parm.MustExtend(base, "Gaussian",
//		parm.String("name", parm.Default("gaussian")), // override
//		parm.Magnitude("scale"),                       // inherit 0.5
//	)
//	obj := gaussian.New()
//
// examples can be found under examples/basic and examples/gen
// Import
//
//	 "github.com/sghaida/parm/parm"
package parm
