package conformance

import (
	"math"

	"github.com/sghaida/parm/parm"
)

// Sample is one representative value for a kind.
type Sample struct {
	// Name labels the sample in subtest names.
	Name string

	// Value is the sample itself. nil is a deliberate sample: declaring a
	// parameter with an explicit nil default.
	Value any
}

// Case is one row of the conformance table.
type Case struct {
	// Kind is the parameter kind under test.
	Kind parm.Kind

	// Samples are the representative values for the kind.
	Samples []Sample

	// Skip disables the row when non-empty; the text is the reason reported
	// via t.Skip. Disabled rows stay in the table on purpose.
	Skip string
}

// Skipped reports whether the row is disabled.
func (c Case) Skipped() bool { return c.Skip != "" }

// sampleFunc is the callable sample. Kept as a named function so identity
// comparison in tests is stable.
func sampleFunc() int { return 1 }

// table is the canonical row set. It is package-private; Table returns a
// copy so callers can never mutate the shared rows.
var table = []Case{
	{
		Kind: parm.KindAny,
		Samples: []Sample{
			{Name: "nil", Value: nil},
			{Name: "string", Value: "something"},
		},
	},
	{
		Kind: parm.KindString,
		Samples: []Sample{
			{Name: "nil", Value: nil},
			{Name: "string", Value: "test"},
			{Name: "empty", Value: ""},
		},
	},
	{
		Kind: parm.KindNumber,
		Samples: []Sample{
			{Name: "nil", Value: nil},
			{Name: "one", Value: 1.0},
			{Name: "zero", Value: 0.0},
			{Name: "nan", Value: math.NaN()},
		},
	},
	{
		Kind: parm.KindInteger,
		Samples: []Sample{
			{Name: "nil", Value: nil},
			{Name: "one", Value: 1},
		},
		Skip: "integer cases are disabled pending a decision on numeric coercion",
	},
	{
		Kind: parm.KindBoolean,
		Samples: []Sample{
			{Name: "nil", Value: nil},
			{Name: "false", Value: false},
			{Name: "true", Value: true},
		},
	},
	{
		Kind: parm.KindMagnitude,
		Samples: []Sample{
			{Name: "nil", Value: nil},
			{Name: "one", Value: 1.0},
			{Name: "zero", Value: 0.0},
		},
	},
	{
		Kind: parm.KindCallable,
		Samples: []Sample{
			{Name: "nil", Value: nil},
			{Name: "func", Value: sampleFunc},
		},
	},
	{
		Kind: parm.KindSelector,
		Samples: []Sample{
			{Name: "nil", Value: nil},
			{Name: "one", Value: 1},
		},
	},
	{
		Kind: parm.KindTuple,
		Samples: []Sample{
			{Name: "nil", Value: nil},
			{Name: "single", Value: []any{1}},
		},
		Skip: "tuple cases are disabled pending a decision on fixed-length defaults",
	},
	{
		Kind: parm.KindList,
		Samples: []Sample{
			{Name: "nil", Value: nil},
			{Name: "single", Value: []any{1}},
		},
		Skip: "list cases are disabled pending a decision on per-object instantiation of mutable defaults",
	},
	{
		Kind: parm.KindDict,
		Samples: []Sample{
			{Name: "nil", Value: nil},
			{Name: "single", Value: map[any]any{1: 1}},
		},
		Skip: "dict cases are disabled pending a decision on per-object instantiation of mutable defaults",
	},
}

// Table returns a copy of the conformance rows, in table order.
//
// Samples slices are copied too; Sample values themselves are shared (they
// are treated as immutable fixtures).
func Table() []Case {
	out := make([]Case, len(table))
	for i, c := range table {
		samples := make([]Sample, len(c.Samples))
		copy(samples, c.Samples)
		c.Samples = samples
		out[i] = c
	}
	return out
}

// Lookup returns the row for a kind.
func Lookup(kind parm.Kind) (Case, bool) {
	for _, c := range Table() {
		if c.Kind == kind {
			return c, true
		}
	}
	return Case{}, false
}
