package parm_test

import (
	"testing"

	"github.com/sghaida/parm/conformance"
	"github.com/sghaida/parm/parm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newInheritanceBase builds the base schema every inheritance case derives
// from: one parameter with a unique value to observe overrides, one with an
// explicit nil, and one with a plain value to observe inheritance.
func newInheritanceBase(t *testing.T) *parm.Schema {
	t.Helper()
	return parm.MustSchema("A",
		parm.Any("a", parm.Default("something unique")),
		parm.Any("b", parm.Default(nil)),
		parm.Any("c", parm.Default("4th")),
	)
}

// deriveForSample redeclares "a" with the sample value and "b"/"c" bare,
// mirroring the shape every inheritance case observes.
func deriveForSample(t *testing.T, base *parm.Schema, c conformance.Case, s conformance.Sample) *parm.Schema {
	t.Helper()
	derived, err := base.Extend("B",
		parm.Declare(c.Kind, "a", parm.Default(s.Value)),
		parm.Declare(c.Kind, "b"),
		parm.Declare(c.Kind, "c"),
	)
	require.NoError(t, err)
	return derived
}

//
// -----------------------------------------------------------------------------
// Override vs inherit, one subtest per (kind, sample) pair
// -----------------------------------------------------------------------------

// TestOverrideInheritance verifies the derived schema's "a" observes the
// supplied sample value rather than inheriting the base's.
func TestOverrideInheritance(t *testing.T) {
	t.Parallel()

	base := newInheritanceBase(t)

	conformance.EachSample(t, func(t *testing.T, c conformance.Case, s conformance.Sample) {
		derived := deriveForSample(t, base, c, s)

		got := derived.MustDefault("a")
		assert.True(t, conformance.Equal(got, s.Value), conformance.Diff(got, s.Value))
	})
}

// TestInheritDefault verifies bare redeclarations of "b" and "c" observe the
// base schema's values — the explicit nil stays nil, never a kind-specific
// default, and the plain value carries over untouched.
func TestInheritDefault(t *testing.T) {
	t.Parallel()

	base := newInheritanceBase(t)

	conformance.EachSample(t, func(t *testing.T, c conformance.Case, s conformance.Sample) {
		derived := deriveForSample(t, base, c, s)

		gotB := derived.MustDefault("b")
		wantB := base.MustDefault("b")
		assert.True(t, conformance.Equal(gotB, wantB), conformance.Diff(gotB, wantB))
		assert.Nil(t, gotB)

		gotC := derived.MustDefault("c")
		wantC := base.MustDefault("c")
		assert.True(t, conformance.Equal(gotC, wantC), conformance.Diff(gotC, wantC))
	})
}

// TestInheritedValuesReachObjects verifies objects of a derived schema
// observe the same override/inherit resolution as the schema itself.
func TestInheritedValuesReachObjects(t *testing.T) {
	t.Parallel()

	base := newInheritanceBase(t)

	conformance.EachSample(t, func(t *testing.T, c conformance.Case, s conformance.Sample) {
		obj := deriveForSample(t, base, c, s).New()

		gotA := obj.MustGet("a")
		assert.True(t, conformance.Equal(gotA, s.Value), conformance.Diff(gotA, s.Value))
		assert.Nil(t, obj.MustGet("b"))
		assert.Equal(t, "4th", obj.MustGet("c"))
	})
}

// TestRedeclarationLeavesUnset is the disabled variant of the inheritance
// semantics: a bare redeclaration observing the unset sentinel instead of
// the base value. Bare redeclarations currently inherit; whether a schema
// should be able to reset a parameter to unset is still undecided, so the
// case is recorded and skipped rather than dropped.
func TestRedeclarationLeavesUnset(t *testing.T) {
	t.Skip("bare redeclarations inherit; reset-to-unset semantics are undecided")
}
