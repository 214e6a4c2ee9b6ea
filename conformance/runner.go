package conformance

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Each runs fn once per table row as a subtest named after the kind.
//
// Disabled rows are registered and skipped with their reasons, so they show
// up in test output instead of vanishing. Subtests run in parallel; fn must
// not depend on execution order.
func Each(t *testing.T, fn func(t *testing.T, c Case)) {
	t.Helper()
	for _, c := range Table() {
		c := c
		t.Run(c.Kind.String(), func(t *testing.T) {
			t.Parallel()
			if c.Skipped() {
				t.Skip(c.Skip)
			}
			fn(t, c)
		})
	}
}

// EachSample runs fn once per (row, sample) pair, nesting sample subtests
// under the kind subtest.
func EachSample(t *testing.T, fn func(t *testing.T, c Case, s Sample)) {
	t.Helper()
	Each(t, func(t *testing.T, c Case) {
		for _, s := range c.Samples {
			s := s
			t.Run(s.Name, func(t *testing.T) {
				t.Parallel()
				fn(t, c, s)
			})
		}
	})
}

// equalOpts makes cmp usable on the table's samples: NaN equals NaN, and
// non-nil funcs compare by identity (cmp alone treats any non-nil func pair
// as unequal).
var equalOpts = cmp.Options{
	cmpopts.EquateNaNs(),
	cmp.FilterValues(bothFuncs, cmp.Comparer(sameFunc)),
}

// Equal reports whether two sample-shaped values are equal.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, equalOpts)
}

// Diff returns a human-readable report of how a and b differ, empty when equal.
func Diff(a, b any) string {
	return cmp.Diff(a, b, equalOpts)
}

func bothFuncs(a, b any) bool {
	return a != nil && b != nil &&
		reflect.TypeOf(a).Kind() == reflect.Func &&
		reflect.TypeOf(b).Kind() == reflect.Func
}

func sameFunc(a, b any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
