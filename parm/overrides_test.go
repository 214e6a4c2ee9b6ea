package parm_test

import (
	"testing"

	"github.com/sghaida/parm/parm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOverridesFixture(t *testing.T) *parm.Object {
	t.Helper()
	s := parm.MustSchema("A",
		parm.String("name", parm.Default("pattern")),
		parm.Magnitude("scale", parm.Default(0.5)),
	)
	return s.New()
}

// TestNewOverrides_ReadThrough verifies override values win and everything
// else falls back to the object.
func TestNewOverrides_ReadThrough(t *testing.T) {
	t.Parallel()

	o := newOverridesFixture(t)
	require.NoError(t, o.Set("name", "mine"))

	ov, err := parm.NewOverrides(o, map[string]any{"scale": 1.0})
	require.NoError(t, err)

	assert.True(t, ov.Overridden("scale"))
	assert.False(t, ov.Overridden("name"))
	assert.Equal(t, 1.0, ov.MustGet("scale"))
	assert.Equal(t, "mine", ov.MustGet("name"))
	assert.Same(t, o, ov.Object())

	// the object is untouched
	assert.Equal(t, 0.5, o.MustGet("scale"))
}

// TestNewOverrides_StrayKey verifies undeclared override keys fail at construction.
func TestNewOverrides_StrayKey(t *testing.T) {
	t.Parallel()

	o := newOverridesFixture(t)

	_, err := parm.NewOverrides(o, map[string]any{"nope": 1})
	require.Error(t, err)

	var unk parm.UnknownParameterError
	require.ErrorAs(t, err, &unk)
	assert.Equal(t, "nope", unk.Name)
}

// TestNewOverrides_ValidatesValues verifies override values go through kind validation.
func TestNewOverrides_ValidatesValues(t *testing.T) {
	t.Parallel()

	o := newOverridesFixture(t)

	_, err := parm.NewOverrides(o, map[string]any{"scale": 2.0})
	require.Error(t, err)

	var ve parm.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "scale", ve.Name)
}

// TestNewOverrides_NilObject verifies the nil-object guard.
func TestNewOverrides_NilObject(t *testing.T) {
	t.Parallel()

	_, err := parm.NewOverrides(nil, nil)
	assert.ErrorIs(t, err, parm.ErrNilObject)

	var ov *parm.Overrides
	assert.False(t, ov.Overridden("a"))
	assert.Nil(t, ov.Object())
	_, err = ov.Get("a")
	assert.ErrorIs(t, err, parm.ErrNilObject)
}

// TestOverrides_UnknownGet verifies reads of undeclared names still fail.
func TestOverrides_UnknownGet(t *testing.T) {
	t.Parallel()

	o := newOverridesFixture(t)
	ov, err := parm.NewOverrides(o, nil)
	require.NoError(t, err)

	_, err = ov.Get("nope")
	var unk parm.UnknownParameterError
	require.ErrorAs(t, err, &unk)

	require.Panics(t, func() { _ = ov.MustGet("nope") })
}
