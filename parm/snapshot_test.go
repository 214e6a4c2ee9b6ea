package parm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sghaida/parm/parm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Snapshot / EncodeSnapshot
// -----------------------------------------------------------------------------

// TestSnapshot_Shape verifies the snapshot carries names, kinds, defaults,
// and the explicit-nil distinction.
func TestSnapshot_Shape(t *testing.T) {
	t.Parallel()

	s := parm.MustSchema("Pattern",
		parm.String("name", parm.Default("pattern"), parm.Doc("display name")),
		parm.Magnitude("scale", parm.Default(0.5)),
		parm.Number("offset"),
		parm.Any("tag", parm.Default(nil)),
		parm.Selector("mode", parm.Objects("fast", "slow"), parm.Constant()),
		parm.Tuple("size", parm.Length(2)),
	)

	snap := s.Snapshot()
	require.Equal(t, "Pattern", snap.Name)
	require.Len(t, snap.Params, 6)

	byName := make(map[string]parm.DeclSnapshot, len(snap.Params))
	for _, p := range snap.Params {
		byName[p.Name] = p
	}

	name := byName["name"]
	assert.Equal(t, "String", name.Kind)
	assert.Equal(t, "pattern", name.Default)
	assert.True(t, name.Explicit)
	assert.Equal(t, "display name", name.Doc)

	offset := byName["offset"]
	assert.Nil(t, offset.Default)
	assert.False(t, offset.Explicit)

	tag := byName["tag"]
	assert.Nil(t, tag.Default)
	assert.True(t, tag.Explicit, "explicit nil must be distinguishable from unset")

	mode := byName["mode"]
	assert.Equal(t, []any{"fast", "slow"}, mode.Objects)
	assert.True(t, mode.Constant)

	size := byName["size"]
	require.NotNil(t, size.Length)
	assert.Equal(t, 2, *size.Length)
}

// TestEncodeSnapshot_FailsOnCallableDefault verifies funcs cannot be serialized.
func TestEncodeSnapshot_FailsOnCallableDefault(t *testing.T) {
	t.Parallel()

	s := parm.MustSchema("A", parm.Callable("fn", parm.Default(func() {})))

	var buf bytes.Buffer
	assert.Error(t, parm.EncodeSnapshot(&buf, s))
}

// TestEncodeSnapshot_NilSchema verifies the nil guard.
func TestEncodeSnapshot_NilSchema(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.ErrorIs(t, parm.EncodeSnapshot(&buf, nil), parm.ErrNilSchema)
}

//
// -----------------------------------------------------------------------------
// LoadSchema / round trip
// -----------------------------------------------------------------------------

// TestLoadSchema_FromYAML verifies a hand-written snapshot file loads.
func TestLoadSchema_FromYAML(t *testing.T) {
	t.Parallel()

	src := `
name: Station
params:
  - name: city
    kind: String
    default: berlin
    explicit: true
  - name: threshold
    kind: Magnitude
    default: 0.5
    explicit: true
  - name: mode
    kind: Selector
    objects: [metric, imperial]
  - name: note
    kind: String
`
	s, err := parm.LoadSchema(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "Station", s.Name())
	assert.Equal(t, []string{"city", "threshold", "mode", "note"}, s.Names())
	assert.Equal(t, "berlin", s.MustDefault("city"))
	assert.Equal(t, 0.5, s.MustDefault("threshold"))
	assert.Nil(t, s.MustDefault("note"))

	mode, ok := s.Decl("mode")
	require.True(t, ok)
	assert.Equal(t, []any{"metric", "imperial"}, mode.AllowedObjects())
}

// TestLoadSchema_UnknownKind verifies unknown kinds fail with UnknownKindError.
func TestLoadSchema_UnknownKind(t *testing.T) {
	t.Parallel()

	src := "name: A\nparams:\n  - name: x\n    kind: Float\n"
	_, err := parm.LoadSchema(strings.NewReader(src))
	require.Error(t, err)

	var uk parm.UnknownKindError
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, "Float", uk.Name)
}

// TestLoadSchema_InvalidDefault verifies loaded defaults go through NewSchema validation.
func TestLoadSchema_InvalidDefault(t *testing.T) {
	t.Parallel()

	src := "name: A\nparams:\n  - name: scale\n    kind: Magnitude\n    default: 2.0\n    explicit: true\n"
	_, err := parm.LoadSchema(strings.NewReader(src))
	require.Error(t, err)

	var ve parm.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "scale", ve.Name)
}

// TestSnapshot_RoundTrip verifies encode→load preserves the declarations that
// YAML can express.
func TestSnapshot_RoundTrip(t *testing.T) {
	t.Parallel()

	orig := parm.MustSchema("Pattern",
		parm.String("name", parm.Default("pattern")),
		parm.Magnitude("scale", parm.Default(0.5)),
		parm.Any("tag", parm.Default(nil)),
		parm.Number("offset"),
		parm.Boolean("enabled", parm.Default(true), parm.ReadOnly()),
	)

	var buf bytes.Buffer
	require.NoError(t, parm.EncodeSnapshot(&buf, orig))

	loaded, err := parm.LoadSchema(&buf)
	require.NoError(t, err)

	assert.Equal(t, orig.Name(), loaded.Name())
	assert.Equal(t, orig.Names(), loaded.Names())
	for _, n := range orig.Names() {
		assert.Equal(t, orig.MustDefault(n), loaded.MustDefault(n), "param %q", n)
	}

	enabled, _ := loaded.Decl("enabled")
	assert.True(t, enabled.IsReadOnly())

	tag, _ := loaded.Decl("tag")
	_, explicit := tag.Default()
	assert.True(t, explicit)
}
