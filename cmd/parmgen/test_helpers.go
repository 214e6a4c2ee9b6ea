// test_helpers.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// minimalSpecJSON returns a minimal schema spec JSON that passes validateSpec
// and allows run() to generate output.
//
// It includes imports.parm as a fallback so generation can still succeed
// even when owner-file import discovery fails (by design in some tests).
func minimalSpecJSON() []byte {
	return []byte(`{
  "package": "gen",
  "facadeName": "Station",
  "schemaVar": "StationSchema",
  "imports": { "parm": "github.com/sghaida/parm/parm" },
  "params": [
    { "name": "City", "param": "city", "goType": "string" }
  ]
}`)
}

//
// -----------------------------------------------------------------------------
// Small helpers
// -----------------------------------------------------------------------------

// writeTempFile writes a file under dir/name and returns its full path.
func writeTempFile(t *testing.T, dir, name, content string, perm os.FileMode) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), perm))
	return p
}

// readFileString reads a file and returns its contents as string (fatal on error).
func readFileString(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}
