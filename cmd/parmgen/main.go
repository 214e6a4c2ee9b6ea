// cmd/parmgen/main.go
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
)

// This binary is a code-generation tool.
//
// It reads a JSON specification describing a schema variable and its declared
// parameters, then generates a typed accessor facade over a parm.Object so
// call sites read and write parameters through ordinary typed methods instead
// of stringly Get/Set calls.
//
// Key behaviors:
// - Reads spec JSON: package, facadeName, schemaVar, params (name/param/goType)
// - Locates the "owner" Go file (the file containing the go:generate for cmd/parmgen) in the same directory
// - Reads imports from the owner file and reuses them in the generated file (so generated code matches local style)
// - Guarantees an import usable as identifier `parm` (generated code references parm.Object)
// - Writes output atomically (temp file + rename) to avoid partial writes

// Param describes a single generated accessor pair.
//
// Each param results in a <Name>() (<GoType>, bool) getter and a
// Set<Name>(<GoType>) error setter over the schema parameter named Param.
type Param struct {
	// Name is used for method naming (<Name> / Set<Name>); must be exported-style.
	Name string `json:"name"`

	// Param is the schema parameter name the accessors resolve.
	Param string `json:"param"`

	// GoType is the Go type the getter asserts to and the setter accepts.
	GoType string `json:"goType"`
}

// Imports defines external packages required by the generated code.
//
// Parm is optional: we prefer imports read from the owner file. It is used
// as a fallback when the owner imports provide no identifier usable as `parm`.
type Imports struct {
	// Optional fallback import path for the parm package.
	Parm string `json:"parm"`
}

// Spec is the full input schema consumed by the generator.
type Spec struct {
	Package string `json:"package"`

	// FacadeName is the generated type's name.
	FacadeName string `json:"facadeName"`

	// SchemaVar is the package-level *parm.Schema variable the facade instantiates.
	SchemaVar string `json:"schemaVar"`

	Imports Imports `json:"imports"`
	Params  []Param `json:"params"`
}

// ImportSpec models one Go import: optional alias and full import path.
type ImportSpec struct {
	Alias string
	Path  string
}

// templateData is the input passed to the Go template.
type templateData struct {
	Spec        Spec
	ImportsList []ImportSpec
}

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("parmgen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to facade.schema.json")
	outPath := flags.String("out", "", "output .gen.go file path")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*specPath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: parmgen -spec <file.schema.json> -out <file.gen.go>")
		return 2
	}

	specBytes, err := os.ReadFile(*specPath)
	must(err)

	var spec Spec
	must(json.Unmarshal(specBytes, &spec))

	validateSpec(&spec)

	generatedFilePath := filepath.Clean(*outPath)
	packageDir := filepath.Dir(generatedFilePath)

	ownerGoFilePath, err := findOwnerGoGenerateFile(packageDir)
	if err != nil {
		// If we can’t find the owner file, we can still generate.
		// resolveImports will fall back to spec.imports.parm when needed.
		ownerGoFilePath = ""
	}

	importsList, err := resolveImports(ownerGoFilePath, &spec)
	if err != nil {
		// This is user-actionable: it means we can’t produce a valid import for parm.Object.
		panic(err)
	}

	data := templateData{
		Spec:        spec,
		ImportsList: importsList,
	}

	var out strings.Builder
	must(genTemplate.Execute(&out, data))

	must(writeFileAtomic(generatedFilePath, []byte(out.String()), 0o644))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// validateSpec validates semantic correctness of the input specification.
func validateSpec(spec *Spec) {
	var missingFields []string

	requireNonEmpty := func(fieldName, value string) {
		if strings.TrimSpace(value) == "" {
			missingFields = append(missingFields, fieldName)
		}
	}

	requireNonEmpty("package", spec.Package)
	requireNonEmpty("facadeName", spec.FacadeName)
	requireNonEmpty("schemaVar", spec.SchemaVar)

	if len(spec.Params) == 0 {
		missingFields = append(missingFields, "params (must have at least 1)")
	}

	if len(missingFields) > 0 {
		panic(fmt.Errorf("spec missing required fields: %v", missingFields))
	}

	seenNames := make(map[string]struct{}, len(spec.Params))
	seenParams := make(map[string]struct{}, len(spec.Params))

	for _, p := range spec.Params {
		if p.Name == "" || p.Param == "" || p.GoType == "" {
			panic(fmt.Errorf("each param must have name/param/goType; got: %+v", p))
		}
		if _, ok := seenNames[p.Name]; ok {
			panic(fmt.Errorf("duplicate param name: %s", p.Name))
		}
		if _, ok := seenParams[p.Param]; ok {
			panic(fmt.Errorf("duplicate schema param: %s", p.Param))
		}
		seenNames[p.Name] = struct{}{}
		seenParams[p.Param] = struct{}{}
	}
}

// findOwnerGoGenerateFile finds the Go source file in packageDir that contains a go:generate
// directive invoking cmd/parmgen.
//
// This is used to discover the owner file’s imports so generated code matches local style.
func findOwnerGoGenerateFile(packageDir string) (string, error) {
	dirEntries, err := os.ReadDir(packageDir)
	if err != nil {
		return "", err
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if !strings.HasSuffix(fileName, ".go") ||
			strings.HasSuffix(fileName, "_test.go") ||
			strings.HasSuffix(fileName, ".gen.go") {
			continue
		}

		filePath := filepath.Join(packageDir, fileName)
		fileBytes, err := os.ReadFile(filePath)
		if err != nil {
			// Best-effort: unreadable file shouldn’t break generation.
			continue
		}

		if bytes.Contains(fileBytes, []byte("go:generate")) && bytes.Contains(fileBytes, []byte("cmd/parmgen")) {
			return filePath, nil
		}
	}

	return "", fmt.Errorf("could not find owner file with go:generate invoking cmd/parmgen in %s", packageDir)
}

// readImportsFromFile parses imports from a Go file.
func readImportsFromFile(goFilePath string) ([]ImportSpec, error) {
	fileSet := token.NewFileSet()
	parsedFile, err := parser.ParseFile(fileSet, goFilePath, nil, parser.ImportsOnly)
	if err != nil {
		return nil, err
	}

	var imports []ImportSpec
	for _, importDecl := range parsedFile.Imports {
		importPath := strings.Trim(importDecl.Path.Value, `"`)
		importAlias := ""
		if importDecl.Name != nil {
			importAlias = importDecl.Name.Name
		}
		imports = append(imports, ImportSpec{Alias: importAlias, Path: importPath})
	}

	return imports, nil
}

func ensureImport(imports *[]ImportSpec, required ImportSpec) {
	for _, existing := range *imports {
		if existing.Path == required.Path {
			// Don’t duplicate the path; keep existing alias as-is.
			return
		}
	}
	*imports = append(*imports, required)
}

func containsAlias(imports []ImportSpec, alias string) bool {
	for _, existing := range imports {
		if existing.Alias == alias && alias != "" {
			return true
		}
	}
	return false
}

func containsPath(imports []ImportSpec, importPath string) bool {
	for _, existing := range imports {
		if existing.Path == importPath {
			return true
		}
	}
	return false
}

func importDefaultIdent(importPath string) string {
	// Import paths always use forward slashes, even on Windows.
	return path.Base(strings.TrimSpace(importPath))
}

// hasUsableParmIdent returns true if generated code can refer to `parm.Object`
// with the imports currently present.
func hasUsableParmIdent(imports []ImportSpec) bool {
	// Explicit alias parm "..."
	if containsAlias(imports, "parm") {
		return true
	}
	// Default identifier is the base of the import path if Alias == "".
	for _, imp := range imports {
		if imp.Alias == "" && importDefaultIdent(imp.Path) == "parm" {
			return true
		}
	}
	return false
}

// resolveImports builds the final imports list for the generated file.
//
// Rules:
// - Prefer imports from owner file, if available
// - Generated code always references parm.Object, so guarantee a usable `parm` identifier:
//   - Explicit alias `parm "..."`, OR
//   - default import name is `parm` (import path base == "parm"), OR
//   - fall back to spec.imports.parm and import it as `parm "..."`.
func resolveImports(ownerFilePath string, spec *Spec) ([]ImportSpec, error) {
	// Start with owner imports, best-effort.
	var importsFromOwner []ImportSpec
	if strings.TrimSpace(ownerFilePath) != "" {
		parsedOwnerImports, err := readImportsFromFile(ownerFilePath)
		if err == nil {
			importsFromOwner = parsedOwnerImports
		}
		// If parsing fails, fall back to empty and rely on spec fallback behavior.
	}

	finalImports := make([]ImportSpec, 0, len(importsFromOwner)+1)
	finalImports = append(finalImports, importsFromOwner...)

	// If owner already provides a usable identifier `parm`, we’re done.
	if hasUsableParmIdent(finalImports) {
		return finalImports, nil
	}

	// Otherwise we must add a fallback parm import from the spec.
	if strings.TrimSpace(spec.Imports.Parm) == "" {
		return nil, fmt.Errorf(
			"generated code requires parm.Object, but no import usable as identifier `parm` was found in the owner file and spec.imports.parm is empty",
		)
	}

	// Add an explicit alias import so generated code can reference parm.Object.
	ensureImport(&finalImports, ImportSpec{Alias: "parm", Path: spec.Imports.Parm})
	return finalImports, nil
}

// genTemplate is the Go source template used to generate the facade code.
var genTemplate = template.Must(
	template.New("parmgen").Parse(`// Code generated by parmgen; DO NOT EDIT.

package {{.Spec.Package}}

import (
{{range .ImportsList}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}}
)

// {{.Spec.FacadeName}} is a typed facade over an object instantiated from {{.Spec.SchemaVar}}.
type {{.Spec.FacadeName}} struct {
	obj *parm.Object
}

func New{{.Spec.FacadeName}}() *{{.Spec.FacadeName}} {
	return &{{.Spec.FacadeName}}{
		obj: {{.Spec.SchemaVar}}.New(),
	}
}

// Object returns the underlying object for untyped access.
func (f *{{.Spec.FacadeName}}) Object() *parm.Object {
	return f.obj
}

{{- range .Spec.Params}}

// {{.Name}} returns the effective value of "{{.Param}}"; ok is false when the
// value is unset or not a {{.GoType}}.
func (f *{{$.Spec.FacadeName}}) {{.Name}}() (v {{.GoType}}, ok bool) {
	raw, err := f.obj.Get("{{.Param}}")
	if err != nil || raw == nil {
		return v, false
	}
	v, ok = raw.({{.GoType}})
	return v, ok
}

// Set{{.Name}} validates and stores a value for "{{.Param}}".
func (f *{{$.Spec.FacadeName}}) Set{{.Name}}(v {{.GoType}}) error {
	return f.obj.Set("{{.Param}}", v)
}
{{- end}}
`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}

// must panics if err is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
