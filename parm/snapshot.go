package parm

import (
	"io"

	"gopkg.in/yaml.v3"
)

// SchemaSnapshot is the YAML-facing shape of a schema.
//
// Snapshots serve two purposes: introspection/debugging dumps, and
// declarative schema files consumed by LoadSchema (and by cmd/parmgen
// specs that sit next to them). Only YAML-representable defaults round-trip;
// a Callable default cannot be expressed in a snapshot file.
type SchemaSnapshot struct {
	Name   string         `yaml:"name"`
	Params []DeclSnapshot `yaml:"params"`
}

// DeclSnapshot is one declaration inside a SchemaSnapshot.
//
// Explicit distinguishes "no default" from "an explicit null default": YAML
// cannot tell the two apart from the value alone.
type DeclSnapshot struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Default  any    `yaml:"default,omitempty"`
	Explicit bool   `yaml:"explicit,omitempty"`

	Constant    bool `yaml:"constant,omitempty"`
	ReadOnly    bool `yaml:"readOnly,omitempty"`
	Instantiate bool `yaml:"instantiate,omitempty"`

	Objects []any  `yaml:"objects,omitempty"`
	Length  *int   `yaml:"length,omitempty"`
	Doc     string `yaml:"doc,omitempty"`
}

// Snapshot returns the schema's declarations as a SchemaSnapshot, in
// declaration order.
func (s *Schema) Snapshot() SchemaSnapshot {
	if s == nil {
		return SchemaSnapshot{}
	}
	snap := SchemaSnapshot{Name: s.name, Params: make([]DeclSnapshot, 0, len(s.order))}
	for _, n := range s.order {
		d := s.decls[n]
		ds := DeclSnapshot{
			Name:        d.name,
			Kind:        d.kind.String(),
			Default:     d.def,
			Explicit:    d.hasDef,
			Constant:    d.constant,
			ReadOnly:    d.readOnly,
			Instantiate: d.instantiate,
			Objects:     d.objects,
			Doc:         d.doc,
		}
		if d.hasLen {
			length := d.length
			ds.Length = &length
		}
		snap.Params = append(snap.Params, ds)
	}
	return snap
}

// EncodeSnapshot writes the schema's snapshot as YAML.
//
// It fails when a default cannot be represented in YAML (funcs, channels).
func EncodeSnapshot(w io.Writer, s *Schema) error {
	if s == nil {
		return ErrNilSchema
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s.Snapshot()); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// LoadSchema reads a YAML snapshot and rebuilds the schema.
//
// Kinds outside the closed set fail with UnknownKindError; the rebuilt
// declarations go through NewSchema, so duplicate names and invalid
// explicit defaults fail exactly like hand-written declarations.
func LoadSchema(r io.Reader) (*Schema, error) {
	var snap SchemaSnapshot
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
		return nil, err
	}
	return snap.Schema()
}

// Schema rebuilds a schema from the snapshot.
func (snap SchemaSnapshot) Schema() (*Schema, error) {
	decls := make([]Decl, 0, len(snap.Params))
	for _, ds := range snap.Params {
		kind, err := ParseKind(ds.Kind)
		if err != nil {
			return nil, err
		}

		opts := make([]Option, 0, 6)
		if ds.Explicit {
			opts = append(opts, Default(ds.Default))
		}
		if ds.Constant {
			opts = append(opts, Constant())
		}
		if ds.ReadOnly {
			opts = append(opts, ReadOnly())
		}
		if ds.Instantiate {
			opts = append(opts, Instantiate())
		}
		if len(ds.Objects) > 0 {
			opts = append(opts, Objects(ds.Objects...))
		}
		if ds.Length != nil {
			opts = append(opts, Length(*ds.Length))
		}
		if ds.Doc != "" {
			opts = append(opts, Doc(ds.Doc))
		}

		decls = append(decls, Declare(kind, ds.Name, opts...))
	}
	return NewSchema(snap.Name, decls...)
}
