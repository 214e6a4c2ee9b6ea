package parm

// Schema is a named, immutable set of parameter declarations.
//
// Schemas are built once with NewSchema (or derived with Extend) and never
// mutated afterwards, so they are safe for concurrent reads and can be
// shared as package-level variables.
type Schema struct {
	name  string
	decls map[string]Decl
	order []string
}

// NewSchema builds a schema from the given declarations.
//
// It fails with DuplicateParameterError when a name is declared twice, and
// with ValidationError when an explicitly supplied default does not satisfy
// its declaration's kind.
func NewSchema(name string, decls ...Decl) (*Schema, error) {
	s := &Schema{
		name:  name,
		decls: make(map[string]Decl, len(decls)),
		order: make([]string, 0, len(decls)),
	}
	for _, d := range decls {
		if _, exists := s.decls[d.name]; exists {
			return nil, DuplicateParameterError{Schema: name, Name: d.name}
		}
		if d.hasDef {
			if err := d.validate(d.def); err != nil {
				return nil, err
			}
		}
		s.decls[d.name] = d
		s.order = append(s.order, d.name)
	}
	return s, nil
}

// MustSchema is NewSchema that panics on error.
//
// Useful for package-level schema variables where a bad declaration is a
// programming error.
func MustSchema(name string, decls ...Decl) *Schema {
	s, err := NewSchema(name, decls...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema's name.
func (s *Schema) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Len returns the number of declared parameters.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.decls)
}

// Has reports whether the schema declares the name.
func (s *Schema) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.decls[name]
	return ok
}

// Decl returns the declaration for name.
func (s *Schema) Decl(name string) (Decl, bool) {
	if s == nil {
		return Decl{}, false
	}
	d, ok := s.decls[name]
	return d, ok
}

// Names returns the declared parameter names in declaration order.
//
// Inherited parameters come first (in the base's order), followed by names
// the schema itself introduced. The slice is freshly allocated.
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Default returns the effective default value for name.
//
// A declaration with no explicit default observes the unset sentinel (nil).
// Unknown names fail with UnknownParameterError.
func (s *Schema) Default(name string) (any, error) {
	if s == nil {
		return nil, ErrNilSchema
	}
	d, ok := s.decls[name]
	if !ok {
		return nil, UnknownParameterError{Schema: s.name, Name: name}
	}
	return d.def, nil
}

// MustDefault returns the effective default value for name or panics.
func (s *Schema) MustDefault(name string) any {
	v, err := s.Default(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Extend derives a new schema from s.
//
// Every base declaration is carried over. For a redeclaration (a decl whose
// name the base already declares):
//
//   - with an explicit default, the supplied value overrides the base value
//     (an explicit nil overrides too);
//   - without one, the base's effective value is inherited as-is — including
//     an explicit nil, and including values that predate the redeclared
//     kind's validation rules (inherited values are never re-validated).
//
// The redeclared kind, flags, and modifiers replace the base's, except that
// an empty doc string and undeclared Selector objects / Tuple length are
// inherited. A brand-new declaration without a default is unset.
func (s *Schema) Extend(name string, decls ...Decl) (*Schema, error) {
	if s == nil {
		return nil, ErrNilSchema
	}

	derived := &Schema{
		name:  name,
		decls: make(map[string]Decl, len(s.decls)+len(decls)),
		order: make([]string, 0, len(s.order)+len(decls)),
	}
	for _, n := range s.order {
		derived.decls[n] = s.decls[n]
		derived.order = append(derived.order, n)
	}

	for _, d := range decls {
		base, redeclared := s.decls[d.name]
		if !redeclared {
			if _, dup := derived.decls[d.name]; dup {
				return nil, DuplicateParameterError{Schema: name, Name: d.name}
			}
			if d.hasDef {
				if err := d.validate(d.def); err != nil {
					return nil, err
				}
			}
			derived.decls[d.name] = d
			derived.order = append(derived.order, d.name)
			continue
		}

		if d.hasDef {
			if err := d.validate(d.def); err != nil {
				return nil, err
			}
		} else {
			// Bare redeclaration: inherit the base's effective value.
			d.def = base.def
			d.hasDef = base.hasDef
		}
		if d.doc == "" {
			d.doc = base.doc
		}
		if d.objects == nil {
			d.objects = base.objects
		}
		if !d.hasLen {
			d.length, d.hasLen = base.length, base.hasLen
		}
		// Flags only ever tighten: a derived schema cannot lift Constant or
		// ReadOnly from its base.
		d.constant = d.constant || base.constant
		d.readOnly = d.readOnly || base.readOnly
		d.instantiate = d.instantiate || base.instantiate

		derived.decls[d.name] = d
	}

	return derived, nil
}

// MustExtend is Extend that panics on error.
func MustExtend(s *Schema, name string, decls ...Decl) *Schema {
	derived, err := s.Extend(name, decls...)
	if err != nil {
		panic(err)
	}
	return derived
}
