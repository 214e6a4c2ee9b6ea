package parm

// Overrides is a read-through view over an Object that layers a map of
// per-call values on top of it.
//
// It is useful for call sites that accept "the object's parameters, except
// these few": reads prefer the override map, then fall back to the object
// (and therefore to the schema default). The underlying object is never
// mutated.
type Overrides struct {
	obj    *Object
	values map[string]any
}

// NewOverrides builds an override view.
//
// Every override key must be declared on the object's schema; a stray key
// fails with UnknownParameterError so typos surface at construction rather
// than as silently ignored values. Override values are validated against
// their declarations.
func NewOverrides(obj *Object, values map[string]any) (*Overrides, error) {
	if obj == nil {
		return nil, ErrNilObject
	}
	ov := &Overrides{obj: obj, values: make(map[string]any, len(values))}
	for name, v := range values {
		d, ok := obj.Schema().Decl(name)
		if !ok {
			return nil, UnknownParameterError{Schema: obj.Schema().Name(), Name: name}
		}
		if err := d.validate(v); err != nil {
			return nil, err
		}
		ov.values[name] = v
	}
	return ov, nil
}

// Get returns the override value when one was supplied, otherwise the
// object's effective value.
func (ov *Overrides) Get(name string) (any, error) {
	if ov == nil {
		return nil, ErrNilObject
	}
	if v, ok := ov.values[name]; ok {
		return v, nil
	}
	return ov.obj.Get(name)
}

// MustGet returns the effective value for name or panics.
func (ov *Overrides) MustGet(name string) any {
	v, err := ov.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Overridden reports whether name was supplied in the override map.
func (ov *Overrides) Overridden(name string) bool {
	if ov == nil {
		return false
	}
	_, ok := ov.values[name]
	return ok
}

// Object returns the underlying object.
func (ov *Overrides) Object() *Object {
	if ov == nil {
		return nil
	}
	return ov.obj
}
