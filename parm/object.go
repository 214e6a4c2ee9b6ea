package parm

import "reflect"

// Object is an instance of a Schema.
//
// Reads resolve the instance value first and fall back to the schema
// default, so an object with no writes observes exactly the schema's
// effective values. Objects are not safe for concurrent mutation.
type Object struct {
	schema *Schema
	values map[string]any
}

// New instantiates the schema.
//
// Declarations marked Instantiate get a deep copy of their default (slices
// and maps) stored on the object, so mutation through one object never
// reaches the schema or sibling objects.
func (s *Schema) New() *Object {
	o := &Object{schema: s, values: make(map[string]any)}
	if s == nil {
		return o
	}
	for _, n := range s.order {
		d := s.decls[n]
		if d.instantiate && d.def != nil {
			o.values[n] = deepCopyValue(d.def)
		}
	}
	return o
}

// Schema returns the schema the object was instantiated from.
func (o *Object) Schema() *Schema {
	if o == nil {
		return nil
	}
	return o.schema
}

// Get returns the effective value for name: the instance value when one was
// set (or instantiated), otherwise the schema default.
func (o *Object) Get(name string) (any, error) {
	if o == nil {
		return nil, ErrNilObject
	}
	if v, ok := o.values[name]; ok {
		return v, nil
	}
	return o.schema.Default(name)
}

// MustGet returns the effective value for name or panics.
func (o *Object) MustGet(name string) any {
	v, err := o.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// IsSet reports whether the object carries its own value for name
// (set explicitly or deep-copied at instantiation).
func (o *Object) IsSet(name string) bool {
	if o == nil {
		return false
	}
	_, ok := o.values[name]
	return ok
}

// Set validates v against the declaration and stores it on the object.
//
// ReadOnly parameters are never writable; Constant parameters are writable
// at most once per object (an instantiated copy counts as that one write).
func (o *Object) Set(name string, v any) error {
	if o == nil {
		return ErrNilObject
	}
	d, ok := o.schema.Decl(name)
	if !ok {
		return UnknownParameterError{Schema: o.schema.Name(), Name: name}
	}
	if d.readOnly {
		return ReadOnlyParameterError{Name: name}
	}
	if d.constant {
		if _, written := o.values[name]; written {
			return ConstantParameterError{Name: name}
		}
	}
	if err := d.validate(v); err != nil {
		return err
	}
	o.values[name] = v
	return nil
}

// Reset drops the object's own value for name, so reads fall back to the
// schema default again. Resetting an unset or unknown name is a no-op.
func (o *Object) Reset(name string) {
	if o == nil {
		return
	}
	delete(o.values, name)
}

// Values returns a snapshot of every effective value, keyed by name.
func (o *Object) Values() map[string]any {
	if o == nil || o.schema == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(o.schema.order))
	for _, n := range o.schema.order {
		if v, ok := o.values[n]; ok {
			out[n] = v
			continue
		}
		out[n] = o.schema.decls[n].def
	}
	return out
}

// Clone returns a copy of the object with its own values map.
//
// The schema pointer is shared (schemas are immutable); instance values are
// copied shallowly.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	cp := &Object{schema: o.schema, values: make(map[string]any, len(o.values))}
	for k, v := range o.values {
		cp.values[k] = v
	}
	return cp
}

// deepCopyValue copies slices and maps recursively; everything else is
// returned as-is (strings and numbers are values, funcs are shared).
func deepCopyValue(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i)
			cp.Index(i).Set(copiedElem(elem))
		}
		return cp.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		cp := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			cp.SetMapIndex(iter.Key(), copiedElem(iter.Value()))
		}
		return cp.Interface()
	default:
		return v
	}
}

func copiedElem(elem reflect.Value) reflect.Value {
	switch elem.Kind() {
	case reflect.Slice, reflect.Map:
		return reflect.ValueOf(deepCopyValue(elem.Interface()))
	case reflect.Interface:
		if elem.IsNil() {
			return elem
		}
		inner := elem.Elem()
		if inner.Kind() == reflect.Slice || inner.Kind() == reflect.Map {
			return reflect.ValueOf(deepCopyValue(inner.Interface()))
		}
		return elem
	default:
		return elem
	}
}
