package parm

// Decl is a single parameter declaration: a name, a kind, and optional
// modifiers supplied via Option values.
//
// The zero Decl is not useful; build declarations with Declare or the
// per-kind helpers (Any, String, ...). Decls are plain values: schemas
// copy them on construction, so a Decl can be reused across schemas.
//
// A declaration distinguishes "no default" from "an explicit nil default":
// Declare(KindString, "s") observes the unset sentinel (nil) and stays
// eligible for inheritance, while Declare(KindString, "s", Default(nil))
// carries nil as a deliberate value that overrides a base value on Extend.
type Decl struct {
	name string
	kind Kind

	def    any
	hasDef bool

	constant    bool
	readOnly    bool
	instantiate bool

	objects []any
	length  int
	hasLen  bool

	doc string
}

// Option mutates a Decl under construction.
type Option func(*Decl)

// Default sets an explicit default value. Passing nil is meaningful: it
// declares the unset sentinel as a deliberate value (see Schema.Extend).
func Default(v any) Option {
	return func(d *Decl) {
		d.def = v
		d.hasDef = true
	}
}

// Constant marks the parameter writable at most once per object.
func Constant() Option {
	return func(d *Decl) { d.constant = true }
}

// ReadOnly marks the parameter as never writable on objects.
func ReadOnly() Option {
	return func(d *Decl) { d.readOnly = true }
}

// Instantiate deep-copies a mutable default (slice or map) into each new
// object, so per-object mutation never leaks back into the schema default.
func Instantiate() Option {
	return func(d *Decl) { d.instantiate = true }
}

// Objects declares the allowed values of a Selector parameter.
//
// A Selector with no Objects accepts anything; membership is only enforced
// once at least one object is declared.
func Objects(vals ...any) Option {
	return func(d *Decl) { d.objects = vals }
}

// Length fixes the required length of a Tuple parameter's slice values.
func Length(n int) Option {
	return func(d *Decl) {
		d.length = n
		d.hasLen = true
	}
}

// Doc attaches a short documentation string to the declaration.
func Doc(s string) Option {
	return func(d *Decl) { d.doc = s }
}

// Declare builds a declaration of an arbitrary kind.
//
// The per-kind helpers below are thin wrappers over Declare; prefer them in
// hand-written schemas, and Declare when the kind is data-driven (e.g. when
// iterating the conformance table).
func Declare(kind Kind, name string, opts ...Option) Decl {
	d := Decl{name: name, kind: kind}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	return d
}

// Any declares an Any parameter (accepts every value).
func Any(name string, opts ...Option) Decl { return Declare(KindAny, name, opts...) }

// String declares a String parameter.
func String(name string, opts ...Option) Decl { return Declare(KindString, name, opts...) }

// Number declares a Number parameter.
func Number(name string, opts ...Option) Decl { return Declare(KindNumber, name, opts...) }

// Integer declares an Integer parameter.
func Integer(name string, opts ...Option) Decl { return Declare(KindInteger, name, opts...) }

// Boolean declares a Boolean parameter.
func Boolean(name string, opts ...Option) Decl { return Declare(KindBoolean, name, opts...) }

// Magnitude declares a Magnitude parameter (numeric within [0, 1]).
func Magnitude(name string, opts ...Option) Decl { return Declare(KindMagnitude, name, opts...) }

// Callable declares a Callable parameter.
func Callable(name string, opts ...Option) Decl { return Declare(KindCallable, name, opts...) }

// Selector declares a Selector parameter.
func Selector(name string, opts ...Option) Decl { return Declare(KindSelector, name, opts...) }

// Tuple declares a Tuple parameter.
func Tuple(name string, opts ...Option) Decl { return Declare(KindTuple, name, opts...) }

// List declares a List parameter.
func List(name string, opts ...Option) Decl { return Declare(KindList, name, opts...) }

// Dict declares a Dict parameter.
func Dict(name string, opts ...Option) Decl { return Declare(KindDict, name, opts...) }

// Name returns the declared parameter name.
func (d Decl) Name() string { return d.name }

// Kind returns the declaration's kind.
func (d Decl) Kind() Kind { return d.kind }

// Default returns the declared default value and whether one was supplied
// explicitly. A (nil, false) result is the unset sentinel.
func (d Decl) Default() (any, bool) { return d.def, d.hasDef }

// IsConstant reports whether the parameter is writable at most once.
func (d Decl) IsConstant() bool { return d.constant }

// IsReadOnly reports whether the parameter is never writable.
func (d Decl) IsReadOnly() bool { return d.readOnly }

// IsInstantiate reports whether the default is deep-copied per object.
func (d Decl) IsInstantiate() bool { return d.instantiate }

// AllowedObjects returns the Selector's declared objects, nil when open.
func (d Decl) AllowedObjects() []any { return d.objects }

// TupleLength returns the required Tuple length and whether one was declared.
func (d Decl) TupleLength() (int, bool) { return d.length, d.hasLen }

// DocString returns the declaration's documentation string.
func (d Decl) DocString() string { return d.doc }
