package parm

import (
	"errors"
	"strconv"
)

var (
	// ErrNilSchema is returned when an operation is applied to a nil schema.
	ErrNilSchema = errors.New("parm: nil schema")

	// ErrNilObject is returned when an operation is applied to a nil object.
	ErrNilObject = errors.New("parm: nil object")
)

// UnknownParameterError is returned when a name is not declared on a schema.
type UnknownParameterError struct {
	// Schema is the name of the schema that was consulted.
	Schema string

	// Name is the undeclared parameter name requested.
	Name string
}

// Error implements the error interface.
func (e UnknownParameterError) Error() string {
	// Example: parm: schema "A" has no parameter "x"
	return "parm: schema " + strconv.Quote(e.Schema) + " has no parameter " + strconv.Quote(e.Name)
}

// DuplicateParameterError is returned when a schema declares the same name twice.
type DuplicateParameterError struct {
	Schema string
	Name   string
}

// Error implements the error interface.
func (e DuplicateParameterError) Error() string {
	// Example: parm: schema "A" declares parameter "x" twice
	return "parm: schema " + strconv.Quote(e.Schema) + " declares parameter " + strconv.Quote(e.Name) + " twice"
}

// UnknownKindError is returned by ParseKind for names outside the closed kind set.
type UnknownKindError struct{ Name string }

// Error implements the error interface.
func (e UnknownKindError) Error() string {
	// Example: parm: unknown kind "Float"
	return "parm: unknown kind " + strconv.Quote(e.Name)
}

// ValidationError is returned when a value does not satisfy a declaration's kind.
//
// Reason is a short, stable description of the rule that failed; it avoids
// fmt formatting so validation can be used on hot paths.
type ValidationError struct {
	// Name is the declared parameter name.
	Name string

	// Kind is the declaration's kind.
	Kind Kind

	// Reason describes which rule the value violated.
	Reason string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	// Example: parm: parameter "scale" (Magnitude): value out of [0, 1]
	return "parm: parameter " + strconv.Quote(e.Name) + " (" + e.Kind.String() + "): " + e.Reason
}

// ConstantParameterError is returned when a constant parameter is written more than once.
type ConstantParameterError struct{ Name string }

// Error implements the error interface.
func (e ConstantParameterError) Error() string {
	// Example: parm: parameter "seed" is constant
	return "parm: parameter " + strconv.Quote(e.Name) + " is constant"
}

// ReadOnlyParameterError is returned when a read-only parameter is written.
type ReadOnlyParameterError struct{ Name string }

// Error implements the error interface.
func (e ReadOnlyParameterError) Error() string {
	// Example: parm: parameter "version" is read-only
	return "parm: parameter " + strconv.Quote(e.Name) + " is read-only"
}
