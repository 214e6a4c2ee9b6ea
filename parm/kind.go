package parm

import "strconv"

// Kind tags the kind of typed attribute a declaration accepts.
//
// Kinds are deliberately a closed set: validation rules live next to the
// kind (see validate.go), and the conformance table enumerates every kind
// with representative sample values.
type Kind uint8

const (
	// KindAny accepts every value. It is the root kind; redeclarations in a
	// derived schema typically narrow it.
	KindAny Kind = iota

	// KindString accepts string values.
	KindString

	// KindNumber accepts any numeric value (integer or floating point).
	KindNumber

	// KindInteger accepts integer values only.
	KindInteger

	// KindBoolean accepts bool values.
	KindBoolean

	// KindMagnitude accepts numeric values within [0, 1].
	KindMagnitude

	// KindCallable accepts func values of any signature.
	KindCallable

	// KindSelector accepts one of the declared Objects, or anything when no
	// Objects were declared.
	KindSelector

	// KindTuple accepts slices, optionally of a fixed Length.
	KindTuple

	// KindList accepts slices.
	KindList

	// KindDict accepts maps.
	KindDict

	kindCount // sentinel, keep last
)

var kindNames = [kindCount]string{
	KindAny:       "Any",
	KindString:    "String",
	KindNumber:    "Number",
	KindInteger:   "Integer",
	KindBoolean:   "Boolean",
	KindMagnitude: "Magnitude",
	KindCallable:  "Callable",
	KindSelector:  "Selector",
	KindTuple:     "Tuple",
	KindList:      "List",
	KindDict:      "Dict",
}

// String returns the kind's canonical name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k < kindCount }

// Kinds returns every declared kind, in declaration order.
//
// The slice is freshly allocated on each call so callers may mutate it.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindCount))
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind maps a canonical kind name back to its Kind.
//
// It returns an UnknownKindError for names outside the closed set. It is
// the inverse of Kind.String and is used when loading schema snapshots.
func ParseKind(name string) (Kind, error) {
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return 0, UnknownKindError{Name: name}
}
