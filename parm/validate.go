package parm

import "reflect"

// validate checks a value against the declaration's kind.
//
// nil is always valid: it is the unset sentinel for every kind. Values are
// inspected by reflect.Kind so user-defined types with the right underlying
// kind (type Celsius float64, type Names []string, ...) pass validation.
func (d Decl) validate(v any) error {
	if v == nil {
		return nil
	}

	fail := func(reason string) error {
		return ValidationError{Name: d.name, Kind: d.kind, Reason: reason}
	}

	rv := reflect.ValueOf(v)

	switch d.kind {
	case KindAny:
		return nil

	case KindString:
		if rv.Kind() != reflect.String {
			return fail("value is not a string")
		}

	case KindNumber:
		if !isNumeric(rv.Kind()) {
			return fail("value is not numeric")
		}

	case KindInteger:
		if !isInteger(rv.Kind()) {
			return fail("value is not an integer")
		}

	case KindBoolean:
		if rv.Kind() != reflect.Bool {
			return fail("value is not a bool")
		}

	case KindMagnitude:
		if !isNumeric(rv.Kind()) {
			return fail("value is not numeric")
		}
		f := asFloat(rv)
		if !(f >= 0 && f <= 1) { // also rejects NaN
			return fail("value out of [0, 1]")
		}

	case KindCallable:
		if rv.Kind() != reflect.Func {
			return fail("value is not a func")
		}

	case KindSelector:
		if len(d.objects) == 0 {
			return nil
		}
		for _, allowed := range d.objects {
			if reflect.DeepEqual(v, allowed) {
				return nil
			}
		}
		return fail("value is not one of the declared objects")

	case KindTuple:
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return fail("value is not a slice or array")
		}
		if d.hasLen && rv.Len() != d.length {
			return fail("value has the wrong length")
		}

	case KindList:
		if rv.Kind() != reflect.Slice {
			return fail("value is not a slice")
		}

	case KindDict:
		if rv.Kind() != reflect.Map {
			return fail("value is not a map")
		}
	}

	return nil
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isNumeric(k reflect.Kind) bool {
	return isInteger(k) || k == reflect.Float32 || k == reflect.Float64
}

func asFloat(rv reflect.Value) float64 {
	switch {
	case isInteger(rv.Kind()):
		if rv.CanUint() {
			return float64(rv.Uint())
		}
		return float64(rv.Int())
	default:
		return rv.Float()
	}
}
