package cache

import "reflect"

// nillable reports whether values of T can hold nil.
// Resolved once per cache so instantiations over ints, strings or structs
// never pay for the absent check.
func nillable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return true
	}
	return false
}

// isNil reports whether v is the absent marker: a nil interface or a typed
// nil of a nil-able kind.
func isNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
