package types

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/emirpasic/gods/utils"
)

// FieldValue follows a dot separated path of exported struct fields through
// instance, dereferencing pointers on the way.
func FieldValue(instance interface{}, path string) (interface{}, bool) {
	v := reflect.ValueOf(instance)
	for _, name := range strings.Split(path, ".") {
		v = reflect.Indirect(v)
		if v.Kind() != reflect.Struct {
			return nil, false
		}
		v = v.FieldByName(name)
		if !v.IsValid() {
			return nil, false
		}
	}
	if !v.CanInterface() {
		return nil, false
	}
	return v.Interface(), true
}

// ByField orders values by the field found at path, compared with order.
// It panics when a value has no such field.
func ByField[T any](path string, order utils.Comparator) Comparator[T] {
	field := func(e T) interface{} {
		v, ok := FieldValue(e, path)
		if !ok {
			panic(fmt.Sprintf("types: %T has no field %q", e, path))
		}
		return v
	}
	return func(e1, e2 T) int {
		return order(field(e1), field(e2))
	}
}
