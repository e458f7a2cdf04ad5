package catalogindex

import (
	"fmt"

	"github.com/goccy/go-reflect"
)

// RecordCloner is an interface for cloning records.
// The engine clones records on the way in and on the way out, so callers can
// never mutate indexed state behind the engine's lock.
// The CloneRecord method should return a deep copy of the input value.
type RecordCloner[V any] interface {
	CloneRecord(V) V
}

// RecordClonerFunc is a function type that implements the RecordCloner interface.
type RecordClonerFunc[V any] func(V) V

// CloneRecord calls the function.
func (f RecordClonerFunc[V]) CloneRecord(v V) V {
	return f(v)
}

// NopRecordCloner is a record cloner that does not clone values.
// It is used when values do not need to be cloned. (e.g. when the values are
// primitive types or immutable usage)
type NopRecordCloner[V any] struct{}

// CloneRecord returns the input value.
func (NopRecordCloner[V]) CloneRecord(v V) V {
	return v
}

// DefaultRecordCloner returns a default cloner for the given record type.
// A type with a Clone or DeepCopy method uses that method. Pointers to plain
// structs are copied field-by-field. Primitive types get a NopRecordCloner.
// Any other type panics.
func DefaultRecordCloner[V any]() RecordCloner[V] {
	var zero V
	return defaultRecordClonerAny[V](zero)
}

func defaultRecordClonerAny[V any](v any) RecordCloner[V] {
	type cloner interface {
		Clone() V
	}
	type deepCopier interface {
		DeepCopy() V
	}

	switch v.(type) {
	case cloner:
		return RecordClonerFunc[V](func(v V) V {
			var a any = v
			return a.(cloner).Clone()
		})

	case deepCopier:
		return RecordClonerFunc[V](func(v V) V {
			var a any = v
			return a.(deepCopier).DeepCopy()
		})

	default:
		return defaultRecordClonerReflect[V](reflect.TypeOf(v))
	}
}

func defaultRecordClonerReflect[V any](typ reflect.Type) RecordCloner[V] {
	switch typ.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String, reflect.UnsafePointer:
		return NopRecordCloner[V]{}
	case reflect.Ptr:
		if typ.Elem().Kind() != reflect.Struct {
			panic(fmt.Sprintf("record type %s does not have Clone or DeepCopy method", typ))
		}
		return RecordClonerFunc[V](func(v V) V {
			rv := reflect.ValueOf(v)
			if rv.IsNil() {
				return v
			}
			c := reflect.New(rv.Type().Elem())
			c.Elem().Set(rv.Elem())
			return c.Interface().(V)
		})
	default:
		panic(fmt.Sprintf("record type %s does not have Clone or DeepCopy method", typ))
	}
}
