package std140

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Check reports whether the Go struct v (or pointer to one) has the memory
// layout of s. Blank fields and fields whose name starts with "pad" are
// treated as padding and skipped; all other fields are matched to the
// members of s in order.
func Check(v interface{}, s StructType) error {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return errors.Errorf("std140: %v is not a struct", t)
	}
	return check(t, s)
}

func isPadding(f reflect.StructField) bool {
	return f.Name == "_" || strings.HasPrefix(f.Name, "pad")
}

func check(t reflect.Type, s StructType) error {
	offsets := s.Offsets()
	i := 0
	for j := 0; j < t.NumField(); j++ {
		f := t.Field(j)
		if isPadding(f) {
			continue
		}
		if i >= len(s.Fields) {
			return errors.Errorf("std140: %s.%s has no member in %s", t.Name(), f.Name, s.Name)
		}
		m := s.Fields[i]
		if int(f.Offset) != offsets[i] {
			return errors.Errorf("std140: %s.%s is at offset %d, %s.%s must be at %d",
				t.Name(), f.Name, f.Offset, s.Name, m.Name, offsets[i])
		}
		if err := checkMember(t, f, m); err != nil {
			return err
		}
		i++
	}
	if i < len(s.Fields) {
		return errors.Errorf("std140: %s has no field for %s.%s", t.Name(), s.Name, s.Fields[i].Name)
	}
	if int(t.Size()) < s.Size() {
		return errors.Errorf("std140: %s is %d bytes, %s needs %d", t.Name(), t.Size(), s.Name, s.Size())
	}
	return nil
}

func checkMember(parent reflect.Type, f reflect.StructField, m Field) error {
	switch mt := m.Type.(type) {
	case StructType:
		if f.Type.Kind() != reflect.Struct {
			return errors.Errorf("std140: %s.%s is %s, %s is a struct", parent.Name(), f.Name, f.Type, m.Name)
		}
		return check(f.Type, mt)

	case ArrayType:
		if f.Type.Kind() != reflect.Array || f.Type.Len() != mt.Len {
			return errors.Errorf("std140: %s.%s is %s, %s is %s", parent.Name(), f.Name, f.Type, m.Name, mt)
		}
		if stride := int(f.Type.Elem().Size()); stride != mt.Stride() {
			return errors.Errorf("std140: %s.%s has stride %d, %s needs %d", parent.Name(), f.Name, stride, m.Name, mt.Stride())
		}
		if st, ok := mt.Elem.(StructType); ok {
			return check(f.Type.Elem(), st)
		}
		return nil

	default:
		if size := int(f.Type.Size()); size != mt.Size() {
			return errors.Errorf("std140: %s.%s is %d bytes, %s %s is %d", parent.Name(), f.Name, size, mt, m.Name, mt.Size())
		}
		if !scalarMatches(scalarOf(mt), componentKind(f.Type)) {
			return errors.Errorf("std140: %s.%s is %s, %s %s needs %s components", parent.Name(), f.Name, f.Type, mt, m.Name, scalarOf(mt))
		}
		return nil
	}
}

func scalarOf(t Type) Scalar {
	switch t := t.(type) {
	case basic:
		return t.scalar
	case matrix:
		return scalarOf(t.cols.Elem)
	}
	return FloatScalar
}

// componentKind strips array dimensions, so mgl32.Mat4 and float32 both
// report Float32.
func componentKind(t reflect.Type) reflect.Kind {
	for t.Kind() == reflect.Array {
		t = t.Elem()
	}
	return t.Kind()
}

func scalarMatches(s Scalar, k reflect.Kind) bool {
	switch s {
	case FloatScalar:
		return k == reflect.Float32
	case IntScalar:
		return k == reflect.Int32
	case UintScalar:
		return k == reflect.Uint32
	case BoolScalar:
		return k == reflect.Int32 || k == reflect.Uint32
	}
	return false
}

func (s Scalar) String() string {
	switch s {
	case FloatScalar:
		return "float"
	case IntScalar:
		return "int"
	case UintScalar:
		return "uint"
	case BoolScalar:
		return "bool"
	}
	return "unknown"
}
