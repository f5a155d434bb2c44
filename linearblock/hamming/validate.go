package hamming

import (
	"reflect"

	mat "github.com/nathanhack/sparsemat"
)

// binaryList converts input into a list of bits. The shape is checked
// before the values, the length is left to the caller.
func binaryList(input interface{}) ([]int, error) {
	if vec, ok := input.(mat.SparseVector); ok {
		return sparseBits(vec)
	}

	if input == nil {
		return nil, ErrNotList
	}
	v := reflect.ValueOf(input)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, ErrNotList
	}

	bits := make([]int, v.Len())
	for i := 0; i < v.Len(); i++ {
		bit, ok := binaryValue(v.Index(i))
		if !ok {
			return nil, ErrNotBinary
		}
		bits[i] = bit
	}
	return bits, nil
}

func sparseBits(vec mat.SparseVector) ([]int, error) {
	if rv := reflect.ValueOf(vec); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil, ErrNotList
	}
	bits := make([]int, vec.Len())
	for i := range bits {
		b := vec.At(i)
		if b != 0 && b != 1 {
			return nil, ErrNotBinary
		}
		bits[i] = b
	}
	return bits, nil
}

// binaryValue reports the bit held by v, ok is false when v is not exactly 0 or 1.
func binaryValue(v reflect.Value) (bit int, ok bool) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return 1, true
		}
		return 0, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		x := v.Int()
		return int(x), x == 0 || x == 1
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		x := v.Uint()
		return int(x), x == 0 || x == 1
	case reflect.Float32, reflect.Float64:
		x := v.Float()
		return int(x), x == 0 || x == 1
	}
	return 0, false
}
