/*package eq is a simple package for telling whether two arrays are equal to
one another. It exists for tests: PSP tables hand back columns as interface
values, and comparing those with a type switch in every test gets old fast.
*/
package eq

// Generic returns true if two arrays are the same type and have the same
// values and false otherwise. Only the column types PSP tables use are
// supported: []int32, []int64, []uint32, []float32, []float64, []string.
func Generic(x, y interface{}) bool {
	switch xx := x.(type) {
	case []int32:
		yy, ok := y.([]int32)
		if !ok {
			return false
		}
		return Int32s(xx, yy)
	case []int64:
		yy, ok := y.([]int64)
		if !ok {
			return false
		}
		return Int64s(xx, yy)
	case []uint32:
		yy, ok := y.([]uint32)
		if !ok {
			return false
		}
		return Uint32s(xx, yy)
	case []float32:
		yy, ok := y.([]float32)
		if !ok {
			return false
		}
		return Float32s(xx, yy)
	case []float64:
		yy, ok := y.([]float64)
		if !ok {
			return false
		}
		return Float64s(xx, yy)
	case []string:
		yy, ok := y.([]string)
		if !ok {
			return false
		}
		return Strings(xx, yy)
	default:
		return false
	}
}

// Strings returns true if two []string arrays are the same and false
// otherwise.
func Strings(x, y []string) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Int32s returns true if two []int32 arrays are the same and false
// otherwise.
func Int32s(x, y []int32) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Int64s returns true if two []int64 arrays are the same and false
// otherwise.
func Int64s(x, y []int64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Uint32s returns true if two []uint32 arrays are the same and false
// otherwise.
func Uint32s(x, y []uint32) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Float32s returns true if two []float32 arrays are the same and false
// otherwise.
func Float32s(x, y []float32) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Float64s returns true if two []float64 arrays are the same and false
// otherwise.
func Float64s(x, y []float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
