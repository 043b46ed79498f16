package tween

// Integer is the constraint for integer value and time types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the constraint for floating-point value and time types.
type Float interface {
	~float32 | ~float64
}

// Number is the constraint for the built-in numeric types, including named
// types whose underlying type is numeric.
type Number interface {
	Integer | Float
}

// Arithmetic describes how a value type is tweened.
//
// The zero value of V is the additive identity. Implementations must satisfy
// Scale(x, 1) == x and Scale(x, 0) == zero for every x, and must be
// deterministic: the same inputs always produce the same bits.
type Arithmetic[V any] interface {
	// Add returns a + b.
	Add(a, b V) V

	// Delta returns dest - start. Note the argument order.
	Delta(dest, start V) V

	// Scale multiplies v by the real fraction f.
	Scale(v V, f float64) V
}

// Value is the method set of a custom tweenable type, such as a vector or a
// color. Use [Methods] to obtain its [Arithmetic].
type Value[V any] interface {
	Add(other V) V
	Sub(other V) V
	Scale(f float64) V
}

// Scalar is the [Arithmetic] of a built-in numeric type.
//
// Scaling goes through a float64 intermediate. For integer types the
// conversion back truncates toward zero. Unsigned ranges must not decrease:
// the delta would wrap.
type Scalar[N Number] struct{}

// Add returns a + b.
func (Scalar[N]) Add(a, b N) N { return a + b }

// Delta returns dest - start.
func (Scalar[N]) Delta(dest, start N) N { return dest - start }

// Scale returns v * f.
func (Scalar[N]) Scale(v N, f float64) N {
	return N(float64(v) * f)
}

// Methods is the [Arithmetic] of a type implementing [Value].
type Methods[V Value[V]] struct{}

// Add returns a.Add(b).
func (Methods[V]) Add(a, b V) V { return a.Add(b) }

// Delta returns dest.Sub(start).
func (Methods[V]) Delta(dest, start V) V { return dest.Sub(start) }

// Scale returns v.Scale(f).
func (Methods[V]) Scale(v V, f float64) V { return v.Scale(f) }
