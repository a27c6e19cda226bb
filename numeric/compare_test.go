package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/metron/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEqual_ValueExact verifies equality is by mathematical value across
// representations, with no tolerance.
func TestEqual_ValueExact(t *testing.T) {
	assert.True(t, numeric.Equal(numeric.Int(42), numeric.Flt(42.0)), "42 == 42.0")
	assert.False(t, numeric.Equal(numeric.Int(42), numeric.Flt(42.0000001)), "no fuzzing")
	assert.True(t, numeric.Equal(numeric.Int(42), numeric.MustPrecise("42")), "integer vs decimal")
	assert.True(t, numeric.Equal(numeric.Flt(0.5), numeric.MustPrecise("0.5")), "0.5 is exact in binary")
	assert.True(t, numeric.Equal(numeric.Cmplx(42, 0), numeric.Int(42)), "zero-imag complex equals real")
	assert.True(t, numeric.Equal(numeric.Imag(0), numeric.Int(0)), "zero imaginary equals zero")
	assert.True(t, numeric.Equal(numeric.Imag(2), numeric.Cmplx(0, 2)), "pure imaginary vs complex")

	// The binary double 0.1 is not the decimal 1/10.
	assert.False(t, numeric.Equal(numeric.Flt(0.1), numeric.MustPrecise("0.1")))

	// Contagion and equality agree on exactly representable values.
	sum, err := numeric.Add(numeric.Int(42), numeric.MustPrecise("34.21"))
	require.NoError(t, err)
	assert.True(t, numeric.Equal(sum, numeric.MustPrecise("76.21")))
}

// TestEqual_Properties spot-checks reflexivity and symmetry over a mixed
// sample of kinds.
func TestEqual_Properties(t *testing.T) {
	vals := []numeric.Value{
		numeric.Int(0), numeric.Int(-3), numeric.Flt(2.5), numeric.Flt(-2.5),
		numeric.Imag(1.5), numeric.Cmplx(2.5, 0), numeric.MustPrecise("2.5"),
	}
	for _, v := range vals {
		assert.True(t, numeric.Equal(v, v), "reflexive: %v", v)
	}
	for _, a := range vals {
		for _, b := range vals {
			assert.Equal(t, numeric.Equal(a, b), numeric.Equal(b, a), "symmetric: %v vs %v", a, b)
		}
	}

	// Cross-kind equality classes inside the sample.
	assert.True(t, numeric.Equal(numeric.Flt(2.5), numeric.MustPrecise("2.5")))
	assert.True(t, numeric.Equal(numeric.Flt(2.5), numeric.Cmplx(2.5, 0)))
}

// TestEqual_Specials pins the NaN and infinity rules: NaN equals nothing,
// infinities match same-signed infinities only.
func TestEqual_Specials(t *testing.T) {
	nan, pinf, ninf := numeric.Flt(math.NaN()), numeric.Flt(math.Inf(1)), numeric.Flt(math.Inf(-1))

	assert.False(t, numeric.Equal(nan, nan), "NaN is not equal to itself")
	assert.True(t, numeric.Equal(pinf, pinf))
	assert.False(t, numeric.Equal(pinf, ninf))
	assert.False(t, numeric.Equal(pinf, numeric.Int(1)))
}

// TestCompare_Ordering verifies exact cross-kind ordering and the
// unordered-kind rejections.
func TestCompare_Ordering(t *testing.T) {
	c, err := numeric.Compare(numeric.Int(1), numeric.Flt(1.5))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = numeric.Compare(numeric.MustPrecise("2.50"), numeric.Flt(2.5))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	c, err = numeric.Compare(numeric.Flt(math.Inf(1)), numeric.Int(math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, 1, c, "+Inf above every finite value")

	c, err = numeric.Compare(numeric.Flt(math.Inf(-1)), numeric.Flt(math.Inf(-1)))
	require.NoError(t, err)
	assert.Equal(t, 0, c, "same-signed infinities compare equal")

	_, err = numeric.Compare(numeric.Imag(1), numeric.Int(1))
	assert.ErrorIs(t, err, numeric.ErrUnsupportedOperation)
	_, err = numeric.Compare(numeric.Int(1), numeric.Cmplx(1, 0))
	assert.ErrorIs(t, err, numeric.ErrUnsupportedOperation)
	_, err = numeric.Compare(numeric.Flt(math.NaN()), numeric.Int(1))
	assert.ErrorIs(t, err, numeric.ErrUnsupportedOperation)
}
