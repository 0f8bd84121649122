// Package replication frames the field solver's state for network
// replication and on-disk replay, per spec.md §4.7. Anything crossing a
// host boundary goes through fixed-point phi quantisation so that two
// hosts with different floating-point units reach bit-identical state;
// the solver's internal floating-point representation never leaves this
// package.
package replication

import (
	"math/bits"

	"github.com/blazeforge/ember/units"
)

// QuantizePhi converts a floating-point phi value to the fixed-point i32
// representation used on the wire: multiply by 1024 and truncate.
func QuantizePhi(phi float64) int32 {
	return int32(phi * units.PhiFixedPointScale)
}

// DequantizePhi converts a fixed-point i32 phi value back to float64.
func DequantizePhi(q int32) float64 {
	return float64(q) / units.PhiFixedPointScale
}

// QuantizeField quantises an entire row-major phi buffer.
func QuantizeField(phi []float64) []int32 {
	out := make([]int32, len(phi))
	for i, v := range phi {
		out[i] = QuantizePhi(v)
	}
	return out
}

// DequantizeField reconstructs a float64 buffer from quantised values.
func DequantizeField(q []int32) []float64 {
	out := make([]float64, len(q))
	for i, v := range q {
		out[i] = DequantizePhi(v)
	}
	return out
}

// fixedPointSqrtIterations is the mandated iteration count for the
// integer Newton-Babylonian square root, chosen so both replication
// peers reach the identical fixed-point result regardless of host FPU
// (spec.md §4.7).
const fixedPointSqrtIterations = 10

// FixedSqrt computes an integer Newton-Babylonian square root of a
// fixed-point value (same Q10 scale as QuantizePhi) using exactly
// fixedPointSqrtIterations iterations, so the result is bit-reproducible
// across hosts -- this is the only sqrt permitted on values that
// participate in replication output.
func FixedSqrt(xFixed int64) int64 {
	if xFixed <= 0 {
		return 0
	}
	scale := int64(units.PhiFixedPointScale)

	// Initial guess: scale-preserving bit-length halving, a power of two
	// no smaller than sqrt(xFixed*scale), so Newton converges from above.
	guess := int64(1) << ((bits.Len64(uint64(xFixed*scale)) + 1) / 2)

	for i := 0; i < fixedPointSqrtIterations; i++ {
		if guess == 0 {
			break
		}
		// guess = (guess + x*scale/guess) / 2, keeping everything in Q10.
		guess = (guess + (xFixed*scale)/guess) / 2
	}
	return guess
}
