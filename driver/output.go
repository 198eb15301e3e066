package driver

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// maxFractionDenominator bounds the continued-fraction search so
// "print as fraction" never produces an unreadable denominator for a
// coordinate that is irrational only due to floating-point noise.
const maxFractionDenominator = 1_000_000

// FormatVertex renders one "V ..." output line (spec §6): d coordinates,
// space separated, sign-flipped when maximize is true so reported values
// live in the caller's original orientation, printed as reduced
// fractions when asFraction is set, else as plain decimals.
func FormatVertex(coords []float64, maximize, asFraction bool) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		if maximize {
			c = -c
		}
		parts[i] = formatNumber(c, asFraction)
	}
	return "V " + strings.Join(parts, " ")
}

// FormatFacet renders one "F ..." output line: the d+1 coefficients of
// f[0]*x1+...+f[d-1]*xd+f[d]=0, always as decimals (the original's
// facet-dump format never honors PrintAsFraction).
func FormatFacet(eqn []float64) string {
	parts := make([]string, len(eqn))
	for i, c := range eqn {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return "F " + strings.Join(parts, " ")
}

func formatNumber(x float64, asFraction bool) string {
	if !asFraction {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	r := rationalize(x, maxFractionDenominator)
	if r.IsInt() {
		return r.Num().String()
	}
	return r.Num().String() + "/" + r.Denom().String()
}

// rationalize finds the simplest fraction within float64 rounding
// distance of x whose denominator does not exceed maxDenom, via the
// standard continued-fraction convergent search. It never returns a
// fraction "close enough" by an arbitrary tolerance; it returns the
// best convergent the search reaches before the denominator bound or
// exact representation is hit, matching "fractions with small
// denominator whenever possible" from spec §6.
func rationalize(x float64, maxDenom int64) *big.Rat {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return new(big.Rat)
	}
	neg := x < 0
	if neg {
		x = -x
	}

	h0, h1 := big.NewInt(0), big.NewInt(1)
	k0, k1 := big.NewInt(1), big.NewInt(0)
	f := x
	for i := 0; i < 64; i++ {
		a := int64(math.Floor(f))
		aBig := big.NewInt(a)

		h2 := new(big.Int).Add(new(big.Int).Mul(aBig, h1), h0)
		k2 := new(big.Int).Add(new(big.Int).Mul(aBig, k1), k0)
		if k2.IsInt64() && k2.Int64() > maxDenom {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2

		frac := f - math.Floor(f)
		if frac < 1e-15 {
			break
		}
		f = 1 / frac
	}

	r := new(big.Rat).SetFrac(h1, k1)
	if neg {
		r.Neg(r)
	}
	return r
}

// FormatComment renders a "C ..." informational line (spec §6).
func FormatComment(msg string, args ...interface{}) string {
	return "C " + fmt.Sprintf(msg, args...)
}
