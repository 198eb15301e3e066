package driver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVertex_Decimal(t *testing.T) {
	assert.Equal(t, "V 0 1.5", FormatVertex([]float64{0, 1.5}, false, false))
}

func TestFormatVertex_MaximizeFlipsSign(t *testing.T) {
	assert.Equal(t, "V -1 -2", FormatVertex([]float64{1, 2}, true, false))
}

func TestFormatVertex_AsFraction_SimpleHalf(t *testing.T) {
	assert.Equal(t, "V 1/2", FormatVertex([]float64{0.5}, false, true))
}

func TestFormatVertex_AsFraction_Integer(t *testing.T) {
	assert.Equal(t, "V 3", FormatVertex([]float64{3}, false, true))
}

func TestFormatVertex_AsFraction_OneThird(t *testing.T) {
	assert.Equal(t, "V 1/3", FormatVertex([]float64{1.0 / 3.0}, false, true))
}

func TestFormatFacet_AlwaysDecimal(t *testing.T) {
	assert.Equal(t, "F 1 -2 0.5", FormatFacet([]float64{1, -2, 0.5}))
}

func TestRationalize_BoundsDenominator(t *testing.T) {
	r := rationalize(math.Pi, 1000)
	assert.LessOrEqual(t, r.Denom().Int64(), int64(1000))
}

func TestFormatComment(t *testing.T) {
	assert.Equal(t, "C 3 vertices", FormatComment("%d vertices", 3))
}
