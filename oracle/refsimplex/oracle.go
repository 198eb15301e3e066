package refsimplex

import (
	"context"
	"errors"

	"github.com/csirmaz-dd/innerdd/oracle"
	"github.com/csirmaz-dd/innerdd/vlp"
)

// Oracle solves a vlp.Problem's scalar linear programs with the package's
// own dense tableau simplex (see doc.go for its scope and limits). It
// implements oracle.Oracle so it can be driven directly by the DD engine
// in tests and by cmd/innerdd.
type Oracle struct {
	p   *vlp.Problem
	cfg oracle.Config
	sf  *standardForm
}

// New builds an Oracle over p, precomputing the standard-form conversion
// once since it does not depend on the probe direction.
func New(p *vlp.Problem, opts ...oracle.Option) *Oracle {
	return &Oracle{
		p:   p,
		cfg: oracle.NewConfig(opts...),
		sf:  toStandardForm(p),
	}
}

// Probe implements oracle.Oracle. direction must have length p.Objs; it is
// combined with the problem's own objective matrix into a single scalar
// cost vector, minimized (after a sign flip for Maximize problems, since
// the DD engine and VLP format both describe Maximize by negating costs
// internally), and the resulting point is reported back in objective
// space. For Maximize problems the reported objective values are negated
// too; the driver flips them back on output.
func (o *Oracle) Probe(ctx context.Context, direction []float64) ([]float64, *oracle.OracleError) {
	if err := ctx.Err(); err != nil {
		return nil, &oracle.OracleError{Kind: oracle.Fail, Err: err}
	}
	if len(direction) != o.p.Objs {
		return nil, &oracle.OracleError{Kind: oracle.Fail, Err: oracle.ErrDimensionMismatch}
	}

	c := make([]float64, o.p.Cols+1)
	for j := 1; j <= o.p.Cols; j++ {
		sum := 0.0
		for k := 1; k <= o.p.Objs; k++ {
			sum += direction[k-1] * o.p.ObjAt(k, j)
		}
		if o.p.Direction == vlp.Maximize {
			sum = -sum
		}
		c[j] = sum
	}

	stdC, _ := o.sf.objectiveStd(c)

	limit := o.cfg.IterLimit
	if limit <= 0 {
		limit = 10000
	}
	x, _, err := solveMin(o.sf.rows, o.sf.b, stdC, limit)
	if err != nil {
		switch {
		case errors.Is(err, ErrInfeasible):
			return nil, &oracle.OracleError{Kind: oracle.Empty, Err: err}
		case errors.Is(err, ErrUnbounded):
			return nil, &oracle.OracleError{Kind: oracle.Unbounded, Err: err}
		case errors.Is(err, ErrIterLimit):
			return nil, &oracle.OracleError{Kind: oracle.Limit, Err: err}
		default:
			return nil, &oracle.OracleError{Kind: oracle.Fail, Err: err}
		}
	}

	orig := make([]float64, o.p.Cols+1)
	for j := 1; j <= o.p.Cols; j++ {
		orig[j] = o.sf.recoverColumn(j, x)
	}

	y := make([]float64, o.p.Objs)
	for k := 1; k <= o.p.Objs; k++ {
		sum := 0.0
		for j := 1; j <= o.p.Cols; j++ {
			sum += o.p.ObjAt(k, j) * orig[j]
		}
		if o.p.Direction == vlp.Maximize {
			sum = -sum
		}
		y[k-1] = sum
	}
	return y, nil
}
