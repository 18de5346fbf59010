// Package interpolate implements kriging interpolation of scattered point
// samples onto a regular grid, with the linear system solved by gonum.
package interpolate

import (
	"math"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/stat"

	"github.com/sells-group/geokit-cli/internal/check"
)

// VariogramModel names a semivariance model.
type VariogramModel string

// Supported variogram models.
const (
	Linear      VariogramModel = "linear"
	Power       VariogramModel = "power"
	Gaussian    VariogramModel = "gaussian"
	Spherical   VariogramModel = "spherical"
	Exponential VariogramModel = "exponential"
	HoleEffect  VariogramModel = "hole-effect"
)

// ParseVariogramModel validates a variogram model name.
func ParseVariogramModel(s string) (VariogramModel, error) {
	switch VariogramModel(s) {
	case Linear, Power, Gaussian, Spherical, Exponential, HoleEffect:
		return VariogramModel(s), nil
	}
	return "", eris.Wrapf(check.ErrInvalidParameterValue, "interpolate: unknown variogram model %q", s)
}

// variogram evaluates a semivariance model with parameters estimated from
// the sample: nugget 0, partial sill the sample variance, range half the
// maximum point separation.
type variogram struct {
	model    VariogramModel
	nugget   float64
	sill     float64
	rng      float64
	slope    float64
	exponent float64
}

// fitVariogram derives default model parameters from the sample geometry
// and values.
func fitVariogram(model VariogramModel, xs, ys, zs []float64) variogram {
	var maxDist float64
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if d := math.Hypot(xs[i]-xs[j], ys[i]-ys[j]); d > maxDist {
				maxDist = d
			}
		}
	}
	if maxDist == 0 {
		maxDist = 1
	}
	variance := stat.Variance(zs, nil)
	if variance == 0 {
		variance = 1
	}
	return variogram{
		model:    model,
		sill:     variance,
		rng:      maxDist / 2,
		slope:    variance / maxDist,
		exponent: 1.5,
	}
}

// gamma returns the modeled semivariance at lag distance h.
func (v variogram) gamma(h float64) float64 {
	if h == 0 {
		return 0
	}
	switch v.model {
	case Power:
		return v.nugget + v.slope*math.Pow(h, v.exponent)
	case Gaussian:
		return v.nugget + v.sill*(1-math.Exp(-3*h*h/(v.rng*v.rng)))
	case Spherical:
		if h >= v.rng {
			return v.nugget + v.sill
		}
		r := h / v.rng
		return v.nugget + v.sill*(1.5*r-0.5*r*r*r)
	case Exponential:
		return v.nugget + v.sill*(1-math.Exp(-3*h/v.rng))
	case HoleEffect:
		a := 3 * h / v.rng
		return v.nugget + v.sill*(1-(1-a)*math.Exp(-a))
	default: // Linear
		return v.nugget + v.slope*h
	}
}
