package market

import "fmt"

// DemandModel is a per-segment linear demand approximation fitted from
// historical observations (immutable value object).
//
// Forecasted quantity = intercept + slope × price, with slope strictly
// negative (demand falls as price rises). Samples carries the number of
// (price, quantity) observations behind the fit; zero samples marks the
// conservative default model substituted when no segment in the
// (region, product) pair could be fitted.
type DemandModel struct {
	slope     float64
	intercept float64
	samples   int
}

// Default model constants: a steep negative slope and a small intercept so
// that an unestimated segment never dominates a fitted one.
const (
	defaultModelSlope     = -100.0
	defaultModelIntercept = 50000.0
)

// NewDemandModel creates a demand model with validation.
// The slope must be strictly negative and the sample count positive; fits
// violating either must be discarded by the caller, not stored.
func NewDemandModel(slope, intercept float64, samples int) (DemandModel, error) {
	if slope >= 0 {
		return DemandModel{}, fmt.Errorf("%w: slope %.4f", ErrNonNegativeSlope, slope)
	}
	if samples <= 0 {
		return DemandModel{}, fmt.Errorf("demand model requires at least one sample, got %d", samples)
	}
	return DemandModel{slope: slope, intercept: intercept, samples: samples}, nil
}

// DefaultDemandModel returns the conservative fallback model used when no fit
// exists for either grade of a (region, product) pair.
func DefaultDemandModel() DemandModel {
	return DemandModel{slope: defaultModelSlope, intercept: defaultModelIntercept, samples: 0}
}

// Slope returns the fitted slope (always negative).
func (m DemandModel) Slope() float64 { return m.slope }

// Intercept returns the fitted intercept.
func (m DemandModel) Intercept() float64 { return m.intercept }

// Samples returns the number of observations behind the fit (0 = default model).
func (m DemandModel) Samples() int { return m.samples }

// IsDefault reports whether this is the substituted fallback model.
func (m DemandModel) IsDefault() bool { return m.samples == 0 }

// Forecast returns the expected market-level quantity at the given price,
// floored at zero.
func (m DemandModel) Forecast(price float64) float64 {
	q := m.intercept + m.slope*price
	if q < 0 {
		return 0
	}
	return q
}
