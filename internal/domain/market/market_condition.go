package market

import "fmt"

// Condition fixes the market terms a single segment is tested under:
// a unit price and the maximum units assumed sellable at that price
// (demand ceiling). Segments without a condition cannot sell.
type Condition struct {
	segment       Segment
	price         float64
	demandCeiling int
}

// NewCondition creates a market condition with validation.
func NewCondition(segment Segment, price float64, demandCeiling int) (Condition, error) {
	if price <= 0 {
		return Condition{}, fmt.Errorf("%w: %.2f for %s", ErrInvalidPrice, price, segment)
	}
	if demandCeiling < 0 {
		return Condition{}, fmt.Errorf("demand ceiling must be non-negative, got %d for %s", demandCeiling, segment)
	}
	return Condition{segment: segment, price: price, demandCeiling: demandCeiling}, nil
}

// Segment returns the segment under test.
func (c Condition) Segment() Segment { return c.segment }

// Price returns the fixed unit price under test.
func (c Condition) Price() float64 { return c.price }

// DemandCeiling returns the maximum units sellable this period.
func (c Condition) DemandCeiling() int { return c.demandCeiling }
