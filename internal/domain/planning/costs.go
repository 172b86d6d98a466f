package planning

import "fmt"

// StrategyCosts are the fixed strategy-level spends a candidate commits to
// for the period, independent of the production plan.
type StrategyCosts struct {
	Marketing float64
	RND       float64
	Reports   float64
}

// Total returns the combined strategy spend.
func (c StrategyCosts) Total() float64 {
	return c.Marketing + c.RND + c.Reports
}

// Validate rejects negative spends.
func (c StrategyCosts) Validate() error {
	if c.Marketing < 0 || c.RND < 0 || c.Reports < 0 {
		return fmt.Errorf("strategy costs must be non-negative: %+v", c)
	}
	return nil
}
