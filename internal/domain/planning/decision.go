package planning

import (
	"fmt"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
)

// Decision is the optimizer's output: the full set of production, sales and
// inventory moves for one period. Computed once per solve and never mutated;
// downstream code renders it into the simulation's decision forms.
type Decision struct {
	// Production maps each plant to its scheduled units for the period.
	Production map[market.Plant]int
	// ProducedGrade maps each producing plant to the grade it runs.
	ProducedGrade map[market.Plant]market.Grade
	// Open maps each plant to its activation flag.
	Open map[market.Plant]bool
	// Sales maps each segment to units sold.
	Sales map[market.Segment]int
	// EndingInventory maps each segment to its closing inventory.
	EndingInventory map[market.Segment]int
}

// NewDecision creates an empty all-zero decision (always feasible).
func NewDecision() *Decision {
	return &Decision{
		Production:      map[market.Plant]int{},
		ProducedGrade:   map[market.Plant]market.Grade{},
		Open:            map[market.Plant]bool{},
		Sales:           map[market.Segment]int{},
		EndingInventory: map[market.Segment]int{},
	}
}

// UnitsSold returns total units sold across all segments.
func (d *Decision) UnitsSold() int {
	var total int
	for _, qty := range d.Sales {
		total += qty
	}
	return total
}

// TotalEndingInventory returns total closing inventory across all segments.
func (d *Decision) TotalEndingInventory() int {
	var total int
	for _, qty := range d.EndingInventory {
		total += qty
	}
	return total
}

// OpenPlants returns the number of activated plants.
func (d *Decision) OpenPlants() int {
	var count int
	for _, open := range d.Open {
		if open {
			count++
		}
	}
	return count
}

// CheckFlow verifies the inventory flow identity for every segment:
// ending = opening + production(matching grade) − sales − chip consumption.
// A non-zero residual is a model construction bug.
func (d *Decision) CheckFlow(opening map[market.Segment]int) error {
	for _, seg := range market.Segments() {
		produced := 0
		plant := seg.Plant()
		if d.Open[plant] && d.ProducedGrade[plant] == seg.Grade {
			produced = d.Production[plant]
		}
		consumed := 0
		if seg.Product == market.ProductChip {
			// Computers consume matching-grade chips 1:1.
			computerPlant := market.Plant{Region: seg.Region, Product: market.ProductComputer}
			if d.Open[computerPlant] && d.ProducedGrade[computerPlant] == seg.Grade {
				consumed = d.Production[computerPlant]
			}
		}
		want := opening[seg] + produced - d.Sales[seg] - consumed
		if got := d.EndingInventory[seg]; got != want {
			return fmt.Errorf("%w: segment %s ending inventory %d, flow identity gives %d",
				ErrFlowViolation, seg, got, want)
		}
	}
	return nil
}
