package planning

import (
	"fmt"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
)

// GradeChoice selects what a plant manufactures this period.
type GradeChoice int

const (
	// DoNotProduce keeps the plant closed.
	DoNotProduce GradeChoice = -1
	// ProduceStandard runs the plant on the standard grade.
	ProduceStandard GradeChoice = GradeChoice(market.GradeStandard)
	// ProducePremium runs the plant on the premium grade.
	ProducePremium GradeChoice = GradeChoice(market.GradePremium)
)

// String returns a readable form for reports.
func (c GradeChoice) String() string {
	switch c {
	case ProduceStandard:
		return "standard"
	case ProducePremium:
		return "premium"
	default:
		return "none"
	}
}

// Grade returns the market grade for a producing choice. Only valid when
// c != DoNotProduce.
func (c GradeChoice) Grade() market.Grade {
	return market.Grade(c)
}

// Assignment maps each plant to the grade it manufactures this period.
// Plants without an entry do not produce.
type Assignment map[market.Plant]GradeChoice

// Choice returns the plant's grade choice, defaulting to DoNotProduce.
func (a Assignment) Choice(plant market.Plant) GradeChoice {
	if a == nil {
		return DoNotProduce
	}
	choice, ok := a[plant]
	if !ok {
		return DoNotProduce
	}
	return choice
}

// Gate applies the patent invariant: a plant assigned a grade above its
// patent level is degraded to DoNotProduce. The degradation is never silent;
// each offending plant yields a warning so the strategy driver can report
// "patent insufficient" instead of quietly low-balling results.
func (a Assignment) Gate(patents map[market.Plant]int) (Assignment, []string) {
	gated := make(Assignment, len(a))
	var warnings []string
	for plant, choice := range a {
		if choice == DoNotProduce {
			gated[plant] = DoNotProduce
			continue
		}
		if int(choice.Grade()) > patents[plant] {
			gated[plant] = DoNotProduce
			warnings = append(warnings, fmt.Sprintf(
				"patent insufficient: %s assigned %s grade but holds level %d, production disabled",
				plant, choice, patents[plant]))
			continue
		}
		gated[plant] = choice
	}
	return gated, warnings
}
