package market

import (
	"fmt"
	"strings"
)

// Region identifies one of the three simulation areas.
type Region string

const (
	RegionUS Region = "US"
	RegionEU Region = "EU"
	RegionBR Region = "BR"
)

// Regions returns all regions in canonical order.
func Regions() []Region {
	return []Region{RegionUS, RegionEU, RegionBR}
}

// Product identifies a product family. Computers consume chips 1:1 per unit
// produced, for the matching quality grade.
type Product string

const (
	// ProductChip is the intermediate good.
	ProductChip Product = "chip"
	// ProductComputer is the finished good.
	ProductComputer Product = "computer"
)

// Products returns both product families in canonical order.
func Products() []Product {
	return []Product{ProductChip, ProductComputer}
}

// Grade is a quality grade. The numeric value doubles as the patent level
// required to manufacture the grade.
type Grade int

const (
	GradeStandard Grade = 0
	GradePremium  Grade = 1
)

// Grades returns both quality grades in canonical order.
func Grades() []Grade {
	return []Grade{GradeStandard, GradePremium}
}

// String returns the grade name used in segment keys and reports.
func (g Grade) String() string {
	if g == GradePremium {
		return "premium"
	}
	return "standard"
}

// Opposite returns the complementary quality grade (used by the demand model
// fallback chain).
func (g Grade) Opposite() Grade {
	if g == GradeStandard {
		return GradePremium
	}
	return GradeStandard
}

// Plant identifies a production plant: one per (region, product) pair.
// Patents are held at plant granularity.
type Plant struct {
	Region  Region
	Product Product
}

// String returns the canonical "REGION/product" form.
func (p Plant) String() string {
	return fmt.Sprintf("%s/%s", p.Region, p.Product)
}

// Plants returns all six plants in canonical order.
func Plants() []Plant {
	var plants []Plant
	for _, r := range Regions() {
		for _, p := range Products() {
			plants = append(plants, Plant{Region: r, Product: p})
		}
	}
	return plants
}

// Segment is the atomic unit of pricing, demand estimation and inventory
// tracking: a (region, product, grade) triple.
type Segment struct {
	Region  Region
	Product Product
	Grade   Grade
}

// Plant returns the plant that manufactures this segment's product.
func (s Segment) Plant() Plant {
	return Plant{Region: s.Region, Product: s.Product}
}

// String returns the canonical "REGION/product/grade" form.
func (s Segment) String() string {
	return fmt.Sprintf("%s/%s/%s", s.Region, s.Product, s.Grade)
}

// Segments returns all twelve segments in the canonical report ordering:
// US chip std, US chip prem, US computer std, US computer prem, then EU, then BR.
// This ordering defines the 12-slot competitor price vector layout.
func Segments() []Segment {
	var segments []Segment
	for _, r := range Regions() {
		for _, p := range Products() {
			for _, g := range Grades() {
				segments = append(segments, Segment{Region: r, Product: p, Grade: g})
			}
		}
	}
	return segments
}

// PriceSlots is the length of a fully populated competitor price vector.
const PriceSlots = 12

// PriceSlot returns the segment's index into a competitor's 12-slot price
// vector, or -1 for an unknown segment.
func PriceSlot(s Segment) int {
	for i, seg := range Segments() {
		if seg == s {
			return i
		}
	}
	return -1
}

// ParseSegment parses the canonical "REGION/product/grade" form.
func ParseSegment(key string) (Segment, error) {
	parts := strings.Split(key, "/")
	if len(parts) != 3 {
		return Segment{}, fmt.Errorf("%w: %q", ErrInvalidSegmentKey, key)
	}
	region, err := parseRegion(parts[0])
	if err != nil {
		return Segment{}, err
	}
	product, err := parseProduct(parts[1])
	if err != nil {
		return Segment{}, err
	}
	var grade Grade
	switch parts[2] {
	case "standard":
		grade = GradeStandard
	case "premium":
		grade = GradePremium
	default:
		return Segment{}, fmt.Errorf("%w: unknown grade %q", ErrInvalidSegmentKey, parts[2])
	}
	return Segment{Region: region, Product: product, Grade: grade}, nil
}

// ParsePlant parses the canonical "REGION/product" form.
func ParsePlant(key string) (Plant, error) {
	parts := strings.Split(key, "/")
	if len(parts) != 2 {
		return Plant{}, fmt.Errorf("%w: %q", ErrInvalidSegmentKey, key)
	}
	region, err := parseRegion(parts[0])
	if err != nil {
		return Plant{}, err
	}
	product, err := parseProduct(parts[1])
	if err != nil {
		return Plant{}, err
	}
	return Plant{Region: region, Product: product}, nil
}

func parseRegion(s string) (Region, error) {
	switch Region(s) {
	case RegionUS, RegionEU, RegionBR:
		return Region(s), nil
	}
	return "", fmt.Errorf("%w: unknown region %q", ErrInvalidSegmentKey, s)
}

func parseProduct(s string) (Product, error) {
	switch Product(s) {
	case ProductChip, ProductComputer:
		return Product(s), nil
	}
	return "", fmt.Errorf("%w: unknown product %q", ErrInvalidSegmentKey, s)
}
