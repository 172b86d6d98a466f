package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegments_CanonicalOrdering(t *testing.T) {
	segments := Segments()
	require.Len(t, segments, PriceSlots)

	// The report layout fixes slot 0 as US standard chips and slot 11 as BR
	// premium computers.
	assert.Equal(t, Segment{Region: RegionUS, Product: ProductChip, Grade: GradeStandard}, segments[0])
	assert.Equal(t, Segment{Region: RegionUS, Product: ProductChip, Grade: GradePremium}, segments[1])
	assert.Equal(t, Segment{Region: RegionUS, Product: ProductComputer, Grade: GradeStandard}, segments[2])
	assert.Equal(t, Segment{Region: RegionBR, Product: ProductComputer, Grade: GradePremium}, segments[11])
}

func TestPriceSlot_RoundTrip(t *testing.T) {
	for i, seg := range Segments() {
		assert.Equal(t, i, PriceSlot(seg))
	}
}

func TestParseSegment(t *testing.T) {
	seg, err := ParseSegment("EU/computer/premium")
	require.NoError(t, err)
	assert.Equal(t, Segment{Region: RegionEU, Product: ProductComputer, Grade: GradePremium}, seg)

	for _, key := range []string{"", "EU", "EU/computer", "XX/computer/premium", "EU/widget/premium", "EU/computer/deluxe"} {
		_, err := ParseSegment(key)
		assert.ErrorIs(t, err, ErrInvalidSegmentKey, "key %q", key)
	}
}

func TestParsePlant(t *testing.T) {
	plant, err := ParsePlant("BR/chip")
	require.NoError(t, err)
	assert.Equal(t, Plant{Region: RegionBR, Product: ProductChip}, plant)

	_, err = ParsePlant("BR/chip/standard")
	assert.ErrorIs(t, err, ErrInvalidSegmentKey)
}

func TestSegmentString_RoundTrip(t *testing.T) {
	for _, seg := range Segments() {
		parsed, err := ParseSegment(seg.String())
		require.NoError(t, err)
		assert.Equal(t, seg, parsed)
	}
}

func TestGradeOpposite(t *testing.T) {
	assert.Equal(t, GradePremium, GradeStandard.Opposite())
	assert.Equal(t, GradeStandard, GradePremium.Opposite())
}
