package tui

import "github.com/sushantvema/zupo/internal/core/domain"

// filterField identifies one row of the filter panel.
type filterField int

const (
	filterType filterField = iota
	filterRadius
	filterMinRating
	filterPrice
	filterOpenNow

	filterFieldCount
)

var radiusOptions = []float64{500, 1000, 2000, 5000, 10000, 25000, 50000}

// filterState holds the search filters edited in the panel. typeValue
// lives in the model's text input; everything else is here.
type filterState struct {
	radius      float64
	minRating   float64 // 0 means unset
	priceLevels [5]bool // tiers 0-4
	openNow     bool
}

// cycleRadius advances to the next larger preset, wrapping to the
// smallest. A saved radius that is not a preset lands on the next
// preset above it.
func (f *filterState) cycleRadius() {
	for _, r := range radiusOptions {
		if r > f.radius {
			f.radius = r
			return
		}
	}
	f.radius = radiusOptions[0]
}

// cycleMinRating steps None -> 3.0 -> 3.5 -> 4.0 -> 4.5 -> None.
func (f *filterState) cycleMinRating() {
	switch {
	case f.minRating == 0:
		f.minRating = 3.0
	case f.minRating < 3.5:
		f.minRating = 3.5
	case f.minRating < 4.0:
		f.minRating = 4.0
	case f.minRating < 4.5:
		f.minRating = 4.5
	default:
		f.minRating = 0
	}
}

// togglePrice flips one price tier.
func (f *filterState) togglePrice(tier int) {
	if tier < 0 || tier > 4 {
		return
	}
	f.priceLevels[tier] = !f.priceLevels[tier]
}

// advancePrice is the Enter behavior on the price row: no selection
// starts at Free, otherwise the selection collapses to the tier above
// the highest one, clearing past the top.
func (f *filterState) advancePrice() {
	highest := -1
	for i, v := range f.priceLevels {
		if v {
			highest = i
		}
	}
	f.priceLevels = [5]bool{}
	switch {
	case highest < 0:
		f.priceLevels[0] = true
	case highest+1 < len(f.priceLevels):
		f.priceLevels[highest+1] = true
	}
}

// priceLevelsAPI returns the selected tiers as API enum values.
func (f *filterState) priceLevelsAPI() []string {
	var levels []string
	for i, v := range f.priceLevels {
		if v {
			levels = append(levels, domain.PriceLevelToAPI(i))
		}
	}
	return levels
}
