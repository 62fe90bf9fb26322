// Package stats turns a flat list of transactions into the period-aligned
// series and category breakdowns the report is built from. Every function
// is a pure computation over its input: nothing is cached or shared
// between calls and callers own all returned values.
package stats

import (
	"errors"
	"sort"
)

// NoSubcategory is the bucket used for transactions without a subcategory.
const NoSubcategory = "No subcategory"

var (
	// ErrNoTransactions is returned when a timeline is requested for an
	// empty transaction list: without dates there is nothing to span.
	ErrNoTransactions = errors.New("no transactions available")

	// ErrMismatchedPeriods is returned when two series that must share a
	// timeline disagree on their period keys. With zero-filled inputs this
	// cannot happen, so hitting it means an upstream bug.
	ErrMismatchedPeriods = errors.New("series have mismatched periods")

	// ErrEmptyBucket is returned when an average over an empty series is
	// requested.
	ErrEmptyBucket = errors.New("cannot average an empty bucket")
)

type (
	// Series maps a period key (YY_MM) to an accumulated value. Period
	// keys sort chronologically and lexicographically alike, so ordered
	// iteration is just a key sort away.
	Series map[string]float64

	// YearSeries is the year-level counterpart of Series.
	YearSeries map[int]float64

	// CategorySeries is one ranked entry of a per-category breakdown.
	CategorySeries struct {
		Name     string
		ByPeriod Series
	}

	// SubcategorySeries is one ranked subcategory bucket.
	SubcategorySeries struct {
		Name     string
		ByPeriod Series
	}

	// CategoryDetail groups the ranked subcategory buckets of a category.
	CategoryDetail struct {
		Name          string
		Subcategories []SubcategorySeries
	}
)

// Periods returns the series keys in chronological order.
func (s Series) Periods() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the series values in chronological key order.
func (s Series) Values() []float64 {
	periods := s.Periods()
	values := make([]float64, len(periods))
	for i, p := range periods {
		values[i] = s[p]
	}
	return values
}

// Total sums all values in the series.
func (s Series) Total() float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

// Years returns the series keys in ascending order.
func (ys YearSeries) Years() []int {
	keys := make([]int, 0, len(ys))
	for k := range ys {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Values returns the series values in ascending year order.
func (ys YearSeries) Values() []float64 {
	years := ys.Years()
	values := make([]float64, len(years))
	for i, y := range years {
		values[i] = ys[y]
	}
	return values
}

// Total sums all values in the series.
func (ys YearSeries) Total() float64 {
	var total float64
	for _, v := range ys {
		total += v
	}
	return total
}

// Combine builds a new series by applying f element-wise to two series
// indexed by the same timeline. It fails with ErrMismatchedPeriods when
// the key sets differ.
func Combine(a, b Series, f func(av, bv float64) float64) (Series, error) {
	if len(a) != len(b) {
		return nil, ErrMismatchedPeriods
	}
	out := make(Series, len(a))
	for period, av := range a {
		bv, ok := b[period]
		if !ok {
			return nil, ErrMismatchedPeriods
		}
		out[period] = f(av, bv)
	}
	return out, nil
}

// fill returns a copy of the series extended so that its key set equals
// exactly the given timeline, with missing periods set to 0. Applying it
// to an already filled series copies it unchanged.
func fill(s Series, timeline []string) Series {
	out := make(Series, len(timeline))
	for period, v := range s {
		out[period] = v
	}
	for _, period := range timeline {
		if _, ok := out[period]; !ok {
			out[period] = 0
		}
	}
	return out
}
