package stats

import (
	"fmt"

	"finreport/internal/core"
)

// PeriodKey formats a date as the YY_MM token indexing all monthly series.
// Zero-padding keeps chronological and lexicographic order identical.
func PeriodKey(d core.Date) string {
	return fmt.Sprintf("%02d_%02d", d.Year()%100, d.Month())
}

// span holds the oldest and newest transaction dates of a dataset.
type span struct {
	min core.Date
	max core.Date
}

// dateSpan scans the transactions for their date bounds. The input is not
// assumed to be sorted.
func dateSpan(txs []core.Transaction) (span, error) {
	if len(txs) == 0 {
		return span{}, ErrNoTransactions
	}
	sp := span{min: txs[0].Date, max: txs[0].Date}
	for _, t := range txs[1:] {
		if t.Date.Before(sp.min) {
			sp.min = t.Date
		}
		if t.Date.After(sp.max) {
			sp.max = t.Date
		}
	}
	return sp, nil
}

// Months returns one YY_MM key for every calendar month between the oldest
// and the newest transaction date, inclusive, with no gaps. Months with no
// transactions still get a key: every monthly series is reindexed against
// this timeline so all of them are directly comparable.
func Months(txs []core.Transaction) ([]string, error) {
	sp, err := dateSpan(txs)
	if err != nil {
		return nil, err
	}

	var months []string
	for year := sp.min.Year(); year <= sp.max.Year(); year++ {
		for month := 1; month <= 12; month++ {
			if year == sp.min.Year() && month < sp.min.Month() {
				continue
			}
			if year == sp.max.Year() && month > sp.max.Month() {
				continue
			}
			months = append(months, fmt.Sprintf("%02d_%02d", year%100, month))
		}
	}
	return months, nil
}

// Years returns every calendar year between the oldest and the newest
// transaction date, inclusive.
func Years(txs []core.Transaction) ([]int, error) {
	sp, err := dateSpan(txs)
	if err != nil {
		return nil, err
	}
	years := make([]int, 0, sp.max.Year()-sp.min.Year()+1)
	for year := sp.min.Year(); year <= sp.max.Year(); year++ {
		years = append(years, year)
	}
	return years, nil
}

// monthsCovered returns how many months of the given year the dataset
// actually spans. The first and last year of a dataset are usually
// partial; dividing their totals by 12 would deflate the averages.
func (sp span) monthsCovered(year int) int {
	if year == sp.min.Year() {
		return 13 - sp.min.Month()
	}
	if year == sp.max.Year() {
		return sp.max.Month()
	}
	return 12
}
