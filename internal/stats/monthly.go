package stats

import (
	"sort"

	"finreport/internal/core"
)

// TotalsByMonth sums the amounts of all transactions of the given kind per
// month, zero-filled against the global timeline.
func TotalsByMonth(txs []core.Transaction, kind core.Kind) (Series, error) {
	timeline, err := Months(txs)
	if err != nil {
		return nil, err
	}

	totals := make(Series)
	for _, t := range txs {
		if t.Kind() != kind {
			continue
		}
		totals[PeriodKey(t.Date)] += t.Amount()
	}
	return fill(totals, timeline), nil
}

// CategoriesByMonth buckets the transactions of the given kind by category
// and month. Every bucket is zero-filled against the global timeline and
// the categories are ranked by descending total. Categories with the same
// total keep the order they were first seen in.
//
// Category names are matched exactly: "food" and "Food" stay separate
// buckets, as in the data they came from.
func CategoriesByMonth(txs []core.Transaction, kind core.Kind) ([]CategorySeries, error) {
	timeline, err := Months(txs)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]Series)
	var order []string
	for _, t := range txs {
		if t.Kind() != kind {
			continue
		}
		bucket, ok := buckets[t.Category]
		if !ok {
			bucket = make(Series)
			buckets[t.Category] = bucket
			order = append(order, t.Category)
		}
		bucket[PeriodKey(t.Date)] += t.Amount()
	}

	categories := make([]CategorySeries, len(order))
	for i, name := range order {
		categories[i] = CategorySeries{Name: name, ByPeriod: fill(buckets[name], timeline)}
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].ByPeriod.Total() > categories[j].ByPeriod.Total()
	})
	return categories, nil
}

// CategoriesByMonthWithSubcategories buckets the transactions of the given
// kind one level deeper than CategoriesByMonth. Transactions without a
// subcategory land in the NoSubcategory bucket. Subcategories within each
// category are ranked by descending total, like the categories themselves.
func CategoriesByMonthWithSubcategories(txs []core.Transaction, kind core.Kind) ([]CategoryDetail, error) {
	timeline, err := Months(txs)
	if err != nil {
		return nil, err
	}

	type catBuckets struct {
		subs  map[string]Series
		order []string
	}
	buckets := make(map[string]*catBuckets)
	var order []string
	for _, t := range txs {
		if t.Kind() != kind {
			continue
		}
		cat, ok := buckets[t.Category]
		if !ok {
			cat = &catBuckets{subs: make(map[string]Series)}
			buckets[t.Category] = cat
			order = append(order, t.Category)
		}
		sub := t.Subcategory
		if sub == "" {
			sub = NoSubcategory
		}
		bucket, ok := cat.subs[sub]
		if !ok {
			bucket = make(Series)
			cat.subs[sub] = bucket
			cat.order = append(cat.order, sub)
		}
		bucket[PeriodKey(t.Date)] += t.Amount()
	}

	details := make([]CategoryDetail, len(order))
	for i, name := range order {
		cat := buckets[name]
		subs := make([]SubcategorySeries, len(cat.order))
		for j, subName := range cat.order {
			subs[j] = SubcategorySeries{Name: subName, ByPeriod: fill(cat.subs[subName], timeline)}
		}
		sort.SliceStable(subs, func(a, b int) bool {
			return subs[a].ByPeriod.Total() > subs[b].ByPeriod.Total()
		})
		details[i] = CategoryDetail{Name: name, Subcategories: subs}
	}
	return details, nil
}
