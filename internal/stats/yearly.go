package stats

import (
	"sort"

	"finreport/internal/core"
)

type (
	// YearBreakdown is the expense summary backing the report tables:
	// the grand total, the per-year totals and the same figures for each
	// category and subcategory, ranked by descending total.
	YearBreakdown struct {
		Total      float64
		ByYear     YearSeries
		Categories []CategoryAggregate
	}

	CategoryAggregate struct {
		Name          string
		Total         float64
		ByYear        YearSeries
		Subcategories []SubcategoryAggregate
	}

	SubcategoryAggregate struct {
		Name   string
		Total  float64
		ByYear YearSeries
	}

	// CategoryYearAverages holds the average expense per month for each
	// year of the dataset, per category and per subcategory.
	CategoryYearAverages struct {
		Name          string
		ByYear        YearSeries
		Subcategories []SubcategoryYearAverages
	}

	SubcategoryYearAverages struct {
		Name   string
		ByYear YearSeries
	}
)

// ExpensesByYear sums all expense amounts per year, per category and per
// subcategory, bottom-up into one immutable tree. Categories and
// subcategories come out ranked by descending total.
func ExpensesByYear(txs []core.Transaction) (YearBreakdown, error) {
	if len(txs) == 0 {
		return YearBreakdown{}, ErrNoTransactions
	}

	type subAgg struct {
		total  float64
		byYear YearSeries
	}
	type catAgg struct {
		total    float64
		byYear   YearSeries
		subs     map[string]*subAgg
		subOrder []string
	}

	breakdown := YearBreakdown{ByYear: make(YearSeries)}
	cats := make(map[string]*catAgg)
	var order []string

	for _, t := range txs {
		if t.Kind() != core.Expense {
			continue
		}
		year := t.Date.Year()
		amount := t.Amount()

		breakdown.Total += amount
		breakdown.ByYear[year] += amount

		cat, ok := cats[t.Category]
		if !ok {
			cat = &catAgg{byYear: make(YearSeries), subs: make(map[string]*subAgg)}
			cats[t.Category] = cat
			order = append(order, t.Category)
		}
		cat.total += amount
		cat.byYear[year] += amount

		subName := t.Subcategory
		if subName == "" {
			subName = NoSubcategory
		}
		sub, ok := cat.subs[subName]
		if !ok {
			sub = &subAgg{byYear: make(YearSeries)}
			cat.subs[subName] = sub
			cat.subOrder = append(cat.subOrder, subName)
		}
		sub.total += amount
		sub.byYear[year] += amount
	}

	for _, name := range order {
		cat := cats[name]
		subs := make([]SubcategoryAggregate, len(cat.subOrder))
		for i, subName := range cat.subOrder {
			sub := cat.subs[subName]
			subs[i] = SubcategoryAggregate{Name: subName, Total: sub.total, ByYear: sub.byYear}
		}
		sort.SliceStable(subs, func(i, j int) bool { return subs[i].Total > subs[j].Total })
		breakdown.Categories = append(breakdown.Categories, CategoryAggregate{
			Name:          name,
			Total:         cat.total,
			ByYear:        cat.byYear,
			Subcategories: subs,
		})
	}
	sort.SliceStable(breakdown.Categories, func(i, j int) bool {
		return breakdown.Categories[i].Total > breakdown.Categories[j].Total
	})
	return breakdown, nil
}

// CategoriesAverageByYearWithSubcategories returns the average expense per
// month for each category and subcategory, year by year. The divisor for
// the first and last year of the dataset is the number of months the data
// actually covers, so a year that starts in March does not get its average
// deflated by ten empty months. Years where a category had no expenses
// average to 0. Categories and subcategories are ranked by the descending
// sum of their yearly averages.
func CategoriesAverageByYearWithSubcategories(txs []core.Transaction) ([]CategoryYearAverages, error) {
	breakdown, err := ExpensesByYear(txs)
	if err != nil {
		return nil, err
	}
	sp, err := dateSpan(txs)
	if err != nil {
		return nil, err
	}
	years, err := Years(txs)
	if err != nil {
		return nil, err
	}

	averaged := func(byYear YearSeries) YearSeries {
		out := make(YearSeries, len(years))
		for _, year := range years {
			if total, ok := byYear[year]; ok {
				out[year] = total / float64(sp.monthsCovered(year))
			} else {
				out[year] = 0
			}
		}
		return out
	}

	averages := make([]CategoryYearAverages, len(breakdown.Categories))
	for i, cat := range breakdown.Categories {
		subs := make([]SubcategoryYearAverages, len(cat.Subcategories))
		for j, sub := range cat.Subcategories {
			subs[j] = SubcategoryYearAverages{Name: sub.Name, ByYear: averaged(sub.ByYear)}
		}
		sort.SliceStable(subs, func(a, b int) bool {
			return subs[a].ByYear.Total() > subs[b].ByYear.Total()
		})
		averages[i] = CategoryYearAverages{Name: cat.Name, ByYear: averaged(cat.ByYear), Subcategories: subs}
	}
	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].ByYear.Total() > averages[j].ByYear.Total()
	})
	return averages, nil
}

// CategoriesAverageByYear is the flat variant of
// CategoriesAverageByYearWithSubcategories, used by the overview chart
// that stacks the category averages without subcategory detail.
func CategoriesAverageByYear(txs []core.Transaction) ([]CategoryYearAverages, error) {
	averages, err := CategoriesAverageByYearWithSubcategories(txs)
	if err != nil {
		return nil, err
	}
	flat := make([]CategoryYearAverages, len(averages))
	for i, cat := range averages {
		flat[i] = CategoryYearAverages{Name: cat.Name, ByYear: cat.ByYear}
	}
	return flat, nil
}
