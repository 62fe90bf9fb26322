// Package charts builds chart specifications from aggregated series and
// renders them with go-chart. Specs are plain data: which kind of chart,
// which labels, which series. Rendering is a separate concern so every
// chart variant shares the same two render paths.
package charts

import (
	"errors"
	"fmt"

	"finreport/internal/core"
	"finreport/internal/stats"
)

// Kind selects the render strategy for a spec.
type Kind int

const (
	// Line draws every series as an independent line.
	Line Kind = iota
	// StackedArea draws the series stacked on top of each other, so the
	// outline is the total and each band one contribution.
	StackedArea
)

type (
	// Spec describes one chart, data only.
	Spec struct {
		Kind    Kind
		XLabels []string
		Series  []Series
		// YSuffix is appended to axis values, e.g. a currency or "%".
		YSuffix string
		// Baselines are horizontal reference lines (averages, the zero
		// line of a balance chart).
		Baselines []Baseline
	}

	// Series is one named sequence of values aligned with XLabels.
	Series struct {
		Name   string
		Values []float64
		// Trend marks a smoothed companion that is drawn dashed and
		// faded in the color of the series before it.
		Trend bool
	}

	Baseline struct {
		Name   string
		Value  float64
		Dashed bool
	}

	// Chart pairs a display name with its spec, in report order.
	Chart struct {
		Name string
		Spec Spec
	}
)

// Overview builds the charts that summarize the whole dataset: income
// versus expenses, balance, relative balance and the category stacks.
func Overview(txs []core.Transaction, smoothWeight float64, currency string) ([]Chart, error) {
	timeline, err := stats.Months(txs)
	if err != nil {
		return nil, err
	}

	expenses, err := stats.TotalsByMonth(txs, core.Expense)
	if err != nil {
		return nil, err
	}
	income, err := stats.TotalsByMonth(txs, core.Income)
	if err != nil {
		return nil, err
	}
	balance, err := stats.Balance(txs)
	if err != nil {
		return nil, err
	}
	percentage, err := stats.BalancePercentage(txs)
	if err != nil {
		return nil, err
	}

	charts := []Chart{
		{
			Name: "Income & expenses",
			Spec: Spec{
				Kind:    Line,
				XLabels: timeline,
				YSuffix: currency,
				Series: withTrends(smoothWeight,
					Series{Name: "Expenses", Values: expenses.Values()},
					Series{Name: "Income", Values: income.Values()},
				),
			},
		},
		{
			Name: "Balance",
			Spec: Spec{
				Kind:    Line,
				XLabels: timeline,
				YSuffix: currency,
				Series: withTrends(smoothWeight,
					Series{Name: "Balance", Values: balance.Values()},
				),
				Baselines: []Baseline{{Name: "Zero", Value: 0}},
			},
		},
	}

	relative := Spec{
		Kind:    Line,
		XLabels: timeline,
		YSuffix: "%",
		Series: withTrends(smoothWeight,
			Series{Name: "Balance", Values: percentage.Values()},
		),
		Baselines: []Baseline{{Name: "Zero", Value: 0}},
	}
	if avg, err := stats.Average(percentage); err == nil {
		relative.Baselines = append(relative.Baselines, Baseline{
			Name:   fmt.Sprintf("Average (%.2f%%)", avg),
			Value:  avg,
			Dashed: true,
		})
	} else if !errors.Is(err, stats.ErrEmptyBucket) {
		return nil, err
	}
	charts = append(charts, Chart{Name: "Relative balance", Spec: relative})

	categories, err := stats.CategoriesByMonth(txs, core.Expense)
	if err != nil {
		return nil, err
	}
	stacked := Spec{Kind: StackedArea, XLabels: timeline, YSuffix: currency}
	for _, cat := range categories {
		stacked.Series = append(stacked.Series, Series{Name: cat.Name, Values: cat.ByPeriod.Values()})
	}
	if len(stacked.Series) > 0 {
		charts = append(charts, Chart{Name: "Expenses per category", Spec: stacked})
	}

	averages, err := stats.CategoriesAverageByYear(txs)
	if err != nil {
		return nil, err
	}
	years, err := stats.Years(txs)
	if err != nil {
		return nil, err
	}
	avgSpec := Spec{Kind: StackedArea, XLabels: yearLabels(years), YSuffix: currency}
	for _, cat := range averages {
		avgSpec.Series = append(avgSpec.Series, Series{Name: cat.Name, Values: cat.ByYear.Values()})
	}
	if len(avgSpec.Series) > 0 {
		charts = append(charts, Chart{Name: "Category average monthly expense per year", Spec: avgSpec})
	}

	return charts, nil
}

// CategoryDetails builds one chart per expense category with its
// subcategories stacked per month and the category average as a
// reference line.
func CategoryDetails(txs []core.Transaction, currency string) ([]Chart, error) {
	timeline, err := stats.Months(txs)
	if err != nil {
		return nil, err
	}
	details, err := stats.CategoriesByMonthWithSubcategories(txs, core.Expense)
	if err != nil {
		return nil, err
	}
	totals, err := stats.CategoriesByMonth(txs, core.Expense)
	if err != nil {
		return nil, err
	}
	totalByName := make(map[string]stats.Series, len(totals))
	for _, cat := range totals {
		totalByName[cat.Name] = cat.ByPeriod
	}

	charts := make([]Chart, 0, len(details))
	for _, cat := range details {
		spec := Spec{Kind: StackedArea, XLabels: timeline, YSuffix: currency}
		for _, sub := range cat.Subcategories {
			spec.Series = append(spec.Series, Series{Name: sub.Name, Values: sub.ByPeriod.Values()})
		}
		if avg, err := stats.Average(totalByName[cat.Name]); err == nil {
			spec.Baselines = append(spec.Baselines, Baseline{
				Name:   fmt.Sprintf("Average (%.2f%s)", avg, currency),
				Value:  avg,
				Dashed: true,
			})
		} else if !errors.Is(err, stats.ErrEmptyBucket) {
			return nil, err
		}
		charts = append(charts, Chart{Name: cat.Name, Spec: spec})
	}
	return charts, nil
}

// CategoryYearAverages builds one chart per expense category with the
// average monthly expense of its subcategories stacked per year.
func CategoryYearAverages(txs []core.Transaction, currency string) ([]Chart, error) {
	averages, err := stats.CategoriesAverageByYearWithSubcategories(txs)
	if err != nil {
		return nil, err
	}
	years, err := stats.Years(txs)
	if err != nil {
		return nil, err
	}
	labels := yearLabels(years)

	charts := make([]Chart, 0, len(averages))
	for _, cat := range averages {
		spec := Spec{Kind: StackedArea, XLabels: labels, YSuffix: currency}
		for _, sub := range cat.Subcategories {
			spec.Series = append(spec.Series, Series{Name: sub.Name, Values: sub.ByYear.Values()})
		}
		charts = append(charts, Chart{Name: cat.Name, Spec: spec})
	}
	return charts, nil
}

// withTrends interleaves each series with its smoothed companion.
func withTrends(weight float64, series ...Series) []Series {
	out := make([]Series, 0, len(series)*2)
	for _, s := range series {
		out = append(out, s)
		out = append(out, Series{
			Name:   s.Name + " trend",
			Values: stats.Smooth(s.Values, weight),
			Trend:  true,
		})
	}
	return out
}

func yearLabels(years []int) []string {
	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = fmt.Sprintf("%d", y)
	}
	return labels
}
