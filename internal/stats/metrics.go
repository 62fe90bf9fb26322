package stats

import "finreport/internal/core"

// Balance returns income minus expenses per month. Both sides are
// zero-filled against the same timeline before combining, so the result
// covers every month of the dataset.
func Balance(txs []core.Transaction) (Series, error) {
	expenses, err := TotalsByMonth(txs, core.Expense)
	if err != nil {
		return nil, err
	}
	income, err := TotalsByMonth(txs, core.Income)
	if err != nil {
		return nil, err
	}
	return Combine(income, expenses, func(in, out float64) float64 {
		return in - out
	})
}

// BalancePercentage returns the per-month balance as a percentage of that
// month's income. Months with no income report 0 rather than failing:
// a zero-income month is expected at the data boundary, not an error.
func BalancePercentage(txs []core.Transaction) (Series, error) {
	expenses, err := TotalsByMonth(txs, core.Expense)
	if err != nil {
		return nil, err
	}
	income, err := TotalsByMonth(txs, core.Income)
	if err != nil {
		return nil, err
	}
	return Combine(income, expenses, func(in, out float64) float64 {
		if in == 0 {
			return 0
		}
		return (in - out) / in * 100
	})
}

// Average returns the arithmetic mean of the series values. Unlike the
// zero-income policy of BalancePercentage, an empty series here is a
// programming error and fails with ErrEmptyBucket.
func Average(s Series) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyBucket
	}
	return s.Total() / float64(len(s)), nil
}

// Smooth applies exponential smoothing to a sequence of values. The first
// value is kept as-is and each following one is pulled towards its
// predecessor by the given weight:
//
//	smoothed[i] = weight*smoothed[i-1] + (1-weight)*values[i]
//
// A weight of 0 returns the input unchanged, a weight of 1 a flat line.
func Smooth(values []float64, weight float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	smoothed := make([]float64, len(values))
	smoothed[0] = values[0]
	last := values[0]
	for i, v := range values[1:] {
		last = last*weight + (1-weight)*v
		smoothed[i+1] = last
	}
	return smoothed
}
