package core

import "fmt"

// Dedupe removes exact duplicates from a list of transactions, keeping the
// first occurrence of each. Two transactions are duplicates when they share
// date, description, value and category. This protects against overlapping
// exports: the same month can show up in more than one input file.
//
// The input slice is left untouched; the second return value is the number
// of duplicates that were dropped.
func Dedupe(txs []Transaction) ([]Transaction, int) {
	seen := make(map[string]bool, len(txs))
	unique := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		key := fmt.Sprintf("%s|%s|%g|%s",
			t.Date.Format("2006-01-02"), t.Description, t.Value, t.Category)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, t)
	}
	return unique, len(txs) - len(unique)
}
