package core

import "testing"

func TestDedupe(t *testing.T) {
	coffee := Transaction{Date: NewDate(2022, 1, 15), Description: "Coffee", Value: -2.5, Category: "Food"}
	txs := []Transaction{
		coffee,
		{Date: NewDate(2022, 1, 20), Description: "Rent", Value: -600, Category: "Flat"},
		coffee, // exact duplicate from an overlapping export
	}

	unique, removed := Dedupe(txs)
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if len(unique) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(unique))
	}
	if unique[0].Description != "Coffee" || unique[1].Description != "Rent" {
		t.Fatalf("order not preserved: %v", unique)
	}
}

func TestDedupeKeepsNearDuplicates(t *testing.T) {
	base := Transaction{Date: NewDate(2022, 1, 15), Description: "Coffee", Value: -2.5, Category: "Food"}
	differentValue := base
	differentValue.Value = -3.5
	differentDay := base
	differentDay.Date = NewDate(2022, 1, 16)

	unique, removed := Dedupe([]Transaction{base, differentValue, differentDay})
	if removed != 0 {
		t.Fatalf("expected no removals, got %d", removed)
	}
	if len(unique) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(unique))
	}
}

func TestDedupeEmpty(t *testing.T) {
	unique, removed := Dedupe(nil)
	if len(unique) != 0 || removed != 0 {
		t.Fatalf("expected empty result, got %v (%d removed)", unique, removed)
	}
}
