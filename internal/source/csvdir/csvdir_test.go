package csvdir

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf16"

	"finreport/internal/core"
)

const sampleCSV = `"Date";"Description";"Value";"Account";"Category";"Subcategory";"Tags"
15/01/2022;Coffee at the corner;-2,50;Checking;Food;Coffee;
20/01/2022;Rent january;-600;Checking;Flat;Rent;
10/02/2022;Salary february;1500.00;Checking;Salary;;
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// utf16le encodes a string as little-endian UTF-16 with a BOM, the way
// the money-tracking app exports its CSVs.
func utf16le(s string) []byte {
	codes := append([]uint16{0xFEFF}, utf16.Encode([]rune(s))...)
	out := make([]byte, 0, len(codes)*2)
	for _, c := range codes {
		out = append(out, byte(c), byte(c>>8))
	}
	return out
}

func TestReadParsesRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "export.csv", sampleCSV)

	txs, err := New(dir).Read(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}

	coffee := txs[0]
	if coffee.Date != core.NewDate(2022, 1, 15) {
		t.Fatalf("date wrong: %v", coffee.Date)
	}
	if coffee.Value != -2.5 || coffee.Kind() != core.Expense {
		t.Fatalf("value/kind wrong: %v %s", coffee.Value, coffee.Kind())
	}
	if coffee.Category != "Food" || coffee.Subcategory != "Coffee" || coffee.Account != "Checking" {
		t.Fatalf("fields wrong: %+v", coffee)
	}

	salary := txs[2]
	if salary.Kind() != core.Income || salary.Value != 1500 {
		t.Fatalf("salary wrong: %+v", salary)
	}
	if salary.Subcategory != "" {
		t.Fatalf("expected empty subcategory, got %q", salary.Subcategory)
	}
}

func TestReadUTF16Export(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "export.csv"), utf16le(sampleCSV), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	txs, err := New(dir).Read(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}
	if txs[0].Description != "Coffee at the corner" {
		t.Fatalf("description garbled: %q", txs[0].Description)
	}
}

func TestReadMergesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "Date;Description;Value;Category\n01/01/2022;One;-1;Misc\n")
	writeFile(t, dir, "b.csv", "Date;Description;Value;Category\n02/01/2022;Two;-2;Misc\n")
	writeFile(t, dir, "notes.txt", "not a csv")

	txs, err := New(dir).Read(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
}

func TestReadColumnOrderIndependent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "export.csv", "Value;Category;Date;Description\n-5;Food;03/04/2022;Sandwich\n")

	txs, err := New(dir).Read(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txs[0].Value != -5 || txs[0].Date != core.NewDate(2022, 4, 3) {
		t.Fatalf("columns mismatched: %+v", txs[0])
	}
}

func TestReadNoFiles(t *testing.T) {
	if _, err := New(t.TempDir()).Read(context.Background()); !errors.Is(err, ErrNoFiles) {
		t.Fatalf("expected ErrNoFiles, got %v", err)
	}
}

func TestReadNoTransactions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.csv", "Date;Description;Value;Category\n")
	if _, err := New(dir).Read(context.Background()); !errors.Is(err, ErrNoTransactions) {
		t.Fatalf("expected ErrNoTransactions, got %v", err)
	}
}

func TestReadMissingColumns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.csv", "Date;Description\n01/01/2022;Broken\n")
	_, err := New(dir).Read(context.Background())
	if err == nil || !strings.Contains(err.Error(), "missing columns") {
		t.Fatalf("expected missing-columns error, got %v", err)
	}
}

func TestReadBadRowCarriesFileAndLine(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.csv", "Date;Description;Value;Category\n01/01/2022;Ok;-1;Misc\n31/13/2022;Bad month;-1;Misc\n")
	_, err := New(dir).Read(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "bad.csv") || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error lacks location: %v", err)
	}
}

func TestReadCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "Date;Description;Value;Category\n01/01/2022;One;-1;Misc\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(dir).Read(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
