// Package csvdir reads transactions from every CSV file in a directory.
// Partial exports can sit next to each other: the caller deduplicates
// overlapping rows afterwards.
package csvdir

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"finreport/internal/core"
)

// DateLayout is the day-first date format used by the exports.
const DateLayout = "02/01/2006"

var (
	ErrNoFiles        = errors.New("no csv files found in input directory")
	ErrNoTransactions = errors.New("no transactions found in csv files")
)

// Source reads all *.csv files in a directory.
type Source struct {
	dir string
}

func New(dir string) *Source {
	return &Source{dir: dir}
}

// Read parses every CSV file in the directory into transactions. Files
// use a semicolon separator and a header row; columns are matched by
// header name, not position. Exports may be UTF-8 or UTF-16 (the usual
// app export encoding), detected through the BOM.
func (s *Source) Read(ctx context.Context) ([]core.Transaction, error) {
	files, err := s.files()
	if err != nil {
		return nil, err
	}

	var txs []core.Transaction
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fileTxs, err := readFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(file), err)
		}
		txs = append(txs, fileTxs...)
	}
	if len(txs) == 0 {
		return nil, ErrNoTransactions
	}
	return txs, nil
}

func (s *Source) files() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(s.dir, entry.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, s.dir)
	}
	return files, nil
}

func readFile(path string) ([]core.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// BOMOverride switches to UTF-16 when the file starts with a UTF-16
	// BOM and falls back to plain UTF-8 otherwise.
	decoded := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	reader.Comma = ';'
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var txs []core.Transaction
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		tx, err := cols.parse(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// columns maps header names to field positions. Only the columns the
// aggregation needs are required; the rest are carried along when present.
type columns struct {
	date, description, value, category int
	subcategory, account, wallet, tags int
}

func columnIndex(header []string) (columns, error) {
	cols := columns{
		date: -1, description: -1, value: -1, category: -1,
		subcategory: -1, account: -1, wallet: -1, tags: -1,
	}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Date":
			cols.date = i
		case "Description":
			cols.description = i
		case "Value":
			cols.value = i
		case "Category":
			cols.category = i
		case "Subcategory":
			cols.subcategory = i
		case "Account":
			cols.account = i
		case "Wallet":
			cols.wallet = i
		case "Tags":
			cols.tags = i
		}
	}
	var missing []string
	for _, required := range []struct {
		name string
		idx  int
	}{
		{"Date", cols.date},
		{"Description", cols.description},
		{"Value", cols.value},
		{"Category", cols.category},
	} {
		if required.idx == -1 {
			missing = append(missing, required.name)
		}
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func (c columns) parse(record []string) (core.Transaction, error) {
	get := func(idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	date, err := time.Parse(DateLayout, get(c.date))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse date %q: %w", get(c.date), err)
	}
	value, err := core.ParseValue(get(c.value))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse value %q: %w", get(c.value), err)
	}

	tx := core.Transaction{
		Date:        core.NewDate(date.Year(), int(date.Month()), date.Day()),
		Description: get(c.description),
		Value:       value,
		Category:    get(c.category),
		Subcategory: get(c.subcategory),
		Account:     get(c.account),
		Wallet:      get(c.wallet),
		Tags:        get(c.tags),
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return tx, nil
}
