// Package sqlite reads transactions from an exported SQLite database.
// The database is opened read-only: the report never writes anything back.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"finreport/internal/core"
)

// DateLayout is the ISO date format stored in the transactions table.
const DateLayout = "2006-01-02"

var ErrNoTransactions = errors.New("no transactions found in database")

// Source reads the transactions table of an export database.
type Source struct {
	db *sql.DB
}

func New(dbPath string) (*Source, error) {
	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Source{db: db}, nil
}

func (s *Source) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Read loads every row of the transactions table. Optional columns may be
// NULL; the date is stored as an ISO yyyy-mm-dd string.
func (s *Source) Read(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, description, value, category, subcategory, account, wallet, tags
		FROM transactions
		ORDER BY date, description`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			dateStr, description, category string
			value                          float64
			subcategory, account           sql.NullString
			wallet, tags                   sql.NullString
		)
		if err := rows.Scan(&dateStr, &description, &value, &category, &subcategory, &account, &wallet, &tags); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		date, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", dateStr, err)
		}
		tx := core.Transaction{
			Date:        core.NewDate(date.Year(), int(date.Month()), date.Day()),
			Description: description,
			Value:       value,
			Category:    category,
			Subcategory: subcategory.String,
			Account:     account.String,
			Wallet:      wallet.String,
			Tags:        tags.String,
		}
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("transaction %q on %s: %w", description, dateStr, err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	if len(txs) == 0 {
		return nil, ErrNoTransactions
	}
	return txs, nil
}
