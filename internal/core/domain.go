package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Expense Kind = "EXPENSE"
	Income  Kind = "INCOME"
)

type (
	// Kind tells income and expense transactions apart. It is derived
	// from the sign of the transaction value and never stored.
	Kind string

	Date struct {
		time.Time
	}

	// Transaction is a single validated record from a bank export.
	// Account, Wallet and Tags are carried through from the export but
	// take no part in any aggregation.
	Transaction struct {
		Date        Date
		Description string
		Value       float64
		Category    string
		Subcategory string
		Account     string
		Wallet      string
		Tags        string
	}
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category")
)

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month as 1-12
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

// Before reports whether d falls before other
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d falls after other
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Kind returns Expense when the value is negative and Income otherwise.
// Deriving it from the sign makes it impossible to hold a transaction
// whose kind disagrees with its value.
func (t Transaction) Kind() Kind {
	if t.Value < 0 {
		return Expense
	}
	return Income
}

// Amount returns the unsigned magnitude of the transaction value.
// Aggregation buckets accumulate amounts, not signed values.
func (t Transaction) Amount() float64 {
	if t.Value < 0 {
		return -t.Value
	}
	return t.Value
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}
