// Command example-data writes a CSV of random transactions into the
// input directory, so the report can be tried without a real export.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"finreport/internal/cli"
	applog "finreport/internal/log"
	"finreport/internal/source/csvdir"
)

type taxonomy struct {
	name          string
	subcategories []string
}

var categories = []taxonomy{
	{"Car", []string{"Maintenance", "Petrol", "Taxes"}},
	{"Flat", []string{"Rent", "Maintenance", "Electricity"}},
	{"Food", []string{"Supermarket", "Restaurants", "Coffee"}},
	{"Transport", []string{"Train", "Plane", "Bus"}},
}

func main() {
	cli.LoadEnvFile()

	var (
		from = flag.String("from", "2018-01-01", "first day of generated data (yyyy-mm-dd)")
		to   = flag.String("to", "2023-01-01", "day after the last generated one (yyyy-mm-dd)")
		seed = flag.Int64("seed", time.Now().UnixNano(), "random seed, set for reproducible data")
	)
	flag.Parse()

	cfg, err := cli.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	logger := cli.SetupLogger(cfg.LogLevel)

	start, err := time.Parse("2006-01-02", *from)
	if err != nil {
		logger.Error("Invalid -from date", applog.FieldError, err)
		os.Exit(1)
	}
	end, err := time.Parse("2006-01-02", *to)
	if err != nil {
		logger.Error("Invalid -to date", applog.FieldError, err)
		os.Exit(1)
	}
	if !end.After(start) {
		logger.Error("-to must be after -from")
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.InputDir, 0o755); err != nil {
		logger.Error("Cannot create input directory", applog.FieldError, err)
		os.Exit(1)
	}
	path := filepath.Join(cfg.InputDir, "example.csv")
	if err := write(path, start, end, rand.New(rand.NewSource(*seed))); err != nil {
		logger.Error("Cannot write example data", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Example data written", applog.FieldFile, path)
}

// write emits one expense per day plus an income every fifth day.
func write(path string, start, end time.Time, rng *rand.Rand) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString("Date;Description;Value;Account;Category;Subcategory;Tags\n"); err != nil {
		return err
	}
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		cat := categories[rng.Intn(len(categories))]
		sub := cat.subcategories[rng.Intn(len(cat.subcategories))]
		value := -(rng.Float64()*49.99 + 0.01)

		if err := writeRow(f, day, fmt.Sprintf("Expense of %s", day.Format("2006-01-02")), value, cat.name, sub); err != nil {
			return err
		}
		if day.Day()%5 == 0 {
			income := rng.Float64()*199 + 1
			if err := writeRow(f, day, fmt.Sprintf("Income of %s", day.Format("2006-01-02")), income, "Salary", ""); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRow(f *os.File, day time.Time, description string, value float64, category, subcategory string) error {
	_, err := fmt.Fprintf(f, "%s;%s;%.2f;;%s;%s;\n",
		day.Format(csvdir.DateLayout), description, value, category, subcategory)
	return err
}
