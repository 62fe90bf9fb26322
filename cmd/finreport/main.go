package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"finreport/internal/charts"
	"finreport/internal/cli"
	"finreport/internal/config"
	"finreport/internal/core"
	applog "finreport/internal/log"
	"finreport/internal/report"
	"finreport/internal/source"
	"finreport/internal/source/csvdir"
	"finreport/internal/source/sqlite"
	"finreport/internal/stats"
)

func main() {
	cli.LoadEnvFile()

	cfg, err := cli.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	logger := cli.SetupLogger(cfg.LogLevel)

	start := time.Now()
	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("Report run failed", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Report run finished", applog.FieldDuration, time.Since(start).Milliseconds())
}

func run(ctx context.Context, cfg *config.Config, logger *applog.Logger) error {
	src, cleanup, err := newSource(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	txs, err := src.Read(ctx)
	if err != nil {
		return err
	}
	txs, removed := core.Dedupe(txs)
	logger.WithComponent(applog.ComponentSource).Info("Transactions loaded",
		applog.FieldBackend, cfg.DataBackend,
		applog.FieldTransactions, len(txs),
		applog.FieldDuplicates, removed)

	overview, err := charts.Overview(txs, cfg.SmoothWeight, cfg.Currency)
	if err != nil {
		return err
	}
	details, err := charts.CategoryDetails(txs, cfg.Currency)
	if err != nil {
		return err
	}
	averages, err := charts.CategoryYearAverages(txs, cfg.Currency)
	if err != nil {
		return err
	}

	format := charts.Format(cfg.ChartFormat)
	chartLog := logger.WithComponent(applog.ComponentCharts)
	sections := make([][]report.Graph, 3)
	for i, cs := range [][]charts.Chart{overview, details, averages} {
		rendered, err := charts.RenderAll(ctx, cs, format)
		if err != nil {
			return err
		}
		sections[i] = report.Graphs(rendered)
	}
	chartLog.Info("Charts rendered",
		applog.FieldCharts, len(overview)+len(details)+len(averages))

	breakdown, err := stats.ExpensesByYear(txs)
	if err != nil {
		return err
	}
	years, err := stats.Years(txs)
	if err != nil {
		return err
	}
	total, rows := report.Table(breakdown, years)

	gen, err := report.New()
	if err != nil {
		return err
	}
	path, err := gen.Write(cfg.OutputDir, report.Data{
		Title:            cfg.ReportTitle,
		Currency:         cfg.Currency,
		Overview:         sections[0],
		CategoryDetails:  sections[1],
		CategoryAverages: sections[2],
		Years:            years,
		TotalRow:         total,
		Rows:             rows,
	})
	if err != nil {
		return err
	}
	logger.WithComponent(applog.ComponentReport).Info("Report generated",
		applog.FieldReportPath, path,
		applog.FieldCategories, len(breakdown.Categories))
	return nil
}

func newSource(cfg *config.Config) (source.Reader, func(), error) {
	switch cfg.DataBackend {
	case config.BackendSQLite:
		src, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, err
		}
		return src, func() { _ = src.Close() }, nil
	default:
		return csvdir.New(cfg.InputDir), func() {}, nil
	}
}
