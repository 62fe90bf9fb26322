// Package report assembles the rendered charts and the yearly summary
// table into a single self-contained HTML file.
package report

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"finreport/internal/charts"
	"finreport/internal/stats"
)

//go:embed templates/report.html
var templatesFS embed.FS

type (
	// Graph is one chart ready for template insertion.
	Graph struct {
		Name   string
		Markup template.HTML
	}

	// TableRow is one line of the yearly expense table; subcategory rows
	// are indented under their category.
	TableRow struct {
		Name    string
		Indent  bool
		Total   float64
		PerYear []float64
	}

	// Data is everything the report template needs.
	Data struct {
		Title            string
		Currency         string
		GeneratedAt      string
		Overview         []Graph
		CategoryDetails  []Graph
		CategoryAverages []Graph
		Years            []int
		TotalRow         TableRow
		Rows             []TableRow
	}

	Generator struct {
		tmpl *template.Template
	}
)

func New() (*Generator, error) {
	tmpl, err := template.New("report.html").Funcs(template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}).ParseFS(templatesFS, "templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &Generator{tmpl: tmpl}, nil
}

// Write renders the report and saves it as <outDir>/<yyyy-mm-dd>-report.html,
// returning the path of the written file.
func (g *Generator) Write(outDir string, data Data) (string, error) {
	if data.GeneratedAt == "" {
		data.GeneratedAt = time.Now().Format("2006-01-02")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute report template: %w", err)
	}

	path := filepath.Join(outDir, data.GeneratedAt+"-report.html")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// Graphs converts rendered charts into template-ready markup. SVG is
// inlined as-is; PNG becomes a data-URI image so the report stays a
// single file either way.
func Graphs(rendered []charts.Rendered) []Graph {
	graphs := make([]Graph, len(rendered))
	for i, r := range rendered {
		var markup template.HTML
		if r.Format == charts.PNG {
			markup = template.HTML(fmt.Sprintf(
				`<img alt="%s" src="data:image/png;base64,%s"/>`,
				template.HTMLEscapeString(r.Name),
				base64.StdEncoding.EncodeToString(r.Data),
			))
		} else {
			markup = template.HTML(r.Data)
		}
		graphs[i] = Graph{Name: r.Name, Markup: markup}
	}
	return graphs
}

// Table flattens the yearly breakdown into display rows: one per
// category, with its subcategories indented below, all against the same
// year columns.
func Table(breakdown stats.YearBreakdown, years []int) (TableRow, []TableRow) {
	total := TableRow{Name: "Total", Total: breakdown.Total, PerYear: perYear(breakdown.ByYear, years)}

	var rows []TableRow
	for _, cat := range breakdown.Categories {
		rows = append(rows, TableRow{
			Name:    cat.Name,
			Total:   cat.Total,
			PerYear: perYear(cat.ByYear, years),
		})
		for _, sub := range cat.Subcategories {
			rows = append(rows, TableRow{
				Name:    sub.Name,
				Indent:  true,
				Total:   sub.Total,
				PerYear: perYear(sub.ByYear, years),
			})
		}
	}
	return total, rows
}

func perYear(ys stats.YearSeries, years []int) []float64 {
	values := make([]float64, len(years))
	for i, year := range years {
		values[i] = ys[year]
	}
	return values
}
