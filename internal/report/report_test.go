package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"finreport/internal/charts"
	"finreport/internal/stats"
)

func sampleBreakdown() stats.YearBreakdown {
	return stats.YearBreakdown{
		Total:  370,
		ByYear: stats.YearSeries{2021: 150, 2022: 220},
		Categories: []stats.CategoryAggregate{
			{
				Name:   "Flat",
				Total:  320,
				ByYear: stats.YearSeries{2021: 100, 2022: 220},
				Subcategories: []stats.SubcategoryAggregate{
					{Name: "Rent", Total: 300, ByYear: stats.YearSeries{2021: 100, 2022: 200}},
					{Name: "Electricity", Total: 20, ByYear: stats.YearSeries{2022: 20}},
				},
			},
			{
				Name:   "Food",
				Total:  50,
				ByYear: stats.YearSeries{2021: 50},
			},
		},
	}
}

func TestTable(t *testing.T) {
	total, rows := Table(sampleBreakdown(), []int{2021, 2022})

	if total.Name != "Total" || total.Total != 370 {
		t.Fatalf("total row wrong: %+v", total)
	}
	if len(total.PerYear) != 2 || total.PerYear[0] != 150 || total.PerYear[1] != 220 {
		t.Fatalf("total per-year wrong: %+v", total.PerYear)
	}

	wantNames := []string{"Flat", "Rent", "Electricity", "Food"}
	if len(rows) != len(wantNames) {
		t.Fatalf("expected %d rows, got %d", len(wantNames), len(rows))
	}
	for i, want := range wantNames {
		if rows[i].Name != want {
			t.Fatalf("row %d: got %q, want %q", i, rows[i].Name, want)
		}
	}
	if rows[0].Indent || !rows[1].Indent || !rows[2].Indent || rows[3].Indent {
		t.Fatalf("indentation wrong: %+v", rows)
	}
	// A year without data for the subcategory renders as zero.
	if rows[2].PerYear[0] != 0 || rows[2].PerYear[1] != 20 {
		t.Fatalf("electricity per-year wrong: %+v", rows[2].PerYear)
	}
}

func TestGraphs(t *testing.T) {
	rendered := []charts.Rendered{
		{Name: "Balance", Format: charts.SVG, Data: []byte("<svg>balance</svg>")},
		{Name: "Income", Format: charts.PNG, Data: []byte{0x89, 'P', 'N', 'G'}},
	}
	graphs := Graphs(rendered)
	if len(graphs) != 2 {
		t.Fatalf("expected 2 graphs, got %d", len(graphs))
	}
	if string(graphs[0].Markup) != "<svg>balance</svg>" {
		t.Fatalf("svg not inlined: %q", graphs[0].Markup)
	}
	if !strings.Contains(string(graphs[1].Markup), "data:image/png;base64,") {
		t.Fatalf("png not embedded: %q", graphs[1].Markup)
	}
}

func TestWrite(t *testing.T) {
	gen, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	years := []int{2021, 2022}
	total, rows := Table(sampleBreakdown(), years)
	outDir := filepath.Join(t.TempDir(), "reports")

	path, err := gen.Write(outDir, Data{
		Title:       "Expenses report",
		Currency:    "€",
		GeneratedAt: "2022-03-01",
		Overview: []Graph{
			{Name: "Balance", Markup: "<svg>balance</svg>"},
		},
		Years:    years,
		TotalRow: total,
		Rows:     rows,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "2022-03-01-report.html" {
		t.Fatalf("unexpected file name: %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	html := string(content)
	for _, want := range []string{
		"<title>Expenses report</title>",
		"<svg>balance</svg>",
		"Rent",
		"300.00€",
		"370.00€",
		"Generated on 2022-03-01",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("report missing %q", want)
		}
	}
}
