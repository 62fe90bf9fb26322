package log

// Common field names for structured logging
const (
	FieldComponent    = "component"
	FieldError        = "error"
	FieldBackend      = "backend"
	FieldFile         = "file"
	FieldLine         = "line"
	FieldTransactions = "transactions"
	FieldDuplicates   = "duplicates"
	FieldCategories   = "categories"
	FieldCharts       = "charts"
	FieldReportPath   = "report_path"
	FieldDuration     = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentSource = "source"
	ComponentStats  = "stats"
	ComponentCharts = "charts"
	ComponentReport = "report"
)
