package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldExpenseID   = "expense_id"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldCount       = "count"
	FieldPath        = "path"
	FieldBackend     = "backend"
	FieldMonth       = "month"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentStore   = "store"
	ComponentBackend = "backend"
	ComponentReport  = "report"
)

// Operations defines standard operation names
const (
	OpAdd        = "add"
	OpList       = "list"
	OpSummary    = "summary"
	OpDelete     = "delete"
	OpExport     = "export"
	OpCategories = "categories"
	OpLoad       = "load"
	OpSave       = "save"
)
