package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound      ErrorCode = "EXPENSE_001"
	ExpenseInvalidAmount ErrorCode = "EXPENSE_002"
	ExpenseInvalidID     ErrorCode = "EXPENSE_003"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound      ErrorCode = "BUDGET_001"
	BudgetInvalidPeriod ErrorCode = "BUDGET_002"
	BudgetInvalidID     ErrorCode = "BUDGET_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound  ErrorCode = "CATEGORY_001"
	CategoryInvalidID ErrorCode = "CATEGORY_002"
)

// Report error codes (REPORT_*)
const (
	ReportGenerationInProgress ErrorCode = "REPORT_001"
	ReportInvalidDateRange     ErrorCode = "REPORT_002"
	ReportGenerationFailed     ErrorCode = "REPORT_003"
)

// Backup error codes (BACKUP_*)
const (
	BackupMalformedFile ErrorCode = "BACKUP_001"
	BackupImportFailed  ErrorCode = "BACKUP_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemDatabaseError     ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",

	ExpenseNotFound:      "Expense not found",
	ExpenseInvalidAmount: "Expense amount must be a positive number",
	ExpenseInvalidID:     "Invalid expense ID format",

	BudgetNotFound:      "Budget not found",
	BudgetInvalidPeriod: "Budget period must be daily, weekly, or monthly",
	BudgetInvalidID:     "Invalid budget ID format",

	CategoryNotFound:  "Category not found",
	CategoryInvalidID: "Invalid category ID format",

	ReportGenerationInProgress: "A report is already being generated",
	ReportInvalidDateRange:     "End date cannot be earlier than start date",
	ReportGenerationFailed:     "Failed to generate report",

	BackupMalformedFile: "Invalid backup file format",
	BackupImportFailed:  "Failed to import backup data",

	SystemInternalError:     "An internal error occurred",
	SystemDatabaseError:     "A database error occurred",
	SystemRateLimitExceeded: "Too many requests, please try again later",
}

// GetErrorMessage returns the default message for an error code.
// Unknown codes fall back to the generic internal error message.
func GetErrorMessage(code ErrorCode) string {
	if message, ok := errorMessages[code]; ok {
		return message
	}
	return errorMessages[SystemInternalError]
}
