package models

import "time"

// Backup is the export/import bundle for the three persisted collections.
// Import applies each present slice wholesale, overwriting the corresponding
// collection; a nil slice means the collection is left untouched.
type Backup struct {
	Expenses   []Expense  `json:"expenses"`
	Budgets    []Budget   `json:"budgets"`
	Categories []Category `json:"categories"`
	ExportDate time.Time  `json:"exportDate"`
}
