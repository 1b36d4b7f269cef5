package dto

// Backup Response DTOs

// ImportBackupResponse reports what an accepted backup file replaced
type ImportBackupResponse struct {
	Message            string `json:"message"`
	ExpensesImported   int    `json:"expensesImported"`
	BudgetsImported    int    `json:"budgetsImported"`
	CategoriesImported int    `json:"categoriesImported"`
}
