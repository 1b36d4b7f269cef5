package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	apierrors "expense-manager/internal/errors"
	"expense-manager/internal/services"

	"github.com/labstack/echo/v4"
)

// maxBackupBodySize caps the accepted import payload at 10 MiB
const maxBackupBodySize = 10 << 20

// BackupHandler handles data export and import requests
type BackupHandler struct {
	backupService services.BackupServiceInterface
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService services.BackupServiceInterface) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// ExportBackup streams the full data set as a JSON attachment
//
// Method: GET /api/v1/backup/export
//
// Success Response: 200 OK, application/json, Content-Disposition attachment
// with a dated filename
func (h *BackupHandler) ExportBackup(c echo.Context) error {
	backup, err := h.backupService.Export()
	if err != nil {
		return SendSystemError(c, err)
	}

	filename := fmt.Sprintf("expense_backup_%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.JSON(http.StatusOK, backup)
}

// ImportBackup restores the data set from an uploaded JSON bundle. The file
// is fully validated before anything is written; a rejected file leaves the
// stored data untouched.
//
// Method: POST /api/v1/backup/import
//
// Request body: a previously exported backup file
//
// Success Response: 200 OK with per-collection import counts
//
// Error Responses:
//   - 400: BACKUP_001 - Malformed or invalid backup file
//   - 500: BACKUP_002 - Import failed while writing
func (h *BackupHandler) ImportBackup(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBackupBodySize))
	if err != nil {
		return SendError(c, apierrors.BackupMalformedFile, apierrors.WithDetails("Could not read request body"))
	}

	result, err := h.backupService.Import(body)
	if err != nil {
		if errors.Is(err, services.ErrMalformedBackup) {
			return SendError(c, apierrors.BackupMalformedFile, apierrors.WithDetails(err.Error()))
		}
		return SendError(c, apierrors.BackupImportFailed, apierrors.WithDetails(err.Error()))
	}

	slog.Info("backup imported",
		"client_ip", getClientIP(c),
		"expenses", result.ExpensesImported,
		"budgets", result.BudgetsImported,
		"categories", result.CategoriesImported)

	return c.JSON(http.StatusOK, result)
}
