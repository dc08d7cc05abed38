package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"kampala_finance_backend/internal/services"
	"kampala_finance_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BackupHandler exposes export, import, backup and restore of the whole document.
type BackupHandler struct {
	backupService services.BackupService
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(bs services.BackupService) *BackupHandler {
	return &BackupHandler{backupService: bs}
}

func attachment(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// ExportData returns the document as indented JSON.
func (h *BackupHandler) ExportData(c *gin.Context) {
	text, err := h.backupService.ExportData(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "export data")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(text))
}

// DownloadBackup serves a timestamped backup as a file download.
func (h *BackupHandler) DownloadBackup(c *gin.Context) {
	backup, err := h.backupService.CreateBackup(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "create backup")
		return
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		respondStoreError(c, err, "create backup")
		return
	}
	attachment(c, services.BackupFilename(backup.BackedUpAt), data)
}

// ImportData replaces the document with the request body.
func (h *BackupHandler) ImportData(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if err := h.backupService.ImportData(c.Request.Context(), string(body)); err != nil {
		respondStoreError(c, err, "import data")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Data imported successfully."})
}

// RestoreBackup replaces the document with the backup in the request body.
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if err := h.backupService.RestoreBackup(c.Request.Context(), body); err != nil {
		respondStoreError(c, err, "restore backup")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Backup restored successfully."})
}
