package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// maxBackupSize caps the restore request body at 32 MiB.
const maxBackupSize = 32 << 20

// BackupHandler serves full-dataset export and restore.
type BackupHandler struct {
	backupService services.BackupServicer
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(backupService services.BackupServicer) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export streams the entire dataset as a JSON file download.
func (h *BackupHandler) Export(c *gin.Context) {
	raw, err := h.backupService.Export()
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("fintrack_backup_%s.json", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// Restore atomically replaces the dataset with the JSON document in the
// request body. On any failure the prior dataset is left unchanged.
func (h *BackupHandler) Restore(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupSize))
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}

	if err := h.backupService.Restore(raw); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restored": true})
}
