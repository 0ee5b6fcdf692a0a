package http

import (
	"encoding/json"
	"net/http"

	"github.com/worksite-labs/timeclock-backend-go/internal/handler/http/response"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/backup"
)

type BackupHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Restore(w http.ResponseWriter, r *http.Request)
}

type backupHandlerImpl struct {
	backupService *backup.Service
}

func NewBackupHandler(backupService *backup.Service) BackupHandler {
	return &backupHandlerImpl{
		backupService: backupService,
	}
}

// Create implements BackupHandler.
func (h *backupHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	b, err := h.backupService.Create(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Backup created", b)
}

// List implements BackupHandler.
func (h *backupHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	backups, err := h.backupService.List()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if backups == nil {
		backups = []backup.Backup{}
	}
	response.Success(w, backups)
}

// Restore implements BackupHandler.
func (h *backupHandlerImpl) Restore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "name is required", nil)
		return
	}

	if err := h.backupService.Restore(req.Name); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Backup restored; restart the application", nil)
}
