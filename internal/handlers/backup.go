package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/backup"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

// BackupHandler exposes whole-store snapshot and restore.
type BackupHandler struct {
	store store.Store
}

// NewBackupHandler creates a new backup handler.
func NewBackupHandler(s store.Store) *BackupHandler {
	return &BackupHandler{store: s}
}

// Snapshot returns a full point-in-time copy of every collection.
func (h *BackupHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	b, err := backup.Snapshot(r.Context(), h.store)
	if err != nil {
		log.WithError(err).Error("Failed to create backup")
		http.Error(w, "Failed to create backup", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename=fleet_backup.json")
	writeJSON(w, http.StatusOK, b)
}

// Restore replaces the store's collections with the uploaded backup. A backup
// that fails validation changes nothing and is reported as one error.
func (h *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var b models.BackupData
	if !readJSON(w, r, &b) {
		return
	}

	if err := backup.Restore(r.Context(), h.store, &b); err != nil {
		switch err {
		case backup.ErrInvalidBackup, backup.ErrInvalidChecklists:
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to restore backup")
			http.Error(w, "Failed to restore backup", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}
