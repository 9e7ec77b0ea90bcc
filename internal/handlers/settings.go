package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

// SettingsHandler handles the configurable lookup lists (units, sectors,
// suppliers, job titles).
type SettingsHandler struct {
	store store.Store
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(s store.Store) *SettingsHandler {
	return &SettingsHandler{store: s}
}

// List returns system settings, optionally restricted to one type and then
// sorted by name.
func (h *SettingsHandler) List(w http.ResponseWriter, r *http.Request) {
	if t := r.URL.Query().Get("type"); t != "" {
		settingType := models.SystemSettingType(t)
		if !models.IsValidSettingType(settingType) {
			http.Error(w, "Invalid setting type", http.StatusBadRequest)
			return
		}
		items, err := h.store.SettingsByType(r.Context(), settingType)
		if err != nil {
			log.WithError(err).Error("Failed to list settings")
			http.Error(w, "Failed to list settings", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
		return
	}

	items, err := h.store.SystemSettings(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list settings")
		http.Error(w, "Failed to list settings", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Save creates or updates one lookup item.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var item models.SystemSettingItem
	if !readJSON(w, r, &item) {
		return
	}
	if err := item.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created := item.ID == ""
	if created {
		item.ID = uuid.NewString()
	}
	if err := h.store.SaveSystemSetting(r.Context(), item); err != nil {
		log.WithError(err).Error("Failed to save setting")
		http.Error(w, "Failed to save setting", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, item)
}

// Delete removes one lookup item.
func (h *SettingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.store.DeleteSystemSetting(r.Context(), id); err != nil {
		if err == store.ErrNotFound {
			http.Error(w, "Setting not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete setting")
		http.Error(w, "Failed to delete setting", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
