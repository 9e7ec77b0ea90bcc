package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

// MaintenanceHandler handles service order (O.S.) requests.
type MaintenanceHandler struct {
	store store.Store
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(s store.Store) *MaintenanceHandler {
	return &MaintenanceHandler{store: s}
}

// List returns all service orders, newest first.
func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.store.Maintenances(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list maintenance records")
		http.Error(w, "Failed to list maintenance records", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// Save creates or updates a service order. The total cost is recomputed from
// parts and labor on every save.
func (h *MaintenanceHandler) Save(w http.ResponseWriter, r *http.Request) {
	var rec models.MaintenanceRecord
	if !readJSON(w, r, &rec) {
		return
	}
	if err := rec.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created := rec.ID == ""
	if created {
		rec.ID = uuid.NewString()
	}
	if err := h.store.SaveMaintenance(r.Context(), rec); err != nil {
		log.WithError(err).Error("Failed to save maintenance record")
		http.Error(w, "Failed to save maintenance record", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, rec)
}

// Delete removes a service order.
func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.store.DeleteMaintenance(r.Context(), id); err != nil {
		if err == store.ErrNotFound {
			http.Error(w, "Maintenance record not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete maintenance record")
		http.Error(w, "Failed to delete maintenance record", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
