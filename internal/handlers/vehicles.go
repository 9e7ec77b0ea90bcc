package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

// VehicleHandler handles vehicle registry requests.
type VehicleHandler struct {
	store store.Store
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(s store.Store) *VehicleHandler {
	return &VehicleHandler{store: s}
}

// List returns all registered vehicles.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.store.Vehicles(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list vehicles")
		http.Error(w, "Failed to list vehicles", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// Save creates or updates a vehicle.
func (h *VehicleHandler) Save(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if !readJSON(w, r, &vehicle) {
		return
	}
	if err := vehicle.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created := vehicle.ID == ""
	if created {
		vehicle.ID = uuid.NewString()
	}
	if err := h.store.SaveVehicle(r.Context(), vehicle); err != nil {
		log.WithError(err).Error("Failed to save vehicle")
		http.Error(w, "Failed to save vehicle", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, vehicle)
}

// Delete removes a vehicle from the registry.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.store.DeleteVehicle(r.Context(), id); err != nil {
		if err == store.ErrNotFound {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete vehicle")
		http.Error(w, "Failed to delete vehicle", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Lookup finds a vehicle by plate or asset code, used by the checklist form
// after a plate scan or QR read.
func (h *VehicleHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	plate := r.URL.Query().Get("plate")
	code := r.URL.Query().Get("code")
	if plate == "" && code == "" {
		http.Error(w, "plate or code query parameter is required", http.StatusBadRequest)
		return
	}

	var vehicle *models.Vehicle
	var err error
	if plate != "" {
		vehicle, err = h.store.VehicleByPlate(r.Context(), plate)
	} else {
		vehicle, err = h.store.VehicleByCode(r.Context(), code)
	}
	if err != nil {
		if err == store.ErrNotFound {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to look up vehicle")
		http.Error(w, "Failed to look up vehicle", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}
