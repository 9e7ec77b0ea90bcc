package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

// ChecklistHandler handles inspection checklist submission and history.
// Checklists are append-only: there is no update or delete.
type ChecklistHandler struct {
	store store.Store
}

// NewChecklistHandler creates a new checklist handler.
func NewChecklistHandler(s store.Store) *ChecklistHandler {
	return &ChecklistHandler{store: s}
}

// List returns the full checklist history, newest first.
func (h *ChecklistHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.store.Checklists(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list checklists")
		http.Error(w, "Failed to list checklists", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// Create records a completed inspection. Saving it also updates the registry
// status of the inspected vehicle.
func (h *ChecklistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var rec models.ChecklistRecord
	if !readJSON(w, r, &rec) {
		return
	}
	if rec.Date == "" {
		rec.Date = time.Now().Format(time.RFC3339)
	}
	if rec.RecordType == "" {
		rec.RecordType = models.RecordChecklist
	}
	if err := rec.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	for id := range rec.Items {
		if !models.KnownChecklistItem(id) {
			http.Error(w, "unknown checklist item: "+id, http.StatusBadRequest)
			return
		}
	}

	rec.ID = uuid.NewString()
	if err := h.store.SaveChecklist(r.Context(), rec); err != nil {
		log.WithError(err).Error("Failed to save checklist")
		http.Error(w, "Failed to save checklist", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// Schema returns the built-in inspection schema and photo slots so clients
// render the same checklist the evaluator understands.
func (h *ChecklistHandler) Schema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories":     models.ChecklistSchema,
		"requiredPhotos": models.RequiredPhotos(),
	})
}
