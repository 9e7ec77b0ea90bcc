package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

// GroupHandler handles access group administration.
type GroupHandler struct {
	store store.Store
}

// NewGroupHandler creates a new access group handler.
func NewGroupHandler(s store.Store) *GroupHandler {
	return &GroupHandler{store: s}
}

// List returns all access groups, seeding the defaults on first use.
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.store.AccessGroups(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list access groups")
		http.Error(w, "Failed to list access groups", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// Save creates or updates an access group.
func (h *GroupHandler) Save(w http.ResponseWriter, r *http.Request) {
	var g models.AccessGroup
	if !readJSON(w, r, &g) {
		return
	}
	if strings.TrimSpace(g.Name) == "" {
		http.Error(w, "group name is required", http.StatusBadRequest)
		return
	}
	for _, p := range g.Permissions {
		if !models.IsValidPermission(p) {
			http.Error(w, "unknown permission: "+string(p), http.StatusBadRequest)
			return
		}
	}

	created := g.ID == ""
	if created {
		g.ID = uuid.NewString()
	}
	if err := h.store.SaveAccessGroup(r.Context(), g); err != nil {
		log.WithError(err).Error("Failed to save access group")
		http.Error(w, "Failed to save access group", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, g)
}

// Delete removes an access group. System groups are protected and refuse
// deletion.
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.store.DeleteAccessGroup(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, store.ErrSystemGroup):
			http.Error(w, "System groups cannot be deleted", http.StatusForbidden)
		case errors.Is(err, store.ErrNotFound):
			http.Error(w, "Access group not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to delete access group")
			http.Error(w, "Failed to delete access group", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
