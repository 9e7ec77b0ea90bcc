package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/session"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

// CollaboratorHandler handles the driver/staff directory.
type CollaboratorHandler struct {
	store    store.Store
	sessions *session.Service
}

// NewCollaboratorHandler creates a new collaborator handler.
func NewCollaboratorHandler(s store.Store, sessions *session.Service) *CollaboratorHandler {
	return &CollaboratorHandler{store: s, sessions: sessions}
}

// List returns all collaborators with password hashes blanked out.
func (h *CollaboratorHandler) List(w http.ResponseWriter, r *http.Request) {
	collaborators, err := h.store.Collaborators(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list collaborators")
		http.Error(w, "Failed to list collaborators", http.StatusInternalServerError)
		return
	}
	for i := range collaborators {
		collaborators[i].Password = ""
	}
	writeJSON(w, http.StatusOK, collaborators)
}

// Save creates or updates a collaborator. A plaintext password in the payload
// is bcrypt-hashed before persistence; an empty one keeps the stored hash.
func (h *CollaboratorHandler) Save(w http.ResponseWriter, r *http.Request) {
	var c models.Collaborator
	if !readJSON(w, r, &c) {
		return
	}
	if err := c.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.store.AccessGroupByID(r.Context(), c.Group); err != nil {
		if err == store.ErrNotFound {
			http.Error(w, "Unknown access group", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to check access group")
		http.Error(w, "Failed to save collaborator", http.StatusInternalServerError)
		return
	}

	if strings.TrimSpace(c.Password) != "" {
		hash, err := h.sessions.HashPassword(c.Password)
		if err != nil {
			log.WithError(err).Error("Failed to hash password")
			http.Error(w, "Failed to save collaborator", http.StatusInternalServerError)
			return
		}
		c.Password = hash
	} else if c.ID != "" {
		// Keep the existing hash when editing without a new password.
		existing, err := h.store.Collaborators(r.Context())
		if err == nil {
			for _, have := range existing {
				if have.ID == c.ID {
					c.Password = have.Password
					break
				}
			}
		}
	}

	created := c.ID == ""
	if created {
		c.ID = uuid.NewString()
	}
	if err := h.store.SaveCollaborator(r.Context(), c); err != nil {
		log.WithError(err).Error("Failed to save collaborator")
		http.Error(w, "Failed to save collaborator", http.StatusInternalServerError)
		return
	}

	c.Password = ""
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, c)
}

// Delete removes a collaborator.
func (h *CollaboratorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.store.DeleteCollaborator(r.Context(), id); err != nil {
		if err == store.ErrNotFound {
			http.Error(w, "Collaborator not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete collaborator")
		http.Error(w, "Failed to delete collaborator", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
