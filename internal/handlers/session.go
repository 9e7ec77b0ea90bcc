package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/session"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

// SessionHandler issues tokens for the simulated access role.
type SessionHandler struct {
	store    store.Store
	sessions *session.Service
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(s store.Store, sessions *session.Service) *SessionHandler {
	return &SessionHandler{store: s, sessions: sessions}
}

// IssueRequest selects the access group to simulate.
type IssueRequest struct {
	Role string `json:"role"`
}

// IssueResponse carries the signed session token and its permissions.
type IssueResponse struct {
	Token       string   `json:"token"`
	Role        string   `json:"role"`
	RoleName    string   `json:"roleName"`
	Permissions []string `json:"permissions"`
}

// Issue switches the simulated role and returns a token for it. The selected
// role is also persisted so the next session starts from it.
func (h *SessionHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req IssueRequest
	if !readJSON(w, r, &req) {
		return
	}

	role := req.Role
	if role == "" {
		persisted, err := h.store.UserRole(r.Context())
		if err != nil {
			log.WithError(err).Error("Failed to read current role")
			http.Error(w, "Failed to read current role", http.StatusInternalServerError)
			return
		}
		role = persisted
	}

	group, err := h.store.AccessGroupByID(r.Context(), role)
	if err != nil {
		if err == store.ErrNotFound {
			http.Error(w, "Unknown access group", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to read access group")
		http.Error(w, "Failed to read access group", http.StatusInternalServerError)
		return
	}

	token, err := h.sessions.Issue(group)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		http.Error(w, "Failed to issue session token", http.StatusInternalServerError)
		return
	}

	if err := h.store.SetUserRole(r.Context(), group.ID); err != nil {
		log.WithError(err).Warn("Failed to persist selected role")
	}

	perms := make([]string, len(group.Permissions))
	for i, p := range group.Permissions {
		perms[i] = string(p)
	}
	writeJSON(w, http.StatusOK, IssueResponse{
		Token:       token,
		Role:        group.ID,
		RoleName:    group.Name,
		Permissions: perms,
	})
}

// Health reports service liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
