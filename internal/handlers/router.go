package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/middleware"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/session"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

// NewRouter wires every handler behind the session middleware and the
// permission each route needs.
func NewRouter(s store.Store, sessions *session.Service) *mux.Router {
	m := middleware.NewSessionMiddleware(sessions)

	vehicles := NewVehicleHandler(s)
	collaborators := NewCollaboratorHandler(s, sessions)
	groups := NewGroupHandler(s)
	checklists := NewChecklistHandler(s)
	maintenance := NewMaintenanceHandler(s)
	settings := NewSettingsHandler(s)
	dashboard := NewDashboardHandler(s)
	reports := NewReportHandler(s)
	backups := NewBackupHandler(s)
	sessionHandler := NewSessionHandler(s, sessions)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(m.Authenticate)

	guard := func(p models.Permission, fn http.HandlerFunc) http.Handler {
		return m.RequirePermission(p)(fn)
	}

	api.HandleFunc("/health", Health).Methods(http.MethodGet)
	api.HandleFunc("/session", sessionHandler.Issue).Methods(http.MethodPost)
	api.HandleFunc("/schema/checklist", checklists.Schema).Methods(http.MethodGet)

	api.Handle("/dashboard", guard(models.PermViewDashboard, dashboard.Get)).Methods(http.MethodGet)

	api.Handle("/checklists", guard(models.PermViewHistory, checklists.List)).Methods(http.MethodGet)
	api.Handle("/checklists", guard(models.PermCreateChecklist, checklists.Create)).Methods(http.MethodPost)

	api.Handle("/vehicles", guard(models.PermManageVehicles, vehicles.List)).Methods(http.MethodGet)
	api.Handle("/vehicles", guard(models.PermManageVehicles, vehicles.Save)).Methods(http.MethodPost, http.MethodPut)
	api.Handle("/vehicles/{id}", guard(models.PermManageVehicles, vehicles.Delete)).Methods(http.MethodDelete)
	// The checklist form resolves the scanned plate or asset code here.
	api.Handle("/vehicles/lookup", guard(models.PermCreateChecklist, vehicles.Lookup)).Methods(http.MethodGet)

	api.Handle("/collaborators", guard(models.PermManageCollaborators, collaborators.List)).Methods(http.MethodGet)
	api.Handle("/collaborators", guard(models.PermManageCollaborators, collaborators.Save)).Methods(http.MethodPost, http.MethodPut)
	api.Handle("/collaborators/{id}", guard(models.PermManageCollaborators, collaborators.Delete)).Methods(http.MethodDelete)

	api.Handle("/groups", guard(models.PermManageGroups, groups.List)).Methods(http.MethodGet)
	api.Handle("/groups", guard(models.PermManageGroups, groups.Save)).Methods(http.MethodPost, http.MethodPut)
	api.Handle("/groups/{id}", guard(models.PermManageGroups, groups.Delete)).Methods(http.MethodDelete)

	api.Handle("/maintenance", guard(models.PermManageMaintenance, maintenance.List)).Methods(http.MethodGet)
	api.Handle("/maintenance", guard(models.PermManageMaintenance, maintenance.Save)).Methods(http.MethodPost, http.MethodPut)
	api.Handle("/maintenance/{id}", guard(models.PermManageMaintenance, maintenance.Delete)).Methods(http.MethodDelete)

	api.Handle("/settings", guard(models.PermManageGroups, settings.List)).Methods(http.MethodGet)
	api.Handle("/settings", guard(models.PermManageGroups, settings.Save)).Methods(http.MethodPost, http.MethodPut)
	api.Handle("/settings/{id}", guard(models.PermManageGroups, settings.Delete)).Methods(http.MethodDelete)

	api.Handle("/reports/checklists", guard(models.PermViewHistory, reports.ExportChecklists)).Methods(http.MethodGet)

	api.Handle("/backup", guard(models.PermManageGroups, backups.Snapshot)).Methods(http.MethodGet)
	api.Handle("/backup/restore", guard(models.PermManageGroups, backups.Restore)).Methods(http.MethodPost)

	return r
}
