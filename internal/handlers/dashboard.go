package handlers

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/fleet"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/report"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

// DashboardHandler assembles the summary view: totals, licensing summary,
// service alerts and per-vehicle oil status.
type DashboardHandler struct {
	store store.Store
	now   func() time.Time
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(s store.Store) *DashboardHandler {
	return &DashboardHandler{store: s, now: time.Now}
}

// DashboardResponse is the payload of the dashboard endpoint.
type DashboardResponse struct {
	Stats             models.DashboardStats    `json:"stats"`
	Licensing         fleet.LicensingSummary   `json:"licensing"`
	MaintenanceAlerts []fleet.Alert            `json:"maintenanceAlerts"`
	OilStatuses       []fleet.OilStatus        `json:"oilStatuses"`
	RecentChecklists  []models.ChecklistRecord `json:"recentChecklists"`
}

// Get builds the dashboard summary.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := report.Stats(ctx, h.store)
	if err != nil {
		log.WithError(err).Error("Failed to compute stats")
		http.Error(w, "Failed to compute stats", http.StatusInternalServerError)
		return
	}

	vehicles, err := h.store.Vehicles(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read vehicles")
		http.Error(w, "Failed to read vehicles", http.StatusInternalServerError)
		return
	}
	checklists, err := h.store.Checklists(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read checklists")
		http.Error(w, "Failed to read checklists", http.StatusInternalServerError)
		return
	}
	maintenances, err := h.store.Maintenances(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read maintenance records")
		http.Error(w, "Failed to read maintenance records", http.StatusInternalServerError)
		return
	}

	now := h.now()
	recent := checklists
	if len(recent) > 5 {
		recent = recent[:5]
	}

	writeJSON(w, http.StatusOK, DashboardResponse{
		Stats:             stats,
		Licensing:         fleet.SummarizeLicensing(now, vehicles),
		MaintenanceAlerts: fleet.MaintenanceAlerts(now, vehicles, checklists, maintenances),
		OilStatuses:       fleet.OilStatuses(now, vehicles, checklists, maintenances),
		RecentChecklists:  recent,
	})
}
