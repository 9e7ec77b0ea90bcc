// Package report derives dashboard statistics and checklist history exports
// from the record store.
package report

import (
	"context"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

// Stats builds the dashboard summary. Active and under-repair counts come
// from the vehicle registry when one exists; with an empty registry they fall
// back to the latest checklist statuses. An empty store yields zero values.
func Stats(ctx context.Context, s store.Store) (models.DashboardStats, error) {
	stats := models.DashboardStats{LastInspectionDate: "-"}

	checklists, err := s.Checklists(ctx)
	if err != nil {
		return stats, err
	}
	vehicles, err := s.Vehicles(ctx)
	if err != nil {
		return stats, err
	}
	maintenances, err := s.Maintenances(ctx)
	if err != nil {
		return stats, err
	}

	stats.TotalInspections = len(checklists)

	if len(vehicles) > 0 {
		for _, v := range vehicles {
			if v.Status == models.StatusUnavailable {
				stats.VehiclesRepair++
			} else {
				stats.VehiclesActive++
			}
		}
	} else {
		for _, c := range checklists {
			if c.Status == models.StatusUnavailable {
				stats.VehiclesRepair++
			} else {
				stats.VehiclesActive++
			}
		}
	}

	for _, m := range maintenances {
		stats.MaintenanceCost += m.TotalCost
	}

	// Checklists are stored newest first.
	if len(checklists) > 0 {
		stats.LastInspectionDate = formatRecordDate(checklists[0].Date)
	}
	return stats, nil
}

// formatRecordDate renders a stored date for display as day/month/year,
// falling back to the raw string when it does not parse.
func formatRecordDate(s string) string {
	t, err := models.ParseRecordDate(s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}
