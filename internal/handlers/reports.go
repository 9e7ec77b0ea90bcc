package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/report"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

// ReportHandler exports the filtered checklist history.
type ReportHandler struct {
	store store.Store
}

// NewReportHandler creates a new report handler.
func NewReportHandler(s store.Store) *ReportHandler {
	return &ReportHandler{store: s}
}

// ExportChecklists streams the filtered history as CSV (default) or XLSX.
// An empty store and filters that match nothing are distinct errors so the
// client never downloads a silently empty file.
func (h *ReportHandler) ExportChecklists(w http.ResponseWriter, r *http.Request) {
	recs, err := h.store.Checklists(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to read checklists")
		http.Error(w, "Failed to read checklists", http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	filters := report.Filters{
		Start:  query.Get("start"),
		End:    query.Get("end"),
		Plate:  query.Get("plate"),
		Unit:   query.Get("unit"),
		Sector: query.Get("sector"),
		Driver: query.Get("driver"),
	}

	matched, err := report.FilterChecklists(recs, filters)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrNoData):
			http.Error(w, "No checklist records to export", http.StatusNotFound)
		case errors.Is(err, report.ErrNoMatches):
			http.Error(w, "No records match the given filters", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	filename := fmt.Sprintf("fleet_report_%s", time.Now().Format("2006-01-02"))

	switch query.Get("format") {
	case "", "csv":
		csvText, err := report.ExportCSV(matched)
		if err != nil {
			log.WithError(err).Error("Failed to render CSV")
			http.Error(w, "Failed to render CSV", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
		w.Write([]byte(csvText))
	case "xlsx":
		f, err := report.ExportExcel(matched)
		if err != nil {
			log.WithError(err).Error("Failed to render XLSX")
			http.Error(w, "Failed to render XLSX", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", filename))
		if err := f.Write(w); err != nil {
			log.WithError(err).Error("Failed to write XLSX response")
		}
	default:
		http.Error(w, "Unsupported format", http.StatusBadRequest)
	}
}
