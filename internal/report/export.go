package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
)

var (
	// ErrNoData means there are no checklist records at all.
	ErrNoData = errors.New("no checklist records to export")
	// ErrNoMatches means the filters eliminated every record.
	ErrNoMatches = errors.New("no records match the given filters")
)

// ExportColumns is the fixed header of every checklist export.
var ExportColumns = []string{"ID", "Date", "Plate", "Driver", "Status", "Odometer", "Unit", "Sector"}

// Filters narrows the exported checklist history. Dates are inclusive whole
// days ("YYYY-MM-DD"); text filters are trimmed, case-insensitive substring
// matches.
type Filters struct {
	Start  string
	End    string
	Plate  string
	Unit   string
	Sector string
	Driver string
}

// FilterChecklists applies the filters and distinguishes an empty store
// (ErrNoData) from filters that matched nothing (ErrNoMatches).
func FilterChecklists(records []models.ChecklistRecord, f Filters) ([]models.ChecklistRecord, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	var start, end time.Time
	if f.Start != "" {
		t, err := time.Parse("2006-01-02", f.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q", f.Start)
		}
		start = t
	}
	if f.End != "" {
		t, err := time.Parse("2006-01-02", f.End)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q", f.End)
		}
		// Inclusive through the last instant of the end day.
		end = t.AddDate(0, 0, 1)
	}

	matched := []models.ChecklistRecord{}
	for _, rec := range records {
		if !start.IsZero() || !end.IsZero() {
			when, err := models.ParseRecordDate(rec.Date)
			if err != nil {
				continue
			}
			if !start.IsZero() && when.Before(start) {
				continue
			}
			if !end.IsZero() && !when.Before(end) {
				continue
			}
		}
		if !containsFold(rec.VehiclePlate, f.Plate) ||
			!containsFold(rec.Unit, f.Unit) ||
			!containsFold(rec.Sector, f.Sector) ||
			!containsFold(rec.DriverName, f.Driver) {
			continue
		}
		matched = append(matched, rec)
	}

	if len(matched) == 0 {
		return nil, ErrNoMatches
	}
	return matched, nil
}

// containsFold reports whether value contains the filter term, ignoring case.
// An empty or whitespace-only term matches everything.
func containsFold(value, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

// ExportCSV renders checklist records as comma-delimited text with the fixed
// export header.
func ExportCSV(records []models.ChecklistRecord) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(ExportColumns); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.ID,
			exportDate(rec.Date),
			rec.VehiclePlate,
			rec.DriverName,
			string(rec.Status),
			strconv.Itoa(rec.Odometer),
			rec.Unit,
			rec.Sector,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func exportDate(s string) string {
	t, err := models.ParseRecordDate(s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006 15:04")
}
