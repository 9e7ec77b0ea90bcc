// Package fleet evaluates licensing and maintenance obligations against a
// vehicle's history. All functions are pure: "now" is always a parameter and
// malformed stored dates degrade to the optimistic default instead of failing.
package fleet

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
)

// Status classifies how close an obligation is to its due date or mileage.
type Status string

const (
	StatusOK      Status = "OK"
	StatusWarning Status = "WARNING"
	StatusExpired Status = "EXPIRED"
	StatusUnknown Status = "UNKNOWN"
)

// Alert thresholds: an obligation within 30 days or 1000 km is a warning.
const (
	warningDays = 30
	warningKm   = 1000
)

// severityRank orders statuses for display, most urgent first.
func severityRank(s Status) int {
	switch s {
	case StatusExpired:
		return 0
	case StatusWarning:
		return 1
	case StatusUnknown:
		return 2
	default:
		return 3
	}
}

// daysUntil counts the days from now to a deadline, rounding partial days up.
func daysUntil(now, deadline time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// LicensingStatus classifies a vehicle's annual licensing renewal. The last
// licensing period is a "YYYY-MM" string; the renewal anchor is the first day
// of that month plus one year. An absent or unparsable period is not
// penalized and reads as OK.
func LicensingStatus(now time.Time, lastLicensing string) Status {
	if lastLicensing == "" {
		return StatusOK
	}
	last, err := time.Parse("2006-01", lastLicensing)
	if err != nil {
		return StatusOK
	}
	nextDue := last.AddDate(1, 0, 0)
	if now.After(nextDue) {
		return StatusExpired
	}
	if daysUntil(now, nextDue) <= warningDays {
		return StatusWarning
	}
	return StatusOK
}

// CurrentOdometer derives a vehicle's current mileage as the maximum odometer
// reading observed across its checklist and maintenance history. Returns 0
// when the plate has no readings.
func CurrentOdometer(plate string, checklists []models.ChecklistRecord, maintenances []models.MaintenanceRecord) int {
	want := models.NormalizePlate(plate)
	max := 0
	for _, c := range checklists {
		if models.NormalizePlate(c.VehiclePlate) == want && c.Odometer > max {
			max = c.Odometer
		}
	}
	for _, m := range maintenances {
		if models.NormalizePlate(m.VehiclePlate) == want && m.Odometer > max {
			max = m.Odometer
		}
	}
	return max
}

// Evaluation is the outcome of checking one maintenance obligation.
type Evaluation struct {
	Status    Status `json:"status"`
	Reason    string `json:"reason"`
	LastDate  string `json:"lastDate,omitempty"`
	NextDate  string `json:"nextDate,omitempty"`
	NextKm    *int   `json:"nextKm,omitempty"`
	CurrentKm int    `json:"currentKm"`
}

// EvaluateMaintenance classifies the due state of one service type for one
// vehicle. The records are the vehicle's maintenance history; only the most
// recent record of the given type counts. The date and odometer signals are
// evaluated independently and combined worst-wins: EXPIRED from either signal
// wins, and an expired date is never downgraded by a mileage warning. The
// mileage signal is only consulted when an odometer reading exists
// (currentKm > 0); a fleet with no readings gets no mileage noise.
func EvaluateMaintenance(now time.Time, records []models.MaintenanceRecord, t models.MaintenanceType, currentKm int) Evaluation {
	last := latestOfType(records, t)
	if last == nil {
		return Evaluation{Status: StatusUnknown, Reason: "no record", CurrentKm: currentKm}
	}

	eval := Evaluation{
		Status:    StatusOK,
		Reason:    "up to date",
		LastDate:  last.Date,
		NextDate:  last.NextMaintenanceDate,
		NextKm:    last.NextMaintenanceKm,
		CurrentKm: currentKm,
	}

	var reasons []string
	status := StatusOK

	if last.NextMaintenanceDate != "" {
		if nextDate, err := models.ParseRecordDate(last.NextMaintenanceDate); err == nil {
			if now.After(nextDate) {
				status = StatusExpired
				reasons = append(reasons, fmt.Sprintf("overdue since %s", nextDate.Format("2006-01-02")))
			} else if days := daysUntil(now, nextDate); days <= warningDays {
				status = StatusWarning
				reasons = append(reasons, fmt.Sprintf("due in %d days", days))
			}
		}
	}

	if last.NextMaintenanceKm != nil && currentKm > 0 {
		nextKm := *last.NextMaintenanceKm
		if currentKm >= nextKm {
			status = StatusExpired
			reasons = append(reasons, fmt.Sprintf("exceeded by %d km", currentKm-nextKm))
		} else if remaining := nextKm - currentKm; remaining <= warningKm {
			if status != StatusExpired {
				status = StatusWarning
			}
			reasons = append(reasons, fmt.Sprintf("%d km remaining", remaining))
		}
	}

	if status != StatusOK {
		eval.Status = status
		eval.Reason = joinReasons(reasons)
	}
	return eval
}

func joinReasons(reasons []string) string {
	out := ""
	for i, r := range reasons {
		if i > 0 {
			out += " and "
		}
		out += r
	}
	return out
}

// latestOfType returns the most recent record of the given type by date, or
// nil when none exists. Records with unparsable dates sort oldest.
func latestOfType(records []models.MaintenanceRecord, t models.MaintenanceType) *models.MaintenanceRecord {
	var latest *models.MaintenanceRecord
	var latestTime time.Time
	for i := range records {
		if records[i].Type != t {
			continue
		}
		when, err := models.ParseRecordDate(records[i].Date)
		if err != nil {
			when = time.Time{}
		}
		if latest == nil || when.After(latestTime) {
			latest = &records[i]
			latestTime = when
		}
	}
	return latest
}

// LicensingSummary aggregates the licensing status across the registry.
type LicensingSummary struct {
	OK      int `json:"ok"`
	Warning int `json:"warning"`
	Expired int `json:"expired"`
	Total   int `json:"total"`

	ExpiredVehicles []models.Vehicle `json:"expiredVehicles"`
}

// SummarizeLicensing classifies every vehicle's licensing renewal.
func SummarizeLicensing(now time.Time, vehicles []models.Vehicle) LicensingSummary {
	summary := LicensingSummary{Total: len(vehicles), ExpiredVehicles: []models.Vehicle{}}
	for _, v := range vehicles {
		switch LicensingStatus(now, v.LastLicensingDate) {
		case StatusExpired:
			summary.Expired++
			summary.ExpiredVehicles = append(summary.ExpiredVehicles, v)
		case StatusWarning:
			summary.Warning++
		default:
			summary.OK++
		}
	}
	return summary
}

// Alert flags a vehicle whose preventive or corrective service is due or
// overdue.
type Alert struct {
	Vehicle  models.Vehicle         `json:"vehicle"`
	Type     models.MaintenanceType `json:"type"`
	Status   Status                 `json:"status"`
	Reason   string                 `json:"reason"`
	NextDate string                 `json:"nextDate,omitempty"`
}

// MaintenanceAlerts evaluates preventive and corrective service for every
// registry vehicle and returns the ones at WARNING or EXPIRED. Oil changes
// are reported separately by OilStatuses.
func MaintenanceAlerts(now time.Time, vehicles []models.Vehicle, checklists []models.ChecklistRecord, maintenances []models.MaintenanceRecord) []Alert {
	alerts := []Alert{}
	for _, v := range vehicles {
		history := historyForPlate(maintenances, v.Plate)
		currentKm := CurrentOdometer(v.Plate, checklists, maintenances)
		for _, t := range []models.MaintenanceType{models.MaintenancePreventive, models.MaintenanceCorrective} {
			eval := EvaluateMaintenance(now, history, t, currentKm)
			if eval.Status != StatusExpired && eval.Status != StatusWarning {
				continue
			}
			alerts = append(alerts, Alert{
				Vehicle:  v,
				Type:     t,
				Status:   eval.Status,
				Reason:   eval.Reason,
				NextDate: eval.NextDate,
			})
		}
	}
	return alerts
}

// OilStatus is the oil-change due state of one vehicle.
type OilStatus struct {
	Vehicle    models.Vehicle `json:"vehicle"`
	Evaluation Evaluation     `json:"evaluation"`
}

// OilStatuses evaluates the oil-change obligation for every registry vehicle,
// including vehicles with no oil change on record (UNKNOWN), sorted most
// urgent first. The sort is stable so ties keep registry order.
func OilStatuses(now time.Time, vehicles []models.Vehicle, checklists []models.ChecklistRecord, maintenances []models.MaintenanceRecord) []OilStatus {
	statuses := make([]OilStatus, 0, len(vehicles))
	for _, v := range vehicles {
		history := historyForPlate(maintenances, v.Plate)
		currentKm := CurrentOdometer(v.Plate, checklists, maintenances)
		statuses = append(statuses, OilStatus{
			Vehicle:    v,
			Evaluation: EvaluateMaintenance(now, history, models.MaintenanceOilChange, currentKm),
		})
	}
	sort.SliceStable(statuses, func(i, j int) bool {
		return severityRank(statuses[i].Evaluation.Status) < severityRank(statuses[j].Evaluation.Status)
	})
	return statuses
}

func historyForPlate(maintenances []models.MaintenanceRecord, plate string) []models.MaintenanceRecord {
	want := models.NormalizePlate(plate)
	history := []models.MaintenanceRecord{}
	for _, m := range maintenances {
		if models.NormalizePlate(m.VehiclePlate) == want {
			history = append(history, m)
		}
	}
	return history
}
