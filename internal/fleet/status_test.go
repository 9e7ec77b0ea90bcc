package fleet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int {
	return &v
}

func TestLicensingStatus_NoDate(t *testing.T) {
	now := date(2026, time.June, 15)

	assert.Equal(t, StatusOK, LicensingStatus(now, ""))
}

func TestLicensingStatus_MalformedDate(t *testing.T) {
	now := date(2026, time.June, 15)

	// Unparsable dates are treated as absent, never as an error.
	assert.Equal(t, StatusOK, LicensingStatus(now, "not-a-date"))
	assert.Equal(t, StatusOK, LicensingStatus(now, "2026-13"))
}

func TestLicensingStatus_Expired(t *testing.T) {
	// Anchor 2023-01-01, renewal due 2024-01-01. 366 days after the anchor
	// (2023 is not a leap year) the renewal is one day past due.
	anchor := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := anchor.AddDate(0, 0, 366)

	assert.Equal(t, StatusExpired, LicensingStatus(now, "2023-01"))
}

func TestLicensingStatus_WarningBoundary(t *testing.T) {
	nextDue := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("exactly 30 days before due", func(t *testing.T) {
		now := nextDue.AddDate(0, 0, -30)
		assert.Equal(t, StatusWarning, LicensingStatus(now, "2023-06"))
	})

	t.Run("31 days before due", func(t *testing.T) {
		now := nextDue.AddDate(0, 0, -31)
		assert.Equal(t, StatusOK, LicensingStatus(now, "2023-06"))
	})
}

func TestCurrentOdometer(t *testing.T) {
	checklists := []models.ChecklistRecord{
		{VehiclePlate: "ABC1234", Odometer: 41000},
		{VehiclePlate: "abc-1234", Odometer: 45000}, // same plate, different formatting
		{VehiclePlate: "XYZ9876", Odometer: 99000},
	}
	maintenances := []models.MaintenanceRecord{
		{VehiclePlate: "ABC1234", Type: models.MaintenanceCorrective, Odometer: 43500},
	}

	assert.Equal(t, 45000, CurrentOdometer("ABC-1234", checklists, maintenances))
	assert.Equal(t, 0, CurrentOdometer("NOP0000", checklists, maintenances))
}

func TestEvaluateMaintenance_NoRecords(t *testing.T) {
	now := date(2026, time.June, 15)
	records := []models.MaintenanceRecord{
		{VehiclePlate: "ABC1234", Type: models.MaintenanceCorrective, Date: "2026-05-01", Odometer: 48000},
	}

	// No oil change on record, but the corrective record still contributes
	// to the derived odometer.
	eval := EvaluateMaintenance(now, records, models.MaintenanceOilChange, CurrentOdometer("ABC1234", nil, records))

	assert.Equal(t, StatusUnknown, eval.Status)
	assert.Equal(t, "no record", eval.Reason)
	assert.Equal(t, 48000, eval.CurrentKm)
}

func TestEvaluateMaintenance_KmExpiredOverridesOkDate(t *testing.T) {
	now := date(2026, time.June, 15)
	records := []models.MaintenanceRecord{
		{
			Type:                models.MaintenanceOilChange,
			VehiclePlate:        "ABC1234",
			Date:                "2026-01-10",
			NextMaintenanceDate: "2026-12-31", // date signal OK
			NextMaintenanceKm:   intPtr(50000),
		},
	}

	eval := EvaluateMaintenance(now, records, models.MaintenanceOilChange, 50000)

	assert.Equal(t, StatusExpired, eval.Status)
	assert.Contains(t, eval.Reason, "km")
	assert.Contains(t, eval.Reason, "exceeded")
}

func TestEvaluateMaintenance_DateExpiredNotDowngradedByKm(t *testing.T) {
	now := date(2026, time.June, 15)
	records := []models.MaintenanceRecord{
		{
			Type:                models.MaintenanceOilChange,
			VehiclePlate:        "ABC1234",
			Date:                "2025-06-01",
			NextMaintenanceDate: "2026-06-01",  // already past
			NextMaintenanceKm:   intPtr(90000), // far away
		},
	}

	eval := EvaluateMaintenance(now, records, models.MaintenanceOilChange, 40000)

	assert.Equal(t, StatusExpired, eval.Status)
	assert.Contains(t, eval.Reason, "overdue")
}

func TestEvaluateMaintenance_BothWarnings(t *testing.T) {
	now := date(2026, time.June, 15)
	records := []models.MaintenanceRecord{
		{
			Type:                models.MaintenancePreventive,
			VehiclePlate:        "ABC1234",
			Date:                "2026-01-10",
			NextMaintenanceDate: "2026-06-30",
			NextMaintenanceKm:   intPtr(50500),
		},
	}

	eval := EvaluateMaintenance(now, records, models.MaintenancePreventive, 50000)

	assert.Equal(t, StatusWarning, eval.Status)
	assert.Contains(t, eval.Reason, "due in")
	assert.Contains(t, eval.Reason, "remaining")
}

func TestEvaluateMaintenance_MalformedNextDateIgnored(t *testing.T) {
	now := date(2026, time.June, 15)
	records := []models.MaintenanceRecord{
		{
			Type:                models.MaintenanceOilChange,
			VehiclePlate:        "ABC1234",
			Date:                "2026-05-01",
			NextMaintenanceDate: "soon",
		},
	}

	eval := EvaluateMaintenance(now, records, models.MaintenanceOilChange, 30000)

	assert.Equal(t, StatusOK, eval.Status)
	assert.Equal(t, "up to date", eval.Reason)
}

func TestEvaluateMaintenance_NoOdometerReadingSkipsKmSignal(t *testing.T) {
	now := date(2026, time.June, 15)
	records := []models.MaintenanceRecord{
		{
			Type:              models.MaintenanceOilChange,
			VehiclePlate:      "ABC1234",
			Date:              "2026-05-01",
			NextMaintenanceKm: intPtr(500),
		},
	}

	eval := EvaluateMaintenance(now, records, models.MaintenanceOilChange, 0)

	assert.Equal(t, StatusOK, eval.Status)
}

func TestEvaluateMaintenance_PicksMostRecentRecord(t *testing.T) {
	now := date(2026, time.June, 15)
	records := []models.MaintenanceRecord{
		{
			Type:                models.MaintenanceOilChange,
			VehiclePlate:        "ABC1234",
			Date:                "2025-01-10",
			NextMaintenanceDate: "2025-07-10", // stale, would be expired
		},
		{
			Type:                models.MaintenanceOilChange,
			VehiclePlate:        "ABC1234",
			Date:                "2026-05-20",
			NextMaintenanceDate: "2026-11-20",
		},
	}

	eval := EvaluateMaintenance(now, records, models.MaintenanceOilChange, 0)

	assert.Equal(t, StatusOK, eval.Status)
	assert.Equal(t, "2026-05-20", eval.LastDate)
}

func TestSummarizeLicensing(t *testing.T) {
	now := date(2026, time.June, 15)
	vehicles := []models.Vehicle{
		{ID: "1", Plate: "AAA1111"},                               // no date -> OK
		{ID: "2", Plate: "BBB2222", LastLicensingDate: "2024-01"}, // long expired
		{ID: "3", Plate: "CCC3333", LastLicensingDate: "2025-06"}, // due 2026-06-01 -> expired
		{ID: "4", Plate: "DDD4444", LastLicensingDate: "2026-01"}, // OK
	}

	summary := SummarizeLicensing(now, vehicles)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.OK)
	assert.Equal(t, 2, summary.Expired)
	assert.Len(t, summary.ExpiredVehicles, 2)
	assert.Equal(t, "BBB2222", summary.ExpiredVehicles[0].Plate)
}

func TestMaintenanceAlerts(t *testing.T) {
	now := date(2026, time.June, 15)
	vehicles := []models.Vehicle{
		{ID: "1", Plate: "AAA1111"},
		{ID: "2", Plate: "BBB2222"},
	}
	maintenances := []models.MaintenanceRecord{
		{
			Type:                models.MaintenancePreventive,
			VehiclePlate:        "AAA1111",
			Date:                "2026-01-01",
			NextMaintenanceDate: "2026-06-01", // overdue
		},
		{
			Type:                models.MaintenanceOilChange, // oil is not alerted here
			VehiclePlate:        "BBB2222",
			Date:                "2026-01-01",
			NextMaintenanceDate: "2026-06-01",
		},
	}

	alerts := MaintenanceAlerts(now, vehicles, nil, maintenances)

	assert.Len(t, alerts, 1)
	assert.Equal(t, "AAA1111", alerts[0].Vehicle.Plate)
	assert.Equal(t, models.MaintenancePreventive, alerts[0].Type)
	assert.Equal(t, StatusExpired, alerts[0].Status)
}

func TestOilStatuses_SortedBySeverity(t *testing.T) {
	now := date(2026, time.June, 15)
	vehicles := []models.Vehicle{
		{ID: "1", Plate: "OKK0001"},
		{ID: "2", Plate: "EXP0002"},
		{ID: "3", Plate: "UNK0003"},
		{ID: "4", Plate: "WRN0004"},
	}
	maintenances := []models.MaintenanceRecord{
		{Type: models.MaintenanceOilChange, VehiclePlate: "OKK0001", Date: "2026-05-01", NextMaintenanceDate: "2026-12-01"},
		{Type: models.MaintenanceOilChange, VehiclePlate: "EXP0002", Date: "2026-01-01", NextMaintenanceDate: "2026-05-01"},
		{Type: models.MaintenanceOilChange, VehiclePlate: "WRN0004", Date: "2026-05-01", NextMaintenanceDate: "2026-07-01"},
	}

	statuses := OilStatuses(now, vehicles, nil, maintenances)

	assert.Len(t, statuses, 4)
	assert.Equal(t, "EXP0002", statuses[0].Vehicle.Plate)
	assert.Equal(t, StatusWarning, statuses[1].Evaluation.Status)
	assert.Equal(t, "UNK0003", statuses[2].Vehicle.Plate)
	assert.Equal(t, "OKK0001", statuses[3].Vehicle.Plate)
}
