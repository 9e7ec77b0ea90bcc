package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validMaintenance() MaintenanceRecord {
	return MaintenanceRecord{
		VehiclePlate: "ABC1234",
		Date:         "2026-06-01",
		Type:         MaintenancePreventive,
		PartsCost:    250.50,
		LaborCost:    149.50,
	}
}

func TestMaintenanceValidate(t *testing.T) {
	rec := validMaintenance()
	assert.NoError(t, rec.Validate())
	assert.Equal(t, "OPEN", rec.Status)

	rec = validMaintenance()
	rec.Type = "PAINTING"
	assert.EqualError(t, rec.Validate(), "invalid maintenance type")

	rec = validMaintenance()
	rec.Date = ""
	assert.EqualError(t, rec.Validate(), "date is required")

	rec = validMaintenance()
	rec.LaborCost = -1
	assert.EqualError(t, rec.Validate(), "costs must not be negative")

	rec = validMaintenance()
	rec.Status = "PAUSED"
	assert.EqualError(t, rec.Validate(), "invalid service order status")

	rec = validMaintenance()
	km := -100
	rec.NextMaintenanceKm = &km
	assert.EqualError(t, rec.Validate(), "next maintenance km must not be negative")
}

func TestMaintenanceValidate_RecomputesTotalCost(t *testing.T) {
	rec := validMaintenance()
	rec.TotalCost = 9999 // client-supplied total is never trusted
	assert.NoError(t, rec.Validate())
	assert.InDelta(t, 400.0, rec.TotalCost, 0.001)
}
