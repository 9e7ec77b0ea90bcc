package models

import (
	"errors"
	"strings"
)

// MaintenanceType classifies a service order.
type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "PREVENTIVE"
	MaintenanceCorrective MaintenanceType = "CORRECTIVE"
	MaintenanceOilChange  MaintenanceType = "OIL_CHANGE"
)

// IsValidMaintenanceType checks if a maintenance type is one of the known values.
func IsValidMaintenanceType(t MaintenanceType) bool {
	switch t {
	case MaintenancePreventive, MaintenanceCorrective, MaintenanceOilChange:
		return true
	default:
		return false
	}
}

// FilterChanges records which filters were replaced during a service.
type FilterChanges struct {
	Oil   bool `bson:"oil" json:"oil"`
	Air   bool `bson:"air" json:"air"`
	Fuel  bool `bson:"fuel" json:"fuel"`
	Cabin bool `bson:"cabin" json:"cabin"`
}

// MaintenanceRecord represents one service order (O.S.) for a vehicle. The
// optional next-service date and odometer reading drive the due-date alerts.
type MaintenanceRecord struct {
	ID                  string          `bson:"_id,omitempty" json:"id"`
	VehiclePlate        string          `bson:"vehiclePlate" json:"vehiclePlate"`
	Date                string          `bson:"date" json:"date"` // "YYYY-MM-DD" or RFC 3339
	Type                MaintenanceType `bson:"type" json:"type"`
	Description         string          `bson:"description" json:"description"`
	Provider            string          `bson:"provider" json:"provider"`
	Odometer            int             `bson:"odometer" json:"odometer"`
	PartsCost           float64         `bson:"partsCost" json:"partsCost"`
	LaborCost           float64         `bson:"laborCost" json:"laborCost"`
	TotalCost           float64         `bson:"totalCost" json:"totalCost"`
	Status              string          `bson:"status" json:"status"` // "OPEN" or "COMPLETED"
	Observations        string          `bson:"observations,omitempty" json:"observations,omitempty"`
	OSFileURL           string          `bson:"osFileUrl,omitempty" json:"osFileUrl,omitempty"`
	InvoiceFileURL      string          `bson:"invoiceFileUrl,omitempty" json:"invoiceFileUrl,omitempty"`
	Filters             *FilterChanges  `bson:"filters,omitempty" json:"filters,omitempty"`
	ReplacedItems       string          `bson:"replacedItems,omitempty" json:"replacedItems,omitempty"`
	NextMaintenanceDate string          `bson:"nextMaintenanceDate,omitempty" json:"nextMaintenanceDate,omitempty"` // "YYYY-MM-DD"
	NextMaintenanceKm   *int            `bson:"nextMaintenanceKm,omitempty" json:"nextMaintenanceKm,omitempty"`
}

// Validate checks the required service order fields before persistence and
// recomputes the derived total cost.
func (m *MaintenanceRecord) Validate() error {
	if strings.TrimSpace(m.VehiclePlate) == "" {
		return errors.New("vehicle plate is required")
	}
	if m.Date == "" {
		return errors.New("date is required")
	}
	if _, err := ParseRecordDate(m.Date); err != nil {
		return errors.New("invalid date")
	}
	if !IsValidMaintenanceType(m.Type) {
		return errors.New("invalid maintenance type")
	}
	if m.Odometer < 0 {
		return errors.New("odometer must not be negative")
	}
	if m.PartsCost < 0 || m.LaborCost < 0 {
		return errors.New("costs must not be negative")
	}
	if m.NextMaintenanceKm != nil && *m.NextMaintenanceKm < 0 {
		return errors.New("next maintenance km must not be negative")
	}
	if m.Status == "" {
		m.Status = "OPEN"
	}
	if m.Status != "OPEN" && m.Status != "COMPLETED" {
		return errors.New("invalid service order status")
	}
	m.TotalCost = m.PartsCost + m.LaborCost
	return nil
}
