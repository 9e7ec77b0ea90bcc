package models

import (
	"errors"
	"strings"
	"time"
)

// ChecklistStatus is the outcome recorded for a single inspection item.
type ChecklistStatus string

const (
	ItemOK  ChecklistStatus = "OK"
	ItemNOK ChecklistStatus = "NOK"
	ItemNA  ChecklistStatus = "N/A"
)

// RecordType distinguishes inspection checklists from maintenance entries in
// mixed history views.
type RecordType string

const (
	RecordChecklist   RecordType = "CHECKLIST"
	RecordMaintenance RecordType = "MAINTENANCE"
)

// GeoLocation holds the coordinates captured when a checklist was filled in.
type GeoLocation struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Address   string  `bson:"address,omitempty" json:"address,omitempty"`
}

// PhotoEvidence is one photo slot of a checklist, filled with an inline data
// URL when the photo was taken.
type PhotoEvidence struct {
	ID       string `bson:"id" json:"id"`
	Label    string `bson:"label" json:"label"`
	DataURL  string `bson:"dataUrl,omitempty" json:"dataUrl,omitempty"`
	Required bool   `bson:"required" json:"required"`
}

// Signature is a captured sign-off on a checklist.
type Signature struct {
	Role      string `bson:"role" json:"role"` // "Driver" or "Supervisor"
	Name      string `bson:"name" json:"name"`
	DataURL   string `bson:"dataUrl" json:"dataUrl"`
	Timestamp string `bson:"timestamp" json:"timestamp"`
}

// ChecklistRecord is one vehicle inspection event. Records are append-only:
// once created they are never edited, forming the vehicle's history.
type ChecklistRecord struct {
	ID           string                     `bson:"_id,omitempty" json:"id"`
	RecordType   RecordType                 `bson:"recordType" json:"recordType"`
	VehiclePlate string                     `bson:"vehiclePlate" json:"vehiclePlate"`
	VehicleModel string                     `bson:"vehicleModel" json:"vehicleModel"`
	VehicleCode  string                     `bson:"vehicleCode,omitempty" json:"vehicleCode,omitempty"`
	DriverName   string                     `bson:"driverName" json:"driverName"`
	Unit         string                     `bson:"unit" json:"unit"`
	Sector       string                     `bson:"sector" json:"sector"`
	Odometer     int                        `bson:"odometer" json:"odometer"`
	Date         string                     `bson:"date" json:"date"` // RFC 3339
	Status       VehicleStatus              `bson:"status" json:"status"`
	Location     *GeoLocation               `bson:"location,omitempty" json:"location,omitempty"`
	Items        map[string]ChecklistStatus `bson:"items" json:"items"`
	Photos       []PhotoEvidence            `bson:"photos" json:"photos"`
	Observations string                     `bson:"observations" json:"observations"`
	Signatures   []Signature                `bson:"signatures,omitempty" json:"signatures,omitempty"`
	Synced       bool                       `bson:"synced" json:"synced"`
}

// ParseRecordDate parses a checklist or maintenance date string. Both RFC 3339
// timestamps and plain "YYYY-MM-DD" dates occur in stored data.
func ParseRecordDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("unrecognized date format: " + s)
}

// Validate checks the required checklist fields before persistence.
func (c *ChecklistRecord) Validate() error {
	if strings.TrimSpace(c.VehiclePlate) == "" {
		return errors.New("vehicle plate is required")
	}
	if strings.TrimSpace(c.DriverName) == "" {
		return errors.New("driver name is required")
	}
	if c.Odometer < 0 {
		return errors.New("odometer must not be negative")
	}
	if c.Date == "" {
		return errors.New("date is required")
	}
	if _, err := ParseRecordDate(c.Date); err != nil {
		return errors.New("invalid date")
	}
	if !IsValidVehicleStatus(c.Status) {
		return errors.New("invalid resulting vehicle status")
	}
	for id, status := range c.Items {
		switch status {
		case ItemOK, ItemNOK, ItemNA:
		default:
			return errors.New("invalid status for checklist item " + id)
		}
	}
	for _, photo := range c.Photos {
		if photo.Required && photo.DataURL == "" {
			return errors.New("missing required photo: " + photo.Label)
		}
	}
	return nil
}
