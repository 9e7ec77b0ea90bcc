package models

import (
	"errors"
	"strings"
)

// VehicleStatus represents the operational condition of a fleet vehicle.
// The values are the user-facing Portuguese labels and are part of the
// persisted data format.
type VehicleStatus string

const (
	StatusAvailable   VehicleStatus = "Apto para uso"
	StatusRestricted  VehicleStatus = "Apto com restrições"
	StatusUnavailable VehicleStatus = "Inapto"
)

// IsValidVehicleStatus checks if a vehicle status is one of the known values.
func IsValidVehicleStatus(status VehicleStatus) bool {
	switch status {
	case StatusAvailable, StatusRestricted, StatusUnavailable:
		return true
	default:
		return false
	}
}

// Vehicle represents a registered fleet vehicle.
type Vehicle struct {
	ID                string        `bson:"_id,omitempty" json:"id"`
	Plate             string        `bson:"plate" json:"plate"`
	Model             string        `bson:"model" json:"model"`
	Brand             string        `bson:"brand" json:"brand"`
	Year              string        `bson:"year" json:"year"`
	Unit              string        `bson:"unit,omitempty" json:"unit,omitempty"`
	Sector            string        `bson:"sector,omitempty" json:"sector,omitempty"`
	Code              string        `bson:"code,omitempty" json:"code,omitempty"` // asset tag (patrimônio)
	Renavam           string        `bson:"renavam,omitempty" json:"renavam,omitempty"`
	LastLicensingDate string        `bson:"lastLicensingDate,omitempty" json:"lastLicensingDate,omitempty"` // "YYYY-MM"
	LicensingDocURL   string        `bson:"licensingDocUrl,omitempty" json:"licensingDocUrl,omitempty"`     // inline data URL
	Status            VehicleStatus `bson:"status" json:"status"`
}

// NormalizePlate strips separators from a license plate and uppercases it so
// plates entered as "ABC-1234" and "abc1234" compare equal.
func NormalizePlate(plate string) string {
	var b strings.Builder
	for _, r := range plate {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}

// Validate checks the required vehicle fields before persistence.
func (v *Vehicle) Validate() error {
	if strings.TrimSpace(v.Plate) == "" {
		return errors.New("plate is required")
	}
	if strings.TrimSpace(v.Model) == "" {
		return errors.New("model is required")
	}
	if strings.TrimSpace(v.Brand) == "" {
		return errors.New("brand is required")
	}
	if v.Status == "" {
		v.Status = StatusAvailable
	}
	if !IsValidVehicleStatus(v.Status) {
		return errors.New("invalid vehicle status")
	}
	return nil
}
