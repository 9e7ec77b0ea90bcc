package models

import (
	"errors"
	"strings"
)

// SystemSettingType names one of the configurable lookup lists.
type SystemSettingType string

const (
	SettingUnits     SystemSettingType = "UNITS"
	SettingSectors   SystemSettingType = "SECTORS"
	SettingSuppliers SystemSettingType = "SUPPLIERS"
	SettingJobTitles SystemSettingType = "JOB_TITLES"
)

// IsValidSettingType checks if a setting type is one of the known values.
func IsValidSettingType(t SystemSettingType) bool {
	switch t {
	case SettingUnits, SettingSectors, SettingSuppliers, SettingJobTitles:
		return true
	default:
		return false
	}
}

// SystemSettingItem is one entry of a configurable lookup list (units,
// sectors, suppliers, job titles).
type SystemSettingItem struct {
	ID   string            `bson:"_id,omitempty" json:"id"`
	Name string            `bson:"name" json:"name"`
	Type SystemSettingType `bson:"type" json:"type"`
}

// Validate checks the required setting fields before persistence.
func (s *SystemSettingItem) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("name is required")
	}
	if !IsValidSettingType(s.Type) {
		return errors.New("invalid setting type")
	}
	return nil
}
