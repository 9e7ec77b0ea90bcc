package models

// BackupCollections groups the six persisted collections of one backup. A nil
// slice marks a collection that was absent from the backup document and must
// be left untouched on restore.
type BackupCollections struct {
	Checklists     []ChecklistRecord   `bson:"checklists" json:"checklists"`
	Vehicles       []Vehicle           `bson:"vehicles" json:"vehicles"`
	Collaborators  []Collaborator      `bson:"collaborators" json:"collaborators"`
	AccessGroups   []AccessGroup       `bson:"accessGroups" json:"accessGroups"`
	Maintenance    []MaintenanceRecord `bson:"maintenance" json:"maintenance"`
	SystemSettings []SystemSettingItem `bson:"systemSettings" json:"systemSettings"`
}

// BackupData is the versioned full-store snapshot written to and read from
// backup files.
type BackupData struct {
	Version   string             `bson:"version" json:"version"`
	Timestamp string             `bson:"timestamp" json:"timestamp"`
	Data      *BackupCollections `bson:"data" json:"data"`
}

// DashboardStats summarizes the fleet for the dashboard view.
type DashboardStats struct {
	TotalInspections   int     `json:"totalInspections"`
	VehiclesActive     int     `json:"vehiclesActive"`
	VehiclesRepair     int     `json:"vehiclesRepair"`
	LastInspectionDate string  `json:"lastInspectionDate"`
	MaintenanceCost    float64 `json:"maintenanceCost"`
}
