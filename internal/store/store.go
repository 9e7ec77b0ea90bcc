package store

import (
	"context"
	"errors"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
)

var (
	// ErrNotFound is returned when a record with the given identity does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrSystemGroup is returned when deleting a protected system access group.
	ErrSystemGroup = errors.New("system groups cannot be deleted")
)

// DefaultRole is the simulated role active before any explicit selection.
const DefaultRole = "Administrador"

// Store provides access to the persisted fleet collections. Each collection is
// read and written as a whole; the last writer wins. The Replace methods swap
// a collection wholesale and exist for backup restore.
type Store interface {
	// Checklists are append-only; SaveChecklist prepends the record and, when
	// a registry vehicle with the same plate exists, overwrites that vehicle's
	// status with the checklist's resulting status.
	Checklists(ctx context.Context) ([]models.ChecklistRecord, error)
	SaveChecklist(ctx context.Context, rec models.ChecklistRecord) error
	ReplaceChecklists(ctx context.Context, recs []models.ChecklistRecord) error

	Vehicles(ctx context.Context) ([]models.Vehicle, error)
	SaveVehicle(ctx context.Context, v models.Vehicle) error
	DeleteVehicle(ctx context.Context, id string) error
	VehicleByPlate(ctx context.Context, plate string) (*models.Vehicle, error)
	VehicleByCode(ctx context.Context, code string) (*models.Vehicle, error)
	ReplaceVehicles(ctx context.Context, vehicles []models.Vehicle) error

	Maintenances(ctx context.Context) ([]models.MaintenanceRecord, error)
	SaveMaintenance(ctx context.Context, rec models.MaintenanceRecord) error
	DeleteMaintenance(ctx context.Context, id string) error
	ReplaceMaintenances(ctx context.Context, recs []models.MaintenanceRecord) error

	Collaborators(ctx context.Context) ([]models.Collaborator, error)
	SaveCollaborator(ctx context.Context, c models.Collaborator) error
	DeleteCollaborator(ctx context.Context, id string) error
	ReplaceCollaborators(ctx context.Context, collaborators []models.Collaborator) error

	// AccessGroups seeds the default system groups when the collection is empty.
	AccessGroups(ctx context.Context) ([]models.AccessGroup, error)
	AccessGroupByID(ctx context.Context, id string) (*models.AccessGroup, error)
	SaveAccessGroup(ctx context.Context, g models.AccessGroup) error
	DeleteAccessGroup(ctx context.Context, id string) error
	ReplaceAccessGroups(ctx context.Context, groups []models.AccessGroup) error

	SystemSettings(ctx context.Context) ([]models.SystemSettingItem, error)
	SettingsByType(ctx context.Context, t models.SystemSettingType) ([]models.SystemSettingItem, error)
	SaveSystemSetting(ctx context.Context, item models.SystemSettingItem) error
	DeleteSystemSetting(ctx context.Context, id string) error
	ReplaceSystemSettings(ctx context.Context, items []models.SystemSettingItem) error

	// UserRole is the currently simulated access role, a single scalar.
	UserRole(ctx context.Context) (string, error)
	SetUserRole(ctx context.Context, role string) error
}
