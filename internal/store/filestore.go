package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
)

// Collection file names under the data directory.
const (
	fileChecklists     = "checklists.json"
	fileVehicles       = "vehicles.json"
	fileCollaborators  = "collaborators.json"
	fileAccessGroups   = "access_groups.json"
	fileMaintenance    = "maintenance.json"
	fileSystemSettings = "system_settings.json"
	fileUserRole       = "user_role.json"
)

// FileStore persists each collection as one JSON array file under a data
// directory. Every write rewrites the whole collection; a file that is missing
// or fails to parse is treated as an empty collection rather than an error.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a store rooted at dir, creating the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// read loads a collection file into out. Corrupt or missing files leave out
// at its zero value.
func (s *FileStore) read(name string, out interface{}) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("collection", name).Warn("Failed to read collection, treating as empty")
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.WithError(err).WithField("collection", name).Warn("Failed to parse collection, treating as empty")
	}
}

// write serializes a collection and replaces its file via rename so a crash
// mid-write never leaves a truncated collection behind.
func (s *FileStore) write(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

// --- Checklists ---

func (s *FileStore) Checklists(ctx context.Context) ([]models.ChecklistRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := []models.ChecklistRecord{}
	s.read(fileChecklists, &recs)
	return recs, nil
}

func (s *FileStore) SaveChecklist(ctx context.Context, rec models.ChecklistRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := []models.ChecklistRecord{}
	s.read(fileChecklists, &recs)
	recs = append([]models.ChecklistRecord{rec}, recs...)
	if err := s.write(fileChecklists, recs); err != nil {
		return err
	}

	// Completing an inspection updates the registry status of that vehicle.
	vehicles := []models.Vehicle{}
	s.read(fileVehicles, &vehicles)
	plate := models.NormalizePlate(rec.VehiclePlate)
	for i := range vehicles {
		if models.NormalizePlate(vehicles[i].Plate) == plate {
			vehicles[i].Status = rec.Status
			return s.write(fileVehicles, vehicles)
		}
	}
	return nil
}

func (s *FileStore) ReplaceChecklists(ctx context.Context, recs []models.ChecklistRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(fileChecklists, recs)
}

// --- Vehicles ---

func (s *FileStore) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vehicles := []models.Vehicle{}
	s.read(fileVehicles, &vehicles)
	return vehicles, nil
}

func (s *FileStore) SaveVehicle(ctx context.Context, v models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	vehicles := []models.Vehicle{}
	s.read(fileVehicles, &vehicles)
	for i := range vehicles {
		if vehicles[i].ID == v.ID {
			vehicles[i] = v
			return s.write(fileVehicles, vehicles)
		}
	}
	vehicles = append(vehicles, v)
	return s.write(fileVehicles, vehicles)
}

func (s *FileStore) DeleteVehicle(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	vehicles := []models.Vehicle{}
	s.read(fileVehicles, &vehicles)
	kept := vehicles[:0]
	found := false
	for _, v := range vehicles {
		if v.ID == id {
			found = true
			continue
		}
		kept = append(kept, v)
	}
	if !found {
		return ErrNotFound
	}
	return s.write(fileVehicles, kept)
}

func (s *FileStore) VehicleByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	vehicles, err := s.Vehicles(ctx)
	if err != nil {
		return nil, err
	}
	want := models.NormalizePlate(plate)
	for i := range vehicles {
		if models.NormalizePlate(vehicles[i].Plate) == want {
			return &vehicles[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) VehicleByCode(ctx context.Context, code string) (*models.Vehicle, error) {
	vehicles, err := s.Vehicles(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vehicles {
		if vehicles[i].Code != "" && strings.EqualFold(vehicles[i].Code, code) {
			return &vehicles[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) ReplaceVehicles(ctx context.Context, vehicles []models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(fileVehicles, vehicles)
}

// --- Maintenance ---

func (s *FileStore) Maintenances(ctx context.Context) ([]models.MaintenanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := []models.MaintenanceRecord{}
	s.read(fileMaintenance, &recs)
	return recs, nil
}

func (s *FileStore) SaveMaintenance(ctx context.Context, rec models.MaintenanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := []models.MaintenanceRecord{}
	s.read(fileMaintenance, &recs)
	for i := range recs {
		if recs[i].ID == rec.ID {
			recs[i] = rec
			return s.write(fileMaintenance, recs)
		}
	}
	// New service orders go to the top, newest first.
	recs = append([]models.MaintenanceRecord{rec}, recs...)
	return s.write(fileMaintenance, recs)
}

func (s *FileStore) DeleteMaintenance(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := []models.MaintenanceRecord{}
	s.read(fileMaintenance, &recs)
	kept := recs[:0]
	found := false
	for _, rec := range recs {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return ErrNotFound
	}
	return s.write(fileMaintenance, kept)
}

func (s *FileStore) ReplaceMaintenances(ctx context.Context, recs []models.MaintenanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(fileMaintenance, recs)
}

// --- Collaborators ---

func (s *FileStore) Collaborators(ctx context.Context) ([]models.Collaborator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	collaborators := []models.Collaborator{}
	s.read(fileCollaborators, &collaborators)
	return collaborators, nil
}

func (s *FileStore) SaveCollaborator(ctx context.Context, c models.Collaborator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	collaborators := []models.Collaborator{}
	s.read(fileCollaborators, &collaborators)
	for i := range collaborators {
		if collaborators[i].ID == c.ID {
			collaborators[i] = c
			return s.write(fileCollaborators, collaborators)
		}
	}
	collaborators = append(collaborators, c)
	return s.write(fileCollaborators, collaborators)
}

func (s *FileStore) DeleteCollaborator(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	collaborators := []models.Collaborator{}
	s.read(fileCollaborators, &collaborators)
	kept := collaborators[:0]
	found := false
	for _, c := range collaborators {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrNotFound
	}
	return s.write(fileCollaborators, kept)
}

func (s *FileStore) ReplaceCollaborators(ctx context.Context, collaborators []models.Collaborator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(fileCollaborators, collaborators)
}

// --- Access groups ---

func (s *FileStore) AccessGroups(ctx context.Context) ([]models.AccessGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessGroupsLocked()
}

func (s *FileStore) accessGroupsLocked() ([]models.AccessGroup, error) {
	groups := []models.AccessGroup{}
	s.read(fileAccessGroups, &groups)
	if len(groups) == 0 {
		groups = models.DefaultAccessGroups()
		if err := s.write(fileAccessGroups, groups); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

func (s *FileStore) AccessGroupByID(ctx context.Context, id string) (*models.AccessGroup, error) {
	groups, err := s.AccessGroups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == id {
			return &groups[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) SaveAccessGroup(ctx context.Context, g models.AccessGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	groups, err := s.accessGroupsLocked()
	if err != nil {
		return err
	}
	for i := range groups {
		if groups[i].ID == g.ID {
			groups[i] = g
			return s.write(fileAccessGroups, groups)
		}
	}
	groups = append(groups, g)
	return s.write(fileAccessGroups, groups)
}

func (s *FileStore) DeleteAccessGroup(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	groups, err := s.accessGroupsLocked()
	if err != nil {
		return err
	}
	kept := make([]models.AccessGroup, 0, len(groups))
	found := false
	for _, g := range groups {
		if g.ID == id {
			if g.IsSystem {
				return ErrSystemGroup
			}
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return ErrNotFound
	}
	return s.write(fileAccessGroups, kept)
}

func (s *FileStore) ReplaceAccessGroups(ctx context.Context, groups []models.AccessGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(fileAccessGroups, groups)
}

// --- System settings ---

func (s *FileStore) SystemSettings(ctx context.Context) ([]models.SystemSettingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := []models.SystemSettingItem{}
	s.read(fileSystemSettings, &items)
	return items, nil
}

func (s *FileStore) SettingsByType(ctx context.Context, t models.SystemSettingType) ([]models.SystemSettingItem, error) {
	items, err := s.SystemSettings(ctx)
	if err != nil {
		return nil, err
	}
	filtered := []models.SystemSettingItem{}
	for _, item := range items {
		if item.Type == t {
			filtered = append(filtered, item)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
	})
	return filtered, nil
}

func (s *FileStore) SaveSystemSetting(ctx context.Context, item models.SystemSettingItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := []models.SystemSettingItem{}
	s.read(fileSystemSettings, &items)
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			return s.write(fileSystemSettings, items)
		}
	}
	items = append(items, item)
	return s.write(fileSystemSettings, items)
}

func (s *FileStore) DeleteSystemSetting(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := []models.SystemSettingItem{}
	s.read(fileSystemSettings, &items)
	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return ErrNotFound
	}
	return s.write(fileSystemSettings, kept)
}

func (s *FileStore) ReplaceSystemSettings(ctx context.Context, items []models.SystemSettingItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(fileSystemSettings, items)
}

// --- Simulated role ---

func (s *FileStore) UserRole(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	role := ""
	s.read(fileUserRole, &role)
	if role == "" {
		role = DefaultRole
	}
	return role, nil
}

func (s *FileStore) SetUserRole(ctx context.Context, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(fileUserRole, role)
}
