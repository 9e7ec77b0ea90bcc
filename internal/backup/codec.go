// Package backup snapshots the whole record store into a single versioned
// document and restores it wholesale.
package backup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

// Version is the backup document format tag.
const Version = "1.0"

var (
	// ErrInvalidBackup means the document is missing its data section.
	ErrInvalidBackup = errors.New("invalid backup format")
	// ErrInvalidChecklists means the mandatory checklist collection is absent.
	ErrInvalidChecklists = errors.New("backup has no checklist collection")
)

// Snapshot captures every collection into one point-in-time backup document.
func Snapshot(ctx context.Context, s store.Store) (*models.BackupData, error) {
	checklists, err := s.Checklists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read checklists: %w", err)
	}
	vehicles, err := s.Vehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read vehicles: %w", err)
	}
	collaborators, err := s.Collaborators(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read collaborators: %w", err)
	}
	groups, err := s.AccessGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read access groups: %w", err)
	}
	maintenances, err := s.Maintenances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read maintenance records: %w", err)
	}
	settings, err := s.SystemSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read system settings: %w", err)
	}

	return &models.BackupData{
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data: &models.BackupCollections{
			Checklists:     checklists,
			Vehicles:       vehicles,
			Collaborators:  collaborators,
			AccessGroups:   groups,
			Maintenance:    maintenances,
			SystemSettings: settings,
		},
	}, nil
}

// Restore validates the backup and replaces each present collection
// wholesale. Collections absent from the backup are left untouched. When
// validation fails nothing is applied.
func Restore(ctx context.Context, s store.Store, b *models.BackupData) error {
	if b == nil || b.Data == nil {
		return ErrInvalidBackup
	}
	if b.Data.Checklists == nil {
		return ErrInvalidChecklists
	}

	if err := s.ReplaceChecklists(ctx, b.Data.Checklists); err != nil {
		return fmt.Errorf("failed to restore checklists: %w", err)
	}
	if b.Data.Vehicles != nil {
		if err := s.ReplaceVehicles(ctx, b.Data.Vehicles); err != nil {
			return fmt.Errorf("failed to restore vehicles: %w", err)
		}
	}
	if b.Data.Collaborators != nil {
		if err := s.ReplaceCollaborators(ctx, b.Data.Collaborators); err != nil {
			return fmt.Errorf("failed to restore collaborators: %w", err)
		}
	}
	if b.Data.AccessGroups != nil {
		if err := s.ReplaceAccessGroups(ctx, b.Data.AccessGroups); err != nil {
			return fmt.Errorf("failed to restore access groups: %w", err)
		}
	}
	if b.Data.Maintenance != nil {
		if err := s.ReplaceMaintenances(ctx, b.Data.Maintenance); err != nil {
			return fmt.Errorf("failed to restore maintenance records: %w", err)
		}
	}
	if b.Data.SystemSettings != nil {
		if err := s.ReplaceSystemSettings(ctx, b.Data.SystemSettings); err != nil {
			return fmt.Errorf("failed to restore system settings: %w", err)
		}
	}
	return nil
}
