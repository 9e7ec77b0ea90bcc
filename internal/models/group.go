package models

// Permission identifies one capability an access group can grant.
type Permission string

const (
	PermViewDashboard       Permission = "view_dashboard"
	PermViewHistory         Permission = "view_history"
	PermManageVehicles      Permission = "manage_vehicles"
	PermManageCollaborators Permission = "manage_collaborators"
	PermManageGroups        Permission = "manage_groups"
	PermCreateChecklist     Permission = "create_checklist"
	PermManageMaintenance   Permission = "manage_maintenance"
)

// IsValidPermission checks if a permission is one of the known values.
func IsValidPermission(p Permission) bool {
	switch p {
	case PermViewDashboard, PermViewHistory, PermManageVehicles,
		PermManageCollaborators, PermManageGroups, PermCreateChecklist,
		PermManageMaintenance:
		return true
	default:
		return false
	}
}

// AccessGroup represents a named set of permissions assigned to collaborators.
// Groups flagged as system groups cannot be deleted.
type AccessGroup struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	Permissions []Permission `bson:"permissions" json:"permissions"`
	IsSystem    bool         `bson:"isSystem,omitempty" json:"isSystem,omitempty"`
}

// HasPermission checks if the group grants a specific permission.
func (g *AccessGroup) HasPermission(p Permission) bool {
	for _, have := range g.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// DefaultAccessGroups returns the groups seeded into an empty store. The group
// names double as IDs for compatibility with data exported by older releases.
func DefaultAccessGroups() []AccessGroup {
	return []AccessGroup{
		{
			ID:          "Administrador",
			Name:        "Administrador",
			Description: "Acesso total ao sistema",
			IsSystem:    true,
			Permissions: []Permission{
				PermViewDashboard, PermViewHistory, PermManageVehicles,
				PermManageCollaborators, PermManageGroups, PermCreateChecklist,
				PermManageMaintenance,
			},
		},
		{
			ID:          "Gestor",
			Name:        "Gestor",
			Description: "Gerenciamento de frota e relatórios",
			IsSystem:    true,
			Permissions: []Permission{
				PermViewDashboard, PermViewHistory, PermManageVehicles,
				PermManageCollaborators, PermManageMaintenance,
			},
		},
		{
			ID:          "Supervisor",
			Name:        "Supervisor",
			Description: "Supervisão de manutenção e veículos",
			IsSystem:    true,
			Permissions: []Permission{
				PermViewDashboard, PermViewHistory, PermManageVehicles,
				PermManageMaintenance, PermCreateChecklist,
			},
		},
		{
			ID:          "Motorista",
			Name:        "Motorista",
			Description: "Apenas realização de checklists",
			IsSystem:    true,
			Permissions: []Permission{PermCreateChecklist},
		},
		{
			ID:          "Mecânico",
			Name:        "Mecânico",
			Description: "Realização de checklists e manutenção",
			IsSystem:    true,
			Permissions: []Permission{PermCreateChecklist, PermManageMaintenance},
		},
	}
}
