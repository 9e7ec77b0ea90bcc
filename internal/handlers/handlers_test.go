package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/session"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

type testEnv struct {
	server *httptest.Server
	store  store.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	assert.NoError(t, err)
	sessions, err := session.NewService()
	assert.NoError(t, err)

	server := httptest.NewServer(NewRouter(s, sessions))
	t.Cleanup(server.Close)
	return &testEnv{server: server, store: s}
}

// openSession issues a token for the named role through the API.
func (e *testEnv) openSession(t *testing.T, role string) string {
	t.Helper()
	body, _ := json.Marshal(IssueRequest{Role: role})
	resp, err := http.Post(e.server.URL+"/api/session", "application/json", bytes.NewReader(body))
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var issued IssueResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&issued))
	return issued.Token
}

func (e *testEnv) do(t *testing.T, method, path, token string, payload interface{}) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, e.server.URL+path, body)
	assert.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/api/health")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionIssue(t *testing.T) {
	env := newTestEnv(t)

	t.Run("empty role falls back to persisted role", func(t *testing.T) {
		body, _ := json.Marshal(IssueRequest{})
		resp, err := http.Post(env.server.URL+"/api/session", "application/json", bytes.NewReader(body))
		assert.NoError(t, err)
		var issued IssueResponse
		decode(t, resp, &issued)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, store.DefaultRole, issued.Role)
		assert.NotEmpty(t, issued.Token)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		body, _ := json.Marshal(IssueRequest{Role: "Estagiário"})
		resp, err := http.Post(env.server.URL+"/api/session", "application/json", bytes.NewReader(body))
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("role switch is persisted", func(t *testing.T) {
		env.openSession(t, "Motorista")
		role, err := env.store.UserRole(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "Motorista", role)
	})
}

func TestVehicleEndpoints(t *testing.T) {
	env := newTestEnv(t)
	admin := env.openSession(t, "Administrador")

	t.Run("create assigns an id", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/api/vehicles", admin, models.Vehicle{Plate: "ABC1D23", Model: "Hilux", Brand: "Toyota"})
		var created models.Vehicle
		decode(t, resp, &created)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, models.StatusAvailable, created.Status, "status defaults to available")
	})

	t.Run("missing plate is rejected", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/api/vehicles", admin, models.Vehicle{Model: "Hilux", Brand: "Toyota"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("delete unknown id is 404", func(t *testing.T) {
		resp := env.do(t, http.MethodDelete, "/api/vehicles/does-not-exist", admin, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("lookup by plate ignores formatting", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/vehicles/lookup?plate=abc-1d23", admin, nil)
		var found models.Vehicle
		decode(t, resp, &found)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "ABC1D23", found.Plate)
	})
}

func TestVehicleEndpoints_PermissionDenied(t *testing.T) {
	env := newTestEnv(t)
	driver := env.openSession(t, "Motorista")

	resp := env.do(t, http.MethodPost, "/api/vehicles", driver, models.Vehicle{Plate: "ABC1D23", Model: "Hilux", Brand: "Toyota"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestChecklistCreate(t *testing.T) {
	env := newTestEnv(t)
	admin := env.openSession(t, "Administrador")

	vehicle := models.Vehicle{Plate: "DEF4G56", Model: "Ranger", Brand: "Ford", Status: models.StatusAvailable}
	resp := env.do(t, http.MethodPost, "/api/vehicles", admin, vehicle)
	resp.Body.Close()

	t.Run("valid checklist updates vehicle status", func(t *testing.T) {
		rec := models.ChecklistRecord{
			VehiclePlate: "DEF4G56",
			DriverName:   "Carlos Lima",
			Odometer:     42000,
			Status:       models.StatusUnavailable,
			Items:        map[string]models.ChecklistStatus{"mec_oil": models.ItemNOK},
		}
		resp := env.do(t, http.MethodPost, "/api/checklists", admin, rec)
		var created models.ChecklistRecord
		decode(t, resp, &created)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.NotEmpty(t, created.ID)
		assert.NotEmpty(t, created.Date, "date defaults to now")

		stored, err := env.store.VehicleByPlate(context.Background(), "DEF4G56")
		assert.NoError(t, err)
		assert.Equal(t, models.StatusUnavailable, stored.Status)
	})

	t.Run("unknown item id is rejected", func(t *testing.T) {
		rec := models.ChecklistRecord{
			VehiclePlate: "DEF4G56",
			DriverName:   "Carlos Lima",
			Status:       models.StatusAvailable,
			Items:        map[string]models.ChecklistStatus{"mec_flux_capacitor": models.ItemOK},
		}
		resp := env.do(t, http.MethodPost, "/api/checklists", admin, rec)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing required photo is rejected", func(t *testing.T) {
		rec := models.ChecklistRecord{
			VehiclePlate: "DEF4G56",
			DriverName:   "Carlos Lima",
			Status:       models.StatusAvailable,
			Photos:       []models.PhotoEvidence{{ID: "photo_front", Label: "Frente", Required: true}},
		}
		resp := env.do(t, http.MethodPost, "/api/checklists", admin, rec)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestChecklistSchemaIsPublic(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/api/schema/checklist")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGroupEndpoints(t *testing.T) {
	env := newTestEnv(t)
	admin := env.openSession(t, "Administrador")

	t.Run("system group cannot be deleted", func(t *testing.T) {
		resp := env.do(t, http.MethodDelete, "/api/groups/Administrador", admin, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("nameless group is rejected", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/api/groups", admin, models.AccessGroup{Permissions: []models.Permission{models.PermViewDashboard}})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown permission is rejected", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/api/groups", admin, models.AccessGroup{Name: "Equipe X", Permissions: []models.Permission{"fly_helicopter"}})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("custom group round trip", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/api/groups", admin, models.AccessGroup{Name: "Terceirizados", Permissions: []models.Permission{models.PermViewDashboard}})
		var created models.AccessGroup
		decode(t, resp, &created)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.NotEmpty(t, created.ID)

		del := env.do(t, http.MethodDelete, "/api/groups/"+created.ID, admin, nil)
		defer del.Body.Close()
		assert.Equal(t, http.StatusNoContent, del.StatusCode)
	})
}

func TestCollaboratorEndpoints(t *testing.T) {
	env := newTestEnv(t)
	admin := env.openSession(t, "Administrador")

	t.Run("password is hashed and never echoed", func(t *testing.T) {
		c := models.Collaborator{Name: "Maria Silva", RegistrationID: "1001", Group: "Motorista", Password: "inicial-123"}
		resp := env.do(t, http.MethodPost, "/api/collaborators", admin, c)
		var created models.Collaborator
		decode(t, resp, &created)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Empty(t, created.Password)

		stored, err := env.store.Collaborators(context.Background())
		assert.NoError(t, err)
		assert.Len(t, stored, 1)
		assert.NotEmpty(t, stored[0].Password)
		assert.NotEqual(t, "inicial-123", stored[0].Password)
	})

	t.Run("unknown group is rejected", func(t *testing.T) {
		c := models.Collaborator{Name: "João", RegistrationID: "1002", Group: "Inexistente"}
		resp := env.do(t, http.MethodPost, "/api/collaborators", admin, c)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("list blanks passwords", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/collaborators", admin, nil)
		var listed []models.Collaborator
		decode(t, resp, &listed)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		for _, c := range listed {
			assert.Empty(t, c.Password)
		}
	})
}

func TestReportExport(t *testing.T) {
	env := newTestEnv(t)
	admin := env.openSession(t, "Administrador")

	t.Run("empty store is 404", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/reports/checklists", admin, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	rec := models.ChecklistRecord{
		VehiclePlate: "GHI7J89",
		DriverName:   "Ana Souza",
		Status:       models.StatusAvailable,
	}
	created := env.do(t, http.MethodPost, "/api/checklists", admin, rec)
	created.Body.Close()

	t.Run("csv download", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/reports/checklists", admin, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
		assert.Contains(t, resp.Header.Get("Content-Disposition"), ".csv")
	})

	t.Run("xlsx download", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/reports/checklists?format=xlsx", admin, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
	})

	t.Run("filters that match nothing are 404", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/reports/checklists?plate=ZZZ", admin, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("unknown format is 400", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/reports/checklists?format=pdf", admin, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestBackupEndpoints(t *testing.T) {
	env := newTestEnv(t)
	admin := env.openSession(t, "Administrador")

	vehicle := models.Vehicle{Plate: "JKL0M12", Model: "S10", Brand: "Chevrolet"}
	resp := env.do(t, http.MethodPost, "/api/vehicles", admin, vehicle)
	resp.Body.Close()

	snapResp := env.do(t, http.MethodGet, "/api/backup", admin, nil)
	var snap models.BackupData
	decode(t, snapResp, &snap)
	assert.Equal(t, http.StatusOK, snapResp.StatusCode)
	assert.Len(t, snap.Data.Vehicles, 1)

	t.Run("restore round trip", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/api/backup/restore", admin, snap)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		vehicles, err := env.store.Vehicles(context.Background())
		assert.NoError(t, err)
		assert.Len(t, vehicles, 1)
	})

	t.Run("invalid backup is 400", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/api/backup/restore", admin, models.BackupData{Version: "1.0"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestMaintenanceEndpoints(t *testing.T) {
	env := newTestEnv(t)
	admin := env.openSession(t, "Administrador")

	t.Run("save recomputes total cost", func(t *testing.T) {
		rec := models.MaintenanceRecord{
			VehiclePlate: "ABC1D23",
			Date:         "2026-06-01",
			Type:         models.MaintenanceOilChange,
			PartsCost:    300,
			LaborCost:    120,
			TotalCost:    1, // ignored
		}
		resp := env.do(t, http.MethodPost, "/api/maintenance", admin, rec)
		var created models.MaintenanceRecord
		decode(t, resp, &created)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.NotEmpty(t, created.ID)
		assert.InDelta(t, 420.0, created.TotalCost, 0.001)
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		rec := models.MaintenanceRecord{VehiclePlate: "ABC1D23", Date: "2026-06-01", Type: "PAINTING"}
		resp := env.do(t, http.MethodPost, "/api/maintenance", admin, rec)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("delete unknown id is 404", func(t *testing.T) {
		resp := env.do(t, http.MethodDelete, "/api/maintenance/missing", admin, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	admin := env.openSession(t, "Administrador")

	resp := env.do(t, http.MethodGet, "/api/dashboard", admin, nil)
	var dash DashboardResponse
	decode(t, resp, &dash)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, dash.Stats.TotalInspections)
	assert.NotNil(t, dash.MaintenanceAlerts)
	assert.NotNil(t, dash.OilStatuses)
}

func TestSettingsEndpoints(t *testing.T) {
	env := newTestEnv(t)
	admin := env.openSession(t, "Administrador")

	t.Run("invalid type filter is rejected", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/settings?type=COLORS", admin, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("save and filter by type", func(t *testing.T) {
		item := models.SystemSettingItem{Type: models.SettingUnits, Name: "Matriz"}
		resp := env.do(t, http.MethodPost, "/api/settings", admin, item)
		resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		list := env.do(t, http.MethodGet, "/api/settings?type=UNITS", admin, nil)
		var items []models.SystemSettingItem
		decode(t, list, &items)
		assert.Equal(t, http.StatusOK, list.StatusCode)
		assert.Len(t, items, 1)
	})
}
