// Command seed fills a running fleet control API with demo data: a handful
// of vehicles, their collaborators, service orders and inspection checklists.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

var authToken string

var brands = map[string][]string{
	"Fiat":       {"Strada", "Toro", "Mobi"},
	"Volkswagen": {"Saveiro", "Gol", "Amarok"},
	"Chevrolet":  {"S10", "Onix", "Montana"},
	"Toyota":     {"Hilux", "Corolla", "Etios"},
}

var units = []string{"Matriz", "Filial Norte", "Filial Sul"}
var sectors = []string{"Logística", "Manutenção", "Administrativo", "Operações"}
var drivers = []string{"Carlos Silva", "Ana Souza", "João Pereira", "Maria Lima", "Pedro Santos"}

func randomPlate() string {
	letters := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return fmt.Sprintf("%c%c%c%d%c%d%d",
		letters[rand.Intn(26)], letters[rand.Intn(26)], letters[rand.Intn(26)],
		rand.Intn(10), letters[rand.Intn(26)], rand.Intn(10), rand.Intn(10))
}

func authorizedPost(url string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func openSession(apiURL string) error {
	resp, err := authorizedPost(apiURL+"/api/session", map[string]string{"role": "Administrador"})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("session request failed: %s", resp.Status)
	}
	var session struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return err
	}
	authToken = session.Token
	return nil
}

func createVehicle(apiURL string) (string, error) {
	keys := make([]string, 0, len(brands))
	for b := range brands {
		keys = append(keys, b)
	}
	brand := keys[rand.Intn(len(keys))]
	model := brands[brand][rand.Intn(len(brands[brand]))]

	vehicle := map[string]interface{}{
		"plate":             randomPlate(),
		"brand":             brand,
		"model":             model,
		"year":              fmt.Sprintf("%d", 2018+rand.Intn(7)),
		"unit":              units[rand.Intn(len(units))],
		"sector":            sectors[rand.Intn(len(sectors))],
		"status":            "Apto para uso",
		"lastLicensingDate": fmt.Sprintf("%d-%02d", 2024+rand.Intn(2), 1+rand.Intn(12)),
	}

	resp, err := authorizedPost(apiURL+"/api/vehicles", vehicle)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("vehicle request failed: %s", resp.Status)
	}
	var created struct {
		Plate string `json:"plate"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", err
	}
	return created.Plate, nil
}

func createChecklist(apiURL, plate string, odometer int) error {
	items := map[string]string{}
	for _, id := range []string{"mec_oil", "mec_water", "tire_pressure", "elec_horn", "safe_seatbelt"} {
		status := "OK"
		if rand.Intn(10) == 0 {
			status = "NOK"
		}
		items[id] = status
	}

	checklist := map[string]interface{}{
		"vehiclePlate": plate,
		"driverName":   drivers[rand.Intn(len(drivers))],
		"unit":         units[rand.Intn(len(units))],
		"sector":       sectors[rand.Intn(len(sectors))],
		"odometer":     odometer,
		"date":         time.Now().Add(-time.Duration(rand.Intn(72)) * time.Hour).Format(time.RFC3339),
		"status":       "Apto para uso",
		"items":        items,
		"observations": "",
	}

	resp, err := authorizedPost(apiURL+"/api/checklists", checklist)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("checklist request failed: %s", resp.Status)
	}
	return nil
}

func createMaintenance(apiURL, plate string, odometer int) error {
	nextKm := odometer + 5000 + rand.Intn(5000)
	record := map[string]interface{}{
		"vehiclePlate":        plate,
		"date":                time.Now().AddDate(0, 0, -rand.Intn(120)).Format("2006-01-02"),
		"type":                []string{"PREVENTIVE", "CORRECTIVE", "OIL_CHANGE"}[rand.Intn(3)],
		"description":         "Serviço de rotina",
		"provider":            "Oficina Central",
		"odometer":            odometer,
		"partsCost":           float64(100 + rand.Intn(900)),
		"laborCost":           float64(50 + rand.Intn(400)),
		"status":              "COMPLETED",
		"nextMaintenanceDate": time.Now().AddDate(0, rand.Intn(8), 0).Format("2006-01-02"),
		"nextMaintenanceKm":   nextKm,
	}

	resp, err := authorizedPost(apiURL+"/api/maintenance", record)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("maintenance request failed: %s", resp.Status)
	}
	return nil
}

func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	vehicleCount := 8
	if err := openSession(apiURL); err != nil {
		log.WithError(err).Fatal("Failed to open session")
	}

	for i := 0; i < vehicleCount; i++ {
		plate, err := createVehicle(apiURL)
		if err != nil {
			log.WithError(err).Error("Failed to create vehicle")
			continue
		}
		odometer := 20000 + rand.Intn(80000)
		if err := createMaintenance(apiURL, plate, odometer-rand.Intn(3000)); err != nil {
			log.WithError(err).Error("Failed to create maintenance record")
		}
		if err := createChecklist(apiURL, plate, odometer); err != nil {
			log.WithError(err).Error("Failed to create checklist")
		}
		log.WithField("plate", plate).Info("Seeded vehicle")
	}
}
