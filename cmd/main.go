package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/handlers"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/session"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment")
	}

	sessions, err := session.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to create session service")
	}

	s, err := buildStore(context.Background())
	if err != nil {
		log.WithError(err).Fatal("Failed to open record store")
	}

	router := handlers.NewRouter(s, sessions)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.WithField("port", port).Info("Fleet control API listening")
	log.Fatal(server.ListenAndServe())
}

// buildStore selects the storage backend: MongoDB when MONGO_URI is set,
// otherwise a JSON file store under FLEET_DATA_DIR.
func buildStore(ctx context.Context) (store.Store, error) {
	if os.Getenv("MONGO_URI") != "" {
		client, err := store.ConnectMongo(ctx)
		if err != nil {
			return nil, err
		}
		dbName := os.Getenv("MONGO_DB")
		if dbName == "" {
			dbName = "fleet_control"
		}
		log.WithField("database", dbName).Info("Using MongoDB store")
		return store.NewMongoStore(client.Database(dbName))
	}

	dir := os.Getenv("FLEET_DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	log.WithField("dir", dir).Info("Using file store")
	return store.NewFileStore(dir)
}
