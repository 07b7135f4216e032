package main

import (
	"encoding/json"
	"log"
	"time"

	"scholarflow/app/config"
	"scholarflow/app/models"
	"scholarflow/app/store"
)

// Seeds the configured state backend with the initial dataset. Refuses to
// overwrite an existing snapshot.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config:", err)
	}

	var backend store.Backend
	if cfg.State.PostgresURI != "" {
		pg, err := store.NewPostgresBackend(cfg.State.PostgresURI)
		if err != nil {
			log.Fatal("open postgres backend:", err)
		}
		defer pg.Close()
		backend = pg
	} else {
		fb, err := store.NewFileBackend(cfg.State.Path)
		if err != nil {
			log.Fatal("open file backend:", err)
		}
		backend = fb
	}

	if _, present, err := backend.Load(); err != nil {
		log.Fatal("check existing state:", err)
	} else if present {
		log.Fatal("state already initialized, refusing to overwrite")
	}

	seed := models.SeedState(time.Now().UTC().Format(time.RFC3339))
	data, err := json.Marshal(seed)
	if err != nil {
		log.Fatal("encode seed state:", err)
	}
	if err := backend.Save(data); err != nil {
		log.Fatal("write seed state:", err)
	}

	log.Printf("Seeded state with %d users, %d students, %d classes, %d subjects",
		len(seed.Users), len(seed.Students), len(seed.Classes), len(seed.Subjects))
}
