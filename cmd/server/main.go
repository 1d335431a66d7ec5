package main

import (
	"log"
	"net/http"
	"os"

	"github.com/youruser/awayteam/internal/api"
	"github.com/youruser/awayteam/internal/config"
	"github.com/youruser/awayteam/internal/pipeline"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG"))
	if err != nil {
		log.Fatal(err)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Load the workbook at startup (best-effort)
	data := os.Getenv("DATA")
	if data == "" {
		data = "data"
	}
	cat, err := pipeline.LoadFile(data, cfg)
	if err != nil {
		log.Println("Warning: failed to load workbook at startup:", err)
		cat = &pipeline.Catalog{}
	}

	r := api.NewRouter(p, cat, cfg.OutputDir)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
