package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/inspecthq/ferrite/internal/config"
	"github.com/inspecthq/ferrite/internal/driver"
	"github.com/inspecthq/ferrite/internal/seed"
	"github.com/inspecthq/ferrite/internal/store"
)

func main() {
	collection := flag.String("collection", "", "single collection to seed (equipment, fluids, deterioration, failure_scenarios); empty seeds all")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	d, err := driver.NewMemgraphDriver(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
	if err != nil {
		log.Fatalf("Failed to connect to Memgraph: %v", err)
	}
	ctx := context.Background()
	defer d.Close(ctx)

	if err := seed.Run(ctx, store.New(d), *collection); err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	log.Println("Database initialization completed successfully!")
}
