package main

import (
	"context"
	"log"
	"os"

	"github.com/Teodagher/jove-jewelry-sub004/internal/config"
	"github.com/Teodagher/jove-jewelry-sub004/internal/db"
	"github.com/Teodagher/jove-jewelry-sub004/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool, logger); err != nil {
		logger.Fatalf("seed: %v", err)
	}
	logger.Printf("seed data applied")
}
