package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Teodagher/jove-jewelry-sub004/internal/config"
	"github.com/Teodagher/jove-jewelry-sub004/internal/db"
	"github.com/Teodagher/jove-jewelry-sub004/internal/importer"
	catalogrepo "github.com/Teodagher/jove-jewelry-sub004/internal/repository/catalog"
	catalogsvc "github.com/Teodagher/jove-jewelry-sub004/internal/service/catalog"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to catalog JSON export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC)
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	svc := catalogsvc.New(catalogrepo.NewPostgres(pool, logger))
	imp := importer.NewJSONImporter(f, svc)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d items: %v", count, err)
	}

	fmt.Printf("Imported %d items in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
