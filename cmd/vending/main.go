package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"vending-system/internal/catalog"
	"vending-system/internal/repository"
	"vending-system/internal/service"
	"vending-system/internal/shell"
	"vending-system/pkg/config"
	"vending-system/pkg/logging"
)

func main() {
	cfg := config.Load()

	if err := logging.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zap.L().Sync()

	ctx := context.Background()

	// Seed the catalog, from file if configured, otherwise the demo data
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			zap.L().Fatal("failed to load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
		}
		cat = loaded
	}

	inventory := repository.NewInventoryRepository()
	suggestions := repository.NewSuggestionRepository()
	if err := cat.Apply(ctx, inventory, suggestions); err != nil {
		zap.L().Fatal("failed to seed catalog", zap.Error(err))
	}

	svc := service.NewTransactionService(inventory, suggestions)
	sh := shell.New(inventory, svc, os.Stdin, os.Stdout)

	zap.L().Info("vending session started",
		zap.Int("items", len(cat.Items)),
		zap.Int("suggestions", len(cat.Suggestions)),
	)

	if err := sh.Run(ctx); err != nil {
		zap.L().Fatal("session aborted", zap.Error(err))
	}

	zap.L().Info("vending session finished")
}
