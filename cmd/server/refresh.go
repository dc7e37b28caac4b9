package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spellscribe/spells-api/internal/config"
	"github.com/spellscribe/spells-api/internal/orchestrators/spells"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Force a registry refresh",
	Long:  `Scrape the reference site and upsert the full spell/class/school registry, regardless of current state.`,
	RunE:  runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	service, err := buildService(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build service: %w", err)
	}

	out, err := service.RefreshRegistry(context.Background(), &spells.RefreshRegistryInput{})
	if err != nil {
		return fmt.Errorf("registry refresh failed: %w", err)
	}

	logger.Info("registry refreshed",
		"spells", out.SpellCount,
		"classes", out.ClassCount,
		"schools", out.SchoolCount,
	)
	return nil
}
