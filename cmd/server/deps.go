package main

import (
	"log/slog"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/spellscribe/spells-api/internal/clients/render"
	"github.com/spellscribe/spells-api/internal/clients/scraper"
	"github.com/spellscribe/spells-api/internal/config"
	"github.com/spellscribe/spells-api/internal/images"
	"github.com/spellscribe/spells-api/internal/orchestrators/spells"
	"github.com/spellscribe/spells-api/internal/redis"
	"github.com/spellscribe/spells-api/internal/repositories/chatsettings"
	"github.com/spellscribe/spells-api/internal/repositories/registry"
	"github.com/spellscribe/spells-api/internal/repositories/spellbook"
)

// buildService wires every dependency of the spells orchestrator from
// configuration: sqlite registry, redis chat settings, scraper, and the
// render-backed image cache.
func buildService(cfg *config.Config, logger *slog.Logger) (spells.Service, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := registry.Migrate(db); err != nil {
		return nil, err
	}
	if err := spellbook.Migrate(db); err != nil {
		return nil, err
	}

	redisClient, err := redis.NewClient(cfg.Redis.Endpoint, nil)
	if err != nil {
		return nil, err
	}

	scraperClient, err := scraper.New(&scraper.Config{
		SpellListURL:         cfg.Source.SpellListURL,
		ClassListURL:         cfg.Source.ClassListURL,
		PrestigeClassListURL: cfg.Source.PrestigeClassListURL,
		SpellInfoURLPrefix:   cfg.Source.SpellInfoURLPrefix,
		HTTPTimeout:          cfg.Source.HTTPTimeout,
	})
	if err != nil {
		return nil, err
	}

	css, err := os.ReadFile(cfg.Render.CSSFile)
	if err != nil {
		logger.Warn("table stylesheet not readable, rendering without css",
			"path", cfg.Render.CSSFile, "error", err)
	}
	renderClient, err := render.New(&render.Config{
		URL:         cfg.Render.URL,
		UserID:      cfg.Render.UserID,
		APIKey:      cfg.Render.APIKey,
		CSS:         string(css),
		HTTPTimeout: cfg.Render.HTTPTimeout,
	})
	if err != nil {
		return nil, err
	}

	tableCache, err := images.New(&images.Config{Renderer: renderClient, Logger: logger})
	if err != nil {
		return nil, err
	}

	return spells.NewOrchestrator(&spells.Config{
		Registry:     registry.NewGormRepository(db),
		ChatSettings: chatsettings.NewRedisRepository(redisClient),
		Spellbook:    spellbook.NewGormRepository(db),
		Scraper:      scraperClient,
		Tables:       tableCache,
		DataRootDir:  cfg.Storage.DataRootDir,
		Logger:       logger,
	})
}
