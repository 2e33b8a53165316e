package app

import (
	"fmt"
	"math/rand"
	"os"

	log "github.com/sirupsen/logrus"

	"outfitter/internal/config"
	"outfitter/internal/logging"
	"outfitter/internal/services"
	"outfitter/pkg/recommender"
)

type App struct {
	Config       *config.Config
	DefaultEvent recommender.Category

	OutfitService *services.OutfitService
}

func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr); err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	app := &App{Config: cfg}

	// Validate already checked the name.
	event, _ := recommender.ParseCategory(cfg.Recommender.DefaultEvent)
	app.DefaultEvent = event

	app.initOutfitService()

	log.WithFields(log.Fields{
		"default_event": app.DefaultEvent.String(),
		"seeded":        cfg.Recommender.Seed != 0,
	}).Debug("Application initialization complete.")
	return app, nil
}

func (a *App) initOutfitService() {
	var rng *rand.Rand
	if seed := a.Config.Recommender.Seed; seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	a.OutfitService = services.NewOutfitService(services.ServiceConfig{
		MaxCount: a.Config.Recommender.MaxCount,
	}, rng)
}
