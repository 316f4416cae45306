package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-gm-api/internal/config"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/calculator"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/campaign"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-gm-api/internal/redis"
	"github.com/KirkDiggler/rpg-gm-api/internal/repositories/campaigns"
	"github.com/KirkDiggler/rpg-gm-api/internal/repositories/encounters"
	"github.com/KirkDiggler/rpg-gm-api/internal/repositories/library"
)

// app holds the wired services and the resources they own.
type app struct {
	store *library.Store
	redis redisclient.Client

	calc       calculator.Service
	encounters encounter.Service
	campaigns  campaign.Service
}

// openCalculator opens the library and wraps it in the lookup cache.
func openCalculator(ctx context.Context, cfg *config.Config) (*library.Store, calculator.Service, error) {
	store, err := library.Open(ctx, cfg.Library.Path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open library %s", cfg.Library.Path)
	}

	cached, err := library.NewCached(&library.CachedConfig{
		Lookup: store,
		Size:   cfg.Library.CacheSize,
	})
	if err != nil {
		_ = store.Close() // nolint:errcheck // already failing
		return nil, nil, err
	}

	calc, err := calculator.NewOrchestrator(&calculator.Config{Lookup: cached})
	if err != nil {
		_ = store.Close() // nolint:errcheck // already failing
		return nil, nil, err
	}

	return store, calc, nil
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	store, calc, err := openCalculator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a := &app{store: store, calc: calc}

	var (
		encounterRepo encounters.Repository
		campaignRepo  campaigns.Repository
	)

	switch cfg.Storage {
	case config.StorageMemory:
		slog.WarnContext(ctx, "Using in-memory storage, data is lost on restart")
		encounterRepo = encounters.NewInMemory()
		campaignRepo = campaigns.NewInMemory()
	default:
		client, err := redisclient.NewClient(cfg.Redis.Addrs, &redisclient.Options{
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			a.Close()
			return nil, err
		}
		a.redis = client

		if err := redisclient.Ping(ctx, client); err != nil {
			a.Close()
			return nil, err
		}

		encounterRepo, err = encounters.NewRedisRepository(&encounters.RedisConfig{
			Client:   client,
			DraftTTL: cfg.Redis.DraftTTL,
		})
		if err != nil {
			a.Close()
			return nil, err
		}

		campaignRepo, err = campaigns.NewRedisRepository(&campaigns.RedisConfig{Client: client})
		if err != nil {
			a.Close()
			return nil, err
		}
	}

	a.encounters, err = encounter.NewOrchestrator(&encounter.Config{
		Repository:  encounterRepo,
		Calculator:  calc,
		IDGenerator: idgen.NewUUID("enc"),
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	a.campaigns, err = campaign.NewOrchestrator(&campaign.Config{
		Campaigns:        campaignRepo,
		Encounters:       encounterRepo,
		EncounterService: a.encounters,
		Calculator:       calc,
		IDGenerator:      idgen.NewUUID("cmp"),
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

// health reports whether the backing stores respond.
func (a *app) health(ctx context.Context) error {
	if a.redis == nil {
		return nil
	}
	return redisclient.Ping(ctx, a.redis)
}

// Close releases the library and Redis connections.
func (a *app) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			slog.Warn("Failed to close library", "error", err)
		}
	}
}
