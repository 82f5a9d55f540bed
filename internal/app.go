package internal

import (
	"badgeofshame/internal/badges"
	"badgeofshame/internal/cache"
	"badgeofshame/internal/cacheadmin"
	"badgeofshame/internal/db"
	"badgeofshame/internal/env"
	"badgeofshame/internal/events"
	"badgeofshame/internal/github"
	"badgeofshame/internal/logging"
	"badgeofshame/internal/metrics"
	"badgeofshame/internal/models"
	"badgeofshame/internal/operators"
	"badgeofshame/internal/resolver"
	"badgeofshame/internal/swagger"
	"badgeofshame/internal/travis"
	"badgeofshame/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// SetupApp connects the backing stores, builds the upstream clients and
// returns the routed app. Connection failures are fatal.
func SetupApp(cfg *env.Config) *fiber.App {
	logging.Init(cfg.Logging)
	models.SetJWTSecret(cfg.JWTSecret)

	if err := db.InitDB(cfg.Mongo); err != nil {
		logrus.WithError(err).Fatal("Could not connect to MongoDB")
		return nil
	}

	store, err := newStore(cfg.Cache)
	if err != nil {
		logrus.WithError(err).Fatal("Could not connect to Redis")
		return nil
	}

	githubClient, err := github.NewClient(cfg.Github.APIURL, cfg.Github.Token, cfg.UpstreamTimeout)
	if err != nil {
		logrus.WithError(err).Fatal("Invalid GitHub API URL")
		return nil
	}
	travisClient := travis.NewClient(cfg.Travis.APIURL, cfg.UpstreamTimeout)

	events.Em = events.NewEmitter(db.Events, cfg.Deployment)

	r := resolver.New(store, travisClient, githubClient, logrus.StandardLogger())

	return NewApp(cfg, store, r)
}

// NewApp routes an app over already constructed dependencies.
func NewApp(cfg *env.Config, store cache.Store, r *resolver.Resolver) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       "Badge Of Shame",
		StrictRouting: true,
	})

	meta := app.Group("/" + badges.ReservedOwner)

	meta.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	meta.Get("/version", func(c fiber.Ctx) error {
		return c.SendString("v" + cfg.Version)
	})

	meta.Get("/metrics", metrics.Handler())

	swagger.Routes(meta)
	operators.Routes(meta)
	cacheadmin.Routes(meta, store)
	ws.Routes(meta)

	badges.Routes(app, r, cfg.RequestTimeout)

	app.Use(badges.NotFound)

	return app
}

func newStore(cfg env.Cache) (cache.Store, error) {
	if cfg.Driver != "redis" {
		logrus.WithField("driver", cfg.Driver).Info("using in-process badge cache")
		return cache.NewMemoryStore(), nil
	}

	if err := db.InitCache(cfg); err != nil {
		return nil, err
	}

	return cache.NewRedisStore(db.RDB, cfg.TTL), nil
}
