package main

import (
	"context"
	"os"

	redis "github.com/go-redis/redis/v8"
	fiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/rs/zerolog"

	"messenger/actions"
	"messenger/config"
	"messenger/middlewares"
	"messenger/routes"
	"messenger/store"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load("./config.json")
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable")
	}
	defer rdb.Close()

	st := store.New(rdb, cfg.SessionTTL(), cfg.ActivityRetention)
	acts := actions.New(st, log, cfg.BcryptCost)

	cookieKey := cfg.CookieKey
	if cookieKey == "" {
		// No configured key invalidates existing session cookies on restart.
		cookieKey = encryptcookie.GenerateKey()
		log.Warn().Msg("no cookie key configured, generated an ephemeral one")
	}

	app := fiber.New()
	defer app.Shutdown()

	// Credentialed CORS needs an explicit origin; without one the cookie
	// stays same-origin only.
	corsCfg := cors.Config{}
	if cfg.Origin != "" {
		corsCfg.AllowOrigins = cfg.Origin
		corsCfg.AllowCredentials = true
	}
	app.Use(cors.New(corsCfg))
	app.Use(encryptcookie.New(encryptcookie.Config{Key: cookieKey}))
	app.Use(middlewares.Logger(log))
	app.Use(middlewares.Metrics())

	routes.New(acts, log, int(cfg.SessionTTL().Seconds())).SetRoutes(app)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := app.Listen(cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
