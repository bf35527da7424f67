package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nixie-tech-llc/courier/internal/cache"
	"github.com/nixie-tech-llc/courier/internal/db"
	"github.com/nixie-tech-llc/courier/internal/notify"
)

func main() {
	env := LoadEnvironment()

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore(db.DB)
	profiles := initCache(env)
	notifier := initNotifier(env)
	defer notifier.Close()

	// set up gin router
	r := gin.Default()
	RegisterRoutes(r, env, store, profiles, notifier)

	// start
	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// initCache returns the redis profile cache, or nil when redis is not
// configured.
func initCache(env Environment) *cache.Cache {
	if env.RedisAddress == "" {
		log.Info().Msg("redis not configured, profile cache disabled")
		return nil
	}
	log.Info().Str("address", env.RedisAddress).Msg("using redis profile cache")
	return cache.New(env.RedisAddress, env.RedisUsername, env.RedisPassword)
}

// initNotifier returns the MQTT inbox notifier, or nil when no broker is
// configured. A broker that is configured but unreachable is fatal.
func initNotifier(env Environment) *notify.Notifier {
	if env.MQTTBrokerURL == "" {
		log.Info().Msg("MQTT not configured, inbox notifications disabled")
		return nil
	}
	notifier, err := notify.New(env.MQTTBrokerURL, "courier-server")
	if err != nil {
		log.Fatal().Err(err).Msg("mqtt init")
	}
	log.Info().Str("broker", env.MQTTBrokerURL).Msg("publishing inbox notifications")
	return notifier
}
