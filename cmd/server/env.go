package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Environment struct {
	ServerAddress  string
	SecretKey      string
	DatabaseURL    string
	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	MQTTBrokerURL string
}

// LoadEnvironment reads and validates env vars. A missing .env file is
// fine; real environment variables win either way.
func LoadEnvironment() Environment {
	_ = godotenv.Load()

	env := Environment{
		ServerAddress:  ":" + getString("PORT", "8080"),
		SecretKey:      os.Getenv("SECRET"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getString("MIGRATIONS_PATH", "./migrations"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),
	}

	// Basic validation
	if env.SecretKey == "" || env.DatabaseURL == "" {
		log.Fatal().Msg("SECRET and DATABASE_URL environment variables are required")
	}

	return env
}

func getString(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
