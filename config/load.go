package config

import (
	"os"
)

func Load() App {
	cfg := App{
		Port:          getenv("APP_PORT", "5001"),
		DatabaseURL:   getenv("DATABASE_URL", "./lostfound.db"),
		JWTSecret:     getenv("JWT_SECRET", "local_dev_secret"),
		ModeratorUser: getenv("MODERATOR_USER", "admin"),
		ModeratorPass: getenv("MODERATOR_PASS", "group13"),
		RabbitMQURL:   os.Getenv("RABBITMQ_URL"),
		RabbitMQExch:  getenv("RABBITMQ_EXCHANGE", "lostfound.events"),
		Env:           getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
