package config

type App struct {
	Port          string `env:"APP_PORT" default:"5001"`
	DatabaseURL   string `env:"DATABASE_URL" default:"./lostfound.db"`
	JWTSecret     string `env:"JWT_SECRET" default:"local_dev_secret"`
	ModeratorUser string `env:"MODERATOR_USER" default:"admin"`
	ModeratorPass string `env:"MODERATOR_PASS" default:"group13"`
	RabbitMQURL   string `env:"RABBITMQ_URL"`
	RabbitMQExch  string `env:"RABBITMQ_EXCHANGE" default:"lostfound.events"`
	Env           string `env:"APP_ENV" default:"dev"`
}
