package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is loaded once at process start and passed by reference; nothing
// mutates it afterwards.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY, default=24h"`

	OTPTTL           time.Duration `env:"OTP_TTL,                default=10m"`
	ResetMaxRequests int           `env:"RESET_MAX_PER_WINDOW,   default=5"`
	ResetWindow      time.Duration `env:"RESET_WINDOW,           default=1h"`

	Mongo     MongoConfig
	Redis     RedisConfig
	SMTP      SMTPConfig
	Bootstrap BootstrapConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=org_admin"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host string `env:"SMTP_HOST, default=localhost"`
	Port int    `env:"SMTP_PORT, default=25"`
	From string `env:"SMTP_FROM, default=no-reply@orgdesk.local"`
}

// BootstrapConfig describes the super-admin account seeded on first boot.
// The defaults are placeholders meant to be overridden per deployment.
type BootstrapConfig struct {
	Email      string `env:"SUPERADMIN_EMAIL,      default=admin@mail.com"`
	Password   string `env:"SUPERADMIN_PASSWORD,   default=admin@12345"`
	FullName   string `env:"SUPERADMIN_NAME,       default=Super admin"`
	Phone      string `env:"SUPERADMIN_PHONE,      default=1234567890"`
	Department string `env:"SUPERADMIN_DEPARTMENT, default=chips-cg"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
