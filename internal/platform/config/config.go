package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AtomicGroupMode controls whether multi-document writes run inside a store
// transaction. "auto" probes the store at startup and uses transactions when
// available; "on" and "off" force the choice.
type AtomicGroupMode string

const (
	AtomicAuto AtomicGroupMode = "auto"
	AtomicOn   AtomicGroupMode = "on"
	AtomicOff  AtomicGroupMode = "off"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// ReversalWindowHours is how long after creation a record's effects can
	// still be undone.
	ReversalWindowHours int
	AtomicGroups        AtomicGroupMode

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "gold-silver-backend")
	viper.SetDefault("REVERSAL_WINDOW_HOURS", 48)
	viper.SetDefault("DB_ATOMIC_GROUPS", string(AtomicAuto))
	viper.SetDefault("RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.ReversalWindowHours = viper.GetInt("REVERSAL_WINDOW_HOURS")
	if cfg.ReversalWindowHours <= 0 {
		cfg.ReversalWindowHours = 48
		log.Printf("Warning: REVERSAL_WINDOW_HOURS must be positive. Defaulting to %d.\n", cfg.ReversalWindowHours)
	}

	switch mode := AtomicGroupMode(viper.GetString("DB_ATOMIC_GROUPS")); mode {
	case AtomicAuto, AtomicOn, AtomicOff:
		cfg.AtomicGroups = mode
	default:
		cfg.AtomicGroups = AtomicAuto
		log.Printf("Warning: Invalid value for DB_ATOMIC_GROUPS ('%s'). Defaulting to %s.\n", mode, AtomicAuto)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
