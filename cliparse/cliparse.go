package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/polls/auth"
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	IPHashSalt   string
	FixturesPath string
}

// ParseFlags validates flags and fills the rest from the environment.
// A .env file in the working directory is loaded first if present;
// variables already set in the environment win over it.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Missing .env is fine
	_ = godotenv.Load()

	fs := flag.NewFlagSet("polls", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "Salt for hashing client IPs in logs (prefer env)")
	fs.StringVar(&cfg.FixturesPath, "fixtures", "", "YAML fixtures file to load at startup")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:polls.db"
	}

	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}
	if cfg.IPHashSalt == "" {
		// Hashes stay comparable within one process only
		salt, err := auth.GenerateSalt()
		if err != nil {
			return Config{}, err
		}
		cfg.IPHashSalt = salt
	}

	if cfg.FixturesPath == "" {
		cfg.FixturesPath = os.Getenv("POLLS_FIXTURES")
	}

	return cfg, nil
}
