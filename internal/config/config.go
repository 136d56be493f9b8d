package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type StoreDriver string

const (
	StoreMemory StoreDriver = "memory"
	StoreSQL    StoreDriver = "sql"
)

type Config struct {
	Store    StoreDriver
	DBDriver string // sqlite|postgres, sql store only
	DBDSN    string

	PasswordHashing string // plain|bcrypt
	BcryptCost      int

	Verbose bool
}

// Load reads an optional .env file into the environment, then FromEnv.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	return FromEnv(), nil
}

func FromEnv() Config {
	store := StoreDriver(envOr("OEMS_STORE", string(StoreMemory)))
	switch store {
	case StoreMemory, StoreSQL:
	default:
		log.Printf("unknown OEMS_STORE %q, using %s", store, StoreMemory)
		store = StoreMemory
	}
	return Config{
		Store:           store,
		DBDriver:        envOr("OEMS_DB_DRIVER", "sqlite"),
		DBDSN:           envOr("OEMS_DB_DSN", ""),
		PasswordHashing: envOr("OEMS_PASSWORD_HASH", "plain"),
		BcryptCost:      envInt("OEMS_BCRYPT_COST", 12),
		Verbose:         envBool("OEMS_VERBOSE", false),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}
