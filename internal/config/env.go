package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

func loadFromEnv(cfg *Config) error {
	cfg.APIURL = getenv("TODO_API_URL", cfg.APIURL)
	cfg.Mode = Mode(getenv("TODO_MODE", string(cfg.Mode)))
	cfg.Token = getenv("TODO_TOKEN", cfg.Token)
	cfg.Theme = getenv("TODO_THEME", cfg.Theme)
	cfg.LogLevel = getenv("TODO_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenv("TODO_LOG_FORMAT", cfg.LogFormat)
	cfg.LogFile = getenv("TODO_LOG_FILE", cfg.LogFile)
	cfg.SeedFile = getenv("TODO_SEED_FILE", cfg.SeedFile)
	cfg.DevserverAddr = getenv("TODO_DEVSERVER_ADDR", cfg.DevserverAddr)

	var err error
	if cfg.Demo, err = envBool("TODO_DEMO", cfg.Demo); err != nil {
		return err
	}
	if cfg.RequestTimeout, err = envDuration("TODO_REQUEST_TIMEOUT", cfg.RequestTimeout); err != nil {
		return err
	}
	return nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}
