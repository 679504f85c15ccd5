package config

import (
	"os"
	"strconv"
)

type Config struct {
	DBDriver string
	DBDSN    string

	// CatalogPath points at a YAML question bank; empty means the built-in
	// bank is used.
	CatalogPath string

	// MinResponses is the distinct-answer count required before a session
	// can be completed.
	MinResponses int

	// SecondsPerQuestion feeds the remaining-time estimate in progress
	// snapshots.
	SecondsPerQuestion int
}

func FromEnv() Config {
	return Config{
		DBDriver:           envOr("DB_DRIVER", "sqlite"),
		DBDSN:              envOr("DB_DSN", ""),
		CatalogPath:        envOr("CATALOG_PATH", ""),
		MinResponses:       envInt("MIN_RESPONSES", 6),
		SecondsPerQuestion: envInt("SECONDS_PER_QUESTION", 30),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
