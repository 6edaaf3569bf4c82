package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// config is read from the environment (and .env, loaded in main).
type config struct {
	Port           string
	StorageBackend string // memory | file | postgres
	DataPath       string // file backend only
	DBURL          string // postgres backend only
	CORSOrigins    []string
}

func loadConfig() config {
	return config{
		Port:           envOr("PORT", "3000"),
		StorageBackend: strings.ToLower(envOr("STORAGE_BACKEND", "file")),
		DataPath:       envOr("DATA_PATH", filepath.Join("data", "fitgenie.json")),
		DBURL:          os.Getenv("DB_URL"),
		CORSOrigins:    splitList(envOr("CORS_ORIGINS", "*")),
	}
}

// openStore builds the configured storage backend. The returned close func
// is always non-nil.
func openStore(ctx context.Context, cfg config) (kvStore, func(), error) {
	switch cfg.StorageBackend {
	case "memory":
		return newMemoryStore(), func() {}, nil
	case "file":
		s, err := newFileStore(cfg.DataPath)
		if err != nil {
			return nil, func() {}, err
		}
		return s, func() {}, nil
	case "postgres":
		if cfg.DBURL == "" {
			return nil, func() {}, fmt.Errorf("DB_URL is required for the postgres backend")
		}
		s, err := newPGStore(ctx, cfg.DBURL)
		if err != nil {
			return nil, func() {}, err
		}
		return s, s.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown STORAGE_BACKEND %q (want memory, file or postgres)", cfg.StorageBackend)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList splits a comma-separated env value, dropping blanks.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
