package repository

import (
	"fmt"
	"strings"
	"time"
)

type StoreConfig struct {
	URI            string
	MigrationsPath string
	Timeout        time.Duration
}

// Open picks the backend from the connection string scheme:
// mongodb://, postgres:// (or postgresql://) and memory://.
func Open(cfg StoreConfig) (Store, error) {
	// Mongo seed lists are not valid URLs, so only the scheme is inspected.
	scheme, _, found := strings.Cut(cfg.URI, "://")
	if !found {
		return nil, fmt.Errorf("connection string %q has no scheme", cfg.URI)
	}

	switch strings.ToLower(scheme) {
	case "mongodb":
		store, err := NewMongoStore(MongoConfig{URI: cfg.URI, Timeout: cfg.Timeout})
		if err != nil {
			return nil, err
		}
		return store, nil
	case "postgres", "postgresql":
		db, err := NewDatabase(DatabaseConfig{
			DSN:            cfg.URI,
			MigrationsPath: cfg.MigrationsPath,
			Timeout:        cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return db, nil
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store scheme %q", scheme)
	}
}
