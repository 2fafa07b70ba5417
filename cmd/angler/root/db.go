package root

import (
	"context"
	"database/sql"
	mrand "math/rand"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Rahulchina/Fisher-manan/internal/engine"
	"github.com/Rahulchina/Fisher-manan/internal/storage"
)

var loggerOnce sync.Once

// registerLogger points zap at a file sink so the TUI keeps stdout to
// itself.
func registerLogger(conf Config) {
	loggerOnce.Do(func() {
		path := conf.LogPath
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return
			}
			path = filepath.Join(home, ".fisherman.log")
		}

		cfg := zap.NewProductionConfig()
		if conf.LogMode == "dev" {
			cfg = zap.NewDevelopmentConfig()
		}
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}

		logger, err := cfg.Build()
		if err != nil {
			return
		}
		zap.ReplaceGlobals(logger)
	})
}

func openDB(ctx context.Context, conf Config) (*sql.DB, func(), error) {
	path := conf.DBPath
	if path == "" {
		var err error
		path, err = storage.ResolveDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	conf := LoadConfig()
	registerLogger(conf)

	db, cleanup, err := openDB(ctx, conf)
	if err != nil {
		return nil, nil, err
	}

	catalog, err := engine.LoadCatalog()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	var rng *mrand.Rand
	if conf.Seed != 0 {
		rng = mrand.New(mrand.NewSource(conf.Seed))
	}
	roller := engine.NewRoller(catalog, rng)

	return engine.NewService(db, catalog, roller), cleanup, nil
}
