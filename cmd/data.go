package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pable/go-cricket-metrics/internal/loader"
	"github.com/pable/go-cricket-metrics/internal/pipeline"
	"github.com/pable/go-cricket-metrics/internal/storage"
)

// results is shared by every command in a process, so the shell only
// recomputes when the underlying ball log changes.
var results = pipeline.NewCache()

// loadResult reads the configured ball log and returns its analysis.
func loadResult() (*pipeline.Result, error) {
	switch cfg.Data.Source {
	case "db":
		return loadFromDB()
	default:
		return loadFromCSV()
	}
}

func loadFromCSV() (*pipeline.Result, error) {
	log, err := loader.LoadFile(cfg.Data.Path, loader.Options{Delimiter: cfg.Data.DelimiterRune()})
	if err != nil {
		return nil, fmt.Errorf("load ball log: %w", err)
	}
	return results.Get(log.Hash, log.Deliveries), nil
}

func loadFromDB() (*pipeline.Result, error) {
	db, err := openStore()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ds, err := db.GetDatasetByPrefix(cfg.Data.Dataset)
	if err != nil {
		return nil, fmt.Errorf("find dataset: %w", err)
	}
	if ds == nil {
		return nil, fmt.Errorf("no imported dataset matches %q; run 'cricmetrics import <file.csv>' first", cfg.Data.Dataset)
	}
	deliveries, err := db.LoadDeliveries(ds.Hash)
	if err != nil {
		return nil, fmt.Errorf("load deliveries: %w", err)
	}
	zap.L().Debug("loaded dataset from store",
		zap.String("hash", ds.Hash),
		zap.Int("rows", len(deliveries)),
	)
	return results.Get(ds.Hash, deliveries), nil
}

func openStore() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// resolveYear returns year if it has data, or the latest year when year is 0.
func resolveYear(res *pipeline.Result, year int) (int, error) {
	if len(res.Years) == 0 {
		return 0, fmt.Errorf("no boundary data with a valid date in the ball log")
	}
	if year == 0 {
		return res.Years[len(res.Years)-1], nil
	}
	if !res.HasYear(year) {
		return 0, fmt.Errorf("no boundary data for %d (have %d–%d)", year, res.Years[0], res.Years[len(res.Years)-1])
	}
	return year, nil
}

func validBoundaryType(runs int) error {
	if runs != 4 && runs != 6 {
		return fmt.Errorf("boundary type must be 4 or 6, got %d", runs)
	}
	return nil
}

// shortID abbreviates a dataset hash for display.
func shortID(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
