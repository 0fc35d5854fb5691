package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"grass-map/generator/config"
	"grass-map/generator/logger"
	"grass-map/generator/messages"
	"grass-map/generator/models"
	"grass-map/generator/network"
	"grass-map/generator/persistence"
	"grass-map/generator/services"
)

func init() {
	logger.Init()
}

func main() {
	cfg := config.Load()

	if err := run(cfg, services.MapDir, os.Stdout); err != nil {
		logger.Log.Fatal(err)
	}
}

// run generates the map, writes it under dir and reports to stdout.
// The JSON write error is returned unwrapped.
func run(cfg *config.Config, dir string, stdout io.Writer) error {
	generator := services.NewMapGenerator()
	m := generator.Generate(services.DefaultWidth, services.DefaultHeight)

	store := persistence.NewJSONStore(dir)
	path := store.Path(services.MapName)

	logger.Log.Infof("Writing map to %s", path)
	if err := store.SaveMap(services.MapName, m); err != nil {
		return err
	}

	fmt.Fprintln(stdout, services.Summary(m))

	if err := mirror(cfg, m); err != nil {
		return err
	}

	if cfg.PublishURL != "" {
		if err := publish(cfg.PublishURL, path, m); err != nil {
			return errors.Wrap(err, "publish map")
		}
		logger.Log.Infof("Published map to %s", cfg.PublishURL)
	}

	return nil
}

// mirror copies the map into the database selected by DB_TYPE, if any
func mirror(cfg *config.Config, m *models.MapData) error {
	var db persistence.Storage
	var err error

	switch cfg.DBType {
	case config.DBTypePostgres:
		db, err = persistence.NewPostgresStore(cfg.DatabaseURL)
		logger.Log.Info("Using PostgreSQL mirror")
	case config.DBTypeSQLite:
		db, err = persistence.NewSQLiteStore(cfg.DBFile)
		logger.Log.Infof("Using SQLite mirror %s", cfg.DBFile)
	default:
		return nil
	}

	if err != nil {
		return errors.Wrap(err, "initialize mirror")
	}
	defer db.Close()

	if err := db.SaveMap(services.MapName, m); err != nil {
		return errors.Wrapf(err, "mirror map %s", services.MapName)
	}
	return nil
}

func publish(url, path string, m *models.MapData) error {
	p, err := network.NewPublisher(url)
	if err != nil {
		return err
	}

	if err := p.Publish(messages.NewMapGenerated(services.MapName, path, m)); err != nil {
		p.Close()
		return err
	}

	return p.Close()
}
