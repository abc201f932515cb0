package core

import (
	"errors"

	"github.com/robgonnella/netscope/internal/config"
	"github.com/robgonnella/netscope/internal/event"
	"github.com/robgonnella/netscope/internal/probe"
	"github.com/robgonnella/netscope/internal/profile"
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// getSqliteDbConnection creates and returns a migrated sqlite database connection
func getSqliteDbConnection(dbFile string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})

	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&profile.ProfileModel{}); err != nil {
		return nil, err
	}

	return db, nil
}

// newProfileRepo returns the profile repo selected in config
func newProfileRepo(conf config.Config) (profile.Repo, error) {
	if conf.Profiles.Store == config.StoreJSON {
		profilesFile, ok := viper.Get("profiles-file").(string)

		if !ok || profilesFile == "" {
			return nil, errors.New("failed to find profiles file path config")
		}

		return profile.NewJSONRepo(profilesFile)
	}

	dbFile, ok := viper.Get("database-file").(string)

	if !ok || dbFile == "" {
		return nil, errors.New("failed to find database file path config")
	}

	db, err := getSqliteDbConnection(dbFile)

	if err != nil {
		return nil, err
	}

	return profile.NewSqliteRepo(db), nil
}

// DefaultBackends returns the probe backends available to scans
func DefaultBackends(parser string) map[string]Backend {
	return map[string]Backend{
		config.BackendPing: {
			NewProber: func(count int) probe.Prober {
				return probe.NewCommandProber(probe.WithCount(count))
			},
			Parser: probe.ParserFor(parser),
		},
		config.BackendNmap: {
			NewProber: func(int) probe.Prober {
				return probe.NewNmapProber()
			},
			Parser: probe.NmapParser,
		},
	}
}

// CreateNewAppCore creates and returns a new instance of *core.Core
func CreateNewAppCore(conf config.Config) (*Core, error) {
	repo, err := newProfileRepo(conf)

	if err != nil {
		return nil, err
	}

	return New(
		conf,
		profile.NewProfileService(repo),
		DefaultBackends(conf.Scan.Parser),
		event.NewEventManager(),
	), nil
}
