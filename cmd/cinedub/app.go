package main

import (
	"github.com/Marquin099/Cinema-Dublado/internal/cache"
	"github.com/Marquin099/Cinema-Dublado/internal/config"
	"github.com/Marquin099/Cinema-Dublado/internal/database"
	"github.com/Marquin099/Cinema-Dublado/internal/handlers"
	"github.com/Marquin099/Cinema-Dublado/internal/services"
	"github.com/Marquin099/Cinema-Dublado/internal/store"
	"github.com/Marquin099/Cinema-Dublado/pkg/logger"
)

var (
	appLogger   logger.Logger
	appConfig   *config.Config
	recordStore *store.Store
	db          database.Database
	metaCache   *cache.LRUCache
	handler     *handlers.Handler
)

func initializeLogger() {
	appLogger = logger.New()
}

func initializeConfig() {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		appLogger.Fatalf("failed to load configuration: %v", err)
	}
}

// initializeStore loads both record sources, synchronously, before any
// request is accepted.
func initializeStore() {
	recordStore = store.Load(appConfig.MoviesPath, appConfig.SeriesPath, appLogger)
}

// initializeDatabase opens the TMDB enrichment cache. Failure is not
// fatal: the addon serves record-only data without it.
func initializeDatabase() {
	if appConfig.TMDBAPIKey == "" {
		return
	}

	boltDB, err := database.NewBolt(appConfig.DatabasePath)
	if err != nil {
		appLogger.Warnf("[App] enrichment cache unavailable: %v", err)
		return
	}
	db = boltDB

	appLogger.Infof("[App] enrichment cache database initialized")
}

func initializeServices() {
	metaCache = cache.New(appConfig.CacheSize, appConfig.CacheTTL)

	var tmdbService services.TMDBService
	if appConfig.TMDBAPIKey != "" {
		tmdb := services.NewTMDB(appConfig.TMDBAPIKey, metaCache, appConfig.CacheTTL, appLogger)
		if db != nil {
			tmdb.SetDB(db)
		}
		tmdbService = tmdb
		appLogger.Infof("[App] TMDB enrichment enabled")
	}

	container := &services.Container{
		Store:  recordStore,
		TMDB:   tmdbService,
		Cache:  metaCache,
		DB:     db,
		Logger: appLogger,
	}

	handler = handlers.New(container, appConfig)

	appLogger.Infof("[App] services initialized successfully")
}
