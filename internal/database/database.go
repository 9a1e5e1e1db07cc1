// Package database provides persistence for TMDB enrichment data using
// BoltDB. The engine's own records are never persisted here; the bucket
// only caches responses from the external metadata service so restarts
// do not refetch everything.
package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	// Default database file permissions
	dbFileMode = 0600
	dbDirMode  = 0755
)

var tmdbBucket = []byte("tmdb_cache")

// TMDBCache represents cached TMDB metadata for one movie or series.
type TMDBCache struct {
	ID          string    `json:"id"` // canonical id, e.g. "tmdb:603"
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Poster      string    `json:"poster"`
	Background  string    `json:"background"`
	Rating      float64   `json:"rating"`
	Genres      []string  `json:"genres"`
	CreatedAt   time.Time `json:"created_at"`
}

// Database defines the interface for enrichment cache persistence.
type Database interface {
	// GetCachedTMDB retrieves cached TMDB data by canonical id.
	// A miss returns (nil, nil).
	GetCachedTMDB(id string) (*TMDBCache, error)
	// StoreTMDBCache stores TMDB metadata, stamping CreatedAt.
	StoreTMDBCache(cache *TMDBCache) error
	// Close closes the database connection
	Close() error
}

// BoltDB implements the Database interface using BoltDB.
type BoltDB struct {
	db *bolt.DB
}

// NewBolt opens (creating if needed) the BoltDB file at path.
func NewBolt(path string) (*BoltDB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dbDirMode); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := bolt.Open(path, dbFileMode, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(tmdbBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltDB{db: db}, nil
}

func (b *BoltDB) GetCachedTMDB(id string) (*TMDBCache, error) {
	var cached *TMDBCache

	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(tmdbBucket).Get([]byte(id))
		if data == nil {
			return nil
		}

		var entry TMDBCache
		if err := json.Unmarshal(data, &entry); err != nil {
			return fmt.Errorf("failed to decode cache entry: %w", err)
		}
		cached = &entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cached, nil
}

func (b *BoltDB) StoreTMDBCache(cache *TMDBCache) error {
	cache.CreatedAt = time.Now()

	data, err := json.Marshal(cache)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(tmdbBucket).Put([]byte(cache.ID), data)
	})
}

func (b *BoltDB) Close() error {
	return b.db.Close()
}
