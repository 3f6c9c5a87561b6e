// Package database is the relational store. All access goes through a single
// serialized connection: one *gorm.DB guarded by one mutex, acquired for the
// duration of each operation and released on every path.
package database

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	mu sync.Mutex
	db *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{db: db}

	if err := database.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

// run executes fn while holding the connection guard. Every store operation,
// read or write, is serialized through here.
func (d *Database) run(fn func(db *gorm.DB) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn(d.db)
}

// SQLDB exposes the underlying *sql.DB, e.g. for the session store.
func (d *Database) SQLDB() (*sql.DB, error) {
	return d.db.DB()
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
