package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/AleXutzZu/LibraManager/internal/entities"
)

// schemaMigration records a migration step that has already been applied.
type schemaMigration struct {
	ID        string `gorm:"primaryKey;size:100"`
	AppliedAt time.Time
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

// The schema evolved across desktop releases (password column moving into
// users, borrow dates switching from text to datetime). Each step must stay
// idempotent: AutoMigrate only adds what is missing.
var migrations = []struct {
	id    string
	apply func(tx *gorm.DB) error
}{
	{
		id: "0001_create_users",
		apply: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&entities.User{})
		},
	},
	{
		id: "0002_create_books",
		apply: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&entities.Book{})
		},
	},
	{
		id: "0003_create_clients",
		apply: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&entities.Client{})
		},
	},
	{
		id: "0004_create_borrows",
		apply: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&entities.Borrow{})
		},
	},
}

// migrate applies the pending migration steps in order, recording each one
// in schema_migrations so it runs at most once per database.
func (d *Database) migrate() error {
	return d.run(func(db *gorm.DB) error {
		if err := db.AutoMigrate(&schemaMigration{}); err != nil {
			return err
		}

		for _, step := range migrations {
			var applied schemaMigration
			err := db.Where("id = ?", step.id).First(&applied).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			err = db.Transaction(func(tx *gorm.DB) error {
				if err := step.apply(tx); err != nil {
					return err
				}
				return tx.Create(&schemaMigration{ID: step.id, AppliedAt: time.Now()}).Error
			})
			if err != nil {
				return fmt.Errorf("migration %s: %w", step.id, err)
			}
			log.Printf("Applied migration %s", step.id)
		}

		return nil
	})
}
