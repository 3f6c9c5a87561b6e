package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AleXutzZu/LibraManager/internal/entities"
)

func (d *Database) CreateClient(client *entities.Client) error {
	return d.run(func(db *gorm.DB) error {
		return db.Create(client).Error
	})
}

// GetClient returns (nil, nil) when the id is unknown.
func (d *Database) GetClient(id string) (*entities.Client, error) {
	var client entities.Client
	err := d.run(func(db *gorm.DB) error {
		return db.Where("id = ?", id).First(&client).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (d *Database) GetAllClients() ([]entities.Client, error) {
	var clients []entities.Client
	err := d.run(func(db *gorm.DB) error {
		return db.Order("last_name ASC, first_name ASC").Find(&clients).Error
	})
	return clients, err
}

func (d *Database) UpdateClient(client *entities.Client) error {
	return d.run(func(db *gorm.DB) error {
		result := db.Model(&entities.Client{}).Where("id = ?", client.ID).
			Select("first_name", "last_name", "email", "phone").Updates(client)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrClientNotFound
		}
		return nil
	})
}

func (d *Database) DeleteClient(id string) error {
	return d.run(func(db *gorm.DB) error {
		return db.Where("id = ?", id).Delete(&entities.Client{}).Error
	})
}
