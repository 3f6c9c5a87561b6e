package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AleXutzZu/LibraManager/internal/entities"
)

func (d *Database) CreateUser(user *entities.User) error {
	return d.run(func(db *gorm.DB) error {
		return db.Create(user).Error
	})
}

// GetUser returns (nil, nil) when the username is unknown.
func (d *Database) GetUser(username string) (*entities.User, error) {
	var user entities.User
	err := d.run(func(db *gorm.DB) error {
		return db.Where("username = ?", username).First(&user).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) GetAllUsers() ([]entities.User, error) {
	var users []entities.User
	err := d.run(func(db *gorm.DB) error {
		return db.Order("username ASC").Find(&users).Error
	})
	return users, err
}

func (d *Database) UpdateUser(user *entities.User) error {
	return d.run(func(db *gorm.DB) error {
		result := db.Model(&entities.User{}).Where("username = ?", user.Username).
			Select("password", "first_name", "last_name", "role").Updates(user)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func (d *Database) DeleteUser(username string) error {
	return d.run(func(db *gorm.DB) error {
		return db.Where("username = ?", username).Delete(&entities.User{}).Error
	})
}
