package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AleXutzZu/LibraManager/internal/entities"
)

func (d *Database) CreateBook(book *entities.Book) error {
	return d.run(func(db *gorm.DB) error {
		return db.Create(book).Error
	})
}

// GetBook returns (nil, nil) when no book carries the ISBN; a missing book
// is a normal outcome for read operations, not an error.
func (d *Database) GetBook(isbn string) (*entities.Book, error) {
	var book entities.Book
	err := d.run(func(db *gorm.DB) error {
		return db.Where("isbn = ?", isbn).First(&book).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (d *Database) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := d.run(func(db *gorm.DB) error {
		return db.Order("title ASC").Find(&books).Error
	})
	return books, err
}

func (d *Database) UpdateBook(book *entities.Book) error {
	return d.run(func(db *gorm.DB) error {
		result := db.Model(&entities.Book{}).Where("isbn = ?", book.ISBN).
			Select("title", "author", "items").Updates(book)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBookNotFound
		}
		return nil
	})
}

func (d *Database) DeleteBook(isbn string) error {
	return d.run(func(db *gorm.DB) error {
		return db.Where("isbn = ?", isbn).Delete(&entities.Book{}).Error
	})
}
