package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/AleXutzZu/LibraManager/internal/entities"
)

// availability applies the lending rule inside tx: a book is available to a
// client iff its un-returned borrow count is below Items and the client does
// not already hold an un-returned borrow of it. Returns nil when the book
// does not exist, which is a normal outcome rather than an error.
func availability(tx *gorm.DB, isbn, clientID string) (*bool, error) {
	var book entities.Book
	err := tx.Where("isbn = ?", isbn).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var active []entities.Borrow
	if err := tx.Joins("Client").
		Where("book_isbn = ? AND returned = ?", isbn, false).
		Find(&active).Error; err != nil {
		return nil, err
	}

	alreadyHolds := false
	for _, borrow := range active {
		if borrow.ClientID == clientID {
			alreadyHolds = true
			break
		}
	}

	available := len(active) < book.Items && !alreadyHolds
	return &available, nil
}

// CheckAvailability is the read-only, idempotent form of the lending rule.
func (d *Database) CheckAvailability(isbn, clientID string) (*bool, error) {
	var result *bool
	err := d.run(func(db *gorm.DB) error {
		var err error
		result, err = availability(db, isbn, clientID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateBorrowIfAvailable re-checks availability and inserts the borrow in
// one transaction under the connection guard, so two callers racing for the
// last copy cannot both succeed.
func (d *Database) CreateBorrowIfAvailable(borrow *entities.Borrow) error {
	return d.run(func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			var client entities.Client
			err := tx.Where("id = ?", borrow.ClientID).First(&client).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			if err != nil {
				return err
			}

			available, err := availability(tx, borrow.BookISBN, borrow.ClientID)
			if err != nil {
				return err
			}
			if available == nil {
				return ErrBookNotFound
			}
			if !*available {
				return ErrBookUnavailable
			}

			return tx.Create(borrow).Error
		})
	})
}

// GetBorrow returns (nil, nil) when the id is unknown.
func (d *Database) GetBorrow(id uint) (*entities.Borrow, error) {
	var borrow entities.Borrow
	err := d.run(func(db *gorm.DB) error {
		return db.Joins("Client").Joins("Book").First(&borrow, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &borrow, nil
}

// UpdateBorrow sets the returned flag and end date. Updating a missing row
// reports ErrBorrowNotFound instead of silently succeeding; re-applying the
// same values is a no-op in effect.
func (d *Database) UpdateBorrow(id uint, returned bool, endDate time.Time) error {
	return d.run(func(db *gorm.DB) error {
		result := db.Model(&entities.Borrow{}).Where("id = ?", id).
			Updates(map[string]any{"returned": returned, "end_date": endDate})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBorrowNotFound
		}
		return nil
	})
}

func (d *Database) DeleteBorrow(id uint) error {
	return d.run(func(db *gorm.DB) error {
		result := db.Delete(&entities.Borrow{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBorrowNotFound
		}
		return nil
	})
}

// BorrowsOfBook lists every borrow of a book joined with its client. History
// stays visible: no returned-status filter is applied here.
func (d *Database) BorrowsOfBook(isbn string) ([]entities.Borrow, error) {
	var borrows []entities.Borrow
	err := d.run(func(db *gorm.DB) error {
		return db.Joins("Client").
			Where("book_isbn = ?", isbn).
			Order("start_date DESC").
			Find(&borrows).Error
	})
	return borrows, err
}

// BorrowsOfClient lists every borrow of a client joined with its book.
func (d *Database) BorrowsOfClient(clientID string) ([]entities.Borrow, error) {
	var borrows []entities.Borrow
	err := d.run(func(db *gorm.DB) error {
		return db.Joins("Book").
			Where("client_id = ?", clientID).
			Order("start_date DESC").
			Find(&borrows).Error
	})
	return borrows, err
}
