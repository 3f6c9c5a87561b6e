// Package lending implements the loan lifecycle: the availability rule,
// starting and ending loans, and the borrow-history joins the UI lists.
package lending

import (
	"time"

	"github.com/AleXutzZu/LibraManager/internal/database"
	"github.com/AleXutzZu/LibraManager/internal/entities"
)

// LoanPeriod is the default lending term applied when a loan starts.
const LoanPeriod = 14 * 24 * time.Hour

// Store is the slice of the relational store the workflow needs.
type Store interface {
	CheckAvailability(isbn, clientID string) (*bool, error)
	CreateBorrowIfAvailable(borrow *entities.Borrow) error
	UpdateBorrow(id uint, returned bool, endDate time.Time) error
	DeleteBorrow(id uint) error
	BorrowsOfBook(isbn string) ([]entities.Borrow, error)
	BorrowsOfClient(clientID string) ([]entities.Borrow, error)
}

// Re-exported store errors so callers can match without importing database.
var (
	ErrBookNotFound    = database.ErrBookNotFound
	ErrClientNotFound  = database.ErrClientNotFound
	ErrBorrowNotFound  = database.ErrBorrowNotFound
	ErrBookUnavailable = database.ErrBookUnavailable
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CheckAvailability returns nil when the book does not exist, otherwise
// whether the client may borrow a copy right now. Read-only and idempotent.
func (s *Service) CheckAvailability(isbn, clientID string) (*bool, error) {
	return s.store.CheckAvailability(isbn, clientID)
}

// StartLoan opens a loan for the client. The availability check and the
// insert run atomically in the store, so a pre-flight CheckAvailability is
// advisory only. The due date defaults to the start date plus LoanPeriod.
func (s *Service) StartLoan(isbn, clientID string) (*entities.Borrow, error) {
	start := today()
	borrow := &entities.Borrow{
		ClientID:  clientID,
		BookISBN:  isbn,
		StartDate: start,
		EndDate:   start.Add(LoanPeriod),
		Returned:  false,
	}
	if err := s.store.CreateBorrowIfAvailable(borrow); err != nil {
		return nil, err
	}
	return borrow, nil
}

// EndLoan updates the returned flag and due date of a loan. The store does
// not validate that endDate is on or after the start date; that boundary is
// the caller's to enforce.
func (s *Service) EndLoan(id uint, returned bool, endDate time.Time) error {
	return s.store.UpdateBorrow(id, returned, endDate)
}

// DeleteLoan removes a borrow record entirely. Administrative use only.
func (s *Service) DeleteLoan(id uint) error {
	return s.store.DeleteBorrow(id)
}

// Borrowers lists the full borrow history of a book with client details.
func (s *Service) Borrowers(isbn string) ([]entities.Borrow, error) {
	return s.store.BorrowsOfBook(isbn)
}

// BorrowedBooks lists the full borrow history of a client with book details.
func (s *Service) BorrowedBooks(clientID string) ([]entities.Borrow, error) {
	return s.store.BorrowsOfClient(clientID)
}

func today() time.Time {
	year, month, day := time.Now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
