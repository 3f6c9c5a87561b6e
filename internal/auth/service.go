// Package auth handles staff login and account management. Passwords are
// opaque credentials compared verbatim against the stored value; the
// backend never derives or hashes them.
package auth

import (
	"errors"

	"github.com/AleXutzZu/LibraManager/internal/entities"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWrongPassword      = errors.New("current password does not match")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore is the slice of the relational store the service needs.
type UserStore interface {
	CreateUser(user *entities.User) error
	GetUser(username string) (*entities.User, error)
	GetAllUsers() ([]entities.User, error)
	UpdateUser(user *entities.User) error
	DeleteUser(username string) error
}

type Service struct {
	store UserStore
}

func NewService(store UserStore) *Service {
	return &Service{store: store}
}

// Login validates credentials and returns the user. Unknown usernames and
// password mismatches both map to ErrInvalidCredentials so the UI shows one
// message for either.
func (s *Service) Login(username, password string) (*entities.User, error) {
	user, err := s.store.GetUser(username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// CreateUser registers a new staff account.
func (s *Service) CreateUser(user *entities.User) error {
	return s.store.CreateUser(user)
}

// UpdateUser changes name and role. A password change must be accompanied
// by the current password; on mismatch nothing is persisted.
func (s *Service) UpdateUser(username, firstName, lastName string, role entities.UserRole, currentPassword, newPassword string) (*entities.User, error) {
	user, err := s.store.GetUser(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if newPassword != "" {
		if user.Password != currentPassword {
			return nil, ErrWrongPassword
		}
		user.Password = newPassword
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Role = role

	if err := s.store.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a staff account by username.
func (s *Service) DeleteUser(username string) error {
	return s.store.DeleteUser(username)
}
