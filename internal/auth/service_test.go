package auth

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleXutzZu/LibraManager/internal/database"
	"github.com/AleXutzZu/LibraManager/internal/entities"
)

func setupService(t *testing.T) (*Service, func()) {
	dbPath := "./test_auth_" + t.Name() + ".db"

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	require.NoError(t, db.CreateUser(&entities.User{
		Username:  "ana",
		Password:  "parola123",
		FirstName: "Ana",
		LastName:  "Pop",
		Role:      entities.UserRoleLibrarian,
	}))

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return NewService(db), cleanup
}

func TestLogin_Success(t *testing.T) {
	service, cleanup := setupService(t)
	defer cleanup()

	user, err := service.Login("ana", "parola123")
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
	assert.Equal(t, entities.UserRoleLibrarian, user.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	service, cleanup := setupService(t)
	defer cleanup()

	_, err := service.Login("ana", "gresit")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	service, cleanup := setupService(t)
	defer cleanup()

	// Unknown usernames answer the same error as bad passwords.
	_, err := service.Login("nimeni", "parola123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateUser_WithoutPasswordChange(t *testing.T) {
	service, cleanup := setupService(t)
	defer cleanup()

	user, err := service.UpdateUser("ana", "Ana-Maria", "Pop", entities.UserRoleAdmin, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Ana-Maria", user.FirstName)
	assert.Equal(t, entities.UserRoleAdmin, user.Role)

	// Password is untouched.
	_, err = service.Login("ana", "parola123")
	require.NoError(t, err)
}

func TestUpdateUser_PasswordChangeRequiresCurrentPassword(t *testing.T) {
	service, cleanup := setupService(t)
	defer cleanup()

	_, err := service.UpdateUser("ana", "Ana", "Pop", entities.UserRoleLibrarian, "gresit", "noua123")
	assert.ErrorIs(t, err, ErrWrongPassword)

	// Nothing persisted: the old password still works.
	_, err = service.Login("ana", "parola123")
	require.NoError(t, err)

	_, err = service.UpdateUser("ana", "Ana", "Pop", entities.UserRoleLibrarian, "parola123", "noua123")
	require.NoError(t, err)

	_, err = service.Login("ana", "noua123")
	require.NoError(t, err)
}

func TestUpdateUser_NotFound(t *testing.T) {
	service, cleanup := setupService(t)
	defer cleanup()

	_, err := service.UpdateUser("nimeni", "X", "Y", entities.UserRoleAdmin, "", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
