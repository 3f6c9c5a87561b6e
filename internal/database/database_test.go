package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleXutzZu/LibraManager/internal/entities"
)

func setupTestDB(t *testing.T) (*Database, func()) {
	dbPath := "./test_library_" + t.Name() + ".db"

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return db, cleanup
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := "./test_library_" + t.Name() + ".db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Opening the same file again must not re-apply any step.
	db, err = NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int64
	require.NoError(t, db.db.Model(&schemaMigration{}).Count(&count).Error)
	assert.Equal(t, int64(len(migrations)), count)
}

func TestBookCRUD(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	book := entities.Book{ISBN: "9780134685991", Title: "Effective Java", Author: "Joshua Bloch", Items: 3}
	require.NoError(t, db.CreateBook(&book))

	fetched, err := db.GetBook("9780134685991")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "Effective Java", fetched.Title)
	assert.Equal(t, 3, fetched.Items)

	fetched.Items = 5
	require.NoError(t, db.UpdateBook(fetched))

	fetched, err = db.GetBook("9780134685991")
	require.NoError(t, err)
	assert.Equal(t, 5, fetched.Items)

	require.NoError(t, db.DeleteBook("9780134685991"))

	fetched, err = db.GetBook("9780134685991")
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestGetBook_MissingIsNotAnError(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	book, err := db.GetBook("0000000000000")
	require.NoError(t, err)
	assert.Nil(t, book)
}

func TestUpdateBook_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	err := db.UpdateBook(&entities.Book{ISBN: "missing", Title: "x"})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestClientCRUD(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	client := entities.Client{ID: "C-0001", FirstName: "Ana", LastName: "Pop", Email: "ana@example.com"}
	require.NoError(t, db.CreateClient(&client))

	fetched, err := db.GetClient("C-0001")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "Ana", fetched.FirstName)

	fetched.Phone = "0712345678"
	require.NoError(t, db.UpdateClient(fetched))

	fetched, err = db.GetClient("C-0001")
	require.NoError(t, err)
	assert.Equal(t, "0712345678", fetched.Phone)

	require.NoError(t, db.DeleteClient("C-0001"))

	fetched, err = db.GetClient("C-0001")
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestUserCRUD(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	user := entities.User{Username: "admin", Password: "secret", FirstName: "Admin", LastName: "User", Role: entities.UserRoleAdmin}
	require.NoError(t, db.CreateUser(&user))

	fetched, err := db.GetUser("admin")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, entities.UserRoleAdmin, fetched.Role)

	fetched.Role = entities.UserRoleLibrarian
	require.NoError(t, db.UpdateUser(fetched))

	fetched, err = db.GetUser("admin")
	require.NoError(t, err)
	assert.Equal(t, entities.UserRoleLibrarian, fetched.Role)

	require.NoError(t, db.DeleteUser("admin"))

	fetched, err = db.GetUser("admin")
	require.NoError(t, err)
	assert.Nil(t, fetched)
}
