package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleXutzZu/LibraManager/internal/auth"
	"github.com/AleXutzZu/LibraManager/internal/config"
	"github.com/AleXutzZu/LibraManager/internal/covers"
	"github.com/AleXutzZu/LibraManager/internal/database"
	"github.com/AleXutzZu/LibraManager/internal/entities"
	"github.com/AleXutzZu/LibraManager/internal/lending"
	"github.com/AleXutzZu/LibraManager/internal/settings"
)

func setupRouter(t *testing.T) (*gin.Engine, *database.Database, func()) {
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + t.Name() + ".db"

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	coverCache, err := covers.NewCache(t.TempDir())
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Database:       db,
		Lending:        lending.NewService(db),
		AuthService:    auth.NewService(db),
		SettingsLoader: settings.NewLoader(t.TempDir()),
		CoverCache:     coverCache,
		AuthMode:       config.AuthModeNone,
		Version:        "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return router, db, cleanup
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthz(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	recorder := doJSON(router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "test")
}

func TestBooksCRUD(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	recorder := doJSON(router, http.MethodPost, "/api/books", gin.H{
		"isbn":   "9780134685991",
		"title":  "Effective Java",
		"author": "Joshua Bloch",
		"items":  2,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(router, http.MethodGet, "/api/books/9780134685991", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var book entities.Book
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &book))
	assert.Equal(t, "Effective Java", book.Title)
	assert.Equal(t, 2, book.Items)

	// Unknown ISBN reads back as null, not 404.
	recorder = doJSON(router, http.MethodGet, "/api/books/0000000000000", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "null", recorder.Body.String())

	recorder = doJSON(router, http.MethodPut, "/api/books/9780134685991", gin.H{
		"isbn":  "9780134685991",
		"title": "Effective Java, 3rd Edition",
		"items": 3,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	// Updating a missing book is a 404.
	recorder = doJSON(router, http.MethodPut, "/api/books/0000000000000", gin.H{
		"isbn":  "0000000000000",
		"title": "Nope",
		"items": 1,
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doJSON(router, http.MethodDelete, "/api/books/9780134685991", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestBooksCreate_ValidatesPayload(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	recorder := doJSON(router, http.MethodPost, "/api/books", gin.H{"title": "No ISBN"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestBorrowsLifecycle(t *testing.T) {
	router, db, cleanup := setupRouter(t)
	defer cleanup()

	require.NoError(t, db.CreateBook(&entities.Book{ISBN: "9780134685991", Title: "Effective Java", Items: 1}))
	require.NoError(t, db.CreateClient(&entities.Client{ID: "C-0001", FirstName: "Ana", LastName: "Pop"}))
	require.NoError(t, db.CreateClient(&entities.Client{ID: "C-0002", FirstName: "Ion", LastName: "Dinu"}))

	recorder := doJSON(router, http.MethodGet, "/api/books/9780134685991/availability?client=C-0001", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"available": true}`, recorder.Body.String())

	recorder = doJSON(router, http.MethodPost, "/api/borrows", gin.H{
		"bookIsbn": "9780134685991",
		"clientId": "C-0001",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var borrow entities.Borrow
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &borrow))
	assert.NotZero(t, borrow.ID)

	// The single copy is out.
	recorder = doJSON(router, http.MethodPost, "/api/borrows", gin.H{
		"bookIsbn": "9780134685991",
		"clientId": "C-0002",
	})
	assert.Equal(t, http.StatusConflict, recorder.Code)

	// Unknown book surfaces as null availability.
	recorder = doJSON(router, http.MethodGet, "/api/books/0000000000000/availability?client=C-0001", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"available": null}`, recorder.Body.String())

	recorder = doJSON(router, http.MethodPut, "/api/borrows/"+itoa(borrow.ID), gin.H{
		"returned": true,
		"endDate":  borrow.EndDate,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(router, http.MethodGet, "/api/books/9780134685991/availability?client=C-0002", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"available": true}`, recorder.Body.String())

	recorder = doJSON(router, http.MethodGet, "/api/clients/C-0001/borrows", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"count":1`)

	recorder = doJSON(router, http.MethodDelete, "/api/borrows/"+itoa(borrow.ID), nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(router, http.MethodDelete, "/api/borrows/"+itoa(borrow.ID), nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestBorrows_UnknownBookIs404(t *testing.T) {
	router, db, cleanup := setupRouter(t)
	defer cleanup()

	require.NoError(t, db.CreateClient(&entities.Client{ID: "C-0001", FirstName: "Ana", LastName: "Pop"}))

	recorder := doJSON(router, http.MethodPost, "/api/borrows", gin.H{
		"bookIsbn": "0000000000000",
		"clientId": "C-0001",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestBorrows_AvailabilityRequiresClient(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	recorder := doJSON(router, http.MethodGet, "/api/books/9780134685991/availability", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSettingsRoundTrip(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	recorder := doJSON(router, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Librarie")

	recorder = doJSON(router, http.MethodPut, "/api/settings", gin.H{
		"libraryName":    "Biblioteca Centrala",
		"cameraDeviceId": "cam-1",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(router, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Biblioteca Centrala")
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
