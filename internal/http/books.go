package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleXutzZu/LibraManager/internal/database"
	"github.com/AleXutzZu/LibraManager/internal/entities"
)

type BooksController struct {
	db *database.Database
}

func NewBooksController(db *database.Database) *BooksController {
	return &BooksController{db: db}
}

type bookRequest struct {
	ISBN   string `json:"isbn" binding:"required"`
	Title  string `json:"title" binding:"required"`
	Author string `json:"author"`
	Items  int    `json:"items" binding:"min=0"`
}

func (controller *BooksController) List(c *gin.Context) {
	books, err := controller.db.GetAllBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// Get answers null for an unknown ISBN; a missing book is a normal read
// outcome, not an error.
func (controller *BooksController) Get(c *gin.Context) {
	book, err := controller.db.GetBook(c.Param("isbn"))
	if err != nil {
		respondInternalError(c, err, "fetch book")
		return
	}
	c.JSON(http.StatusOK, book)
}

func (controller *BooksController) Create(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	book := entities.Book{ISBN: req.ISBN, Title: req.Title, Author: req.Author, Items: req.Items}
	if err := controller.db.CreateBook(&book); err != nil {
		respondInternalError(c, err, "create book")
		return
	}
	c.JSON(http.StatusCreated, book)
}

func (controller *BooksController) Update(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	book := entities.Book{ISBN: c.Param("isbn"), Title: req.Title, Author: req.Author, Items: req.Items}
	err := controller.db.UpdateBook(&book)
	if errors.Is(err, database.ErrBookNotFound) {
		respondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		respondInternalError(c, err, "update book")
		return
	}
	c.JSON(http.StatusOK, book)
}

func (controller *BooksController) Delete(c *gin.Context) {
	if err := controller.db.DeleteBook(c.Param("isbn")); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "book deleted"})
}
