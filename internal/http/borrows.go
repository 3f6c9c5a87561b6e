package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AleXutzZu/LibraManager/internal/lending"
)

type BorrowsController struct {
	lending *lending.Service
}

func NewBorrowsController(service *lending.Service) *BorrowsController {
	return &BorrowsController{lending: service}
}

type startLoanRequest struct {
	BookISBN string `json:"bookIsbn" binding:"required"`
	ClientID string `json:"clientId" binding:"required"`
}

type endLoanRequest struct {
	Returned bool      `json:"returned"`
	EndDate  time.Time `json:"endDate" binding:"required"`
}

// CheckAvailability answers {"available": null} for an unknown book; the
// tri-state result is a normal outcome, never an error.
func (controller *BorrowsController) CheckAvailability(c *gin.Context) {
	clientID := c.Query("client")
	if clientID == "" {
		respondBadRequest(c, errors.New("client query parameter is required"))
		return
	}

	available, err := controller.lending.CheckAvailability(c.Param("isbn"), clientID)
	if err != nil {
		respondInternalError(c, err, "check availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

func (controller *BorrowsController) StartLoan(c *gin.Context) {
	var req startLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	borrow, err := controller.lending.StartLoan(req.BookISBN, req.ClientID)
	switch {
	case errors.Is(err, lending.ErrBookNotFound), errors.Is(err, lending.ErrClientNotFound):
		respondError(c, http.StatusNotFound, err)
		return
	case errors.Is(err, lending.ErrBookUnavailable):
		respondError(c, http.StatusConflict, err)
		return
	case err != nil:
		respondInternalError(c, err, "start loan")
		return
	}
	c.JSON(http.StatusCreated, borrow)
}

func (controller *BorrowsController) EndLoan(c *gin.Context) {
	id, err := parseBorrowID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var req endLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	err = controller.lending.EndLoan(id, req.Returned, req.EndDate)
	if errors.Is(err, lending.ErrBorrowNotFound) {
		respondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		respondInternalError(c, err, "end loan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "loan updated"})
}

func (controller *BorrowsController) DeleteLoan(c *gin.Context) {
	id, err := parseBorrowID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	err = controller.lending.DeleteLoan(id)
	if errors.Is(err, lending.ErrBorrowNotFound) {
		respondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		respondInternalError(c, err, "delete loan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "loan deleted"})
}

func (controller *BorrowsController) Borrowers(c *gin.Context) {
	borrows, err := controller.lending.Borrowers(c.Param("isbn"))
	if err != nil {
		respondInternalError(c, err, "list borrowers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"borrows": borrows, "count": len(borrows)})
}

func (controller *BorrowsController) BorrowedBooks(c *gin.Context) {
	borrows, err := controller.lending.BorrowedBooks(c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "list borrowed books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"borrows": borrows, "count": len(borrows)})
}

func parseBorrowID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("invalid borrow id")
	}
	return uint(id), nil
}
