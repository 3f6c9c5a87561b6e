package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleXutzZu/LibraManager/internal/database"
	"github.com/AleXutzZu/LibraManager/internal/entities"
)

type ClientsController struct {
	db *database.Database
}

func NewClientsController(db *database.Database) *ClientsController {
	return &ClientsController{db: db}
}

type clientRequest struct {
	ID        string `json:"id" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (controller *ClientsController) List(c *gin.Context) {
	clients, err := controller.db.GetAllClients()
	if err != nil {
		respondInternalError(c, err, "list clients")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients, "count": len(clients)})
}

func (controller *ClientsController) Get(c *gin.Context) {
	client, err := controller.db.GetClient(c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "fetch client")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (controller *ClientsController) Create(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	client := entities.Client{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := controller.db.CreateClient(&client); err != nil {
		respondInternalError(c, err, "create client")
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (controller *ClientsController) Update(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	client := entities.Client{
		ID:        c.Param("id"),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	err := controller.db.UpdateClient(&client)
	if errors.Is(err, database.ErrClientNotFound) {
		respondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		respondInternalError(c, err, "update client")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (controller *ClientsController) Delete(c *gin.Context) {
	if err := controller.db.DeleteClient(c.Param("id")); err != nil {
		respondInternalError(c, err, "delete client")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}
