package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleXutzZu/LibraManager/internal/auth"
	"github.com/AleXutzZu/LibraManager/internal/database"
	"github.com/AleXutzZu/LibraManager/internal/entities"
)

type UsersController struct {
	service *auth.Service
	db      *database.Database
}

func NewUsersController(service *auth.Service, db *database.Database) *UsersController {
	return &UsersController{service: service, db: db}
}

type createUserRequest struct {
	Username  string            `json:"username" binding:"required"`
	Password  string            `json:"password" binding:"required"`
	FirstName string            `json:"firstName" binding:"required"`
	LastName  string            `json:"lastName" binding:"required"`
	Role      entities.UserRole `json:"role" binding:"required"`
}

type updateUserRequest struct {
	FirstName string            `json:"firstName" binding:"required"`
	LastName  string            `json:"lastName" binding:"required"`
	Role      entities.UserRole `json:"role" binding:"required"`

	// Optional password change; CurrentPassword must match the stored one.
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (controller *UsersController) List(c *gin.Context) {
	users, err := controller.db.GetAllUsers()
	if err != nil {
		respondInternalError(c, err, "list users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

func (controller *UsersController) Get(c *gin.Context) {
	user, err := controller.db.GetUser(c.Param("username"))
	if err != nil {
		respondInternalError(c, err, "fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (controller *UsersController) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user := entities.User{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	}
	if err := controller.service.CreateUser(&user); err != nil {
		respondInternalError(c, err, "create user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (controller *UsersController) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := controller.service.UpdateUser(
		c.Param("username"), req.FirstName, req.LastName, req.Role,
		req.CurrentPassword, req.NewPassword,
	)
	if errors.Is(err, auth.ErrUserNotFound) {
		respondError(c, http.StatusNotFound, err)
		return
	}
	if errors.Is(err, auth.ErrWrongPassword) {
		respondError(c, http.StatusUnauthorized, err)
		return
	}
	if err != nil {
		respondInternalError(c, err, "update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (controller *UsersController) Delete(c *gin.Context) {
	if err := controller.service.DeleteUser(c.Param("username")); err != nil {
		respondInternalError(c, err, "delete user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
