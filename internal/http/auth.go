package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleXutzZu/LibraManager/internal/auth"
)

type AuthController struct {
	service  *auth.Service
	sessions *auth.SessionManager
}

func NewAuthController(service *auth.Service, sessions *auth.SessionManager) *AuthController {
	return &AuthController{service: service, sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (controller *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := controller.service.Login(req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		respondError(c, http.StatusUnauthorized, err)
		return
	}
	if err != nil {
		respondInternalError(c, err, "login")
		return
	}

	if controller.sessions != nil {
		if err := controller.sessions.CreateSession(c.Request, user); err != nil {
			respondInternalError(c, err, "create session")
			return
		}
	}

	c.JSON(http.StatusOK, user)
}

func (controller *AuthController) Logout(c *gin.Context) {
	if controller.sessions != nil {
		if err := controller.sessions.DestroySession(c.Request); err != nil {
			respondInternalError(c, err, "logout")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
