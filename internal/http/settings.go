package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleXutzZu/LibraManager/internal/settings"
)

type SettingsController struct {
	loader *settings.Loader
}

func NewSettingsController(loader *settings.Loader) *SettingsController {
	return &SettingsController{loader: loader}
}

func (controller *SettingsController) Get(c *gin.Context) {
	current, err := controller.loader.Load()
	if err != nil {
		respondInternalError(c, err, "load settings")
		return
	}
	c.JSON(http.StatusOK, current)
}

func (controller *SettingsController) Save(c *gin.Context) {
	var incoming settings.Settings
	if err := c.ShouldBindJSON(&incoming); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := controller.loader.Store(incoming); err != nil {
		respondInternalError(c, err, "save settings")
		return
	}
	c.JSON(http.StatusOK, incoming)
}
