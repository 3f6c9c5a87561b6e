package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AleXutzZu/LibraManager/internal/badge"
	"github.com/AleXutzZu/LibraManager/internal/settings"
)

type BadgesController struct {
	loader       *settings.Loader
	documentsDir string
}

func NewBadgesController(loader *settings.Loader, documentsDir string) *BadgesController {
	return &BadgesController{loader: loader, documentsDir: documentsDir}
}

type createBadgeRequest struct {
	ShortID string `json:"shortId" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD
}

// Create renders a client badge and saves it as "Legitimatie {name}.png" in
// the documents directory, answering the saved path.
func (controller *BadgesController) Create(c *gin.Context) {
	var req createBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	issueDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	current, err := controller.loader.Load()
	if err != nil {
		respondInternalError(c, err, "load settings")
		return
	}

	img, err := badge.CreateBadge(req.ShortID, req.Name, current.LibraryName, issueDate)
	if err != nil {
		respondInternalError(c, err, "render badge")
		return
	}

	path, err := badge.SaveBadge(controller.documentsDir, req.Name, img)
	if err != nil {
		respondInternalError(c, err, "save badge")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"path": path})
}

// BookBarcode renders the EAN-13 barcode card of a book's ISBN as PNG.
func (controller *BadgesController) BookBarcode(c *gin.Context) {
	img, err := badge.CreateISBN(c.Param("isbn"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	data, err := badge.EncodePNG(img)
	if err != nil {
		respondInternalError(c, err, "encode barcode")
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}
