package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleXutzZu/LibraManager/internal/catalog"
	"github.com/AleXutzZu/LibraManager/internal/covers"
)

var errNoCover = errors.New("no cover available for this book")

type CatalogController struct {
	client *catalog.Client
	covers *covers.Cache
}

func NewCatalogController(client *catalog.Client, coverCache *covers.Cache) *CatalogController {
	return &CatalogController{client: client, covers: coverCache}
}

// Lookup answers null when the catalog has no entry for the ISBN; only
// transport failures and timeouts surface as errors.
func (controller *CatalogController) Lookup(c *gin.Context) {
	metadata, err := controller.client.LookupISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		respondInternalError(c, err, "catalog lookup")
		return
	}
	c.JSON(http.StatusOK, metadata)
}

// Cover serves the cover image for an ISBN from the local cache, fetching it
// from the catalog on first access. Books without a catalog entry or without
// a cover answer 404.
func (controller *CatalogController) Cover(c *gin.Context) {
	isbn := c.Param("isbn")

	metadata, err := controller.client.LookupISBN(c.Request.Context(), isbn)
	if err != nil {
		respondInternalError(c, err, "catalog lookup")
		return
	}
	if metadata == nil || metadata.CoverURL == "" {
		respondError(c, http.StatusNotFound, errNoCover)
		return
	}

	path, err := controller.covers.GetCover(isbn, metadata.CoverURL)
	if err != nil {
		respondInternalError(c, err, "fetch cover")
		return
	}
	c.File(path)
}
