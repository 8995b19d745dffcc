package handlers

import (
	response "meopastel/internal/adapter/http/dto/response"
	"meopastel/internal/domain/catalog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static menu.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(catalog.Fillings, catalog.Beverages))
}
