package handlers

import (
	"errors"
	"log"
	request "meopastel/internal/adapter/http/dto/request"
	"meopastel/internal/usecase"
	"meopastel/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CartHandler handles beverage lines and quantity edits on the current
// cart. Pastel lines only enter through the selection commit.

type CartHandler struct {
	usecase usecase.ICartUseCase
	viewer  sessionViewer
}

func NewCartHandler(uc usecase.ICartUseCase, viewer sessionViewer) *CartHandler {
	return &CartHandler{usecase: uc, viewer: viewer}
}

func (h *CartHandler) AddBeverage(c *gin.Context) {
	var payload request.AddBeverageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.AddBeverage(c.Request.Context(), payload.BeverageID); err != nil {
		log.Printf("[cart][handler] add beverage failed beverage_id=%s err=%v", payload.BeverageID, err)
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.viewer, http.StatusOK)
}

func (h *CartHandler) RemoveBeverageUnit(c *gin.Context) {
	name := c.Param("name")
	if err := h.usecase.RemoveBeverageUnit(c.Request.Context(), name); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.viewer, http.StatusOK)
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	lineID := c.Param("line_id")
	var payload request.SetQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetQuantity(c.Request.Context(), lineID, *payload.Quantity); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.viewer, http.StatusOK)
}

func (h *CartHandler) RemoveLine(c *gin.Context) {
	lineID := c.Param("line_id")
	if err := h.usecase.RemoveLine(c.Request.Context(), lineID); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.viewer, http.StatusOK)
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownBeverage):
		return pkg.NewDomainErrorSimple("BEVERAGE_NOT_FOUND", "Beverage not in catalog", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
