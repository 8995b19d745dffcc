package handlers

import (
	"errors"
	"log"
	request "meopastel/internal/adapter/http/dto/request"
	"meopastel/internal/domain/entities"
	"meopastel/internal/usecase"
	"meopastel/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SelectionHandler handles the catalog view and the in-progress filling
// selection.

type SelectionHandler struct {
	usecase usecase.ISelectionUseCase
	viewer  sessionViewer
}

func NewSelectionHandler(uc usecase.ISelectionUseCase, viewer sessionViewer) *SelectionHandler {
	return &SelectionHandler{usecase: uc, viewer: viewer}
}

func (h *SelectionHandler) SetView(c *gin.Context) {
	var payload request.SetViewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetView(c.Request.Context(), entities.CatalogView(payload.View)); err != nil {
		log.Printf("[selection][handler] set view failed view=%s err=%v", payload.View, err)
		appErr := mapSelectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.viewer, http.StatusOK)
}

func (h *SelectionHandler) AddFilling(c *gin.Context) {
	var payload request.AddFillingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.AddFilling(c.Request.Context(), payload.FillingID); err != nil {
		log.Printf("[selection][handler] add filling failed filling_id=%s err=%v", payload.FillingID, err)
		appErr := mapSelectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.viewer, http.StatusOK)
}

func (h *SelectionHandler) RemoveAt(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.RemoveAt(c.Request.Context(), index); err != nil {
		appErr := mapSelectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.viewer, http.StatusOK)
}

// RemoveLastMatching drops the most recent pick of a filling, the way the
// storefront decrements a picked filling chip.
func (h *SelectionHandler) RemoveLastMatching(c *gin.Context) {
	var payload request.AddFillingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.RemoveLastMatching(c.Request.Context(), payload.FillingID); err != nil {
		appErr := mapSelectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.viewer, http.StatusOK)
}

func (h *SelectionHandler) Commit(c *gin.Context) {
	line, err := h.usecase.Commit(c.Request.Context())
	if err != nil {
		log.Printf("[selection][handler] commit failed err=%v", err)
		appErr := mapSelectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[selection][handler] commit success line_id=%s price=%s", line.ID, line.UnitPrice.StringFixed(2))

	respondSession(c, h.viewer, http.StatusCreated)
}

func mapSelectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogView):
		return pkg.NewDomainErrorSimple("INVALID_VIEW", "Unknown catalog view", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWrongCatalogView):
		return pkg.NewDomainErrorSimple("WRONG_VIEW", "Filling does not belong to the active catalog view", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownFilling):
		return pkg.NewDomainErrorSimple("FILLING_NOT_FOUND", "Filling not in catalog", http.StatusNotFound)
	case errors.Is(err, entities.ErrSelectionFull):
		return pkg.NewDomainErrorSimple("SELECTION_FULL", "A pastel takes exactly 3 fillings", http.StatusConflict)
	case errors.Is(err, entities.ErrIncompleteSelection):
		return pkg.NewDomainErrorSimple("SELECTION_INCOMPLETE", "Pick 3 fillings before adding to the cart", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
