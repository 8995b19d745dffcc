package handlers

import (
	"errors"
	"log"
	request "meopastel/internal/adapter/http/dto/request"
	response "meopastel/internal/adapter/http/dto/response"
	"meopastel/internal/usecase"
	"meopastel/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuggestionHandler exposes the combination generator for the active view.

type SuggestionHandler struct {
	usecase usecase.ISuggestionUseCase
	viewer  sessionViewer
}

func NewSuggestionHandler(uc usecase.ISuggestionUseCase, viewer sessionViewer) *SuggestionHandler {
	return &SuggestionHandler{usecase: uc, viewer: viewer}
}

func (h *SuggestionHandler) Generate(c *gin.Context) {
	suggestions, err := h.usecase.Generate(c.Request.Context())
	if err != nil {
		log.Printf("[suggestion][handler] generate failed err=%v", err)
		appErr := mapSuggestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSuggestions(suggestions))
}

// Apply replaces the in-progress selection with a suggested combination.
func (h *SuggestionHandler) Apply(c *gin.Context) {
	var payload request.ApplySuggestionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Apply(c.Request.Context(), payload.Fillings); err != nil {
		log.Printf("[suggestion][handler] apply failed err=%v", err)
		appErr := mapSuggestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.viewer, http.StatusOK)
}

func mapSuggestionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoAxisForSuggestions):
		return pkg.NewDomainErrorSimple("NO_FILLING_VIEW", "Switch to a filling view before asking for suggestions", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoMatchingFillings):
		return pkg.NewDomainErrorSimple("NO_MATCHING_FILLINGS", "No suggested filling matches the menu", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSuggestionsUnavailable):
		return pkg.NewDomainErrorSimple("SUGGESTIONS_UNAVAILABLE", "Suggestion provider failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
