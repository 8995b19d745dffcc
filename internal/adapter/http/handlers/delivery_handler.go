package handlers

import (
	"errors"
	"log"
	request "meopastel/internal/adapter/http/dto/request"
	"meopastel/internal/domain/entities"
	"meopastel/internal/usecase"
	"meopastel/internal/usecase/interfaces"
	"meopastel/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DeliveryHandler edits the delivery address and triggers the postal
// lookup and distance estimate.

type DeliveryHandler struct {
	usecase usecase.IDeliveryUseCase
	viewer  sessionViewer
}

func NewDeliveryHandler(uc usecase.IDeliveryUseCase, viewer sessionViewer) *DeliveryHandler {
	return &DeliveryHandler{usecase: uc, viewer: viewer}
}

func (h *DeliveryHandler) UpdateAddress(c *gin.Context) {
	var payload request.DeliveryAddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	fields := usecase.DeliveryFields{
		CEP:          payload.CEP,
		Street:       payload.Street,
		Number:       payload.Number,
		Neighborhood: payload.Neighborhood,
		Complement:   payload.Complement,
		Observations: payload.Observations,
	}
	if err := h.usecase.UpdateAddress(c.Request.Context(), fields); err != nil {
		appErr := mapDeliveryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.viewer, http.StatusOK)
}

func (h *DeliveryHandler) LookupCEP(c *gin.Context) {
	var payload request.CEPLookupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.LookupCEP(c.Request.Context(), payload.CEP); err != nil {
		log.Printf("[delivery][handler] cep lookup failed cep=%s err=%v", payload.NormalizedCEP(), err)
		appErr := mapDeliveryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.viewer, http.StatusOK)
}

func (h *DeliveryHandler) EstimateFee(c *gin.Context) {
	if err := h.usecase.EstimateFee(c.Request.Context()); err != nil {
		log.Printf("[delivery][handler] estimate failed err=%v", err)
		appErr := mapDeliveryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.viewer, http.StatusOK)
}

func mapDeliveryError(err error) *pkg.AppError {
	var outOfArea *entities.OutOfServiceAreaError
	switch {
	case errors.Is(err, usecase.ErrInvalidCEP):
		return pkg.NewDomainErrorSimple("INVALID_CEP", "Postal code must have 8 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLookupInFlight), errors.Is(err, usecase.ErrEstimateInFlight):
		return pkg.NewDomainErrorSimple("REQUEST_IN_FLIGHT", "A previous request is still running", http.StatusConflict)
	case errors.Is(err, usecase.ErrIncompleteAddress):
		return pkg.NewDomainErrorSimple("INCOMPLETE_ADDRESS", "CEP, street, number and neighborhood are required", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrPostalCodeNotFound):
		return pkg.NewDomainErrorSimple("CEP_NOT_FOUND", "Postal code not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPostalLookupFailed):
		return pkg.NewDomainErrorSimple("POSTAL_LOOKUP_FAILED", "Postal lookup provider failed", http.StatusBadGateway)
	case errors.As(err, &outOfArea):
		return pkg.NewDomainErrorSimple("OUT_OF_SERVICE_AREA", outOfArea.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrEstimationFailed):
		return pkg.NewDomainErrorSimple("ESTIMATE_FAILED", "Distance estimate failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
