package handlers

import (
	"errors"
	"log"
	request "meopastel/internal/adapter/http/dto/request"
	response "meopastel/internal/adapter/http/dto/response"
	"meopastel/internal/domain/entities"
	"meopastel/internal/usecase"
	"meopastel/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler owns the session read endpoint, the checkout fields and
// the submission itself.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

func (h *CheckoutHandler) GetSession(c *gin.Context) {
	respondSession(c, h.usecase, http.StatusOK)
}

func (h *CheckoutHandler) SetCustomerName(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetCustomerName(c.Request.Context(), payload.ResolveName()); err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.usecase, http.StatusOK)
}

func (h *CheckoutHandler) SetLabel(c *gin.Context) {
	var payload request.LabelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetLabel(c.Request.Context(), payload.Label); err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.usecase, http.StatusOK)
}

func (h *CheckoutHandler) SetConsumptionMethod(c *gin.Context) {
	var payload request.ConsumptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetConsumptionMethod(c.Request.Context(), entities.ConsumptionMethod(payload.Method)); err != nil {
		log.Printf("[checkout][handler] set consumption failed method=%s err=%v", payload.Method, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.usecase, http.StatusOK)
}

func (h *CheckoutHandler) SetPaymentMethod(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetPaymentMethod(c.Request.Context(), entities.PaymentMethod(payload.Method)); err != nil {
		log.Printf("[checkout][handler] set payment failed method=%s err=%v", payload.Method, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.usecase, http.StatusOK)
}

// Submit runs the terminal checkout. A first attempt on a sweet-less cart
// answers with the upsell interstitial instead of an error body; repeating
// the call with decline_upsell set goes through.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var payload request.CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}

	result, err := h.usecase.Submit(c.Request.Context(), payload.DeclineUpsell)
	if err != nil {
		if errors.Is(err, usecase.ErrSweetUpsellOffered) {
			log.Printf("[checkout][handler] sweet upsell offered")
			c.JSON(http.StatusConflict, response.NewUpsellOffer())
			return
		}
		log.Printf("[checkout][handler] submit failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] submit success order_number=%s status=%s", result.OrderNumber, result.Status)

	c.JSON(http.StatusOK, response.FromSubmitResult(result))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConsumptionMethod):
		return pkg.NewDomainErrorSimple("INVALID_CONSUMPTION_METHOD", "Unknown consumption method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Unknown payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotEligibleForDelivery):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_ELIGIBLE", "Delivery orders require Pix or credit card", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCheckoutIneligible):
		return pkg.NewDomainErrorSimple("CHECKOUT_INELIGIBLE", "Checkout requirements not met", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", "A submission is already in progress", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
