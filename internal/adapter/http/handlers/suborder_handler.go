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

// SubOrderHandler manages the ledger of closed sub-orders.

type SubOrderHandler struct {
	usecase usecase.ISubOrderUseCase
	viewer  sessionViewer
}

func NewSubOrderHandler(uc usecase.ISubOrderUseCase, viewer sessionViewer) *SubOrderHandler {
	return &SubOrderHandler{usecase: uc, viewer: viewer}
}

func (h *SubOrderHandler) CloseOrder(c *gin.Context) {
	var payload request.CloseOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}

	order, err := h.usecase.CloseCurrentOrder(c.Request.Context(), payload.Label)
	if err != nil {
		log.Printf("[suborder][handler] close failed err=%v", err)
		appErr := mapSubOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[suborder][handler] close success order_id=%s total=%s", order.ID, order.Total.StringFixed(2))

	c.JSON(http.StatusCreated, response.FromSubOrder(order))
}

func (h *SubOrderHandler) RemoveSubOrder(c *gin.Context) {
	orderID := c.Param("order_id")
	if err := h.usecase.RemoveSubOrder(c.Request.Context(), orderID); err != nil {
		appErr := mapSubOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	respondSession(c, h.viewer, http.StatusOK)
}

func mapSubOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrCartEmpty):
		return pkg.NewDomainErrorSimple("CART_EMPTY", "Current cart is empty", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrConsumptionMethodUnset):
		return pkg.NewDomainErrorSimple("CONSUMPTION_METHOD_UNSET", "Choose a consumption method first", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrDeliveryFeeNotComputed):
		return pkg.NewDomainErrorSimple("DELIVERY_FEE_MISSING", "Compute the delivery fee before closing a delivery order", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
