package request

import "strings"

type SetViewRequest struct {
	View string `json:"view" binding:"required"`
}

type AddFillingRequest struct {
	FillingID string `json:"filling_id" binding:"required"`
}

type AddBeverageRequest struct {
	BeverageID string `json:"beverage_id" binding:"required"`
}

type SetQuantityRequest struct {
	// Pointer so an explicit zero passes binding; the cart clamps it to 1.
	Quantity *int `json:"quantity" binding:"required"`
}

type CustomerRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r CustomerRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

type ConsumptionRequest struct {
	Method string `json:"method" binding:"required"`
}

type PaymentRequest struct {
	Method string `json:"method" binding:"required"`
}

type LabelRequest struct {
	Label string `json:"label"`
}

type ApplySuggestionRequest struct {
	Fillings []string `json:"fillings" binding:"required"`
}

type CloseOrderRequest struct {
	Label string `json:"label"`
}

type CheckoutRequest struct {
	// DeclineUpsell proceeds past the sweet interstitial in one call.
	DeclineUpsell bool `json:"decline_upsell"`
}
