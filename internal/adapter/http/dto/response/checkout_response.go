package response

import "meopastel/internal/usecase"

type CheckoutResponse struct {
	OrderNumber  string `json:"order_number"`
	Status       string `json:"status"`
	PaidOnline   bool   `json:"paid_online"`
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
	CurrentTotal string `json:"current_order_total"`
	LedgerTotal  string `json:"ledger_total"`
	GrandTotal   string `json:"grand_total"`
}

func FromSubmitResult(r usecase.SubmitResult) CheckoutResponse {
	return CheckoutResponse{
		OrderNumber:  r.OrderNumber,
		Status:       string(r.Status),
		PaidOnline:   r.PaidOnline,
		Message:      r.Message,
		WhatsAppLink: r.Link,
		CurrentTotal: r.CurrentTotal.StringFixed(2),
		LedgerTotal:  r.LedgerTotal.StringFixed(2),
		GrandTotal:   r.GrandTotal.StringFixed(2),
	}
}

// UpsellOfferResponse is returned when the sweet interstitial interrupts
// a submit attempt.

type UpsellOfferResponse struct {
	UpsellOffered bool   `json:"upsell_offered"`
	Message       string `json:"message"`
}

func NewUpsellOffer() UpsellOfferResponse {
	return UpsellOfferResponse{
		UpsellOffered: true,
		Message:       "Que tal um pastel doce de sobremesa? Repita a finalização para continuar sem doce.",
	}
}
