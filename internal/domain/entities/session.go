package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ConsumptionMethod governs which payment methods and address fields are
// required at checkout.

type ConsumptionMethod string

const (
	ConsumptionImediato ConsumptionMethod = "imediato"
	ConsumptionViagem   ConsumptionMethod = "viagem"
	ConsumptionEntrega  ConsumptionMethod = "entrega"
)

func (m ConsumptionMethod) Valid() bool {
	switch m {
	case ConsumptionImediato, ConsumptionViagem, ConsumptionEntrega:
		return true
	}
	return false
}

// Label is the vendor-facing uppercase form used in the handoff message.
func (m ConsumptionMethod) Label() string {
	switch m {
	case ConsumptionEntrega:
		return "ENTREGA"
	case ConsumptionViagem:
		return "PARA VIAGEM"
	case ConsumptionImediato:
		return "CONSUMO IMEDIATO"
	}
	return ""
}

type PaymentMethod string

const (
	PaymentPix      PaymentMethod = "Pix"
	PaymentCredito  PaymentMethod = "Cartão de Crédito"
	PaymentDebito   PaymentMethod = "Cartão de Débito"
	PaymentDinheiro PaymentMethod = "Dinheiro"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentPix, PaymentCredito, PaymentDebito, PaymentDinheiro:
		return true
	}
	return false
}

// Prepaid reports whether the method is authorized online before
// fulfillment. Only prepaid methods are accepted for delivery orders.
func (p PaymentMethod) Prepaid() bool {
	return p == PaymentPix || p == PaymentCredito
}

// OrderStatus is the terminal submission outcome.
//
// The checkout flow only ever reaches "paid": the simulated authorization
// cannot be declined. The failed status exists for completeness.

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
)

// CatalogView is the active browsing tab. Switching views resets the
// in-progress selection; the view also gates which fillings a selection
// may receive, which is what keeps a selection on a single flavor axis.

type CatalogView string

const (
	ViewSalgados CatalogView = "salgados"
	ViewDoces    CatalogView = "doces"
	ViewBebidas  CatalogView = "bebidas"
)

func (v CatalogView) Valid() bool {
	switch v {
	case ViewSalgados, ViewDoces, ViewBebidas:
		return true
	}
	return false
}

// Axis returns the flavor axis a view exposes, or false for the beverage
// view.
func (v CatalogView) Axis() (FlavorAxis, bool) {
	switch v {
	case ViewSalgados:
		return FlavorSalgado, true
	case ViewDoces:
		return FlavorDoce, true
	}
	return "", false
}

// SessionPhase is the checkout coordinator state. Composing covers both
// the idle and actively-building steady states; Submitting guards against
// double submission; Completed holds the confirmation until the auto-reset
// window elapses or a new action begins.

type SessionPhase string

const (
	PhaseComposing  SessionPhase = "composing"
	PhaseSubmitting SessionPhase = "submitting"
	PhaseCompleted  SessionPhase = "completed"
)

// Session is the single-user order aggregate. Every mutation goes through
// a named usecase operation; the HTTP layer never writes fields directly.

type Session struct {
	View      CatalogView
	Selection Selection
	Cart      Cart
	SubOrders []SubOrder

	Label        string
	CustomerName string
	Method       ConsumptionMethod
	Payment      PaymentMethod
	Delivery     DeliverySnapshot

	Phase       SessionPhase
	OrderNumber string
	Status      OrderStatus

	UpsellOffered bool

	// In-flight guards for the suspending provider calls.
	CEPLookupInFlight bool
	EstimateInFlight  bool
}

func NewSession() *Session {
	return &Session{
		View:   ViewSalgados,
		Phase:  PhaseComposing,
		Status: OrderStatusPending,
	}
}

// Reset returns the session to the steady browsing state. Called after the
// completion window elapses or when a new action begins on a completed
// session.
func (s *Session) Reset() {
	*s = *NewSession()
}

// CurrentOrderTotal is the current cart subtotal plus the delivery fee
// when the method is entrega and a fee has been computed.
func (s *Session) CurrentOrderTotal() decimal.Decimal {
	total := s.Cart.Subtotal()
	if s.Method == ConsumptionEntrega && s.Delivery.Fee != nil {
		total = total.Add(*s.Delivery.Fee)
	}
	return total
}

// LedgerTotal sums the frozen sub-order totals.
func (s *Session) LedgerTotal() decimal.Decimal {
	total := decimal.Zero
	for _, o := range s.SubOrders {
		total = total.Add(o.Total)
	}
	return total
}

func (s *Session) GrandTotal() decimal.Decimal {
	return s.CurrentOrderTotal().Add(s.LedgerTotal())
}

// HasSweetPastel reports whether any sweet custom pastel exists in the
// current cart or in any closed sub-order. Drives the upsell gate.
func (s *Session) HasSweetPastel() bool {
	if s.Cart.HasSweetPastel() {
		return true
	}
	for _, o := range s.SubOrders {
		if o.Lines.HasSweetPastel() {
			return true
		}
	}
	return false
}

func (s *Session) HasItems() bool {
	return len(s.Cart) > 0 || len(s.SubOrders) > 0
}

// CheckoutEligible is the submit predicate.
//
// When the current cart is empty but sub-orders exist, only a payment
// method is required: name and consumption method were already bound to
// each closed sub-order. The relaxation applies to that case only — a
// non-empty current cart always demands the full field set.
func (s *Session) CheckoutEligible() bool {
	if len(s.SubOrders) > 0 && len(s.Cart) == 0 {
		return s.Payment != ""
	}

	if len(s.Cart) == 0 {
		return false
	}
	if strings.TrimSpace(s.CustomerName) == "" {
		return false
	}
	if s.Method == "" {
		return false
	}
	if s.Payment == "" {
		return false
	}
	if s.Method == ConsumptionEntrega {
		if !s.Delivery.AddressComplete() {
			return false
		}
		if s.Delivery.Fee == nil || s.Delivery.Error != "" {
			return false
		}
		if !s.Payment.Prepaid() {
			return false
		}
	}
	return true
}
