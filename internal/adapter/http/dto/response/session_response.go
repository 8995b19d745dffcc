package response

import (
	"meopastel/internal/domain/entities"
)

type SelectedFillingResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type CartLineResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Axis      string `json:"axis,omitempty"`
	Name      string `json:"name"`
	Details   string `json:"details,omitempty"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type DeliveryResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	Complement   string `json:"complement"`
	Observations string `json:"observations"`
	Distance     *int   `json:"distance,omitempty"`
	Fee          string `json:"fee,omitempty"`
	Error        string `json:"error,omitempty"`
}

type SubOrderResponse struct {
	ID       string             `json:"id"`
	Label    string             `json:"label,omitempty"`
	Lines    []CartLineResponse `json:"lines"`
	Method   string             `json:"method"`
	Delivery DeliveryResponse   `json:"delivery"`
	Total    string             `json:"total"`
}

type TotalsResponse struct {
	CurrentOrder string `json:"current_order"`
	Ledger       string `json:"ledger"`
	Grand        string `json:"grand"`
}

type SessionResponse struct {
	View           string                    `json:"view"`
	Selection      []SelectedFillingResponse `json:"selection"`
	SelectionPrice string                    `json:"selection_price"`
	Cart           []CartLineResponse        `json:"cart"`
	SubOrders      []SubOrderResponse        `json:"sub_orders"`
	Label          string                    `json:"label,omitempty"`
	CustomerName   string                    `json:"customer_name,omitempty"`
	Method         string                    `json:"consumption_method,omitempty"`
	Payment        string                    `json:"payment_method,omitempty"`
	Delivery       DeliveryResponse          `json:"delivery"`
	Phase          string                    `json:"phase"`
	OrderNumber    string                    `json:"order_number,omitempty"`
	Status         string                    `json:"status"`
	UpsellOffered  bool                      `json:"upsell_offered"`
	Totals         TotalsResponse            `json:"totals"`
	Eligible       bool                      `json:"checkout_eligible"`
}

func FromSession(s entities.Session) SessionResponse {
	selection := make([]SelectedFillingResponse, 0, len(s.Selection))
	for _, f := range s.Selection {
		selection = append(selection, SelectedFillingResponse{ID: f.ID, Name: f.Name, Price: f.Price.StringFixed(2)})
	}

	subOrders := make([]SubOrderResponse, 0, len(s.SubOrders))
	for _, o := range s.SubOrders {
		subOrders = append(subOrders, FromSubOrder(o))
	}

	return SessionResponse{
		View:           string(s.View),
		Selection:      selection,
		SelectionPrice: s.Selection.PriceNow().StringFixed(2),
		Cart:           fromCart(s.Cart),
		SubOrders:      subOrders,
		Label:          s.Label,
		CustomerName:   s.CustomerName,
		Method:         string(s.Method),
		Payment:        string(s.Payment),
		Delivery:       fromDelivery(s.Delivery),
		Phase:          string(s.Phase),
		OrderNumber:    s.OrderNumber,
		Status:         string(s.Status),
		UpsellOffered:  s.UpsellOffered,
		Totals: TotalsResponse{
			CurrentOrder: s.CurrentOrderTotal().StringFixed(2),
			Ledger:       s.LedgerTotal().StringFixed(2),
			Grand:        s.GrandTotal().StringFixed(2),
		},
		Eligible: s.CheckoutEligible(),
	}
}

func FromSubOrder(o entities.SubOrder) SubOrderResponse {
	return SubOrderResponse{
		ID:       o.ID,
		Label:    o.Label,
		Lines:    fromCart(o.Lines),
		Method:   string(o.Method),
		Delivery: fromDelivery(o.Delivery),
		Total:    o.Total.StringFixed(2),
	}
}

func fromCart(cart entities.Cart) []CartLineResponse {
	lines := make([]CartLineResponse, 0, len(cart))
	for _, l := range cart {
		lines = append(lines, CartLineResponse{
			ID:        l.ID,
			Kind:      string(l.Kind),
			Axis:      string(l.Axis),
			Name:      l.Name,
			Details:   l.Details,
			UnitPrice: l.UnitPrice.StringFixed(2),
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal().StringFixed(2),
		})
	}
	return lines
}

func fromDelivery(d entities.DeliverySnapshot) DeliveryResponse {
	out := DeliveryResponse{
		CEP:          d.CEP,
		Street:       d.Street,
		Number:       d.Number,
		Neighborhood: d.Neighborhood,
		Complement:   d.Complement,
		Observations: d.Observations,
		Distance:     d.Distance,
		Error:        d.Error,
	}
	if d.Fee != nil {
		out.Fee = d.Fee.StringFixed(2)
	}
	return out
}
