package response

import (
	"testing"

	"meopastel/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromSession(t *testing.T) {
	fee := decimal.NewFromInt(7)

	s := entities.NewSession()
	s.CustomerName = "Maria"
	s.Method = entities.ConsumptionEntrega
	s.Payment = entities.PaymentPix
	s.Cart = entities.Cart{
		{ID: "a", Kind: entities.LineKindPastel, Axis: entities.FlavorSalgado, Name: "Pastel Salgado Customizado", Details: "Queijo Muçarela, Carne Moída, Queijo Muçarela", UnitPrice: decimal.NewFromInt(16), Quantity: 2},
	}
	s.Delivery = entities.DeliverySnapshot{CEP: "02515030", Street: "Rua Marino Félix", Number: "280", Neighborhood: "Casa Verde", Fee: &fee}
	s.SubOrders = []entities.SubOrder{{ID: "o1", Method: entities.ConsumptionViagem, Total: decimal.NewFromInt(12)}}

	out := FromSession(*s)

	if out.View != "salgados" || out.Phase != "composing" || out.Status != "pending" {
		t.Fatalf("unexpected header fields %+v", out)
	}
	if len(out.Cart) != 1 {
		t.Fatalf("expected 1 cart line, got %d", len(out.Cart))
	}
	if out.Cart[0].UnitPrice != "16.00" || out.Cart[0].LineTotal != "32.00" {
		t.Fatalf("money must render with two decimals, got %+v", out.Cart[0])
	}
	if out.Delivery.Fee != "7.00" {
		t.Fatalf("expected fee 7.00, got %q", out.Delivery.Fee)
	}
	// 32 cart + 7 fee, plus the 12 ledger.
	if out.Totals.CurrentOrder != "39.00" || out.Totals.Ledger != "12.00" || out.Totals.Grand != "51.00" {
		t.Fatalf("unexpected totals %+v", out.Totals)
	}
	if !out.Eligible {
		t.Fatal("expected eligible session")
	}
}

func TestFromSession_EmptySession(t *testing.T) {
	out := FromSession(*entities.NewSession())

	if out.SelectionPrice != "0.00" {
		t.Fatalf("expected zero selection price, got %q", out.SelectionPrice)
	}
	if out.Delivery.Fee != "" {
		t.Fatalf("no fee computed, expected empty string, got %q", out.Delivery.Fee)
	}
	if out.Eligible {
		t.Fatal("empty session must not be eligible")
	}
	if out.Cart == nil || out.SubOrders == nil || out.Selection == nil {
		t.Fatal("collections must serialize as empty arrays, not null")
	}
}
