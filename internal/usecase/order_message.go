package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"meopastel/internal/domain/entities"
)

const messageSeparator = "━━━━━━━━━━━━━━━━━━━━"

// BuildOrderMessage assembles the vendor handoff text. The itemization is
// a hard contract: every line of every sub-order and of the current order,
// each block's subtotal, the grand total and the payment annotation must
// all be present.
func BuildOrderMessage(s *entities.Session, orderNumber string) string {
	var b strings.Builder

	b.WriteString("*🍔 NOVO PEDIDO - MEO PASTEL*\n")
	fmt.Fprintf(&b, "*Pedido:* #%s\n", orderNumber)
	fmt.Fprintf(&b, "*Cliente:* %s\n", s.CustomerName)
	b.WriteString(messageSeparator + "\n\n")

	for i, order := range s.SubOrders {
		writeOrderBlock(&b, i+1, order.Label, order.Method, order.Lines, order.Delivery, order.Total)
	}

	if len(s.Cart) > 0 {
		writeOrderBlock(&b, len(s.SubOrders)+1, strings.TrimSpace(s.Label), s.Method, s.Cart, s.Delivery, s.CurrentOrderTotal())
	}

	fmt.Fprintf(&b, "*💵 TOTAL GERAL: R$ %s*\n", s.GrandTotal().StringFixed(2))

	annotation := " (Pagar na Entrega/Retirada)"
	if s.Payment.Prepaid() {
		annotation = " (Pago Online ✅)"
	}
	fmt.Fprintf(&b, "💳 *Pagamento:* %s%s", s.Payment, annotation)

	if anyDelivery(s) {
		b.WriteString("\n\n⚠️ *Atenção:* Pedidos para entrega requerem pagamento antecipado. Por favor, envie o comprovante.")
	}

	b.WriteString("\n\n_Pedido gerado via App Meo Pastel_")
	return b.String()
}

func writeOrderBlock(b *strings.Builder, position int, label string, method entities.ConsumptionMethod, lines entities.Cart, delivery entities.DeliverySnapshot, total decimal.Decimal) {
	display := method.Label()
	if label != "" {
		display = fmt.Sprintf("%s (%s)", display, strings.ToUpper(label))
	}
	fmt.Fprintf(b, "📦 *PEDIDO %d: %s*\n", position, display)

	for _, line := range lines {
		details := ""
		if line.Details != "" {
			details = fmt.Sprintf(" (%s)", line.Details)
		}
		fmt.Fprintf(b, "• %dx %s%s - R$ %s\n", line.Quantity, line.Name, details, line.LineTotal().StringFixed(2))
	}

	if method == entities.ConsumptionEntrega {
		fmt.Fprintf(b, "📍 *Entrega:* %s, %s\n", delivery.Street, delivery.Number)
	}
	fmt.Fprintf(b, "💰 *Subtotal:* R$ %s\n", total.StringFixed(2))
	b.WriteString(messageSeparator + "\n\n")
}

func anyDelivery(s *entities.Session) bool {
	if s.Method == entities.ConsumptionEntrega {
		return true
	}
	for _, o := range s.SubOrders {
		if o.Method == entities.ConsumptionEntrega {
			return true
		}
	}
	return false
}
