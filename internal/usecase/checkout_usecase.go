package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"meopastel/internal/domain/entities"
	"meopastel/internal/usecase/interfaces"
)

var (
	ErrInvalidConsumptionMethod      = errors.New("invalid consumption method")
	ErrInvalidPaymentMethod          = errors.New("invalid payment method")
	ErrPaymentNotEligibleForDelivery = errors.New("delivery orders require a prepaid payment method")
	ErrCheckoutIneligible            = errors.New("checkout requirements not met")
	ErrSweetUpsellOffered            = errors.New("sweet upsell offered")
	ErrSubmissionInFlight            = errors.New("submission already in progress")
)

// SubmitResult is the outcome of a successful submission.

type SubmitResult struct {
	OrderNumber  string
	Status       entities.OrderStatus
	PaidOnline   bool
	Message      string
	Link         string
	CurrentTotal decimal.Decimal
	LedgerTotal  decimal.Decimal
	GrandTotal   decimal.Decimal
}

// ICheckoutUseCase is the checkout coordinator: it owns the customer,
// consumption and payment fields, their cross-field rules, the upsell
// gate and the terminal submission state machine.

type ICheckoutUseCase interface {
	Snapshot(ctx context.Context) (entities.Session, error)
	SetCustomerName(ctx context.Context, name string) error
	SetLabel(ctx context.Context, label string) error
	SetConsumptionMethod(ctx context.Context, method entities.ConsumptionMethod) error
	SetPaymentMethod(ctx context.Context, method entities.PaymentMethod) error
	Submit(ctx context.Context, declineUpsell bool) (SubmitResult, error)
}

type CheckoutUseCase struct {
	sessions    interfaces.ISessionRepository
	gateway     interfaces.IPaymentGateway
	channel     interfaces.IOrderChannel
	resetWindow time.Duration
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(sessions interfaces.ISessionRepository, gateway interfaces.IPaymentGateway, channel interfaces.IOrderChannel, resetWindow time.Duration) *CheckoutUseCase {
	return &CheckoutUseCase{sessions: sessions, gateway: gateway, channel: channel, resetWindow: resetWindow}
}

// Snapshot returns a copy of the current session for read-only rendering.
func (u *CheckoutUseCase) Snapshot(ctx context.Context) (entities.Session, error) {
	var snapshot entities.Session
	err := u.sessions.View(ctx, func(s *entities.Session) error {
		snapshot = *s
		return nil
	})
	return snapshot, err
}

func (u *CheckoutUseCase) SetCustomerName(ctx context.Context, name string) error {
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		s.CustomerName = strings.TrimSpace(name)
		return nil
	})
}

func (u *CheckoutUseCase) SetLabel(ctx context.Context, label string) error {
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		s.Label = label
		return nil
	})
}

// SetConsumptionMethod applies the cross-field rules: leaving entrega
// clears the delivery snapshot (switching back forces re-entry), and
// entering entrega with a non-prepaid method already selected clears the
// payment selection so the user must re-choose.
func (u *CheckoutUseCase) SetConsumptionMethod(ctx context.Context, method entities.ConsumptionMethod) error {
	if !method.Valid() {
		return ErrInvalidConsumptionMethod
	}
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		s.Method = method
		if method != entities.ConsumptionEntrega {
			s.Delivery = entities.DeliverySnapshot{}
			return nil
		}
		if s.Payment != "" && !s.Payment.Prepaid() {
			log.Printf("[checkout][usecase] clearing payment method not eligible for delivery payment=%s", s.Payment)
			s.Payment = ""
		}
		return nil
	})
}

func (u *CheckoutUseCase) SetPaymentMethod(ctx context.Context, method entities.PaymentMethod) error {
	if !method.Valid() {
		return ErrInvalidPaymentMethod
	}
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		if s.Method == entities.ConsumptionEntrega && !method.Prepaid() {
			return ErrPaymentNotEligibleForDelivery
		}
		s.Payment = method
		return nil
	})
}

// Submit drives Composing → Submitting → Completed.
//
// The sweet upsell interstitial is offered at most once per session and
// only when no sweet pastel exists anywhere in the order; a declined
// offer (or a repeat call) proceeds. Prepaid methods run the simulated
// online authorization before the order is marked paid; the others are
// paid on fulfillment and marked immediately.
func (u *CheckoutUseCase) Submit(ctx context.Context, declineUpsell bool) (SubmitResult, error) {
	var result SubmitResult

	err := u.sessions.Update(ctx, func(s *entities.Session) error {
		if s.Phase == entities.PhaseSubmitting {
			return ErrSubmissionInFlight
		}
		if !s.CheckoutEligible() {
			return ErrCheckoutIneligible
		}
		if !s.UpsellOffered && !declineUpsell && !s.HasSweetPastel() && s.HasItems() {
			s.UpsellOffered = true
			return ErrSweetUpsellOffered
		}

		orderNumber := fmt.Sprintf("%06d", 100000+rand.Intn(900000))
		s.Phase = entities.PhaseSubmitting
		s.OrderNumber = orderNumber

		result = SubmitResult{
			OrderNumber:  orderNumber,
			PaidOnline:   s.Payment.Prepaid(),
			Message:      BuildOrderMessage(s, orderNumber),
			CurrentTotal: s.CurrentOrderTotal(),
			LedgerTotal:  s.LedgerTotal(),
			GrandTotal:   s.GrandTotal(),
		}
		return nil
	})
	if err != nil {
		return SubmitResult{}, err
	}

	log.Printf("[checkout][usecase] submit start order=%s paid_online=%t total=%s", result.OrderNumber, result.PaidOnline, result.GrandTotal.StringFixed(2))

	// The request context dies with the client connection; the state writes
	// after the suspension points must still land or the session stays in
	// submitting and no retry is possible.
	detached := context.WithoutCancel(ctx)

	if result.PaidOnline {
		var method entities.PaymentMethod
		_ = u.sessions.View(detached, func(s *entities.Session) error {
			method = s.Payment
			return nil
		})
		if err := u.gateway.Authorize(ctx, method, result.GrandTotal, result.OrderNumber); err != nil {
			log.Printf("[checkout][usecase] authorization interrupted order=%s err=%v", result.OrderNumber, err)
			_ = u.sessions.Update(detached, func(s *entities.Session) error {
				s.Phase = entities.PhaseComposing
				s.OrderNumber = ""
				return nil
			})
			return SubmitResult{}, err
		}
	}

	link, channelErr := u.channel.Deliver(ctx, result.Message)
	if channelErr != nil {
		// The order is already authorized at this point; the link can be
		// rebuilt from the message, so the handoff failure is logged, not
		// fatal.
		log.Printf("[checkout][usecase] handoff channel failed order=%s err=%v", result.OrderNumber, channelErr)
	}
	result.Link = link

	err = u.sessions.Update(detached, func(s *entities.Session) error {
		s.Status = entities.OrderStatusPaid
		s.Phase = entities.PhaseCompleted
		return nil
	})
	if err != nil {
		return SubmitResult{}, err
	}
	result.Status = entities.OrderStatusPaid

	u.sessions.ScheduleReset(u.resetWindow)
	log.Printf("[checkout][usecase] submit success order=%s status=%s", result.OrderNumber, result.Status)
	return result, nil
}
