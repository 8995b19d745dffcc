package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"meopastel/internal/adapter/persistence/memory"
	"meopastel/internal/domain/entities"
	mock_interfaces "meopastel/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const testResetWindow = 40 * time.Millisecond

// seedReadyTakeaway builds the minimal eligible session: one custom pastel
// (16), two sodas (12), name, viagem and Pix.
func seedReadyTakeaway(t *testing.T, store *memory.SessionStore, uc *CheckoutUseCase) {
	t.Helper()
	ctx := context.Background()

	selection := NewSelectionUseCase(store)
	for _, id := range []string{"queijo", "carne", "queijo"} {
		if err := selection.AddFilling(ctx, id); err != nil {
			t.Fatalf("add %s failed: %v", id, err)
		}
	}
	if _, err := selection.Commit(ctx); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	cart := NewCartUseCase(store)
	for i := 0; i < 2; i++ {
		if err := cart.AddBeverage(ctx, "coca-cola"); err != nil {
			t.Fatalf("add beverage failed: %v", err)
		}
	}

	if err := uc.SetCustomerName(ctx, "Maria"); err != nil {
		t.Fatalf("set name failed: %v", err)
	}
	if err := uc.SetConsumptionMethod(ctx, entities.ConsumptionViagem); err != nil {
		t.Fatalf("set method failed: %v", err)
	}
	if err := uc.SetPaymentMethod(ctx, entities.PaymentPix); err != nil {
		t.Fatalf("set payment failed: %v", err)
	}
}

func TestCheckoutUseCase_SetConsumptionMethod(t *testing.T) {
	t.Run("invalid method", func(t *testing.T) {
		uc := NewCheckoutUseCase(memory.NewSessionStore(), nil, nil, testResetWindow)
		if err := uc.SetConsumptionMethod(context.Background(), "drive-thru"); !errors.Is(err, ErrInvalidConsumptionMethod) {
			t.Fatalf("expected ErrInvalidConsumptionMethod, got %v", err)
		}
	})

	t.Run("leaving entrega clears the delivery snapshot", func(t *testing.T) {
		store := memory.NewSessionStore()
		uc := NewCheckoutUseCase(store, nil, nil, testResetWindow)
		ctx := context.Background()

		_ = uc.SetConsumptionMethod(ctx, entities.ConsumptionEntrega)
		_ = store.Update(ctx, func(s *entities.Session) error {
			s.Delivery.CEP = "02515030"
			s.Delivery.Street = "Rua Marino Félix"
			return nil
		})

		if err := uc.SetConsumptionMethod(ctx, entities.ConsumptionImediato); err != nil {
			t.Fatalf("set method failed: %v", err)
		}
		if s := sessionState(t, store); s.Delivery.CEP != "" || s.Delivery.Street != "" {
			t.Fatalf("expected cleared snapshot, got %+v", s.Delivery)
		}
	})

	t.Run("entering entrega clears a pay-on-fulfillment selection", func(t *testing.T) {
		store := memory.NewSessionStore()
		uc := NewCheckoutUseCase(store, nil, nil, testResetWindow)
		ctx := context.Background()

		_ = uc.SetPaymentMethod(ctx, entities.PaymentDinheiro)
		if err := uc.SetConsumptionMethod(ctx, entities.ConsumptionEntrega); err != nil {
			t.Fatalf("set method failed: %v", err)
		}
		if s := sessionState(t, store); s.Payment != "" {
			t.Fatalf("cash must be cleared on entering entrega, got %q", s.Payment)
		}
	})

	t.Run("entering entrega keeps a prepaid selection", func(t *testing.T) {
		store := memory.NewSessionStore()
		uc := NewCheckoutUseCase(store, nil, nil, testResetWindow)
		ctx := context.Background()

		_ = uc.SetPaymentMethod(ctx, entities.PaymentPix)
		_ = uc.SetConsumptionMethod(ctx, entities.ConsumptionEntrega)
		if s := sessionState(t, store); s.Payment != entities.PaymentPix {
			t.Fatalf("prepaid selection must survive, got %q", s.Payment)
		}
	})
}

func TestCheckoutUseCase_SetPaymentMethod(t *testing.T) {
	t.Run("invalid method", func(t *testing.T) {
		uc := NewCheckoutUseCase(memory.NewSessionStore(), nil, nil, testResetWindow)
		if err := uc.SetPaymentMethod(context.Background(), "Cheque"); !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("cash is rejected while entrega is active", func(t *testing.T) {
		store := memory.NewSessionStore()
		uc := NewCheckoutUseCase(store, nil, nil, testResetWindow)
		ctx := context.Background()

		_ = uc.SetConsumptionMethod(ctx, entities.ConsumptionEntrega)
		if err := uc.SetPaymentMethod(ctx, entities.PaymentDinheiro); !errors.Is(err, ErrPaymentNotEligibleForDelivery) {
			t.Fatalf("expected ErrPaymentNotEligibleForDelivery, got %v", err)
		}
		if err := uc.SetPaymentMethod(ctx, entities.PaymentDebito); !errors.Is(err, ErrPaymentNotEligibleForDelivery) {
			t.Fatalf("expected ErrPaymentNotEligibleForDelivery, got %v", err)
		}
	})
}

func TestCheckoutUseCase_Submit(t *testing.T) {
	t.Run("ineligible session", func(t *testing.T) {
		uc := NewCheckoutUseCase(memory.NewSessionStore(), nil, nil, testResetWindow)
		if _, err := uc.Submit(context.Background(), false); !errors.Is(err, ErrCheckoutIneligible) {
			t.Fatalf("expected ErrCheckoutIneligible, got %v", err)
		}
	})

	t.Run("first submit without a sweet pastel offers the upsell once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		channel := mock_interfaces.NewMockIOrderChannel(ctrl)

		store := memory.NewSessionStore()
		uc := NewCheckoutUseCase(store, gateway, channel, testResetWindow)
		seedReadyTakeaway(t, store, uc)
		ctx := context.Background()

		if _, err := uc.Submit(ctx, false); !errors.Is(err, ErrSweetUpsellOffered) {
			t.Fatalf("expected ErrSweetUpsellOffered, got %v", err)
		}
		if s := sessionState(t, store); !s.UpsellOffered || s.Phase != entities.PhaseComposing {
			t.Fatalf("interstitial must not leave composing, got %+v", s)
		}

		gateway.EXPECT().Authorize(gomock.Any(), entities.PaymentPix, gomock.Any(), gomock.Any()).Return(nil)
		channel.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return("https://wa.me/5511954261780?text=x", nil)

		result, err := uc.Submit(ctx, false)
		if err != nil {
			t.Fatalf("second submit failed: %v", err)
		}
		if result.Status != entities.OrderStatusPaid || !result.PaidOnline {
			t.Fatalf("unexpected result %+v", result)
		}
		if !result.GrandTotal.Equal(decimal.NewFromInt(28)) {
			t.Fatalf("expected grand total 28, got %s", result.GrandTotal)
		}
		if len(result.OrderNumber) != 6 {
			t.Fatalf("expected a 6-digit order number, got %q", result.OrderNumber)
		}
		if !strings.Contains(result.Message, "#"+result.OrderNumber) {
			t.Fatal("message must carry the order number")
		}
		if result.Link == "" {
			t.Fatal("expected the handoff link")
		}
	})

	t.Run("declining the upsell proceeds in one call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		channel := mock_interfaces.NewMockIOrderChannel(ctrl)
		gateway.EXPECT().Authorize(gomock.Any(), entities.PaymentPix, gomock.Any(), gomock.Any()).Return(nil)
		channel.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return("link", nil)

		store := memory.NewSessionStore()
		uc := NewCheckoutUseCase(store, gateway, channel, testResetWindow)
		seedReadyTakeaway(t, store, uc)

		if _, err := uc.Submit(context.Background(), true); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	})

	t.Run("cash takeaway skips the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		channel := mock_interfaces.NewMockIOrderChannel(ctrl)
		channel.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return("link", nil)

		store := memory.NewSessionStore()
		uc := NewCheckoutUseCase(store, gateway, channel, testResetWindow)
		seedReadyTakeaway(t, store, uc)
		ctx := context.Background()

		if err := uc.SetPaymentMethod(ctx, entities.PaymentDinheiro); err != nil {
			t.Fatalf("set payment failed: %v", err)
		}

		result, err := uc.Submit(ctx, true)
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if result.PaidOnline {
			t.Fatal("cash is paid on fulfillment, never online")
		}
		if result.Status != entities.OrderStatusPaid {
			t.Fatalf("expected paid status, got %s", result.Status)
		}
	})

	t.Run("interrupted authorization reverts to composing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		channel := mock_interfaces.NewMockIOrderChannel(ctrl)
		gateway.EXPECT().Authorize(gomock.Any(), entities.PaymentPix, gomock.Any(), gomock.Any()).Return(context.Canceled)

		store := memory.NewSessionStore()
		uc := NewCheckoutUseCase(store, gateway, channel, testResetWindow)
		seedReadyTakeaway(t, store, uc)

		if _, err := uc.Submit(context.Background(), true); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}

		s := sessionState(t, store)
		if s.Phase != entities.PhaseComposing || s.OrderNumber != "" {
			t.Fatalf("expected reverted session, got phase=%s order=%q", s.Phase, s.OrderNumber)
		}
		if len(s.Cart) == 0 {
			t.Fatal("reverted session must keep its cart")
		}
	})

	t.Run("disconnect during authorization frees the next attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		channel := mock_interfaces.NewMockIOrderChannel(ctrl)

		store := memory.NewSessionStore()
		uc := NewCheckoutUseCase(store, gateway, channel, testResetWindow)
		seedReadyTakeaway(t, store, uc)

		ctx, cancel := context.WithCancel(context.Background())
		gateway.EXPECT().Authorize(gomock.Any(), entities.PaymentPix, gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ entities.PaymentMethod, _ decimal.Decimal, _ string) error {
				cancel()
				return ctx.Err()
			})

		if _, err := uc.Submit(ctx, true); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}

		s := sessionState(t, store)
		if s.Phase != entities.PhaseComposing || s.OrderNumber != "" {
			t.Fatalf("expected reverted session, got phase=%s order=%q", s.Phase, s.OrderNumber)
		}

		// A fresh request must not see a stuck submitting phase.
		gateway.EXPECT().Authorize(gomock.Any(), entities.PaymentPix, gomock.Any(), gomock.Any()).Return(nil)
		channel.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return("link", nil)
		if _, err := uc.Submit(context.Background(), true); err != nil {
			t.Fatalf("retry after disconnect failed: %v", err)
		}
	})

	t.Run("disconnect after authorization still completes the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		channel := mock_interfaces.NewMockIOrderChannel(ctrl)

		store := memory.NewSessionStore()
		uc := NewCheckoutUseCase(store, gateway, channel, testResetWindow)
		seedReadyTakeaway(t, store, uc)

		ctx, cancel := context.WithCancel(context.Background())
		gateway.EXPECT().Authorize(gomock.Any(), entities.PaymentPix, gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, entities.PaymentMethod, decimal.Decimal, string) error {
				cancel()
				return nil
			})
		channel.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return("", context.Canceled)

		result, err := uc.Submit(ctx, true)
		if err != nil {
			t.Fatalf("an authorized order must complete, got %v", err)
		}
		if result.Status != entities.OrderStatusPaid {
			t.Fatalf("expected paid, got %s", result.Status)
		}
		if s := sessionState(t, store); s.Phase != entities.PhaseCompleted {
			t.Fatalf("expected completed phase, got %s", s.Phase)
		}
	})

	t.Run("handoff channel failure does not fail the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		channel := mock_interfaces.NewMockIOrderChannel(ctrl)
		gateway.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		channel.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return("", errors.New("webhook down"))

		store := memory.NewSessionStore()
		uc := NewCheckoutUseCase(store, gateway, channel, testResetWindow)
		seedReadyTakeaway(t, store, uc)

		result, err := uc.Submit(context.Background(), true)
		if err != nil {
			t.Fatalf("submit must succeed despite the channel, got %v", err)
		}
		if result.Status != entities.OrderStatusPaid {
			t.Fatalf("expected paid, got %s", result.Status)
		}
	})

	t.Run("ledger-only submit with just a payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		channel := mock_interfaces.NewMockIOrderChannel(ctrl)
		channel.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return("link", nil)

		store := memory.NewSessionStore()
		uc := NewCheckoutUseCase(store, gateway, channel, testResetWindow)
		seedReadyTakeaway(t, store, uc)
		ctx := context.Background()

		if _, err := NewSubOrderUseCase(store).CloseCurrentOrder(ctx, "João"); err != nil {
			t.Fatalf("close failed: %v", err)
		}
		// Closing wiped the method; the ledger relaxation only needs payment.
		if err := uc.SetPaymentMethod(ctx, entities.PaymentDinheiro); err != nil {
			t.Fatalf("set payment failed: %v", err)
		}

		result, err := uc.Submit(ctx, true)
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if !result.GrandTotal.Equal(decimal.NewFromInt(28)) {
			t.Fatalf("expected ledger total 28, got %s", result.GrandTotal)
		}
		if !result.CurrentTotal.IsZero() {
			t.Fatalf("current cart is empty, got %s", result.CurrentTotal)
		}
	})
}

func TestCheckoutUseCase_AutoReset(t *testing.T) {
	t.Run("session wipes after the completion window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		channel := mock_interfaces.NewMockIOrderChannel(ctrl)
		gateway.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		channel.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return("link", nil)

		store := memory.NewSessionStore()
		uc := NewCheckoutUseCase(store, gateway, channel, testResetWindow)
		seedReadyTakeaway(t, store, uc)

		if _, err := uc.Submit(context.Background(), true); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if s := sessionState(t, store); s.Phase != entities.PhaseCompleted {
			t.Fatalf("expected completed phase, got %s", s.Phase)
		}

		time.Sleep(3 * testResetWindow)

		s := sessionState(t, store)
		if s.Phase != entities.PhaseComposing || len(s.Cart) != 0 || s.CustomerName != "" || s.OrderNumber != "" {
			t.Fatalf("expected a fresh session, got %+v", s)
		}
	})

	t.Run("a new action inside the window starts fresh immediately", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		channel := mock_interfaces.NewMockIOrderChannel(ctrl)
		gateway.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		channel.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return("link", nil)

		store := memory.NewSessionStore()
		uc := NewCheckoutUseCase(store, gateway, channel, testResetWindow)
		seedReadyTakeaway(t, store, uc)
		ctx := context.Background()

		if _, err := uc.Submit(ctx, true); err != nil {
			t.Fatalf("submit failed: %v", err)
		}

		// Inside the window: the mutation wipes first, then applies.
		if err := uc.SetCustomerName(ctx, "Pedro"); err != nil {
			t.Fatalf("set name failed: %v", err)
		}
		s := sessionState(t, store)
		if s.CustomerName != "Pedro" || len(s.Cart) != 0 || s.OrderNumber != "" {
			t.Fatalf("expected a fresh session carrying only the new name, got %+v", s)
		}

		// The pending reset was cancelled; the new state survives the window.
		time.Sleep(3 * testResetWindow)
		if s := sessionState(t, store); s.CustomerName != "Pedro" {
			t.Fatalf("cancelled reset must not wipe the new session, got %+v", s)
		}
	})
}
