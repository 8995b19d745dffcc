package usecase

import (
	"context"
	"errors"
	"testing"

	"meopastel/internal/adapter/persistence/memory"
)

func TestCartUseCase_AddBeverage(t *testing.T) {
	t.Run("unknown beverage", func(t *testing.T) {
		uc := NewCartUseCase(memory.NewSessionStore())
		if err := uc.AddBeverage(context.Background(), "cerveja"); !errors.Is(err, ErrUnknownBeverage) {
			t.Fatalf("expected ErrUnknownBeverage, got %v", err)
		}
	})

	t.Run("repeated beverage merges", func(t *testing.T) {
		store := memory.NewSessionStore()
		uc := NewCartUseCase(store)
		ctx := context.Background()

		for i := 0; i < 2; i++ {
			if err := uc.AddBeverage(ctx, "coca-cola"); err != nil {
				t.Fatalf("add failed: %v", err)
			}
		}

		s := sessionState(t, store)
		if len(s.Cart) != 1 || s.Cart[0].Quantity != 2 {
			t.Fatalf("expected one merged line with quantity 2, got %+v", s.Cart)
		}
	})
}

func TestCartUseCase_QuantityAndRemoval(t *testing.T) {
	store := memory.NewSessionStore()
	uc := NewCartUseCase(store)
	ctx := context.Background()

	_ = uc.AddBeverage(ctx, "coca-cola")
	_ = uc.AddBeverage(ctx, "guarana")
	lineID := sessionState(t, store).Cart[0].ID

	if err := uc.SetQuantity(ctx, lineID, 0); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if got := sessionState(t, store).Cart[0].Quantity; got != 1 {
		t.Fatalf("quantity must clamp to 1, got %d", got)
	}

	if err := uc.RemoveBeverageUnit(ctx, "Guaraná 350ml"); err != nil {
		t.Fatalf("remove unit failed: %v", err)
	}
	if got := len(sessionState(t, store).Cart); got != 1 {
		t.Fatalf("expected guaraná line dropped, got %d lines", got)
	}

	if err := uc.RemoveLine(ctx, lineID); err != nil {
		t.Fatalf("remove line failed: %v", err)
	}
	if got := len(sessionState(t, store).Cart); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
}
