package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	response "meopastel/internal/adapter/http/dto/response"
	"meopastel/internal/adapter/persistence/memory"
	"meopastel/internal/usecase"
	mock_interfaces "meopastel/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	router  *gin.Engine
	store   *memory.SessionStore
	gateway *mock_interfaces.MockIPaymentGateway
	channel *mock_interfaces.MockIOrderChannel
}

func newCheckoutFixture(t *testing.T) checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := memory.NewSessionStore()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	channel := mock_interfaces.NewMockIOrderChannel(ctrl)

	checkoutUC := usecase.NewCheckoutUseCase(store, gateway, channel, time.Second)
	selectionUC := usecase.NewSelectionUseCase(store)

	checkoutH := NewCheckoutHandler(checkoutUC)
	selectionH := NewSelectionHandler(selectionUC, checkoutUC)

	r := gin.New()
	r.GET("/v1/session", checkoutH.GetSession)
	r.PUT("/v1/session/customer", checkoutH.SetCustomerName)
	r.PUT("/v1/session/consumption", checkoutH.SetConsumptionMethod)
	r.PUT("/v1/session/payment", checkoutH.SetPaymentMethod)
	r.POST("/v1/session/selection/fillings", selectionH.AddFilling)
	r.POST("/v1/session/selection/commit", selectionH.Commit)
	r.POST("/v1/checkout", checkoutH.Submit)

	return checkoutFixture{router: r, store: store, gateway: gateway, channel: channel}
}

// seedEligible walks the storefront flow: one pastel, name, viagem, Pix.
func (f checkoutFixture) seedEligible(t *testing.T) {
	t.Helper()
	for _, id := range []string{"queijo", "carne", "queijo"} {
		if w := doJSON(t, f.router, http.MethodPost, "/v1/session/selection/fillings", `{"filling_id":"`+id+`"}`); w.Code != http.StatusOK {
			t.Fatalf("pick %s: expected 200, got %d", id, w.Code)
		}
	}
	if w := doJSON(t, f.router, http.MethodPost, "/v1/session/selection/commit", ""); w.Code != http.StatusCreated {
		t.Fatalf("commit: expected 201, got %d", w.Code)
	}
	if w := doJSON(t, f.router, http.MethodPut, "/v1/session/customer", `{"name":"Maria"}`); w.Code != http.StatusOK {
		t.Fatalf("customer: expected 200, got %d", w.Code)
	}
	if w := doJSON(t, f.router, http.MethodPut, "/v1/session/consumption", `{"method":"viagem"}`); w.Code != http.StatusOK {
		t.Fatalf("consumption: expected 200, got %d", w.Code)
	}
	if w := doJSON(t, f.router, http.MethodPut, "/v1/session/payment", `{"method":"Pix"}`); w.Code != http.StatusOK {
		t.Fatalf("payment: expected 200, got %d", w.Code)
	}
}

func TestCheckoutHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newCheckoutFixture(t)

	w := doJSON(t, f.router, http.MethodGet, "/v1/session", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var out response.SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if out.Phase != "composing" || out.View != "salgados" {
		t.Fatalf("unexpected fresh session %+v", out)
	}
}

func TestCheckoutHandler_SetMethods(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown consumption method", func(t *testing.T) {
		f := newCheckoutFixture(t)
		w := doJSON(t, f.router, http.MethodPut, "/v1/session/consumption", `{"method":"drive-thru"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cash while entrega", func(t *testing.T) {
		f := newCheckoutFixture(t)
		if w := doJSON(t, f.router, http.MethodPut, "/v1/session/consumption", `{"method":"entrega"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		w := doJSON(t, f.router, http.MethodPut, "/v1/session/payment", `{"method":"Dinheiro"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ineligible session", func(t *testing.T) {
		f := newCheckoutFixture(t)
		w := doJSON(t, f.router, http.MethodPost, "/v1/checkout", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("upsell interstitial then completion", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.seedEligible(t)

		w := doJSON(t, f.router, http.MethodPost, "/v1/checkout", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409 interstitial, got %d: %s", w.Code, w.Body.String())
		}
		var offer response.UpsellOfferResponse
		if err := json.Unmarshal(w.Body.Bytes(), &offer); err != nil {
			t.Fatalf("invalid offer body: %v", err)
		}
		if !offer.UpsellOffered {
			t.Fatalf("expected upsell payload, got %+v", offer)
		}

		f.gateway.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.channel.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return("https://wa.me/5511954261780?text=x", nil)

		w = doJSON(t, f.router, http.MethodPost, "/v1/checkout", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var out response.CheckoutResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if out.Status != "paid" || !out.PaidOnline {
			t.Fatalf("unexpected result %+v", out)
		}
		if out.GrandTotal != "16.00" {
			t.Fatalf("expected grand total 16.00, got %q", out.GrandTotal)
		}
		if out.WhatsAppLink == "" || len(out.OrderNumber) != 6 {
			t.Fatalf("unexpected result %+v", out)
		}
	})

	t.Run("decline flag skips the interstitial", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.seedEligible(t)

		f.gateway.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.channel.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return("link", nil)

		w := doJSON(t, f.router, http.MethodPost, "/v1/checkout", `{"decline_upsell":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
