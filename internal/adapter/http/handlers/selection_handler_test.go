package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	response "meopastel/internal/adapter/http/dto/response"
	"meopastel/internal/adapter/persistence/memory"
	"meopastel/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newSelectionRouter(store *memory.SessionStore) *gin.Engine {
	selectionUC := usecase.NewSelectionUseCase(store)
	checkoutUC := usecase.NewCheckoutUseCase(store, nil, nil, time.Second)
	h := NewSelectionHandler(selectionUC, checkoutUC)

	r := gin.New()
	r.PUT("/v1/session/view", h.SetView)
	r.POST("/v1/session/selection/fillings", h.AddFilling)
	r.PATCH("/v1/session/selection/remove-last", h.RemoveLastMatching)
	r.POST("/v1/session/selection/commit", h.Commit)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSelectionHandler_AddFilling(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		r := newSelectionRouter(memory.NewSessionStore())
		w := doJSON(t, r, http.MethodPost, "/v1/session/selection/fillings", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown filling", func(t *testing.T) {
		r := newSelectionRouter(memory.NewSessionStore())
		w := doJSON(t, r, http.MethodPost, "/v1/session/selection/fillings", `{"filling_id":"picanha"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("wrong view", func(t *testing.T) {
		r := newSelectionRouter(memory.NewSessionStore())
		w := doJSON(t, r, http.MethodPost, "/v1/session/selection/fillings", `{"filling_id":"nutella"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("successful pick echoes the session", func(t *testing.T) {
		r := newSelectionRouter(memory.NewSessionStore())
		w := doJSON(t, r, http.MethodPost, "/v1/session/selection/fillings", `{"filling_id":"queijo"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var out response.SessionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(out.Selection) != 1 || out.Selection[0].ID != "queijo" {
			t.Fatalf("unexpected selection %+v", out.Selection)
		}
		if out.SelectionPrice != "12.00" {
			t.Fatalf("expected selection price 12.00, got %q", out.SelectionPrice)
		}
	})
}

func TestSelectionHandler_Commit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("incomplete selection", func(t *testing.T) {
		r := newSelectionRouter(memory.NewSessionStore())
		w := doJSON(t, r, http.MethodPost, "/v1/session/selection/commit", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("full flow ends with a cart line", func(t *testing.T) {
		r := newSelectionRouter(memory.NewSessionStore())

		for _, id := range []string{"queijo", "carne", "queijo"} {
			w := doJSON(t, r, http.MethodPost, "/v1/session/selection/fillings", `{"filling_id":"`+id+`"}`)
			if w.Code != http.StatusOK {
				t.Fatalf("pick %s: expected 200, got %d", id, w.Code)
			}
		}

		w := doJSON(t, r, http.MethodPost, "/v1/session/selection/commit", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var out response.SessionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(out.Cart) != 1 || out.Cart[0].UnitPrice != "16.00" {
			t.Fatalf("unexpected cart %+v", out.Cart)
		}
		if len(out.Selection) != 0 {
			t.Fatalf("selection must clear after commit, got %+v", out.Selection)
		}
	})

	t.Run("view switch resets picks", func(t *testing.T) {
		r := newSelectionRouter(memory.NewSessionStore())
		_ = doJSON(t, r, http.MethodPost, "/v1/session/selection/fillings", `{"filling_id":"queijo"}`)

		w := doJSON(t, r, http.MethodPut, "/v1/session/view", `{"view":"doces"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var out response.SessionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if out.View != "doces" || len(out.Selection) != 0 {
			t.Fatalf("expected reset doces view, got %+v", out)
		}
	})
}
