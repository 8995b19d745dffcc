package postal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"meopastel/internal/usecase/interfaces"
)

func TestViaCEPClient_Lookup(t *testing.T) {
	t.Run("resolves street and neighborhood", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/ws/02515030/json/" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"cep":"02515-030","logradouro":"Rua Marino Félix","bairro":"Casa Verde"}`))
		}))
		defer srv.Close()

		client := NewViaCEPClient(srv.URL)
		addr, err := client.Lookup(context.Background(), "02515030")
		if err != nil {
			t.Fatalf("lookup failed: %v", err)
		}
		if addr.Street != "Rua Marino Félix" || addr.Neighborhood != "Casa Verde" {
			t.Fatalf("unexpected address %+v", addr)
		}
	})

	t.Run("maps the erro flag to not found", func(t *testing.T) {
		// ViaCEP has answered both a boolean and a string here.
		for _, body := range []string{`{"erro": true}`, `{"erro": "true"}`} {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))

			client := NewViaCEPClient(srv.URL)
			_, err := client.Lookup(context.Background(), "99999999")
			srv.Close()
			if !errors.Is(err, interfaces.ErrPostalCodeNotFound) {
				t.Fatalf("body %s: expected ErrPostalCodeNotFound, got %v", body, err)
			}
		}
	})

	t.Run("non-200 status is a transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		client := NewViaCEPClient(srv.URL)
		_, err := client.Lookup(context.Background(), "abc")
		if err == nil || errors.Is(err, interfaces.ErrPostalCodeNotFound) {
			t.Fatalf("expected a transport error, got %v", err)
		}
	})
}
