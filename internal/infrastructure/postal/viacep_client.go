package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"meopastel/internal/usecase/interfaces"
)

const defaultBaseURL = "https://viacep.com.br"

// ViaCEPClient resolves Brazilian postal codes through the public ViaCEP
// API. It expects an already-normalized 8-digit code.

type ViaCEPClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IPostalLookupProvider = (*ViaCEPClient)(nil)

func NewViaCEPClient(baseURL string) *ViaCEPClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &ViaCEPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type viaCEPResponse struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`

	// ViaCEP has answered both `"erro": true` and `"erro": "true"` over
	// time; accept either.
	Erro json.RawMessage `json:"erro,omitempty"`
}

func (r viaCEPResponse) notFound() bool {
	switch string(r.Erro) {
	case "true", `"true"`:
		return true
	}
	return false
}

func (c *ViaCEPClient) Lookup(ctx context.Context, cep string) (interfaces.PostalAddress, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return interfaces.PostalAddress{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[postal][client] viacep request failed cep=%s err=%v", cep, err)
		return interfaces.PostalAddress{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[postal][client] viacep unexpected status cep=%s status=%d", cep, resp.StatusCode)
		return interfaces.PostalAddress{}, fmt.Errorf("viacep status %d", resp.StatusCode)
	}

	var payload viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return interfaces.PostalAddress{}, err
	}
	if payload.notFound() {
		return interfaces.PostalAddress{}, interfaces.ErrPostalCodeNotFound
	}

	return interfaces.PostalAddress{Street: payload.Logradouro, Neighborhood: payload.Bairro}, nil
}
