package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"meopastel/internal/usecase/interfaces"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"
)

var firstInteger = regexp.MustCompile(`\d+`)

// GeminiDistanceClient asks a Gemini model (with the Maps tool) for the
// straight-line distance between the shop and a customer address. The
// model answers free text; pulling the first integer token out of it is
// this adapter's job, not the provider contract's.

type GeminiDistanceClient struct {
	apiKey         string
	baseURL        string
	model          string
	companyAddress string
	httpClient     *http.Client

	mockMode   bool
	mockMeters int
}

var _ interfaces.IDistanceProvider = (*GeminiDistanceClient)(nil)

func NewGeminiDistanceClient(apiKey, companyAddress string) (*GeminiDistanceClient, error) {
	if isDistanceMockEnabled() {
		meters := 1500
		if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv("DISTANCE_MOCK_METERS"))); err == nil {
			meters = v
		}
		log.Printf("[distance][client] mock mode enabled meters=%d", meters)
		return &GeminiDistanceClient{mockMode: true, mockMeters: meters}, nil
	}

	if apiKey == "" {
		log.Printf("[distance][client] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	return &GeminiDistanceClient{
		apiKey:         apiKey,
		baseURL:        getenvDefault("GEMINI_BASE_URL", defaultBaseURL),
		model:          getenvDefault("GEMINI_DISTANCE_MODEL", defaultModel),
		companyAddress: companyAddress,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type generateContentRequest struct {
	Contents []content        `json:"contents"`
	Tools    []map[string]any `json:"tools,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiDistanceClient) EstimateMeters(ctx context.Context, fullAddress string) (int, error) {
	if c.mockMode {
		return c.mockMeters, nil
	}

	prompt := fmt.Sprintf(`Calcule a distância em metros (raio/linha reta) entre estes dois locais em São Paulo:
Sede: %s
Cliente: %s

INSTRUÇÕES:
1. Use a ferramenta Google Maps para localizar os endereços.
2. Determine a distância em linha reta (raio) entre eles.
3. Responda APENAS o número da distância em metros (ex: 1500).
4. Se não encontrar o número exato, use o CEP e a rua para estimar a distância.
5. Não responda com textos explicativos, apenas o número.`, c.companyAddress, fullAddress)

	text, err := c.generate(ctx, generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Tools:    []map[string]any{{"googleMaps": map[string]any{}}},
	})
	if err != nil {
		return 0, err
	}

	return extractMeters(text)
}

func (c *GeminiDistanceClient) generate(ctx context.Context, reqBody generateContentRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[distance][client] request failed err=%v", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[distance][client] unexpected status status=%d", resp.StatusCode)
		return "", fmt.Errorf("distance provider status %d", resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty distance provider response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// extractMeters pulls the first integer token out of a free-text reply
// and rejects anything non-positive.
func extractMeters(text string) (int, error) {
	match := firstInteger.FindString(strings.TrimSpace(text))
	if match == "" {
		return 0, errors.New("no distance in provider response")
	}
	meters, err := strconv.Atoi(match)
	if err != nil || meters <= 0 {
		return 0, errors.New("invalid distance in provider response")
	}
	return meters, nil
}

func isDistanceMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DISTANCE_MOCK"))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
