package suggestions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"meopastel/internal/domain/entities"
	"meopastel/internal/usecase/interfaces"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-3-flash-preview"
)

// GeminiSuggestionClient asks a Gemini model for titled three-filling
// combinations, constrained to the supplied name list via a JSON response
// schema. The usecase re-validates everything that comes back.

type GeminiSuggestionClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client

	mockMode bool
}

var _ interfaces.ISuggestionProvider = (*GeminiSuggestionClient)(nil)

func NewGeminiSuggestionClient(apiKey string) (*GeminiSuggestionClient, error) {
	if isSuggestionsMockEnabled() {
		log.Printf("[suggestions][client] mock mode enabled")
		return &GeminiSuggestionClient{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[suggestions][client] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	return &GeminiSuggestionClient{
		apiKey:     apiKey,
		baseURL:    getenvDefault("GEMINI_BASE_URL", defaultBaseURL),
		model:      getenvDefault("GEMINI_SUGGESTION_MODEL", defaultModel),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (c *GeminiSuggestionClient) GenerateCombinations(ctx context.Context, axis entities.FlavorAxis, available []string) ([]entities.Suggestion, error) {
	if c.mockMode {
		return mockCombinations(axis, available), nil
	}

	axisWord := "SALGADOS"
	if axis == entities.FlavorDoce {
		axisWord = "DOCES"
	}

	prompt := fmt.Sprintf(`Você é um especialista em pastéis gourmet. Com base EXCLUSIVAMENTE nesta lista de recheios %s: %s, sugira 3 combinações irresistíveis.

REGRAS OBRIGATÓRIAS:
1. Use APENAS os nomes exatos dos recheios da lista fornecida acima.
2. Cada sugestão deve conter EXATAMENTE 3 recheios diferentes.
3. NÃO invente ingredientes novos.
4. NÃO misture salgado com doce.
5. Crie um título curto e apetitoso para a combinação.`, axisWord, strings.Join(available, ", "))

	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": prompt}}},
		},
		"generationConfig": map[string]any{
			"responseMimeType": "application/json",
			"responseSchema": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"title":       map[string]any{"type": "STRING"},
						"fillings":    map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
						"description": map[string]any{"type": "STRING"},
					},
					"required": []string{"title", "fillings", "description"},
				},
			},
		},
	}

	text, err := c.generate(ctx, body)
	if err != nil {
		return nil, err
	}

	var parsed []entities.Suggestion
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		log.Printf("[suggestions][client] response parse failed err=%v", err)
		return nil, err
	}
	return parsed, nil
}

func (c *GeminiSuggestionClient) generate(ctx context.Context, body map[string]any) (string, error) {
	payload, err := json.Marshal(body)
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
		log.Printf("[suggestions][client] request failed err=%v", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[suggestions][client] unexpected status status=%d", resp.StatusCode)
		return "", fmt.Errorf("suggestion provider status %d", resp.StatusCode)
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty suggestion provider response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// mockCombinations slices the available names into fixed trios so the
// storefront stays usable without an API key.
func mockCombinations(axis entities.FlavorAxis, available []string) []entities.Suggestion {
	if len(available) < 3 {
		return nil
	}
	title := "Clássico da Casa"
	if axis == entities.FlavorDoce {
		title = "Sobremesa da Casa"
	}
	out := []entities.Suggestion{{
		Title:       title,
		Fillings:    []string{available[0], available[1], available[2]},
		Description: "Combinação montada com os recheios mais pedidos.",
	}}
	if len(available) >= 6 {
		out = append(out, entities.Suggestion{
			Title:       "Escolha do Chef",
			Fillings:    []string{available[3], available[4], available[5]},
			Description: "Trio equilibrado para quem quer variar.",
		})
	}
	return out
}

func isSuggestionsMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SUGGESTIONS_MOCK"))) {
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
