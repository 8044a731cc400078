// Package ocr wraps the generative-vision API that turns slip photographs
// into structured bets.
package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jogossc/boletins-backend/internal/models"
)

// Extraction is the structured payload the model returns for one image. A
// single photograph can show several slips, possibly of different games.
type Extraction struct {
	Games []models.Bet `json:"jogos"`
}

// Client represents a slip-extraction API client
type Client struct {
	BaseURL string
	APIKey  string
	Model   string
	MockAPI bool
	client  *http.Client
}

// NewClient creates a new extraction client
func NewClient(baseURL, apiKey, model string, mockAPI bool) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		MockAPI: mockAPI,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// extractionPrompt instructs the model to transcribe every slip on the
// image into the interchange JSON shape. Field names here are the on-disk
// contract; changing them breaks every downstream consumer.
const extractionPrompt = `Analisa esta fotografia de boletins de lotaria portuguesa ` +
	`(Euromilhões, Totoloto, EuroDreams ou M1lhão) e devolve APENAS JSON válido com a forma: ` +
	`{"jogos":[{"tipo":"...","referencia_unica":"...","data_sorteio":"YYYY-MM-DD",` +
	`"numero_sorteio":"...","apostas":[{"indice":1,"numeros":["01"],"estrelas":["02"],` +
	`"numero_da_sorte":"03","dream_number":"04","codigo":"ABC12345"}]}]}. ` +
	`Preenche apenas os campos que o jogo usa. Transcreve a referência exatamente como impressa.`

// ExtractSlip sends one image for extraction and decodes the response.
func (c *Client) ExtractSlip(ctx context.Context, imagePath string) (*Extraction, error) {
	if c.MockAPI {
		return c.mockExtractSlip(imagePath)
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, err
	}

	reqBody := map[string]any{
		"contents": []map[string]any{{
			"parts": []map[string]any{
				{"text": extractionPrompt},
				{"inline_data": map[string]string{
					"mime_type": mimeType(imagePath),
					"data":      base64.StdEncoding.EncodeToString(data),
				}},
			},
		}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extraction request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extraction request: unexpected status %d", resp.StatusCode)
	}

	var envelope struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode extraction response: %w", err)
	}
	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("extraction response carried no candidates")
	}

	text := StripFences(envelope.Candidates[0].Content.Parts[0].Text)
	var extraction Extraction
	if err := json.Unmarshal([]byte(text), &extraction); err != nil {
		return nil, fmt.Errorf("decode extracted bets: %w", err)
	}
	return &extraction, nil
}

// mockExtractSlip mocks the extraction for testing and offline runs.
func (c *Client) mockExtractSlip(imagePath string) (*Extraction, error) {
	name := filepath.Base(imagePath)
	return &Extraction{Games: []models.Bet{{
		GameType:  "Euromilhões",
		Reference: "MOCK-" + strings.TrimSuffix(name, filepath.Ext(name)),
		DrawDate:  time.Now().Format("2006-01-02"),
		Wagers: []models.Wager{{
			Index:   1,
			Numbers: []models.FlexString{"05", "12", "23", "34", "45"},
			Stars:   []models.FlexString{"03", "09"},
		}},
	}}}, nil
}

// StripFences removes a markdown code fence around a JSON payload. The
// model frequently wraps its answer in ```json fences despite the prompt.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func mimeType(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return "image/png"
	}
	return "image/jpeg"
}
