package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL    = "https://generativelanguage.googleapis.com/v1beta"
	DefaultFlashModel = "gemini-3-flash-preview"
	DefaultProModel   = "gemini-3-pro-preview"
	DefaultMimeType   = "audio/mp3"
)

// GeminiConfig holds the generateContent endpoint settings.
type GeminiConfig struct {
	APIKey     string
	BaseURL    string
	FlashModel string
	ProModel   string
	Timeout    time.Duration
}

var _ Advisor = (*Gemini)(nil)

// Gemini talks to the generateContent REST endpoint. Conversational prompts
// go to the flash model, diagnosis to the pro model.
type Gemini struct {
	cfg    GeminiConfig
	client *http.Client
}

func NewGemini(cfg GeminiConfig, client *http.Client) *Gemini {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.FlashModel == "" {
		cfg.FlashModel = DefaultFlashModel
	}
	if cfg.ProModel == "" {
		cfg.ProModel = DefaultProModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Gemini{cfg: cfg, client: client}
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string      `json:"responseMimeType,omitempty"`
	ResponseSchema   interface{} `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) AnalyzeConflict(ctx context.Context, candidate, existing interface{}) (string, error) {
	c, err := json.Marshal(candidate)
	if err != nil {
		return "", fmt.Errorf("failed to encode candidate: %w", err)
	}
	e, err := json.Marshal(existing)
	if err != nil {
		return "", fmt.Errorf("failed to encode schedule: %w", err)
	}
	return g.generate(ctx, g.cfg.FlashModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(conflictPrompt, c, e)}}}},
	})
}

func (g *Gemini) SuggestDiagnosis(ctx context.Context, notes string) (*Diagnosis, error) {
	text, err := g.generate(ctx, g.cfg.ProModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(diagnosisPrompt, notes)}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   diagnosisSchema,
		},
	})
	if err != nil {
		return nil, err
	}

	var d Diagnosis
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		return nil, fmt.Errorf("%w: malformed diagnosis: %v", ErrUnavailable, err)
	}
	return &d, nil
}

func (g *Gemini) TranscribeVoiceNote(ctx context.Context, audioBase64, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	return g.generate(ctx, g.cfg.FlashModel, generateRequest{
		Contents: []content{{Parts: []part{
			{InlineData: &inlineData{MimeType: mimeType, Data: audioBase64}},
			{Text: transcribePrompt},
		}}},
	})
}

func (g *Gemini) SummarizeHistory(ctx context.Context, history []string) (string, error) {
	return g.generate(ctx, g.cfg.FlashModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(summaryPrompt, strings.Join(history, ", "))}}}},
	})
}

func (g *Gemini) DraftReminder(ctx context.Context, patientName, doctorName, dateTime, channel string) (string, error) {
	return g.generate(ctx, g.cfg.FlashModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(reminderPrompt, channel, patientName, doctorName, dateTime)}}}},
	})
}

func (g *Gemini) generate(ctx context.Context, model string, body generateRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(g.cfg.BaseURL, "/"), model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.cfg.APIKey)

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	log.Debug().
		Str("model", model).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("advisor call")

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: model returned %d", ErrUnavailable, resp.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrUnavailable)
	}
	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: empty answer", ErrUnavailable)
	}
	return text, nil
}
