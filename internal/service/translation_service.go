package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prajwalb/sameeksha/config"
	"github.com/rs/zerolog/log"
)

const translateTimeout = 12 * time.Second

// HTTPClient lets tests substitute the outbound translation call.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TranslationService is a best-effort wrapper around the external translate
// API. It never fails the surrounding request: on any error, timeout, or
// unusable reply the original text comes back unmodified.
type TranslationService interface {
	Translate(ctx context.Context, text, targetLang string) string
	TranslateBatch(ctx context.Context, texts []string, targetLang string) []string
}

type translationService struct {
	apiURL string
	client HTTPClient
}

func NewTranslationService(cfg *config.Config, client HTTPClient) TranslationService {
	if client == nil {
		client = &http.Client{Timeout: translateTimeout}
	}
	return &translationService{apiURL: cfg.Translate.APIURL, client: client}
}

type translateAPIRequest struct {
	Text   string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateAPIResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (s *translationService) Translate(ctx context.Context, text, targetLang string) string {
	if s.apiURL == "" || text == "" {
		return text
	}

	body, err := json.Marshal(translateAPIRequest{Text: text, Source: "auto", Target: targetLang, Format: "text"})
	if err != nil {
		return text
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return text
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("target", targetLang).Msg("Translate: request failed, returning original text")
		return text
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Msg("Translate: non-2xx from translate API, returning original text")
		return text
	}

	var parsed translateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || parsed.TranslatedText == "" {
		return text
	}
	return parsed.TranslatedText
}

func (s *translationService) TranslateBatch(ctx context.Context, texts []string, targetLang string) []string {
	results := make([]string, len(texts))
	for i, text := range texts {
		results[i] = s.Translate(ctx, text, targetLang)
	}
	return results
}
