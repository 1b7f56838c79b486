package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"vocab_explorer/internal/config"
	"vocab_explorer/internal/middleware"
	"vocab_explorer/internal/model"
)

// Gemini generateContent APIのリクエスト/レスポンス構造体
type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	Temperature      float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// AIが返すJSONペイロード
type lookupPayload struct {
	Meanings []model.Meaning `json:"meanings"`
}

type GeminiClient struct {
	httpClient *http.Client
	cfg        config.GeminiConfig
	endpoint   string
}

func NewGeminiClient(cfg config.GeminiConfig) *GeminiClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiClient{
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
		endpoint:   config.GeminiAPIEndpoint,
	}
}

// Lookup は単語の語義リスト (品詞と日本語での定義の代わりに英英定義) を取得します
func (c *GeminiClient) Lookup(ctx context.Context, text string) ([]model.Meaning, error) {
	prompt := fmt.Sprintf(`You are a dictionary for English learners.
Give the meanings of the word or phrase %q.
Respond with JSON only, in this exact shape:
{"meanings":[{"part_of_speech":"noun","definition":"a short learner-friendly definition"}]}
List at most 4 meanings, most common first. Use simple English in definitions.`, text)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var payload lookupPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, model.NewAppError("UPSTREAM_ERROR", "辞書サービスの応答を解釈できませんでした。", "", fmt.Errorf("decoding lookup payload: %w", err))
	}
	if len(payload.Meanings) == 0 {
		return nil, model.NewAppError("NOT_FOUND", "その単語の語義が見つかりませんでした。", "text", model.ErrNotFound)
	}
	return payload.Meanings, nil
}

// Explore は例文・コロケーション・類義語など学習用の詳細情報を取得します
func (c *GeminiClient) Explore(ctx context.Context, text string, meanings []model.Meaning) (*model.TermDetails, error) {
	var sb strings.Builder
	for _, m := range meanings {
		fmt.Fprintf(&sb, "- (%s) %s\n", m.PartOfSpeech, m.Definition)
	}

	prompt := fmt.Sprintf(`You are a vocabulary tutor for English learners.
The learner is studying the word or phrase %q with these meanings:
%s
Respond with JSON only, in this exact shape:
{"examples":["..."],"collocations":["..."],"synonyms":["..."],"usage_note":"..."}
Give 3 natural example sentences that each contain the word %q verbatim,
up to 5 common collocations, up to 5 synonyms, and one short usage note.`, text, sb.String(), text)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var details model.TermDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, model.NewAppError("UPSTREAM_ERROR", "辞書サービスの応答を解釈できませんでした。", "", fmt.Errorf("decoding explore payload: %w", err))
	}
	return &details, nil
}

// generate はgenerateContentを呼び出し、本文のJSONテキストを返します。
// レート制限や認証エラー時はフォールバックキーで一度だけ再試行します。
func (c *GeminiClient) generate(ctx context.Context, prompt string) ([]byte, error) {
	logger := middleware.GetLogger(ctx)

	raw, status, err := c.doGenerate(ctx, prompt, c.cfg.APIKey)
	if err == nil {
		return raw, nil
	}

	if c.cfg.FallbackAPIKey != "" && isRetryableStatus(status) {
		logger.Warn("Gemini request failed, retrying with fallback key", "status", status, "error", err)
		raw, _, err = c.doGenerate(ctx, prompt, c.cfg.FallbackAPIKey)
		if err == nil {
			return raw, nil
		}
	}

	logger.Error("Gemini request failed", "status", status, "error", err)
	return nil, model.NewAppError("UPSTREAM_ERROR", "辞書サービスが一時的に利用できません。", "", fmt.Errorf("%w: %v", model.ErrUpstream, err))
}

func (c *GeminiClient) doGenerate(ctx context.Context, prompt, apiKey string) ([]byte, int, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.2,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("marshaling gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.endpoint, c.cfg.Model, apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("creating gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("calling gemini: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading gemini response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decoding gemini response: %w", err)
	}
	if parsed.Error != nil {
		return nil, parsed.Error.Code, fmt.Errorf("gemini error: %s", parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, resp.StatusCode, fmt.Errorf("gemini returned no candidates")
	}

	return []byte(stripCodeFence(parsed.Candidates[0].Content.Parts[0].Text)), resp.StatusCode, nil
}

// モデルが ```json フェンスで囲んで返すことがあるため剥がします
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return true
	}
	return status >= 500
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
