// Package report generates analysis reports from transcript text via an
// OpenAI-compatible chat completions API.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrNotConfigured means the report service opt-in is missing. Report
// generation is a hard failure without it, never a silent skip.
var ErrNotConfigured = errors.New("OPENAI_API_KEY is required for report generation")

// Generator turns transcript text into a formatted markdown report.
type Generator interface {
	Generate(ctx context.Context, transcriptText string) (string, error)
}

// Client is a chat-completions client for report generation.
type Client struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// NewFromEnv builds a client from OPENAI_API_KEY, OPENAI_BASE_URL and
// OPENAI_MODEL. The API key is the explicit opt-in gate.
func NewFromEnv() (*Client, error) {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	baseURL := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	model := strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Model:   model,
		HTTPClient: &http.Client{
			Timeout: 180 * time.Second,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const systemPrompt = "You are an ultra-detailed content analyst. You extract " +
	"every significant element from a video transcript with precision, " +
	"omitting nothing and adding no outside context."

const userPromptTemplate = `Analyze the full transcript between the <TRANSCRIPT> tags.

Rules:
1. No summarizing away detail. Include every idea as it appears.
2. Keep the original chronological order.
3. Preserve timestamps when present; otherwise mark them "n/a".
4. Preserve relevant literal quotes ("exact text").
5. No opinions or subjective interpretation.

Produce a markdown report with these sections:

#### 1. Metadata
A table with approximate duration, line count, predominant language,
main speaker (if inferable) and other participants.

#### 2. Chronological index
Each topic change or significant segment with its time range.

#### 3. Line-by-line breakdown
A table: # | timestamp | speaker | literal text | keywords | tone.

#### 4. Entities and concepts
A table: entity | type | mention count | first mention timestamp.

#### 5. Questions asked
Every question the speaker poses, literally, with timestamp.

#### 6. Key quotes (15+ words)
Every long literal quote, useful for captions or highlights.

#### 7. Calls to action
Every invitation to subscribe, comment, buy etc., with timestamp and exact text.

#### 8. External resources
Links, books, courses, tools mentioned in the transcript.

#### 9. Rhetorical structure
Hook, problem, solution/climax, closing, each with its timestamp.

#### 10. Keyword list
All keywords with frequency >= 2, ordered by descending frequency.

#### 11. Detailed executive summary of the entire content.

<TRANSCRIPT>
%s
</TRANSCRIPT>`

// Generate sends the transcript through the chat completions endpoint and
// returns the report markdown.
func (c *Client) Generate(ctx context.Context, transcriptText string) (string, error) {
	reqBody := chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(userPromptTemplate, transcriptText)},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("report request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return "", err
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("report: parse response (status %d): %w", resp.StatusCode, err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("report: API error: %s", out.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("report: unexpected status %d", resp.StatusCode)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("report: empty response")
	}
	return out.Choices[0].Message.Content, nil
}
