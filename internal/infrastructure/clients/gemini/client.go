package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
	"github.com/Aryan9369/HonestWork/pkg/config"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client implements the insight provider on the Gemini generateContent
// API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Gemini client
func NewClient(cfg *config.GeminiConfig) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}, nil
}

type contentPart struct {
	Text string `json:"text"`
}

type content struct {
	Parts []contentPart `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// SummarizeReviews produces a two-sentence sentiment summary of the
// given reviews
func (c *Client) SummarizeReviews(ctx context.Context, orgName string, reviews []entities.Review) (string, error) {
	if len(reviews) == 0 {
		return "", errors.New("no reviews to summarize")
	}

	var sb strings.Builder
	for i, r := range reviews {
		if i > 0 {
			sb.WriteString("\n---\n")
		}
		fmt.Fprintf(&sb, "Rating: %d. Pros: %s. Cons: %s", r.Rating, r.Pros, r.Cons)
	}

	prompt := fmt.Sprintf(
		"Based on the following employee reviews for %s, provide a concise, 2-sentence summary of the general sentiment and key takeaways for a prospective employee.\n\nReviews:\n%s",
		orgName, sb.String())

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// SearchOrganizations asks the model for organization candidates matching
// a free-text query and parses its JSON answer
func (c *Client) SearchOrganizations(ctx context.Context, query string) ([]entities.CompanyCandidate, error) {
	prompt := fmt.Sprintf(
		"List up to 5 real organizations matching the query %q. Respond with only a JSON array of objects with keys \"name\", \"domain\" (bare hostname), \"industry\" and \"description\" (one sentence). No prose.",
		query)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cleaned := stripCodeFences(text)
	var candidates []entities.CompanyCandidate
	if err := json.Unmarshal([]byte(cleaned), &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidate list: %w", err)
	}
	return candidates, nil
}

// generate runs one generateContent call and returns the first candidate
// text
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Contents: []content{{Parts: []contentPart{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", providers.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: status %d", providers.ErrRateLimited, resp.StatusCode)
	case resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode >= http.StatusInternalServerError:
		return "", fmt.Errorf("%w: status %d", providers.ErrUnavailable, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", fmt.Errorf("gemini request failed with status %d", resp.StatusCode)
	}

	var envelope generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}

	for _, candidate := range envelope.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}
	return "", errors.New("gemini response missing candidate text")
}

// stripCodeFences removes Markdown code blocks if present
func stripCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	return strings.TrimSpace(cleaned)
}
