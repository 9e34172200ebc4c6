package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"clearday.dev/clearday/internal/constants"
)

// ErrUnavailable normalizes every remote failure (transport, upstream
// status, malformed body) into one sentinel callers can branch on.
var ErrUnavailable = errors.New("assist service unavailable")

// Client generates text for a prompt pair. Implementations talk either to
// the local proxy or to the upstream API directly.
type Client interface {
	Generate(ctx context.Context, prompt, systemPrompt string) (string, error)
}

// ProxyClient calls a clearday proxy server's assist route. The proxy holds
// the upstream credential; nothing sensitive travels from here.
type ProxyClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewProxyClient(baseURL string) *ProxyClient {
	return &ProxyClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type proxyRequest struct {
	Prompt       string `json:"prompt"`
	SystemPrompt string `json:"systemPrompt"`
}

type proxyResponse struct {
	Text  string `json:"text"`
	Error string `json:"error"`
}

func (c *ProxyClient) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	body, err := json.Marshal(proxyRequest{Prompt: prompt, SystemPrompt: systemPrompt})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+constants.AssistRoute, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	var out proxyResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	if res.StatusCode != http.StatusOK {
		if out.Error != "" {
			return "", fmt.Errorf("%w: %s", ErrUnavailable, out.Error)
		}
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
	}
	return out.Text, nil
}

// AnthropicClient calls the upstream messages endpoint directly with a key
// from the OS keyring. Used when no proxy is configured.
type AnthropicClient struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	return &AnthropicClient{
		apiKey:     apiKey,
		url:        constants.AssistUpstreamURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type upstreamRequest struct {
	Model     string            `json:"model"`
	MaxTokens int               `json:"max_tokens"`
	System    string            `json:"system"`
	Messages  []upstreamMessage `json:"messages"`
}

type upstreamMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type upstreamResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (c *AnthropicClient) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	body, err := json.Marshal(upstreamRequest{
		Model:     constants.AssistModel,
		MaxTokens: constants.AssistMaxTokens,
		System:    systemPrompt,
		Messages:  []upstreamMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", constants.AssistAPIVersion)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", fmt.Errorf("%w: status %d: %s", ErrUnavailable, res.StatusCode, string(msg))
	}

	var out upstreamResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	if len(out.Content) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}
	return out.Content[0].Text, nil
}
