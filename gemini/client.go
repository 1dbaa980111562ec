package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/fwojciec/parley"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ parley.Client = (*Client)(nil)

// Client implements [parley.Client] for the Gemini API. One genai client is
// kept per API key and rebuilt when the key changes.
type Client struct {
	model      string
	labels     parley.Labels
	baseURL    string
	httpClient *http.Client

	mu     sync.Mutex
	key    string
	client *genai.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID. Default is gemini-2.0-flash.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithLabels sets the role labels used in the prompt. Default is English.
func WithLabels(l parley.Labels) Option {
	return func(c *Client) { c.labels = l }
}

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets the HTTP client whose transport carries requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new Gemini [Client].
func New(opts ...Option) *Client {
	c := &Client{
		model:      defaultModel,
		labels:     parley.EnglishLabels(),
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Send builds the prompt from req and issues one generateContent call.
// All failures are returned as *parley.APIError.
func (c *Client) Send(ctx context.Context, req parley.Request) (string, error) {
	gc, err := c.clientFor(ctx, req.APIKey)
	if err != nil {
		return "", &parley.APIError{Kind: parley.APIErrorTransport, Message: err.Error()}
	}

	prompt := parley.BuildPrompt(req.Text, req.History, c.labels)
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
	}}

	resp, err := gc.Models.GenerateContent(ctx, c.model, contents, buildConfig())
	if err != nil {
		return "", convertError(err)
	}
	return ExtractText(resp)
}

func (c *Client) clientFor(ctx context.Context, apiKey string) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil && c.key == apiKey {
		return c.client, nil
	}

	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc := *c.httpClient
	hc.Transport = &queryKeyTransport{base: base}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &hc,
	}
	if c.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}
	gc, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c.key = apiKey
	c.client = gc
	return gc, nil
}

func buildConfig() *genai.GenerateContentConfig {
	temp := float32(defaultTemperature)
	return &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: defaultMaxTokens,
	}
}

// ExtractText returns the text of the first part of the first candidate.
// Exported for testing.
func ExtractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", malformed("response has no candidates")
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil || len(cand.Content.Parts) == 0 || cand.Content.Parts[0] == nil {
		return "", malformed("first candidate has no content parts")
	}
	return cand.Content.Parts[0].Text, nil
}

func malformed(msg string) *parley.APIError {
	return &parley.APIError{Kind: parley.APIErrorMalformed, Message: "malformed response: " + msg}
}

const genericFailure = "API call failed"

// convertError maps SDK and transport errors to *parley.APIError.
func convertError(err error) *parley.APIError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return remoteError(apiErr)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return remoteError(*apiErrPtr)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &parley.APIError{Kind: parley.APIErrorTransport, Message: err.Error()}
	}
	return &parley.APIError{Kind: parley.APIErrorTransport, Message: fmt.Sprintf("%s: %v", genericFailure, err)}
}

func remoteError(e genai.APIError) *parley.APIError {
	msg := e.Message
	if msg == "" {
		msg = genericFailure
	}
	return &parley.APIError{Kind: parley.APIErrorRemote, Message: msg, StatusCode: e.Code}
}
