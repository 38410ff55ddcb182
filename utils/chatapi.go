package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// DefaultChatAPIBase is used when no base URL is configured.
const DefaultChatAPIBase = "https://api.arbache.com"

var validate = validator.New()

// ChatAPIClient talks to the answering backend. The base URL is injected at
// construction so nothing below main reads the environment.
type ChatAPIClient struct {
	BaseURL string
	Client  *http.Client
}

func NewChatAPIClient(baseURL string) *ChatAPIClient {
	if baseURL == "" {
		baseURL = DefaultChatAPIBase
	}

	return &ChatAPIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ChatTurn is one prior conversation turn replayed to the backend.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest mirrors the backend's strict schema. ConversationHistory is
// omitted from the wire entirely when empty.
type ChatRequest struct {
	Message             string     `json:"message" validate:"required,min=1,max=2000"`
	Section             string     `json:"section,omitempty" validate:"omitempty,max=50"`
	SectionContext      string     `json:"sectionContext,omitempty" validate:"omitempty,max=200"`
	ConversationHistory []ChatTurn `json:"conversationHistory,omitempty"`
}

type ChatResponse struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions,omitempty"`
	RequestID   string   `json:"request_id,omitempty"`
}

// SendChat issues one POST to {base}/v2/chat and decodes the answer. Any
// non-2xx status or undecodable body is returned as an error.
func (c *ChatAPIClient) SendChat(ctx context.Context, chatReq *ChatRequest) (*ChatResponse, error) {
	if err := validate.Struct(chatReq); err != nil {
		return nil, fmt.Errorf("invalid chat request: %w", err)
	}

	requestBodyBytes, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/v2/chat", bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("chat API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var response ChatResponse
	if err := json.Unmarshal(bodyBytes, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response JSON: %w", err)
	}

	zap.L().Debug("Chat API response received",
		zap.String("request_id", response.RequestID),
		zap.Int("suggestions", len(response.Suggestions)))

	return &response, nil
}
