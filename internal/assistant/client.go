package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spec-kit/support-chat-service/internal/domain"
	"github.com/spec-kit/support-chat-service/pkg/util/errorutil"
)

// Client generates assistant replies from conversation history.
type Client interface {
	Reply(ctx context.Context, messages []domain.CaseMessage, language string) (string, error)
}

// Options configures the Ollama-backed client.
type Options struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

type ollamaClient struct {
	baseURL string
	model   string
	http    *http.Client
}

// NewOllamaClient builds a client against a local or remote Ollama server.
func NewOllamaClient(opts Options) Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	model := opts.Model
	if model == "" {
		model = "llama3.2"
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ollamaClient{
		baseURL: baseURL,
		model:   model,
		http:    &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  chatOptions   `json:"options"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

func (c *ollamaClient) Reply(ctx context.Context, messages []domain.CaseMessage, language string) (string, error) {
	formatted := make([]chatMessage, 0, len(messages)+1)
	formatted = append(formatted, chatMessage{Role: "system", Content: systemPrompt(language)})
	for _, msg := range messages {
		role := "assistant"
		if msg.Sender == domain.SenderUser {
			role = "user"
		}
		formatted = append(formatted, chatMessage{Role: role, Content: msg.Text})
	}

	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: formatted,
		Stream:   false,
		Options:  chatOptions{Temperature: 0.4},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errorutil.NewUpstreamError("assistant backend is unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errorutil.NewUpstreamError("failed to read assistant response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errorutil.NewUpstreamError(
			fmt.Sprintf("assistant backend returned status %d", resp.StatusCode), nil)
	}

	// Ollama may emit newline-delimited JSON even with stream disabled, so
	// each line is parsed and the content concatenated.
	var reply strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var chunk chatResponse
		if err := json.Unmarshal([]byte(line), &chunk); err != nil {
			continue
		}
		reply.WriteString(chunk.Message.Content)
	}

	if reply.Len() == 0 {
		return "", errorutil.NewUpstreamError("assistant returned an empty reply", nil)
	}
	return reply.String(), nil
}
