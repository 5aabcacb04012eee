package service

import (
	"biotutor_backend/internal/config"
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// AIService proxies an OpenAI-compatible chat completion endpoint. The model
// and generation parameters are operator configuration; callers only control
// the message transcript.
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{},
	}
}

// UpdateConfig swaps the provider settings on config reload.
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

func (s *AIService) cfg() config.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
		Delta   ChatMessage `json:"delta"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ChatStream forwards the transcript to the provider and relays its token
// stream. Fragments arrive on the first channel in upstream order; the
// stream ends when the channel closes. A single error, if any, is delivered
// on the second channel after the fragment channel closes. Cancelling ctx
// stops the upstream read; the call is never retried.
func (s *AIService) ChatStream(ctx context.Context, messages []ChatMessage) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)

	cfg := s.cfg()

	reqBody := chatCompletionRequest{
		Model:       cfg.Model,
		Messages:    messages,
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		MaxTokens:   cfg.MaxTokens,
		Stream:      true,
	}
	jsonData, _ := json.Marshal(reqBody)

	go func() {
		defer close(out)
		defer close(errChan)

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
		if err != nil {
			errChan <- err
			return
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

		resp, err := s.client.Do(req)
		if err != nil {
			errChan <- err
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			errChan <- fmt.Errorf("ai provider error (status %d): %s", resp.StatusCode, string(body))
			return
		}

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err != io.EOF {
					errChan <- err
				}
				break
			}

			line = strings.TrimSpace(line)
			if line == "" || !strings.HasPrefix(line, "data: ") {
				continue
			}

			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				break
			}

			var streamResp chatCompletionResponse
			if err := json.Unmarshal([]byte(data), &streamResp); err != nil {
				continue
			}

			if len(streamResp.Choices) > 0 {
				content := streamResp.Choices[0].Delta.Content
				if content != "" {
					select {
					case out <- content:
					case <-ctx.Done():
						errChan <- ctx.Err()
						return
					}
				}
			}
		}
	}()

	return out, errChan
}

// Chat is the non-streaming variant, used for lesson insights.
func (s *AIService) Chat(ctx context.Context, messages []ChatMessage) (string, error) {
	cfg := s.cfg()

	reqBody := chatCompletionRequest{
		Model:       cfg.Model,
		Messages:    messages,
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		MaxTokens:   cfg.MaxTokens,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai provider error (status %d): %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("ai provider returned no choices")
}
