package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/gdugdh24/rentscore-backend/internal/config"
	"github.com/gdugdh24/rentscore-backend/internal/domain"
	"github.com/gdugdh24/rentscore-backend/internal/logger"
)

const defaultModel = "gemini-1.5-flash"

// Client generates short listing narratives with a Gemini model
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	timeout   time.Duration
	log       *zap.Logger
}

func NewClient(ctx context.Context, cfg config.GeminiConfig, log *zap.Logger) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	name := strings.TrimSpace(cfg.Model)
	if name == "" {
		name = defaultModel
	}

	model := client.GenerativeModel(name)
	if cfg.Temperature > 0 {
		model.SetTemperature(cfg.Temperature)
	}

	return &Client{
		client:    client,
		model:     model,
		modelName: name,
		timeout:   cfg.Timeout,
		log:       logger.WithFields(log, zap.String(logger.FieldModel, name)),
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.modelName
}

// GenerateText sends a single prompt and returns the concatenated text parts
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.log.Warn("gemini request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", fmt.Errorf("%w: generate content: %w", domain.ErrInsightUnavailable, err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}

	c.log.Debug("gemini response",
		zap.Duration("elapsed", time.Since(start)),
		zap.String("preview", logger.TruncateForLog(text, 120)),
	)
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini returned no candidates", domain.ErrInsightUnavailable)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: gemini returned empty text", domain.ErrInsightUnavailable)
	}
	return text, nil
}
