package summarize

import (
	"context"

	"google.golang.org/genai"

	"github.com/bs2352/youtube-script-search/internal/errors"
)

// Model is the single text-generation capability both the summarization
// chain and the QA answer generation run on. Test doubles substitute
// canned responses here.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// geminiModel implements Model using the Gemini API
type geminiModel struct {
	client *genai.Client
	model  string
}

// NewGeminiModel creates a Model backed by the Gemini API
func NewGeminiModel(ctx context.Context, apiKey, model string) (Model, error) {
	if apiKey == "" {
		return nil, errors.New(errors.CodeInvalidArg, "gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, "failed to create gemini client")
	}

	return &geminiModel{
		client: client,
		model:  model,
	}, nil
}

// Generate submits one prompt and returns the concatenated text parts
// of the first candidate
func (m *geminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), nil)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeChain, "gemini generate content failed")
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", errors.New(errors.CodeChain, "empty response from gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", errors.New(errors.CodeChain, "gemini response contains no text")
	}

	return text, nil
}
