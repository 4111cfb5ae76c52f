package qa

import (
	"context"

	"google.golang.org/genai"

	"github.com/bs2352/youtube-script-search/internal/errors"
)

// Embedder turns texts into embedding vectors for retrieval
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// geminiEmbedder implements Embedder using the Gemini embeddings API
type geminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates an Embedder backed by the Gemini API
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (Embedder, error) {
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

	return &geminiEmbedder{
		client: client,
		model:  model,
	}, nil
}

// EmbedTexts embeds all texts in one batch request, preserving order
func (e *geminiEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, errors.New(errors.CodeInvalidArg, "no texts to embed")
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, "gemini embed content failed")
	}
	if result == nil || len(result.Embeddings) != len(texts) {
		return nil, errors.New(errors.CodeExternal, "unexpected embedding count from gemini")
	}

	vectors := make([][]float32, len(result.Embeddings))
	for i, embedding := range result.Embeddings {
		vectors[i] = embedding.Values
	}

	return vectors, nil
}
