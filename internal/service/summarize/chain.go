package summarize

import (
	"context"
	"strings"

	"github.com/bs2352/youtube-script-search/internal/errors"
)

// Prompt templates for the two chain stages. The {text} placeholder is
// substituted with the document (map) or the joined map outputs (reduce).
const (
	mapPromptTemplate = `以下の内容を重要な情報はできるだけ残して要約してください。:


"{text}"


要約:`

	reducePromptTemplate = `以下の内容を200字以内の日本語で簡潔に要約してください。:


"{text}"


簡潔な要約:`
)

// placeholder marks where the document text goes in a prompt template
const placeholder = "{text}"

// Chain runs a two-stage map-reduce summarization: each document is
// summarized independently against the map prompt, then the map outputs
// are combined with the reduce prompt into a single answer. Documents
// are processed strictly in order, one model call at a time.
type Chain struct {
	model        Model
	mapPrompt    string
	reducePrompt string
}

// NewChain creates a Chain with the default prompt templates
func NewChain(model Model) *Chain {
	return &Chain{
		model:        model,
		mapPrompt:    mapPromptTemplate,
		reducePrompt: reducePromptTemplate,
	}
}

// NewChainWithPrompts creates a Chain with custom prompt templates.
// Each template must contain the {text} placeholder.
func NewChainWithPrompts(model Model, mapPrompt, reducePrompt string) (*Chain, error) {
	if !strings.Contains(mapPrompt, placeholder) || !strings.Contains(reducePrompt, placeholder) {
		return nil, errors.New(errors.CodeInvalidArg, "prompt templates must contain the {text} placeholder")
	}
	return &Chain{
		model:        model,
		mapPrompt:    mapPrompt,
		reducePrompt: reducePrompt,
	}, nil
}

// Run executes the chain over the given documents and returns the
// combined summary. Any model failure aborts the run immediately.
func (c *Chain) Run(ctx context.Context, documents []string) (string, error) {
	if len(documents) == 0 {
		return "", errors.New(errors.CodeInvalidArg, "no documents to summarize")
	}

	// Map stage
	mapped := make([]string, 0, len(documents))
	for _, doc := range documents {
		summary, err := c.model.Generate(ctx, renderPrompt(c.mapPrompt, doc))
		if err != nil {
			return "", err
		}
		mapped = append(mapped, strings.TrimSpace(summary))
	}

	// Reduce stage
	combined := strings.Join(mapped, "\n\n")
	result, err := c.model.Generate(ctx, renderPrompt(c.reducePrompt, combined))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

func renderPrompt(template, text string) string {
	return strings.ReplaceAll(template, placeholder, text)
}
