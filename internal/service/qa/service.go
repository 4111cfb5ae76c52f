package qa

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bs2352/youtube-script-search/internal/errors"
	"github.com/bs2352/youtube-script-search/internal/model"
	"github.com/bs2352/youtube-script-search/internal/service/chunk"
	"github.com/bs2352/youtube-script-search/internal/service/summarize"
)

// Retrieval chunking is finer-grained than summarization chunking so
// answers can cite short, focused passages
const (
	defaultMaxLength     = 300
	defaultOverlapLength = 2
	DefaultSourceCount   = 3
)

const answerPromptTemplate = `以下のコンテキストのみを参考にして質問に答えてください。:


"{context}"


質問: {query}

回答:`

// Source is one retrieved passage used to answer a query
type Source struct {
	Score   float32
	ChunkID string
	Time    string
	Text    string
}

// TranscriptService interface for fetching transcript fragments
type TranscriptService interface {
	FetchTranscript(ctx context.Context, videoID string, languages []string) ([]*model.TranscriptFragment, error)
}

// Service answers free-text questions over one video's transcript
type Service interface {
	// PrepareQuery fetches the transcript, chunks it and builds the
	// embedding index. Must be called once before RunQuery.
	PrepareQuery(ctx context.Context, videoID string) error

	// RunQuery retrieves the most relevant passages and generates an answer
	RunQuery(ctx context.Context, query string) (string, error)

	// Sources returns the passages used by the last RunQuery, best first
	Sources() []*Source
}

// Options holds retrieval parameters for a QA session
type Options struct {
	MaxLength     int
	OverlapLength int
	SourceCount   int
	Languages     []string
}

// DefaultOptions returns standard QA retrieval parameters
func DefaultOptions(sourceCount int, languages []string) Options {
	if sourceCount <= 0 {
		sourceCount = DefaultSourceCount
	}
	return Options{
		MaxLength:     defaultMaxLength,
		OverlapLength: defaultOverlapLength,
		SourceCount:   sourceCount,
		Languages:     languages,
	}
}

// service implements Service
type service struct {
	transcriptSvc TranscriptService
	embedder      Embedder
	llm           summarize.Model
	logger        zerolog.Logger
	opts          Options

	index   []*indexEntry
	sources []*Source
}

// NewService creates a QA Service
func NewService(transcriptSvc TranscriptService, embedder Embedder, llm summarize.Model, logger zerolog.Logger, opts Options) Service {
	return &service{
		transcriptSvc: transcriptSvc,
		embedder:      embedder,
		llm:           llm,
		logger:        logger,
		opts:          opts,
	}
}

// PrepareQuery builds the embedding index over the video's transcript
func (s *service) PrepareQuery(ctx context.Context, videoID string) error {
	fragments, err := s.transcriptSvc.FetchTranscript(ctx, videoID, s.opts.Languages)
	if err != nil {
		return err
	}

	chunks, err := chunk.Divide(fragments, s.opts.MaxLength, s.opts.OverlapLength, videoID)
	if err != nil {
		return err
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	vectors, err := s.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}

	s.index = make([]*indexEntry, len(chunks))
	for i, c := range chunks {
		s.index[i] = &indexEntry{chunk: c, vector: vectors[i]}
	}

	s.logger.Debug().Str("video_id", videoID).Int("indexed_chunks", len(s.index)).Msg("query index prepared")
	return nil
}

// RunQuery answers one question against the prepared index
func (s *service) RunQuery(ctx context.Context, query string) (string, error) {
	if len(s.index) == 0 {
		return "", errors.New(errors.CodeInvalidArg, "query index is not prepared")
	}
	if strings.TrimSpace(query) == "" {
		return "", errors.New(errors.CodeInvalidArg, "query is empty")
	}

	queryVectors, err := s.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return "", err
	}

	results, err := search(s.index, queryVectors[0], s.opts.SourceCount)
	if err != nil {
		return "", err
	}

	s.sources = make([]*Source, len(results))
	contexts := make([]string, len(results))
	for i, r := range results {
		s.sources[i] = &Source{
			Score:   r.score,
			ChunkID: r.entry.chunk.ID,
			Time:    FormatTimeLabel(r.entry.chunk.Start),
			Text:    r.entry.chunk.Text,
		}
		contexts[i] = r.entry.chunk.Text
	}

	prompt := strings.ReplaceAll(answerPromptTemplate, "{context}", strings.Join(contexts, "\n\n"))
	prompt = strings.ReplaceAll(prompt, "{query}", query)

	answer, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(answer), nil
}

// Sources returns the passages used by the last RunQuery
func (s *service) Sources() []*Source {
	return s.sources
}

// FormatTimeLabel renders seconds as h:mm:ss
func FormatTimeLabel(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
}
