package summarize

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bs2352/youtube-script-search/internal/model"
	"github.com/bs2352/youtube-script-search/internal/service/chunk"
)

// TranscriptService interface for fetching video metadata and transcripts
type TranscriptService interface {
	FetchVideoInfo(ctx context.Context, videoID string) (*model.Video, error)
	FetchTranscript(ctx context.Context, videoID string, languages []string) ([]*model.TranscriptFragment, error)
}

// Store persists the finished summary record
type Store interface {
	Save(videoID string, summary *model.Summary) error
}

// Service defines the summarization operations
type Service interface {
	// CreateSummary runs the full pipeline for one video: transcript,
	// chunks, concise summary, per-time-bucket detail summaries, and
	// persists the record. Nothing is persisted if any step fails.
	CreateSummary(ctx context.Context, videoID string) (*model.Summary, error)

	// SummarizeConcise runs the chain once over all chunks
	SummarizeConcise(ctx context.Context, chunks []*model.TranscriptChunk) (string, error)

	// SummarizeDetail runs the chain once per bucket, in bucket order,
	// pacing between invocations
	SummarizeDetail(ctx context.Context, buckets []*model.TimeBucket) ([]string, error)
}

// Options holds chunking and bucketing parameters for a summarization run
type Options struct {
	MaxLength     int
	OverlapLength int
	SplitNum      int
	Languages     []string
}

// DefaultOptions returns the standard summarization parameters
func DefaultOptions(languages []string) Options {
	return Options{
		MaxLength:     chunk.DefaultMaxLength,
		OverlapLength: chunk.DefaultOverlapLength,
		SplitNum:      chunk.DefaultSplitNum,
		Languages:     languages,
	}
}

// service implements Service
type service struct {
	transcriptSvc TranscriptService
	chain         *Chain
	pacer         Pacer
	store         Store
	logger        zerolog.Logger
	opts          Options
}

// NewService creates a summarization Service with the default chain and pacer
func NewService(transcriptSvc TranscriptService, llm Model, store Store, logger zerolog.Logger, opts Options) Service {
	return NewServiceWithDependencies(transcriptSvc, NewChain(llm), NewFixedPacer(DefaultPacingInterval), store, logger, opts)
}

// NewServiceWithDependencies creates a summarization Service with custom
// chain and pacer (for testing)
func NewServiceWithDependencies(transcriptSvc TranscriptService, chain *Chain, pacer Pacer, store Store, logger zerolog.Logger, opts Options) Service {
	return &service{
		transcriptSvc: transcriptSvc,
		chain:         chain,
		pacer:         pacer,
		store:         store,
		logger:        logger,
		opts:          opts,
	}
}

// CreateSummary runs the full summarization pipeline for one video
func (s *service) CreateSummary(ctx context.Context, videoID string) (*model.Summary, error) {
	video, err := s.transcriptSvc.FetchVideoInfo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("video_id", videoID).Str("title", video.Title).Msg("video info fetched")

	fragments, err := s.transcriptSvc.FetchTranscript(ctx, videoID, s.opts.Languages)
	if err != nil {
		return nil, err
	}

	chunks, err := chunk.Divide(fragments, s.opts.MaxLength, s.opts.OverlapLength, videoID)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Int("fragments", len(fragments)).Int("chunks", len(chunks)).Msg("transcript divided")

	concise, err := s.SummarizeConcise(ctx, chunks)
	if err != nil {
		return nil, err
	}

	buckets, err := chunk.DivideByTime(chunks, s.opts.SplitNum)
	if err != nil {
		return nil, err
	}

	detail, err := s.SummarizeDetail(ctx, buckets)
	if err != nil {
		return nil, err
	}

	summary := &model.Summary{
		URL:     video.URL,
		Title:   video.Title,
		Detail:  detail,
		Concise: concise,
	}

	if err := s.store.Save(videoID, summary); err != nil {
		return nil, err
	}

	return summary, nil
}

// SummarizeConcise summarizes the whole chunk set into one short summary
func (s *service) SummarizeConcise(ctx context.Context, chunks []*model.TranscriptChunk) (string, error) {
	return s.chain.Run(ctx, chunkTexts(chunks))
}

// SummarizeDetail produces one summary per bucket, strictly in order,
// pausing between buckets after the first to respect provider limits
func (s *service) SummarizeDetail(ctx context.Context, buckets []*model.TimeBucket) ([]string, error) {
	detail := make([]string, 0, len(buckets))
	for i, bucket := range buckets {
		if i > 0 {
			if err := s.pacer.Wait(ctx); err != nil {
				return nil, err
			}
		}

		s.logger.Debug().Int("bucket", i).Int("chunks", len(bucket.Chunks)).Msg("summarizing bucket")
		summary, err := s.chain.Run(ctx, chunkTexts(bucket.Chunks))
		if err != nil {
			return nil, err
		}
		detail = append(detail, summary)
	}

	return detail, nil
}

func chunkTexts(chunks []*model.TranscriptChunk) []string {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	return texts
}
