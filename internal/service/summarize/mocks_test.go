package summarize

import (
	"context"

	"github.com/bs2352/youtube-script-search/internal/model"
)

// Mock collaborators for testing

// mockModel mocks Model
type mockModel struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
	prompts      []string
}

func (m *mockModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "", nil
}

// mockPacer mocks Pacer, recording how often it was consulted
type mockPacer struct {
	WaitFunc func(ctx context.Context) error
	waits    int
}

func (m *mockPacer) Wait(ctx context.Context) error {
	m.waits++
	if m.WaitFunc != nil {
		return m.WaitFunc(ctx)
	}
	return nil
}

// mockTranscriptService mocks TranscriptService
type mockTranscriptService struct {
	FetchVideoInfoFunc  func(ctx context.Context, videoID string) (*model.Video, error)
	FetchTranscriptFunc func(ctx context.Context, videoID string, languages []string) ([]*model.TranscriptFragment, error)
}

func (m *mockTranscriptService) FetchVideoInfo(ctx context.Context, videoID string) (*model.Video, error) {
	if m.FetchVideoInfoFunc != nil {
		return m.FetchVideoInfoFunc(ctx, videoID)
	}
	return &model.Video{ID: videoID}, nil
}

func (m *mockTranscriptService) FetchTranscript(ctx context.Context, videoID string, languages []string) ([]*model.TranscriptFragment, error) {
	if m.FetchTranscriptFunc != nil {
		return m.FetchTranscriptFunc(ctx, videoID, languages)
	}
	return nil, nil
}

// mockStore mocks Store, recording saved records
type mockStore struct {
	SaveFunc func(videoID string, summary *model.Summary) error
	saved    map[string]*model.Summary
}

func (m *mockStore) Save(videoID string, summary *model.Summary) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(videoID, summary)
	}
	if m.saved == nil {
		m.saved = make(map[string]*model.Summary)
	}
	m.saved[videoID] = summary
	return nil
}
