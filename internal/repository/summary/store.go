package summary

import (
	"encoding/json"
	"os"
	"path/filepath"

	apperrors "github.com/bs2352/youtube-script-search/internal/errors"
	"github.com/bs2352/youtube-script-search/internal/model"
)

// Store persists summary records as JSON files, one per video ID
type Store interface {
	// Save writes the summary record for a video, replacing any existing one
	Save(videoID string, summary *model.Summary) error

	// Load reads the summary record for a video
	Load(videoID string) (*model.Summary, error)
}

// fileStore implements Store on the local filesystem
type fileStore struct {
	dir string
}

// NewFileStore creates a Store rooted at dir
func NewFileStore(dir string) Store {
	return &fileStore{dir: dir}
}

// Save writes the summary record for a video, replacing any existing one
func (s *fileStore) Save(videoID string, summary *model.Summary) error {
	if videoID == "" {
		return apperrors.New(apperrors.CodeInvalidArg, "video ID is empty")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to create summary store directory")
	}

	file, err := os.Create(filepath.Join(s.dir, videoID))
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to create summary file")
	}
	defer file.Close()

	// Keep Japanese text readable in the stored file
	enc := json.NewEncoder(file)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(summary); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to encode summary")
	}

	return nil
}

// Load reads the summary record for a video
func (s *fileStore) Load(videoID string) (*model.Summary, error) {
	if videoID == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "video ID is empty")
	}

	data, err := os.ReadFile(filepath.Join(s.dir, videoID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "summary not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to read summary file")
	}

	var summary model.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to decode summary file")
	}

	return &summary, nil
}
