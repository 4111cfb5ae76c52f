package summary

import (
	"context"

	"github.com/bs2352/youtube-script-search/internal/model"
)

// LibraryRepository defines operations for the shared summary library
type LibraryRepository interface {
	// Save inserts a summary record, replacing any existing record for the same video
	Save(ctx context.Context, entry *model.LibraryEntry) error

	// Get retrieves a library entry by video ID
	Get(ctx context.Context, videoID string) (*model.LibraryEntry, error)

	// List retrieves library entries ordered by creation time, newest first
	List(ctx context.Context, limit, offset int) ([]*model.LibraryEntry, error)

	// Delete deletes a library entry by video ID
	Delete(ctx context.Context, videoID string) error
}
