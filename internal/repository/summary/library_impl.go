package summary

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/bs2352/youtube-script-search/internal/errors"
	"github.com/bs2352/youtube-script-search/internal/model"
)

// Pool interface for abstracting pgx connection pool
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// libraryRepository implements LibraryRepository using PostgreSQL
type libraryRepository struct {
	pool Pool
}

// NewLibraryRepository creates a new instance of LibraryRepository
func NewLibraryRepository(pool Pool) LibraryRepository {
	return &libraryRepository{
		pool: pool,
	}
}

// Save inserts a summary record, replacing any existing record for the same video
func (r *libraryRepository) Save(ctx context.Context, entry *model.LibraryEntry) error {
	sql := `INSERT INTO summaries (video_id, url, title, detail, concise)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (video_id) DO UPDATE SET url = $2, title = $3, detail = $4, concise = $5`
	_, err := r.pool.Exec(ctx, sql, entry.VideoID, entry.URL, entry.Title, entry.Detail, entry.Concise)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to save library entry")
	}
	return nil
}

// Get retrieves a library entry by video ID
func (r *libraryRepository) Get(ctx context.Context, videoID string) (*model.LibraryEntry, error) {
	sql := "SELECT video_id, url, title, detail, concise, created_at FROM summaries WHERE video_id = $1"
	row := r.pool.QueryRow(ctx, sql, videoID)

	var entry model.LibraryEntry
	err := row.Scan(&entry.VideoID, &entry.URL, &entry.Title, &entry.Detail, &entry.Concise, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "library entry not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to get library entry")
	}

	return &entry, nil
}

// List retrieves library entries ordered by creation time, newest first
func (r *libraryRepository) List(ctx context.Context, limit, offset int) ([]*model.LibraryEntry, error) {
	sql := "SELECT video_id, url, title, detail, concise, created_at FROM summaries ORDER BY created_at DESC LIMIT $1 OFFSET $2"
	rows, err := r.pool.Query(ctx, sql, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list library entries")
	}
	defer rows.Close()

	entries := []*model.LibraryEntry{}
	for rows.Next() {
		var entry model.LibraryEntry
		err := rows.Scan(&entry.VideoID, &entry.URL, &entry.Title, &entry.Detail, &entry.Concise, &entry.CreatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan library entry row")
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate library entry rows")
	}

	return entries, nil
}

// Delete deletes a library entry by video ID
func (r *libraryRepository) Delete(ctx context.Context, videoID string) error {
	sql := "DELETE FROM summaries WHERE video_id = $1"
	tag, err := r.pool.Exec(ctx, sql, videoID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to delete library entry")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeNotFound, "library entry not found")
	}
	return nil
}
