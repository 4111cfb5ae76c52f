package summary

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bs2352/youtube-script-search/internal/errors"
	"github.com/bs2352/youtube-script-search/internal/model"
)

func testLibraryEntry() *model.LibraryEntry {
	return &model.LibraryEntry{
		VideoID: "dQw4w9WgXcQ",
		URL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Title:   "サンプル動画",
		Detail:  []string{"前半の要約", "後半の要約"},
		Concise: "動画全体の簡潔な要約",
	}
}

func TestLibraryRepository_Save(t *testing.T) {
	tests := []struct {
		name    string
		entry   *model.LibraryEntry
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr bool
	}{
		{
			name:  "successful save",
			entry: testLibraryEntry(),
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO summaries").
					WithArgs("dQw4w9WgXcQ", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "サンプル動画", []string{"前半の要約", "後半の要約"}, "動画全体の簡潔な要約").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			wantErr: false,
		},
		{
			name:  "database error",
			entry: testLibraryEntry(),
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO summaries").
					WithArgs("dQw4w9WgXcQ", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "サンプル動画", []string{"前半の要約", "後半の要約"}, "動画全体の簡潔な要約").
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)

			repo := NewLibraryRepository(mock)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err = repo.Save(ctx, tt.entry)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			err = mock.ExpectationsWereMet()
			assert.NoError(t, err, "pgxmock expectations were not met")
		})
	}
}

func TestLibraryRepository_Get(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		videoID  string
		setup    func(mock pgxmock.PgxPoolIface)
		want     *model.LibraryEntry
		wantErr  bool
		notFound bool
	}{
		{
			name:    "successful get",
			videoID: "dQw4w9WgXcQ",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"video_id", "url", "title", "detail", "concise", "created_at"}).
					AddRow("dQw4w9WgXcQ", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "サンプル動画", []string{"前半の要約", "後半の要約"}, "動画全体の簡潔な要約", createdAt)
				mock.ExpectQuery("SELECT video_id, url, title, detail, concise, created_at FROM summaries").
					WithArgs("dQw4w9WgXcQ").
					WillReturnRows(rows)
			},
			want: &model.LibraryEntry{
				VideoID:   "dQw4w9WgXcQ",
				URL:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				Title:     "サンプル動画",
				Detail:    []string{"前半の要約", "後半の要約"},
				Concise:   "動画全体の簡潔な要約",
				CreatedAt: createdAt,
			},
		},
		{
			name:    "entry not found",
			videoID: "missing",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"video_id", "url", "title", "detail", "concise", "created_at"})
				mock.ExpectQuery("SELECT video_id, url, title, detail, concise, created_at FROM summaries").
					WithArgs("missing").
					WillReturnRows(rows)
			},
			wantErr:  true,
			notFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)

			repo := NewLibraryRepository(mock)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			got, err := repo.Get(ctx, tt.videoID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.notFound {
					assert.True(t, apperrors.IsNotFound(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			err = mock.ExpectationsWereMet()
			assert.NoError(t, err, "pgxmock expectations were not met")
		})
	}
}

func TestLibraryRepository_List(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		want    int
		wantErr bool
	}{
		{
			name: "successful list",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"video_id", "url", "title", "detail", "concise", "created_at"}).
					AddRow("video1", "https://www.youtube.com/watch?v=video1", "動画1", []string{"要約1"}, "簡潔1", createdAt).
					AddRow("video2", "https://www.youtube.com/watch?v=video2", "動画2", []string{"要約2"}, "簡潔2", createdAt)
				mock.ExpectQuery("SELECT video_id, url, title, detail, concise, created_at FROM summaries").
					WithArgs(10, 0).
					WillReturnRows(rows)
			},
			want: 2,
		},
		{
			name: "empty result",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"video_id", "url", "title", "detail", "concise", "created_at"})
				mock.ExpectQuery("SELECT video_id, url, title, detail, concise, created_at FROM summaries").
					WithArgs(10, 0).
					WillReturnRows(rows)
			},
			want: 0,
		},
		{
			name: "database error",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT video_id, url, title, detail, concise, created_at FROM summaries").
					WithArgs(10, 0).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)

			repo := NewLibraryRepository(mock)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			entries, err := repo.List(ctx, 10, 0)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, entries, tt.want)
			}

			err = mock.ExpectationsWereMet()
			assert.NoError(t, err, "pgxmock expectations were not met")
		})
	}
}

func TestLibraryRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		videoID  string
		setup    func(mock pgxmock.PgxPoolIface)
		wantErr  bool
		notFound bool
	}{
		{
			name:    "successful delete",
			videoID: "dQw4w9WgXcQ",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("DELETE FROM summaries").
					WithArgs("dQw4w9WgXcQ").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name:    "entry not found",
			videoID: "missing",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("DELETE FROM summaries").
					WithArgs("missing").
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			wantErr:  true,
			notFound: true,
		},
		{
			name:    "database error",
			videoID: "dQw4w9WgXcQ",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("DELETE FROM summaries").
					WithArgs("dQw4w9WgXcQ").
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)

			repo := NewLibraryRepository(mock)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err = repo.Delete(ctx, tt.videoID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.notFound {
					assert.True(t, apperrors.IsNotFound(err))
				}
			} else {
				assert.NoError(t, err)
			}

			err = mock.ExpectationsWereMet()
			assert.NoError(t, err, "pgxmock expectations were not met")
		})
	}
}
