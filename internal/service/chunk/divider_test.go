package chunk

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bs2352/youtube-script-search/internal/errors"
	"github.com/bs2352/youtube-script-search/internal/model"
)

func fragment(text string, start, duration float64) *model.TranscriptFragment {
	return &model.TranscriptFragment{Text: text, Start: start, Duration: duration}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name          string
		fragments     []*model.TranscriptFragment
		maxLength     int
		overlapLength int
		idPrefix      string
		want          []*model.TranscriptChunk
		wantErr       bool
		wantCode      string
	}{
		{
			name: "threshold flush with single fragment overlap",
			fragments: []*model.TranscriptFragment{
				fragment("x", 0, 2),
				fragment("y", 2, 2),
				fragment("z", 4, 2),
			},
			maxLength:     3,
			overlapLength: 1,
			idPrefix:      "v1",
			want: []*model.TranscriptChunk{
				{ID: "v1-0", Text: "x y", Start: 0, Duration: 4},
				{ID: "v1-1", Text: "y z", Start: 2, Duration: 4},
			},
		},
		{
			name: "trailing partial chunk is flushed",
			fragments: []*model.TranscriptFragment{
				fragment("aaaa", 0, 1),
				fragment("bbbb", 1, 1),
				fragment("cc", 2, 1),
			},
			maxLength:     8,
			overlapLength: 1,
			idPrefix:      "v2",
			want: []*model.TranscriptChunk{
				{ID: "v2-0", Text: "aaaa bbbb", Start: 0, Duration: 2},
				{ID: "v2-1", Text: "bbbb cc", Start: 1, Duration: 2},
			},
		},
		{
			name: "single chunk below threshold",
			fragments: []*model.TranscriptFragment{
				fragment("short", 0, 3),
				fragment("text", 3, 2),
			},
			maxLength:     100,
			overlapLength: 2,
			idPrefix:      "v3",
			want: []*model.TranscriptChunk{
				{ID: "v3-0", Text: "short text", Start: 0, Duration: 5},
			},
		},
		{
			name: "multibyte text counted in runes",
			fragments: []*model.TranscriptFragment{
				fragment("こんにちは", 0, 2),
				fragment("世界", 2, 2),
			},
			maxLength:     6,
			overlapLength: 0,
			idPrefix:      "v4",
			want: []*model.TranscriptChunk{
				{ID: "v4-0", Text: "こんにちは 世界", Start: 0, Duration: 4},
			},
		},
		{
			name:          "empty fragments",
			fragments:     nil,
			maxLength:     10,
			overlapLength: 1,
			idPrefix:      "v5",
			wantErr:       true,
			wantCode:      errors.CodeInvalidArg,
		},
		{
			name: "overlap blocks forward progress",
			fragments: []*model.TranscriptFragment{
				fragment("abc", 0, 1),
				fragment("def", 1, 1),
				fragment("ghi", 2, 1),
			},
			maxLength:     3,
			overlapLength: 2,
			idPrefix:      "v6",
			wantErr:       true,
			wantCode:      errors.CodeInvalidArg,
		},
		{
			name:          "non-positive max length",
			fragments:     []*model.TranscriptFragment{fragment("a", 0, 1)},
			maxLength:     0,
			overlapLength: 0,
			idPrefix:      "v7",
			wantErr:       true,
			wantCode:      errors.CodeInvalidArg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Divide(tt.fragments, tt.maxLength, tt.overlapLength, tt.idPrefix)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, tt.wantCode))
				return
			}

			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].ID, got[i].ID)
				assert.Equal(t, tt.want[i].Text, got[i].Text)
				assert.Equal(t, tt.want[i].Start, got[i].Start)
				assert.Equal(t, tt.want[i].Duration, got[i].Duration)
			}
		})
	}
}

// Every chunk but the last must have reached the threshold, none may be
// empty, and the fragment sequence must be reconstructable once overlap
// is removed.
func TestDivide_Properties(t *testing.T) {
	fragments := make([]*model.TranscriptFragment, 40)
	for i := range fragments {
		fragments[i] = fragment(fmt.Sprintf("word%02d", i), float64(i)*2, 2)
	}

	const (
		maxLength = 50
		overlap   = 3
	)

	chunks, err := Divide(fragments, maxLength, overlap, "vid")
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	for i, c := range chunks {
		assert.NotEmpty(t, c.Text, "chunk %d is empty", i)
		if i < len(chunks)-1 {
			assert.GreaterOrEqual(t, utf8.RuneCountInString(c.Text), maxLength,
				"chunk %d closed before reaching the threshold", i)
		}
	}

	// Consecutive chunks share exactly `overlap` fragments: the next
	// chunk starts with the last `overlap` words of the previous one.
	for i := 1; i < len(chunks); i++ {
		prevWords := strings.Fields(chunks[i-1].Text)
		nextWords := strings.Fields(chunks[i].Text)
		require.GreaterOrEqual(t, len(prevWords), overlap)
		assert.Equal(t, prevWords[len(prevWords)-overlap:], nextWords[:overlap],
			"chunks %d and %d do not share the overlap window", i-1, i)
	}

	// Dropping each chunk's leading overlap reconstructs the original
	// fragment sequence in order.
	var rebuilt []string
	for i, c := range chunks {
		words := strings.Fields(c.Text)
		if i > 0 {
			words = words[overlap:]
		}
		rebuilt = append(rebuilt, words...)
	}
	original := make([]string, len(fragments))
	for i, f := range fragments {
		original[i] = f.Text
	}
	assert.Equal(t, original, rebuilt)

	// Start times are non-decreasing
	for i := 1; i < len(chunks); i++ {
		assert.LessOrEqual(t, chunks[i-1].Start, chunks[i].Start)
	}
}
