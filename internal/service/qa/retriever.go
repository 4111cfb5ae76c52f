package qa

import (
	"math"
	"sort"

	"github.com/bs2352/youtube-script-search/internal/errors"
	"github.com/bs2352/youtube-script-search/internal/model"
)

// indexEntry pairs a transcript chunk with its embedding vector
type indexEntry struct {
	chunk  *model.TranscriptChunk
	vector []float32
}

// scoredEntry is an index entry ranked against a query
type scoredEntry struct {
	entry *indexEntry
	score float32
}

// search ranks index entries by cosine similarity to the query vector
// and returns the top limit entries, best first
func search(index []*indexEntry, query []float32, limit int) ([]*scoredEntry, error) {
	scored := make([]*scoredEntry, 0, len(index))
	for _, entry := range index {
		score, err := cosineSimilarity(query, entry.vector)
		if err != nil {
			return nil, err
		}
		scored = append(scored, &scoredEntry{entry: entry, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if limit < len(scored) {
		scored = scored[:limit]
	}
	return scored, nil
}

// cosineSimilarity computes a·b / (|a||b|)
func cosineSimilarity(a, b []float32) (float32, error) {
	if len(a) != len(b) || len(a) == 0 {
		return 0, errors.New(errors.CodeInternal, "embedding vectors have different lengths")
	}

	var dot, normA, normB float32
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, errors.New(errors.CodeInternal, "zero-length embedding vector")
	}

	return dot / (float32(math.Sqrt(float64(normA))) * float32(math.Sqrt(float64(normB)))), nil
}
