package chunk

import (
	"math"

	"github.com/bs2352/youtube-script-search/internal/errors"
	"github.com/bs2352/youtube-script-search/internal/model"
)

// DefaultSplitNum is the number of time buckets for the detail summary
const DefaultSplitNum = 5

// DivideByTime partitions chunks into splitNum equal-width time buckets
// spanning [0, total_duration]. A chunk lands in bucket
// floor(start / width); indices at or past splitNum are clamped to
// splitNum, so one overflow bucket beyond the nominal last index can
// exist. Empty buckets are dropped, ascending order is preserved.
func DivideByTime(chunks []*model.TranscriptChunk, splitNum int) ([]*model.TimeBucket, error) {
	if len(chunks) == 0 {
		return nil, errors.New(errors.CodeInvalidArg, "chunk list is empty")
	}
	if splitNum <= 0 {
		return nil, errors.New(errors.CodeInvalidArg, "splitNum must be positive")
	}

	last := chunks[len(chunks)-1]
	totalTime := last.Start + last.Duration
	width := math.Floor(totalTime / float64(splitNum))
	if width <= 0 {
		return nil, errors.New(errors.CodeInvalidArg, "transcript too short to divide into time buckets")
	}

	groups := make([][]*model.TranscriptChunk, splitNum)
	for _, chunk := range chunks {
		idx := int(chunk.Start / width)
		if idx >= splitNum {
			idx = splitNum
		}
		for idx+1 > len(groups) {
			groups = append(groups, nil)
		}
		groups[idx] = append(groups[idx], chunk)
	}

	buckets := make([]*model.TimeBucket, 0, len(groups))
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		buckets = append(buckets, &model.TimeBucket{Chunks: group})
	}

	return buckets, nil
}
