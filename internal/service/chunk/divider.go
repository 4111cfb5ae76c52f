// Package chunk prepares transcript fragments for summarization:
// dividing them into overlapping text chunks and grouping chunks into
// time buckets.
package chunk

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bs2352/youtube-script-search/internal/errors"
	"github.com/bs2352/youtube-script-search/internal/model"
)

// Default chunking parameters for summarization input
const (
	DefaultMaxLength     = 1000
	DefaultOverlapLength = 5
)

// fragment texts inside a chunk are joined with a single ASCII space;
// lengths are counted in runes, not bytes
const separator = " "

// Divide builds overlapping chunks from consecutive fragments. A chunk
// is closed once its accumulated text reaches maxLength runes, and the
// last overlapLength fragments of a closed chunk seed the next one, so
// those fragments appear in two consecutive chunks. Chunk IDs are
// "{idPrefix}-{n}" with n counting from 0.
func Divide(fragments []*model.TranscriptFragment, maxLength, overlapLength int, idPrefix string) ([]*model.TranscriptChunk, error) {
	if len(fragments) == 0 {
		return nil, errors.New(errors.CodeInvalidArg, "transcript is empty")
	}
	if maxLength <= 0 {
		return nil, errors.New(errors.CodeInvalidArg, "maxLength must be positive")
	}
	if overlapLength < 0 {
		return nil, errors.New(errors.CodeInvalidArg, "overlapLength must not be negative")
	}

	var chunks []*model.TranscriptChunk
	var current []*model.TranscriptFragment
	textLen := 0 // rune length of current fragments joined with separator
	fresh := 0   // fragments appended since the last flush
	seq := 0

	flush := func() error {
		chunks = append(chunks, buildChunk(current, idPrefix, seq))
		seq++

		// Seed the next chunk with the tail of the closed one
		n := overlapLength
		if n > len(current) {
			n = len(current)
		}
		seed := current[len(current)-n:]
		seedLen := joinedLength(seed)
		if seedLen >= maxLength {
			return errors.New(errors.CodeInvalidArg,
				fmt.Sprintf("overlap of %d fragments already reaches maxLength %d; division cannot make progress", n, maxLength))
		}

		current = append([]*model.TranscriptFragment{}, seed...)
		textLen = seedLen
		fresh = 0
		return nil
	}

	for _, fragment := range fragments {
		if len(current) > 0 {
			textLen++ // separator
		}
		textLen += utf8.RuneCountInString(fragment.Text)
		current = append(current, fragment)
		fresh++

		if textLen >= maxLength {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}

	// Flush the trailing partial chunk, but only if it holds fragments
	// beyond the overlap seed
	if fresh > 0 {
		chunks = append(chunks, buildChunk(current, idPrefix, seq))
	}

	return chunks, nil
}

// buildChunk closes a chunk over the given fragments: start is the
// first fragment's start, duration the sum of fragment durations
func buildChunk(fragments []*model.TranscriptFragment, idPrefix string, seq int) *model.TranscriptChunk {
	texts := make([]string, len(fragments))
	duration := 0.0
	for i, f := range fragments {
		texts[i] = f.Text
		duration += f.Duration
	}

	return &model.TranscriptChunk{
		ID:       fmt.Sprintf("%s-%d", idPrefix, seq),
		Text:     strings.Join(texts, separator),
		Start:    fragments[0].Start,
		Duration: duration,
	}
}

// joinedLength returns the rune length of the fragments' texts joined
// with the separator
func joinedLength(fragments []*model.TranscriptFragment) int {
	length := 0
	for i, f := range fragments {
		if i > 0 {
			length++
		}
		length += utf8.RuneCountInString(f.Text)
	}
	return length
}
