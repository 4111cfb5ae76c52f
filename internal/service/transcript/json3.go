package transcript

import (
	"encoding/json"
	"strings"

	"github.com/bs2352/youtube-script-search/internal/errors"
	"github.com/bs2352/youtube-script-search/internal/model"
)

// json3 is YouTube's timed-text JSON format as written by yt-dlp.
// Only the fields needed to rebuild timestamped fragments are mapped.
type json3Doc struct {
	Events []json3Event `json:"events"`
}

type json3Event struct {
	StartMs    int64      `json:"tStartMs"`
	DurationMs int64      `json:"dDurationMs"`
	Segs       []json3Seg `json:"segs"`
}

type json3Seg struct {
	Text string `json:"utf8"`
}

// parseJSON3 converts a json3 caption document into transcript fragments.
// Events without text (styling markers, bare newlines) are skipped.
func parseJSON3(data []byte) ([]*model.TranscriptFragment, error) {
	var doc json3Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to parse json3 subtitle file")
	}

	fragments := make([]*model.TranscriptFragment, 0, len(doc.Events))
	for _, event := range doc.Events {
		if len(event.Segs) == 0 {
			continue
		}

		var sb strings.Builder
		for _, seg := range event.Segs {
			sb.WriteString(seg.Text)
		}
		text := strings.TrimSpace(strings.ReplaceAll(sb.String(), "\n", " "))
		if text == "" {
			continue
		}

		fragments = append(fragments, &model.TranscriptFragment{
			Text:     text,
			Start:    float64(event.StartMs) / 1000.0,
			Duration: float64(event.DurationMs) / 1000.0,
		})
	}

	return fragments, nil
}
