package model

import "time"

// Video represents YouTube video information
type Video struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Duration float64 `json:"duration"` // duration in seconds
}

// TranscriptFragment is a single timestamped caption line as returned
// by the transcript source
type TranscriptFragment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`    // start time in seconds
	Duration float64 `json:"duration"` // duration in seconds
}

// TranscriptChunk is a bounded span of transcript text built from
// consecutive fragments, the unit of summarization input
type TranscriptChunk struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// TimeBucket groups chunks belonging to one contiguous time interval
// of the video
type TimeBucket struct {
	Chunks []*TranscriptChunk `json:"chunks"`
}

// Summary is the persisted summary record for one video
type Summary struct {
	URL     string   `json:"url"`
	Title   string   `json:"title"`
	Detail  []string `json:"detail"`
	Concise string   `json:"concise"`
}

// LibraryEntry is a summary record stored in the shared summary library
type LibraryEntry struct {
	VideoID   string    `json:"video_id" db:"video_id"`
	URL       string    `json:"url" db:"url"`
	Title     string    `json:"title" db:"title"`
	Detail    []string  `json:"detail" db:"detail"`
	Concise   string    `json:"concise" db:"concise"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
