package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bs2352/youtube-script-search/internal/errors"
	"github.com/bs2352/youtube-script-search/internal/model"
	"github.com/bs2352/youtube-script-search/internal/service/common"
)

// Service is interface for fetching transcripts and video metadata
type Service interface {
	// FetchVideoInfo fetches video metadata (title, duration) using yt-dlp
	FetchVideoInfo(ctx context.Context, videoID string) (*model.Video, error)

	// FetchTranscript fetches timestamped caption fragments for the first
	// available language in the given preference order
	FetchTranscript(ctx context.Context, videoID string, languages []string) ([]*model.TranscriptFragment, error)
}

// service implements Service using yt-dlp
type service struct {
	cmdRunner common.CmdRunner
	logger    zerolog.Logger
	workDir   string // subtitle download directory; empty means per-call temp dir
}

// NewService creates a new transcript Service
func NewService(logger zerolog.Logger) Service {
	return NewServiceWithCmdRunner(common.NewCmdRunner(), logger)
}

// NewServiceWithCmdRunner creates a new transcript Service with custom CmdRunner (for testing)
func NewServiceWithCmdRunner(cmdRunner common.CmdRunner, logger zerolog.Logger) Service {
	return &service{
		cmdRunner: cmdRunner,
		logger:    logger,
	}
}

// NewServiceWithWorkDir creates a new transcript Service that downloads
// subtitles into a fixed directory instead of a temp dir (for testing)
func NewServiceWithWorkDir(cmdRunner common.CmdRunner, logger zerolog.Logger, workDir string) Service {
	return &service{
		cmdRunner: cmdRunner,
		logger:    logger,
		workDir:   workDir,
	}
}

// ytDlpVideoInfo represents yt-dlp JSON output structure for video info
type ytDlpVideoInfo struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"webpage_url"`
	Duration float64 `json:"duration"`
}

// WatchURL returns the canonical watch URL for a video ID
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// FetchVideoInfo fetches video metadata using yt-dlp
func (s *service) FetchVideoInfo(ctx context.Context, videoID string) (*model.Video, error) {
	if videoID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "video ID is required")
	}

	args := []string{
		"--dump-json",
		"--skip-download",
		WatchURL(videoID),
	}

	output, err := s.cmdRunner.Run(ctx, "yt-dlp", args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, "failed to fetch video info with yt-dlp")
	}

	var ytInfo ytDlpVideoInfo
	if err := json.Unmarshal(output, &ytInfo); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to parse yt-dlp output")
	}

	url := ytInfo.URL
	if url == "" {
		url = WatchURL(videoID)
	}

	return &model.Video{
		ID:       videoID,
		Title:    ytInfo.Title,
		URL:      url,
		Duration: ytInfo.Duration,
	}, nil
}

// FetchTranscript downloads caption tracks as json3 files and parses the
// first one matching the language preference order
func (s *service) FetchTranscript(ctx context.Context, videoID string, languages []string) ([]*model.TranscriptFragment, error) {
	if videoID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "video ID is required")
	}
	if len(languages) == 0 {
		return nil, errors.New(errors.CodeInvalidArg, "at least one language is required")
	}

	workDir := s.workDir
	if workDir == "" {
		tempDir, err := os.MkdirTemp("", "yts-subs-*")
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to create temp directory")
		}
		defer os.RemoveAll(tempDir)
		workDir = tempDir
	}

	args := []string{
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", strings.Join(languages, ","),
		"--sub-format", "json3",
		"-o", filepath.Join(workDir, "%(id)s"),
		WatchURL(videoID),
	}

	s.logger.Debug().Str("video_id", videoID).Strs("languages", languages).Msg("fetching captions")

	if _, err := s.cmdRunner.Run(ctx, "yt-dlp", args...); err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, "failed to fetch captions with yt-dlp")
	}

	// Pick the first language that produced a subtitle file
	for _, lang := range languages {
		path := filepath.Join(workDir, fmt.Sprintf("%s.%s.json3", videoID, lang))
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to read subtitle file")
		}

		fragments, err := parseJSON3(data)
		if err != nil {
			return nil, err
		}
		if len(fragments) == 0 {
			continue
		}

		s.logger.Debug().Str("language", lang).Int("fragments", len(fragments)).Msg("captions parsed")
		return fragments, nil
	}

	return nil, errors.New(errors.CodeTranscriptUnavailable, "no transcript available in any requested language")
}
