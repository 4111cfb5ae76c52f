package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bs2352/youtube-script-search/internal/config"
	"github.com/bs2352/youtube-script-search/internal/model"
	summaryrepo "github.com/bs2352/youtube-script-search/internal/repository/summary"
	"github.com/bs2352/youtube-script-search/internal/service/summarize"
	"github.com/bs2352/youtube-script-search/internal/service/transcript"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize YouTube video transcripts",
	Long:  `Create and display transcript summaries for YouTube videos.`,
}

// summaryCreateCmd runs the full summarization pipeline for one video
var summaryCreateCmd = &cobra.Command{
	Use:   "create [VIDEO_ID]",
	Short: "Create a summary for a YouTube video",
	Long: `Fetch the video's transcript, produce a concise summary and a
time-segmented detailed summary with an LLM, and store the result.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID := args[0]
		ctx := cmd.Context()
		logger := newLogger()

		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if cfg.GeminiAPIKey == "" {
			return fmt.Errorf("gemini_api_key is not configured. Set it in the config file or export GEMINI_API_KEY")
		}

		llm, err := summarize.NewGeminiModel(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}

		transcriptSvc := transcript.NewService(logger)
		store := summaryrepo.NewFileStore(cfg.SummaryStoreDir)
		svc := summarize.NewService(transcriptSvc, llm, store, logger, summarize.DefaultOptions(cfg.Languages))

		summary, err := svc.CreateSummary(ctx, videoID)
		if err != nil {
			return fmt.Errorf("failed to create summary: %w", err)
		}

		printSummary(summary)
		return nil
	},
}

// summaryShowCmd displays a previously created summary
var summaryShowCmd = &cobra.Command{
	Use:   "show [VIDEO_ID]",
	Short: "Show a stored summary",
	Long:  `Display a previously created summary from the local summary store.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID := args[0]

		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		store := summaryrepo.NewFileStore(cfg.SummaryStoreDir)
		summary, err := store.Load(videoID)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n%s\n\n", summary.Title, summary.URL)
		printSummary(summary)
		return nil
	},
}

// printSummary writes a summary record to stdout
func printSummary(summary *model.Summary) {
	fmt.Println("[詳細な要約]")
	for _, detail := range summary.Detail {
		fmt.Printf("・%s\n", detail)
	}
	fmt.Println()
	fmt.Println("[簡潔な要約]")
	fmt.Println(summary.Concise)
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.AddCommand(summaryCreateCmd)
	summaryCmd.AddCommand(summaryShowCmd)
}
