package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bs2352/youtube-script-search/internal/config"
	apperrors "github.com/bs2352/youtube-script-search/internal/errors"
	summaryrepo "github.com/bs2352/youtube-script-search/internal/repository/summary"
	"github.com/bs2352/youtube-script-search/internal/service/qa"
	"github.com/bs2352/youtube-script-search/internal/service/summarize"
	"github.com/bs2352/youtube-script-search/internal/service/transcript"
)

// qaCmd runs an interactive question answering session over a video's transcript
var qaCmd = &cobra.Command{
	Use:   "qa [VIDEO_ID]",
	Short: "Ask questions about a YouTube video",
	Long: `Start an interactive session that answers free-text questions using
the video's transcript as context. An empty input ends the session.`,
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

		embedder, err := qa.NewGeminiEmbedder(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
		if err != nil {
			return fmt.Errorf("failed to create embedding client: %w", err)
		}

		sourceCount, _ := cmd.Flags().GetInt("source")
		detail, _ := cmd.Flags().GetBool("detail")

		transcriptSvc := transcript.NewService(logger)
		svc := qa.NewService(transcriptSvc, embedder, llm, logger, qa.DefaultOptions(sourceCount, cfg.Languages))

		if err := svc.PrepareQuery(ctx, videoID); err != nil {
			return fmt.Errorf("failed to prepare query index: %w", err)
		}

		// Show the stored concise summary as session context when one exists
		store := summaryrepo.NewFileStore(cfg.SummaryStoreDir)
		if summary, err := store.Load(videoID); err == nil {
			fmt.Printf("(Summary) %s\n\n", summary.Concise)
		} else if !apperrors.IsNotFound(err) {
			logger.Debug().Err(err).Msg("could not load stored summary")
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Print("Query: ")
			if !scanner.Scan() {
				break
			}
			query := strings.TrimSpace(scanner.Text())
			if query == "" {
				break
			}

			answer, err := svc.RunQuery(ctx, query)
			if err != nil {
				return fmt.Errorf("failed to answer query: %w", err)
			}

			fmt.Printf("Answer: %s\n\n", answer)

			if detail {
				for _, src := range svc.Sources() {
					fmt.Printf("--- %s (%s [%.4f]) ---\n%s\n\n", src.Time, src.ChunkID, src.Score, src.Text)
				}
			}
		}

		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(qaCmd)
	qaCmd.Flags().Int("source", qa.DefaultSourceCount, "Number of transcript passages to retrieve per query")
	qaCmd.Flags().Bool("detail", false, "Show the retrieved passages after each answer")
}
