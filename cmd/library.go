package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bs2352/youtube-script-search/internal/config"
	"github.com/bs2352/youtube-script-search/internal/model"
	summaryrepo "github.com/bs2352/youtube-script-search/internal/repository/summary"
)

// libraryCmd represents the library command
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the shared summary library",
	Long:  `Store and retrieve summary records in a shared PostgreSQL library.`,
}

// librarySaveCmd copies a local summary into the shared library
var librarySaveCmd = &cobra.Command{
	Use:   "save [VIDEO_ID]",
	Short: "Save a stored summary to the library",
	Long:  `Copy a summary from the local summary store into the shared library.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID := args[0]

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		cfg, repo, cleanup, err := newLibraryRepository(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		store := summaryrepo.NewFileStore(cfg.SummaryStoreDir)
		summary, err := store.Load(videoID)
		if err != nil {
			return err
		}

		entry := &model.LibraryEntry{
			VideoID: videoID,
			URL:     summary.URL,
			Title:   summary.Title,
			Detail:  summary.Detail,
			Concise: summary.Concise,
		}
		if err := repo.Save(ctx, entry); err != nil {
			return err
		}

		fmt.Printf("Saved summary for %s to the library.\n", videoID)
		return nil
	},
}

// libraryGetCmd displays a summary from the shared library
var libraryGetCmd = &cobra.Command{
	Use:   "get [VIDEO_ID]",
	Short: "Show a summary from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID := args[0]

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		_, repo, cleanup, err := newLibraryRepository(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		entry, err := repo.Get(ctx, videoID)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n%s\n\n", entry.Title, entry.URL)
		printSummary(&model.Summary{
			URL:     entry.URL,
			Title:   entry.Title,
			Detail:  entry.Detail,
			Concise: entry.Concise,
		})
		return nil
	},
}

// libraryListCmd lists summaries stored in the shared library
var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List summaries in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		_, repo, cleanup, err := newLibraryRepository(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		entries, err := repo.List(ctx, limit, offset)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No summaries found in the library.")
			return nil
		}

		for _, entry := range entries {
			fmt.Printf("%s\t%s\t%s\n", entry.VideoID, entry.CreatedAt.Format("2006-01-02 15:04"), entry.Title)
		}
		return nil
	},
}

// libraryDeleteCmd deletes a summary from the shared library
var libraryDeleteCmd = &cobra.Command{
	Use:   "delete [VIDEO_ID]",
	Short: "Delete a summary from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID := args[0]

		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm {
			return fmt.Errorf("deleting a library entry requires --confirm")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		_, repo, cleanup, err := newLibraryRepository(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := repo.Delete(ctx, videoID); err != nil {
			return err
		}

		fmt.Printf("Deleted summary for %s from the library.\n", videoID)
		return nil
	},
}

// newLibraryRepository loads configuration and opens the library database pool
func newLibraryRepository(ctx context.Context) (*config.Config, summaryrepo.LibraryRepository, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return nil, nil, nil, fmt.Errorf("database_url is not configured. Set it in the config file or export DATABASE_URL")
	}

	pool, err := config.NewDatabasePool(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return cfg, summaryrepo.NewLibraryRepository(pool), pool.Close, nil
}

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(librarySaveCmd)
	libraryCmd.AddCommand(libraryGetCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)

	libraryListCmd.Flags().Int("limit", 10, "Maximum number of summaries to retrieve")
	libraryListCmd.Flags().Int("offset", 0, "Number of summaries to skip")
	libraryDeleteCmd.Flags().Bool("confirm", false, "Confirm deletion")
}
