package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bs2352/youtube-script-search/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
	Long:  `Manage configuration settings for yts.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init [GEMINI_API_KEY]",
	Short: "Initialize configuration file",
	Long:  `Create a new configuration file with Gemini API settings.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var apiKey string
		if len(args) > 0 {
			apiKey = args[0]
		}

		if err := config.InitConfig(apiKey); err != nil {
			return err
		}

		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		fmt.Printf("Created configuration file: %s\n", configPath)
		if apiKey == "" {
			fmt.Println("Please set gemini_api_key in this file or export GEMINI_API_KEY.")
		}

		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration file path and settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		fmt.Printf("Configuration file: %s\n\n", configPath)

		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		fmt.Printf("gemini_api_key: %s\n", maskKey(cfg.GeminiAPIKey))
		fmt.Printf("gemini_model: %s\n", cfg.GeminiModel)
		fmt.Printf("embedding_model: %s\n", cfg.EmbeddingModel)
		fmt.Printf("languages: %s\n", strings.Join(cfg.Languages, ", "))
		fmt.Printf("summary_store_dir: %s\n", cfg.SummaryStoreDir)
		fmt.Printf("database_url: %s\n", cfg.DatabaseURL)

		return nil
	},
}

// maskKey hides all but the first few characters of an API key
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
