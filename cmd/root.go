package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudvault/cli/internal/api"
	"github.com/cloudvault/cli/internal/config"
)

var (
	flagJSON      bool
	flagServerURL string
	flagVerbose   bool

	cfg       *config.Config
	apiClient *api.Client
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cloudvault",
	Short: "CloudVault CLI — manage your files from the terminal",
	Long: `CloudVault CLI lets you upload, browse, share, and manage files
on your CloudVault server without leaving the terminal.

Get started:
  cloudvault login                 Authenticate with email and password
  cloudvault ls                    List files in your root folder
  cloudvault upload report.pdf     Upload a file
  cloudvault browse                Open the interactive browser`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagServerURL != "" {
			cfg.ServerURL = flagServerURL
		}
		apiClient = api.NewClient(cfg.ServerURL, cfg.Token)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagServerURL, "server", "", "Override server URL (default: from config or http://localhost:8080)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// requireAuth is a helper that returns an error if no token is configured.
func requireAuth() error {
	if cfg == nil || !cfg.HasToken() {
		return fmt.Errorf("not authenticated — run \"cloudvault login\" first")
	}
	return nil
}
