package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cloudvault/cli/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive file browser",
	Long: `Browse, search, upload and manage your files in a full-screen
terminal UI. Paste local file paths to upload them into the current
folder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		return tui.NewApp(cmd.Context(), apiClient, logger).Run()
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
