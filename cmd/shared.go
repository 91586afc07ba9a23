package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudvault/cli/internal/output"
)

var sharedCmd = &cobra.Command{
	Use:   "shared",
	Short: "List files you have shared via link",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		files, err := apiClient.ListShared(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing shared files: %w", err)
		}

		if flagJSON {
			output.JSON(files)
			return nil
		}

		output.Listing(nil, files)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sharedCmd)
}
