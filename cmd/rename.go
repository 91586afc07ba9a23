package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <path> <new-name>",
	Short: "Rename a file or folder",
	Long: `Rename a file or folder on the server.

  cloudvault rename /Documents/old-name.pdf new-name.pdf
  cloudvault rename /Documents Archive`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		ctx := cmd.Context()

		entry, folder, err := resolveEntry(ctx, args[0])
		if err != nil {
			return err
		}

		newName := args[1]
		if folder {
			err = apiClient.RenameFolder(ctx, entry.ID, newName)
		} else {
			err = apiClient.RenameFile(ctx, entry.ID, newName)
		}
		if err != nil {
			return fmt.Errorf("renaming: %w", err)
		}

		fmt.Printf("Renamed %s → %s\n", entry.Name, newName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
