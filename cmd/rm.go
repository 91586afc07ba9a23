package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagForce bool

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Move a file or folder to trash",
	Long: `Move a file or folder to the trash. Trashed entries can be
recovered with "cloudvault restore".

  cloudvault rm /Documents/old-report.pdf
  cloudvault rm /Temp --force                 Skip confirmation`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		ctx := cmd.Context()

		entry, folder, err := resolveEntry(ctx, args[0])
		if err != nil {
			return err
		}

		if !flagForce {
			kind := "file"
			if folder {
				kind = "folder (and all contents)"
			}
			if !confirm(fmt.Sprintf("Move %s %q to trash? [y/N] ", kind, entry.Name)) {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if folder {
			err = apiClient.DeleteFolder(ctx, entry.ID)
		} else {
			err = apiClient.DeleteFile(ctx, entry.ID)
		}
		if err != nil {
			return fmt.Errorf("deleting: %w", err)
		}

		fmt.Printf("Moved to trash: %s\n", entry.Name)
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Skip confirmation prompt")
	rootCmd.AddCommand(rmCmd)
}
