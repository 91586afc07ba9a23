package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudvault/cli/internal/output"
)

var flagPermission string

var shareCmd = &cobra.Command{
	Use:   "share <file-path>",
	Short: "Create a public share link for a file",
	Long: `Create a share link anyone can open without an account.

  cloudvault share /Documents/report.pdf
  cloudvault share /Documents/report.pdf --permission edit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		ctx := cmd.Context()

		file, err := resolveFile(ctx, args[0])
		if err != nil {
			return err
		}

		link, err := apiClient.CreateShareLink(ctx, file.ID, flagPermission)
		if err != nil {
			return fmt.Errorf("sharing: %w", err)
		}

		if flagJSON {
			output.JSON(map[string]string{"file": file.Name, "shareLink": link})
			return nil
		}

		fmt.Printf("Share link for %s:\n  %s\n", file.Name, link)
		return nil
	},
}

func init() {
	shareCmd.Flags().StringVar(&flagPermission, "permission", "view", "Permission level: view, edit")
	rootCmd.AddCommand(shareCmd)
}
