package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudvault/cli/internal/api"
	"github.com/cloudvault/cli/internal/pathutil"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <name-or-id>",
	Short: "Recover a file or folder from trash",
	Long: `Recover a trashed entry by name or ID. Use "cloudvault ls --trash"
to see what can be restored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		ctx := cmd.Context()
		target := args[0]

		entry, folder, err := findTrashed(cmd, target)
		if err != nil {
			return err
		}

		if folder {
			err = apiClient.RestoreFolder(ctx, entry.ID)
		} else {
			err = apiClient.RestoreFile(ctx, entry.ID)
		}
		if err != nil {
			return fmt.Errorf("restoring: %w", err)
		}

		fmt.Printf("Restored: %s\n", entry.Name)
		return nil
	},
}

// findTrashed matches target against the trash by ID or name. Folders are
// checked first, then file pages.
func findTrashed(cmd *cobra.Command, target string) (api.Entry, bool, error) {
	ctx := cmd.Context()
	byID := pathutil.IsUUID(target)

	folders, err := apiClient.ListFolders(ctx, "", true)
	if err != nil {
		return api.Entry{}, false, fmt.Errorf("listing trash: %w", err)
	}
	for _, f := range folders {
		if (byID && f.ID == target) || (!byID && strings.EqualFold(f.Name, target)) {
			return f, true, nil
		}
	}

	for page := 1; ; page++ {
		fp, err := apiClient.ListFiles(ctx, "", true, page, 100)
		if err != nil {
			return api.Entry{}, false, fmt.Errorf("listing trash: %w", err)
		}
		for _, f := range fp.Files {
			if (byID && f.ID == target) || (!byID && strings.EqualFold(f.Name, target)) {
				return f, false, nil
			}
		}
		if !fp.HasMore {
			break
		}
	}

	return api.Entry{}, false, fmt.Errorf("not found in trash: %s", target)
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
