package cmd

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudvault/cli/internal/output"
	"github.com/cloudvault/cli/internal/pathutil"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <name> [parent-path]",
	Short: "Create a new folder",
	Long: `Create a new folder on the server.

  cloudvault mkdir "My Documents"                  Create in root
  cloudvault mkdir Reports /Documents              Create inside a folder
  cloudvault mkdir Reports --parent <uuid>         Create inside a folder by ID`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		ctx := cmd.Context()

		name := args[0]

		parentID := flagParent
		if parentID == "" && len(args) > 1 {
			resolved, err := pathutil.Resolve(ctx, apiClient, args[1])
			if err != nil {
				return fmt.Errorf("resolving parent: %w", err)
			}
			parentID = resolved
		}

		// Support "mkdir /Documents/Reports/Q1" by resolving the prefix as
		// the parent path.
		if parentID == "" && strings.Contains(name, "/") {
			dir := path.Dir(strings.Trim(name, "/"))
			name = path.Base(name)
			if dir != "." && dir != "/" {
				resolved, err := pathutil.Resolve(ctx, apiClient, dir)
				if err != nil {
					return fmt.Errorf("resolving parent path: %w", err)
				}
				parentID = resolved
			}
		}

		folder, err := apiClient.CreateFolder(ctx, name, parentID)
		if err != nil {
			return fmt.Errorf("creating folder: %w", err)
		}

		if flagJSON {
			output.JSON(folder)
			return nil
		}

		fmt.Printf("Created folder: %s (id: %s)\n", folder.Name, folder.ID)
		return nil
	},
}

func init() {
	mkdirCmd.Flags().StringVar(&flagParent, "parent", "", "Parent folder ID")
	rootCmd.AddCommand(mkdirCmd)
}
