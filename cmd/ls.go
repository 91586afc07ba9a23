package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudvault/cli/internal/api"
	"github.com/cloudvault/cli/internal/output"
	"github.com/cloudvault/cli/internal/pathutil"
)

var (
	flagTrash bool
	flagPage  int
	flagLimit int
	flagAll   bool
)

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List folders and files",
	Long: `List entries in your root folder or inside a subfolder.

  cloudvault ls                       List root
  cloudvault ls /Documents            List by path
  cloudvault ls 550e8400-...          List by folder ID
  cloudvault ls --trash               List trashed entries
  cloudvault ls --all                 Fetch every page`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		ctx := cmd.Context()

		path := ""
		if len(args) > 0 {
			path = args[0]
		}

		folderID, err := pathutil.Resolve(ctx, apiClient, path)
		if err != nil {
			return err
		}

		folders, err := apiClient.ListFolders(ctx, folderID, flagTrash)
		if err != nil {
			return fmt.Errorf("listing folders: %w", err)
		}

		var files []api.Entry
		page := flagPage
		for {
			fp, err := apiClient.ListFiles(ctx, folderID, flagTrash, page, flagLimit)
			if err != nil {
				return fmt.Errorf("listing files: %w", err)
			}
			files = append(files, fp.Files...)
			if !flagAll || !fp.HasMore {
				break
			}
			page++
		}

		if flagJSON {
			output.JSON(map[string]interface{}{"folders": folders, "files": files})
			return nil
		}

		output.Listing(folders, files)
		return nil
	},
}

func init() {
	lsCmd.Flags().BoolVar(&flagTrash, "trash", false, "List trashed entries")
	lsCmd.Flags().IntVar(&flagPage, "page", 1, "Page to fetch")
	lsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Page size")
	lsCmd.Flags().BoolVar(&flagAll, "all", false, "Fetch all pages")
	rootCmd.AddCommand(lsCmd)
}
