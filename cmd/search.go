package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudvault/cli/internal/api"
	"github.com/cloudvault/cli/internal/output"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search your files by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		ctx := cmd.Context()

		var files []api.Entry
		page := flagPage
		for {
			fp, err := apiClient.Search(ctx, args[0], page, flagLimit)
			if err != nil {
				return fmt.Errorf("searching: %w", err)
			}
			files = append(files, fp.Files...)
			if !flagAll || !fp.HasMore {
				break
			}
			page++
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
	searchCmd.Flags().IntVar(&flagPage, "page", 1, "Page to fetch")
	searchCmd.Flags().IntVar(&flagLimit, "limit", 20, "Page size")
	searchCmd.Flags().BoolVar(&flagAll, "all", false, "Fetch all pages")
	rootCmd.AddCommand(searchCmd)
}
