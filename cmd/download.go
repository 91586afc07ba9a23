package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var flagOutput string

var downloadCmd = &cobra.Command{
	Use:   "download <remote-path> [local-dir]",
	Short: "Download a file",
	Long: `Download a file from CloudVault to your local machine.

  cloudvault download /Documents/report.pdf         Download to current directory
  cloudvault download /Documents/report.pdf ./out   Download to a directory
  cloudvault download <uuid>                        Download by file ID`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		ctx := cmd.Context()

		file, err := resolveFile(ctx, args[0])
		if err != nil {
			return err
		}

		// The server hands out a signed URL so the content does not stream
		// through the API process.
		rawURL, err := apiClient.DownloadURL(ctx, file.ID)
		if err != nil {
			return fmt.Errorf("getting download URL: %w", err)
		}

		destDir := "."
		if len(args) > 1 {
			destDir = args[1]
		}
		dest := filepath.Join(destDir, file.Name)
		if flagOutput != "" {
			dest = flagOutput
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}

		if err := apiClient.DownloadToFile(ctx, rawURL, dest); err != nil {
			return fmt.Errorf("downloading: %w", err)
		}

		fmt.Printf("Downloaded %s → %s\n", file.Name, dest)
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file path (overrides default naming)")
	rootCmd.AddCommand(downloadCmd)
}
