package cmd

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudvault/cli/internal/output"
)

var flagSave string

var resolveCmd = &cobra.Command{
	Use:   "resolve <share-link-or-token>",
	Short: "Inspect a share link",
	Long: `Look up the file behind a share link or token. Works without
authentication.

  cloudvault resolve https://vault.example.com/share/abc123
  cloudvault resolve abc123
  cloudvault resolve abc123 --save ./report.pdf    Download the shared file`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		token := args[0]
		// Accept a full share URL and extract the trailing token.
		if strings.Contains(token, "/") {
			if u, err := url.Parse(token); err == nil && u.Path != "" {
				parts := strings.Split(strings.Trim(u.Path, "/"), "/")
				token = parts[len(parts)-1]
			}
		}

		shared, err := apiClient.ResolveShareToken(ctx, token)
		if err != nil {
			return fmt.Errorf("resolving share: %w", err)
		}

		if flagSave != "" {
			dest := flagSave
			if fi, err := os.Stat(dest); err == nil && fi.IsDir() {
				dest = filepath.Join(dest, shared.File.Name)
			}
			if err := apiClient.DownloadToFile(ctx, shared.DownloadURL, dest); err != nil {
				return fmt.Errorf("downloading: %w", err)
			}
			fmt.Printf("Downloaded %s → %s\n", shared.File.Name, dest)
			return nil
		}

		if flagJSON {
			output.JSON(shared)
			return nil
		}

		output.EntryDetail(shared.File)
		if shared.Permission != "" {
			fmt.Printf("Permission:  %s\n", shared.Permission)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&flagSave, "save", "", "Download the shared file to this path")
	rootCmd.AddCommand(resolveCmd)
}
