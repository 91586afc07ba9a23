package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cloudvault/cli/internal/browser"
	"github.com/cloudvault/cli/internal/output"
	"github.com/cloudvault/cli/internal/pathutil"
)

var flagParent string

var uploadCmd = &cobra.Command{
	Use:   "upload <file>... [flags]",
	Short: "Upload one or more files",
	Long: `Upload local files to CloudVault. Files in a batch transfer
concurrently; one failed file does not abort the rest.

  cloudvault upload report.pdf                    Upload to root
  cloudvault upload a.txt b.txt /Documents        Upload a batch to a folder
  cloudvault upload report.pdf --parent <uuid>    Upload to folder by ID`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&flagParent, "parent", "", "Parent folder ID (alternative to positional arg)")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	ctx := cmd.Context()

	// A trailing argument that exists remotely but not locally is the
	// destination folder.
	paths := args
	parentID := flagParent
	if parentID == "" && len(args) > 1 {
		last := args[len(args)-1]
		if _, err := os.Stat(last); err != nil {
			resolved, err := pathutil.Resolve(ctx, apiClient, last)
			if err != nil {
				return fmt.Errorf("resolving destination: %w", err)
			}
			parentID = resolved
			paths = args[:len(args)-1]
		}
	}

	coord := browser.NewCoordinator(apiClient, browser.NewSignal(), nil, logger)
	// Keep finished tasks visible until the summary below has read them.
	coord.SuccessLinger = time.Hour
	coord.ErrorLinger = time.Hour

	if err := coord.Enqueue(ctx, paths, parentID); err != nil {
		return err
	}
	fmt.Printf("Uploading %d file(s)...\n", len(paths))
	coord.Wait()

	failed := 0
	for _, t := range coord.Tasks() {
		switch t.Status {
		case browser.TaskSuccess:
			fmt.Printf("  Uploaded: %s (%s)\n", t.Name, output.FormatSize(t.Size))
		case browser.TaskError:
			fmt.Fprintf(os.Stderr, "  Failed: %s — %v\n", t.Name, t.Err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed to upload", failed)
	}
	return nil
}
