package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/cloudvault/cli/internal/api"
	"github.com/cloudvault/cli/internal/pathutil"
)

// resolveFile finds a file by remote path (e.g. "/Documents/report.pdf"),
// resolving the folder portion through the folder tree and matching the
// final segment against the folder's file pages.
func resolveFile(ctx context.Context, raw string) (api.Entry, error) {
	raw = strings.TrimSpace(strings.TrimSuffix(raw, "/"))
	if raw == "" {
		return api.Entry{}, fmt.Errorf("empty path")
	}
	if pathutil.IsUUID(raw) {
		return api.Entry{ID: raw, Name: raw}, nil
	}

	dir, base := path.Dir(raw), path.Base(raw)
	folderID, err := pathutil.Resolve(ctx, apiClient, dir)
	if err != nil {
		return api.Entry{}, err
	}

	for page := 1; ; page++ {
		fp, err := apiClient.ListFiles(ctx, folderID, false, page, 100)
		if err != nil {
			return api.Entry{}, fmt.Errorf("listing files: %w", err)
		}
		for _, f := range fp.Files {
			if strings.EqualFold(f.Name, base) {
				return f, nil
			}
		}
		if !fp.HasMore {
			break
		}
	}
	return api.Entry{}, fmt.Errorf("file not found: %s", raw)
}

// resolveEntry finds a file or folder by remote path. Folders take
// precedence when both exist under the same name.
func resolveEntry(ctx context.Context, raw string) (entry api.Entry, folder bool, err error) {
	if id, ferr := pathutil.Resolve(ctx, apiClient, raw); ferr == nil && id != "" {
		return api.Entry{ID: id, Name: path.Base(strings.Trim(raw, "/"))}, true, nil
	}
	entry, err = resolveFile(ctx, raw)
	return entry, false, err
}

// confirm prompts on stdin and returns whether the user answered yes.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

func readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
