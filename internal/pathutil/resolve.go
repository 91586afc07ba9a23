package pathutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cloudvault/cli/internal/api"
)

// FolderLister is the part of the API client needed to walk the folder tree.
type FolderLister interface {
	ListFolders(ctx context.Context, parentID string, trash bool) ([]api.Entry, error)
}

// Resolve converts a human-readable path (e.g. "/Documents/Reports") to the UUID of the
// final folder by walking the folder tree from root. An empty or "/" path means root.
// A valid UUID is returned as-is (passthrough).
func Resolve(ctx context.Context, client FolderLister, path string) (string, error) {
	path = strings.TrimSpace(path)

	// Empty or root — caller should handle listing root.
	if path == "" || path == "/" || path == "." {
		return "", nil
	}

	// If it looks like a UUID already, return it directly.
	if IsUUID(path) {
		return path, nil
	}

	path = strings.Trim(path, "/")
	parts := strings.Split(path, "/")

	currentID := "" // empty = root

	for _, segment := range parts {
		if segment == "" {
			continue
		}

		children, err := client.ListFolders(ctx, currentID, false)
		if err != nil {
			return "", fmt.Errorf("listing %q: %w", segment, err)
		}

		found := false
		for _, f := range children {
			if strings.EqualFold(f.Name, segment) {
				currentID = f.ID
				found = true
				break
			}
		}
		if !found {
			if currentID == "" {
				return "", fmt.Errorf("not found in root: %s", segment)
			}
			return "", fmt.Errorf("not found: %s", segment)
		}
	}

	return currentID, nil
}

// IsUUID reports whether s is a canonical UUID string.
func IsUUID(s string) bool {
	// Only the canonical 36-char form counts; uuid.Parse alone is too permissive
	// and would swallow folder names made of 32 hex characters.
	if len(s) != 36 || strings.Count(s, "-") != 4 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
