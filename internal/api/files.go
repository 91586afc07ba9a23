package api

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
)

// Typed wrappers over the CloudVault endpoints consumed by the browser core
// and the commands.

// ListFiles fetches one page of non-trashed (or trashed) files in a folder.
// An empty folderID means root.
func (c *Client) ListFiles(ctx context.Context, folderID string, trash bool, page, limit int) (FilePage, error) {
	params := url.Values{}
	if folderID != "" {
		params.Set("folderId", folderID)
	}
	if trash {
		params.Set("trash", "true")
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var result FilePage
	if err := c.Get(ctx, "/files", params, &result); err != nil {
		return FilePage{}, err
	}
	return result, nil
}

// ListFolders fetches the child folders of a scope. Folders are not
// paginated by the backend.
func (c *Client) ListFolders(ctx context.Context, parentID string, trash bool) ([]Entry, error) {
	params := url.Values{}
	if parentID != "" {
		params.Set("parentId", parentID)
	}
	if trash {
		params.Set("trash", "true")
	}

	var result folderList
	if err := c.Get(ctx, "/folders", params, &result); err != nil {
		return nil, err
	}
	return []Entry(result), nil
}

// ListShared fetches the files the user has shared via link. The shared
// view is file-only and not paginated.
func (c *Client) ListShared(ctx context.Context) ([]Entry, error) {
	var result FilePage
	if err := c.Get(ctx, "/files/shared", nil, &result); err != nil {
		return nil, err
	}
	return result.Files, nil
}

// Search runs a full-text file search. Results are file-only.
func (c *Client) Search(ctx context.Context, query string, page, limit int) (FilePage, error) {
	params := url.Values{"q": {query}}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var result FilePage
	if err := c.Get(ctx, "/search", params, &result); err != nil {
		return FilePage{}, err
	}
	return result, nil
}

// UploadFile streams one file to the backend, attaching the destination
// folder id when set.
func (c *Client) UploadFile(ctx context.Context, r io.Reader, name string, size int64, folderID string, progress ProgressFunc) (Entry, error) {
	extra := map[string]string{}
	if folderID != "" {
		extra["folder_id"] = folderID
	}

	var resp entryEnvelope
	if err := c.Upload(ctx, "/files/upload", "file", name, r, size, extra, progress, &resp); err != nil {
		return Entry{}, err
	}
	return Entry(resp), nil
}

// CreateFolder creates a folder under parentID ("" = root).
func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (Entry, error) {
	body := map[string]interface{}{"name": name}
	if parentID != "" {
		body["parent_id"] = parentID
	}

	var resp entryEnvelope
	if err := c.Post(ctx, "/folders", body, &resp); err != nil {
		return Entry{}, err
	}
	return Entry(resp), nil
}

// RenameFile renames a file.
func (c *Client) RenameFile(ctx context.Context, id, newName string) error {
	return c.Put(ctx, "/files/"+id+"/rename", map[string]string{"newName": newName}, nil)
}

// RenameFolder renames a folder.
func (c *Client) RenameFolder(ctx context.Context, id, newName string) error {
	return c.Put(ctx, "/folders/"+id+"/rename", map[string]string{"newName": newName}, nil)
}

// DeleteFile moves a file to trash.
func (c *Client) DeleteFile(ctx context.Context, id string) error {
	return c.Delete(ctx, "/files/"+id, nil)
}

// DeleteFolder moves a folder to trash.
func (c *Client) DeleteFolder(ctx context.Context, id string) error {
	return c.Delete(ctx, "/folders/"+id, nil)
}

// RestoreFile clears a file's trash flag.
func (c *Client) RestoreFile(ctx context.Context, id string) error {
	return c.Put(ctx, "/files/"+id+"/restore", nil, nil)
}

// RestoreFolder clears a folder's trash flag.
func (c *Client) RestoreFolder(ctx context.Context, id string) error {
	return c.Put(ctx, "/folders/"+id+"/restore", nil, nil)
}

// CreateShareLink creates a public share link for a file. permission is
// "view" or "edit".
func (c *Client) CreateShareLink(ctx context.Context, fileID, permission string) (string, error) {
	var resp struct {
		ShareLink string `json:"shareLink"`
		Sharelink string `json:"sharelink"`
		URL       string `json:"url"`
	}
	if err := c.Post(ctx, "/files/"+fileID+"/share", map[string]string{"permission": permission}, &resp); err != nil {
		return "", err
	}
	for _, link := range []string{resp.ShareLink, resp.Sharelink, resp.URL} {
		if link != "" {
			return link, nil
		}
	}
	return "", fmt.Errorf("share response contained no link")
}

// ResolveShareToken resolves a public share token. No authentication.
func (c *Client) ResolveShareToken(ctx context.Context, token string) (SharedFile, error) {
	var resp SharedFile
	if err := c.Get(ctx, "/files/share/"+token, nil, &resp); err != nil {
		return SharedFile{}, err
	}
	return resp, nil
}

// DownloadURL fetches a signed, time-limited download URL for a file.
func (c *Client) DownloadURL(ctx context.Context, fileID string) (string, error) {
	var resp struct {
		DownloadURL string `json:"downloadUrl"`
	}
	if err := c.Get(ctx, "/files/"+fileID+"/download", nil, &resp); err != nil {
		return "", err
	}
	return resp.DownloadURL, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.Post(ctx, "/auth/login", map[string]string{"email": email, "password": password}, &resp)
	return resp, err
}

// Register creates an account and returns its first token.
func (c *Client) Register(ctx context.Context, name, email, password string) (LoginResponse, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp LoginResponse
	err := c.Post(ctx, "/auth/register", body, &resp)
	return resp, err
}

// Me fetches the authenticated user.
func (c *Client) Me(ctx context.Context) (User, error) {
	var resp userEnvelope
	if err := c.Get(ctx, "/auth/me", nil, &resp); err != nil {
		return User{}, err
	}
	return User(resp), nil
}
