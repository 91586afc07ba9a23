package browser

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cloudvault/cli/internal/api"
)

// Scope fully determines a listing request. Changing FolderID, Trash or
// Query resets Page to 1 and clears accumulated results; Page only ever
// advances through LoadMore, which appends.
type Scope struct {
	FolderID string
	Trash    bool
	Query    string
	Page     int
}

// Listing is an immutable snapshot of the controller state for rendering.
// Folders sort before files in the grid; within each slice the backend's
// ordering is preserved.
type Listing struct {
	Scope   Scope
	Files   []api.Entry
	Folders []api.Entry
	HasMore bool
	Loading bool
}

// Controller owns paginated, filterable retrieval of the entries in one
// scope. It caches exactly the currently displayed result set; the
// backend stays authoritative.
type Controller struct {
	// PageSize is the file page size. Set before the first Fetch.
	PageSize int

	client  *api.Client
	refresh *Signal
	log     *slog.Logger

	mu      sync.Mutex
	scope   Scope
	files   []api.Entry
	folders []api.Entry
	hasMore bool
	loading bool
	epoch   uint64
}

const defaultPageSize = 20

func NewController(client *api.Client, refresh *Signal, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		PageSize: defaultPageSize,
		client:   client,
		refresh:  refresh,
		log:      logger,
		scope:    Scope{Page: 1},
	}
}

// SetScope switches folder, trash flag and search query. When any of the
// three differs from the current scope the page resets to 1, accumulated
// results are cleared, and any in-flight fetch is abandoned. Returns
// whether the scope changed.
func (c *Controller) SetScope(folderID string, trash bool, query string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scope.FolderID == folderID && c.scope.Trash == trash && c.scope.Query == query {
		return false
	}
	c.scope = Scope{FolderID: folderID, Trash: trash, Query: query, Page: 1}
	c.files = nil
	c.folders = nil
	c.hasMore = false
	c.epoch++
	c.loading = false
	return true
}

// Fetch retrieves the current scope's page set. A no-op while another
// fetch for this scope is in flight.
func (c *Controller) Fetch(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return nil
	}
	scope, epoch := c.scope, c.epoch
	c.loading = true
	c.mu.Unlock()

	files, folders, hasMore, err := c.retrieve(ctx, scope)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		// Scope moved on while we were in flight; the response is stale
		// and dropped without logging. An expected race, not an error.
		return nil
	}
	c.loading = false
	if err != nil {
		// Degraded view: keep whatever was on screen.
		c.log.Error("listing fetch failed", "folder", scope.FolderID, "page", scope.Page, "error", err)
		return err
	}

	if scope.Page > 1 {
		c.files = append(c.files, files...)
	} else {
		c.files = files
		c.folders = folders
	}
	c.hasMore = hasMore
	return nil
}

// LoadMore advances to the next page and appends its results. Gated on
// hasMore and on no fetch being in flight, so page requests for one scope
// are strictly increasing and never overlap.
func (c *Controller) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.loading || !c.hasMore {
		c.mu.Unlock()
		return nil
	}
	c.scope.Page++
	scope, epoch := c.scope, c.epoch
	c.loading = true
	c.mu.Unlock()

	files, _, hasMore, err := c.retrieve(ctx, scope)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return nil
	}
	c.loading = false
	if err != nil {
		// Roll the page back so a retry re-requests the page that failed
		// instead of skipping it.
		c.scope.Page--
		c.log.Error("listing fetch failed", "folder", scope.FolderID, "page", scope.Page+1, "error", err)
		return err
	}
	c.files = append(c.files, files...)
	c.hasMore = hasMore
	return nil
}

// Invalidate re-fetches the current scope without changing the page,
// replaying pages 1..Page so the accumulated set stays coherent. Any
// fetch already in flight is abandoned (last write wins).
func (c *Controller) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	c.epoch++
	scope, epoch := c.scope, c.epoch
	c.loading = true
	c.mu.Unlock()

	var files, folders []api.Entry
	var hasMore bool
	var err error
	for p := 1; p <= scope.Page; p++ {
		pageScope := scope
		pageScope.Page = p
		var pageFiles, pageFolders []api.Entry
		pageFiles, pageFolders, hasMore, err = c.retrieve(ctx, pageScope)
		if err != nil {
			break
		}
		files = append(files, pageFiles...)
		if p == 1 {
			folders = pageFolders
		}
		if !hasMore {
			break
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return nil
	}
	c.loading = false
	if err != nil {
		c.log.Error("listing refresh failed", "folder", scope.FolderID, "error", err)
		return err
	}
	c.files = files
	c.folders = folders
	c.hasMore = hasMore
	return nil
}

// Watch reacts to the refresh signal until ctx is done. Run it in its own
// goroutine.
func (c *Controller) Watch(ctx context.Context) {
	ch := c.refresh.Subscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			_ = c.Invalidate(ctx)
		}
	}
}

// retrieve issues the files request and, on page 1 of a non-search scope,
// the folders request concurrently. Search results are file-only, and
// paginating never re-fetches folders.
func (c *Controller) retrieve(ctx context.Context, scope Scope) (files, folders []api.Entry, hasMore bool, err error) {
	searching := scope.Query != ""
	wantFolders := scope.Page == 1 && !searching

	var wg sync.WaitGroup
	var page api.FilePage
	var filesErr, foldersErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		if searching {
			page, filesErr = c.client.Search(ctx, scope.Query, scope.Page, c.PageSize)
		} else {
			page, filesErr = c.client.ListFiles(ctx, scope.FolderID, scope.Trash, scope.Page, c.PageSize)
		}
	}()

	if wantFolders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			folders, foldersErr = c.client.ListFolders(ctx, scope.FolderID, scope.Trash)
		}()
	}

	wg.Wait()
	if filesErr != nil {
		return nil, nil, false, filesErr
	}
	if foldersErr != nil {
		return nil, nil, false, foldersErr
	}
	return page.Files, folders, page.HasMore, nil
}

// Snapshot returns a copy of the visible state.
func (c *Controller) Snapshot() Listing {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := Listing{
		Scope:   c.scope,
		Files:   make([]api.Entry, len(c.files)),
		Folders: make([]api.Entry, len(c.folders)),
		HasMore: c.hasMore,
		Loading: c.loading,
	}
	copy(out.Files, c.files)
	copy(out.Folders, c.folders)
	return out
}
