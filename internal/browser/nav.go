package browser

import (
	"sync"

	"github.com/cloudvault/cli/internal/api"
)

// Navigator tracks the breadcrumb path from root to the current folder.
// It is the single writer of the "current folder" value; the upload
// coordinator and UI read it through CurrentFolderID.
type Navigator struct {
	mu   sync.RWMutex
	path []api.Entry
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

// NavigateInto appends a folder to the path and makes it current.
func (n *Navigator) NavigateInto(folder api.Entry) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.path = append(n.path, folder)
}

// JumpTo truncates the path so that path[index] becomes current. Jumping
// to the already-current folder, or to an index outside the path, is a
// no-op. Returns whether the path changed.
func (n *Navigator) JumpTo(index int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if index < 0 || index >= len(n.path)-1 {
		return false
	}
	n.path = n.path[:index+1]
	return true
}

// Reset clears the path, returning to root.
func (n *Navigator) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.path = nil
}

// Path returns a copy of the breadcrumb path, root-exclusive.
func (n *Navigator) Path() []api.Entry {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]api.Entry, len(n.path))
	copy(out, n.path)
	return out
}

// Current returns the current folder, or false at root.
func (n *Navigator) Current() (api.Entry, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if len(n.path) == 0 {
		return api.Entry{}, false
	}
	return n.path[len(n.path)-1], true
}

// CurrentFolderID returns the current folder id, "" at root.
func (n *Navigator) CurrentFolderID() string {
	cur, ok := n.Current()
	if !ok {
		return ""
	}
	return cur.ID
}

// Depth returns the number of folders below root.
func (n *Navigator) Depth() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.path)
}
