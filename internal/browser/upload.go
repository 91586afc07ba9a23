package browser

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cloudvault/cli/internal/api"
)

// TaskStatus is the lifecycle of one upload. success and error are
// terminal.
type TaskStatus string

const (
	TaskQueued    TaskStatus = "queued"
	TaskUploading TaskStatus = "uploading"
	TaskSuccess   TaskStatus = "success"
	TaskError     TaskStatus = "error"
)

// Terminal reports whether the status is final.
func (s TaskStatus) Terminal() bool {
	return s == TaskSuccess || s == TaskError
}

// Task tracks one file mid-transfer. Key is a generated id; correlating
// by filename would collide when a batch carries duplicate names.
type Task struct {
	Key      string
	Name     string
	Size     int64
	FolderID string
	Progress int
	Status   TaskStatus
	Err      error
}

const (
	defaultSuccessLinger = 3 * time.Second
	defaultErrorLinger   = 5 * time.Second
)

// FolderScope supplies the destination folder for dropped files. The
// Navigator satisfies it.
type FolderScope interface {
	CurrentFolderID() string
}

// Coordinator owns the queue of in-flight uploads. Each enqueued file gets
// its own goroutine; failures are isolated per task, and only successful
// transfers publish a refresh.
type Coordinator struct {
	// SuccessLinger and ErrorLinger control how long a finished task stays
	// visible in the queue. Set before the first Enqueue.
	SuccessLinger time.Duration
	ErrorLinger   time.Duration

	client  *api.Client
	refresh *Signal
	scope   FolderScope
	log     *slog.Logger

	mu    sync.Mutex
	tasks []*Task

	wg sync.WaitGroup
}

func NewCoordinator(client *api.Client, refresh *Signal, scope FolderScope, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		SuccessLinger: defaultSuccessLinger,
		ErrorLinger:   defaultErrorLinger,
		client:        client,
		refresh:       refresh,
		scope:         scope,
		log:           logger,
	}
}

// Enqueue accepts a batch of local file paths destined for folderID (""
// = root) and starts transferring all of them concurrently. The batch is
// fan-out, not serialized: total completion latency beats per-file
// bandwidth fairness here.
func (c *Coordinator) Enqueue(ctx context.Context, paths []string, folderID string) error {
	if len(paths) == 0 {
		return errors.New("no files to upload")
	}

	batch := make([]*Task, 0, len(paths))
	c.mu.Lock()
	for _, p := range paths {
		t := &Task{
			Key:      uuid.NewString(),
			Name:     filepath.Base(p),
			FolderID: folderID,
			Status:   TaskQueued,
		}
		c.tasks = append(c.tasks, t)
		batch = append(batch, t)
	}
	c.mu.Unlock()

	for i, t := range batch {
		c.wg.Add(1)
		go c.transfer(ctx, t, paths[i])
	}
	return nil
}

// AcceptDrop handles a batch of dropped paths: anything that is not a
// regular file is silently skipped, and the rest is enqueued into the
// currently active folder.
func (c *Coordinator) AcceptDrop(ctx context.Context, paths []string) {
	var files []string
	for _, p := range paths {
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			files = append(files, p)
		}
	}
	if len(files) == 0 {
		return
	}
	folderID := ""
	if c.scope != nil {
		folderID = c.scope.CurrentFolderID()
	}
	_ = c.Enqueue(ctx, files, folderID)
}

func (c *Coordinator) transfer(ctx context.Context, t *Task, path string) {
	defer c.wg.Done()

	f, err := os.Open(path)
	if err != nil {
		c.fail(t, err)
		return
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		c.fail(t, err)
		return
	}

	c.update(t, func() {
		t.Status = TaskUploading
		t.Size = fi.Size()
	})

	_, err = c.client.UploadFile(ctx, f, t.Name, fi.Size(), t.FolderID, func(loaded, total int64) {
		if total <= 0 {
			return
		}
		pct := int(loaded * 100 / total)
		if pct > 100 {
			pct = 100
		}
		c.update(t, func() {
			if pct > t.Progress {
				t.Progress = pct
			}
		})
	})
	if err != nil {
		c.fail(t, err)
		return
	}

	c.update(t, func() {
		t.Status = TaskSuccess
		t.Progress = 100
	})
	c.refresh.Publish()
	c.expire(t.Key, c.SuccessLinger)
}

// fail marks the task terminal without touching its progress. No refresh
// is published and no retry is scheduled; the user re-initiates manually.
func (c *Coordinator) fail(t *Task, err error) {
	c.log.Error("upload failed", "file", t.Name, "error", err)
	c.update(t, func() {
		t.Status = TaskError
		t.Err = err
	})
	c.expire(t.Key, c.ErrorLinger)
}

func (c *Coordinator) update(t *Task, fn func()) {
	c.mu.Lock()
	fn()
	c.mu.Unlock()
}

// expire removes the task from the visible queue once its display delay
// elapses.
func (c *Coordinator) expire(key string, after time.Duration) {
	time.AfterFunc(after, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, t := range c.tasks {
			if t.Key == key {
				c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
				return
			}
		}
	})
}

// Tasks returns a snapshot of the visible queue in enqueue order.
func (c *Coordinator) Tasks() []Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Task, len(c.tasks))
	for i, t := range c.tasks {
		out[i] = *t
	}
	return out
}

// Active reports whether any task is still queued or uploading.
func (c *Coordinator) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.tasks {
		if !t.Status.Terminal() {
			return true
		}
	}
	return false
}

// Wait blocks until every enqueued transfer has reached a terminal state.
// Lingering display entries may still be present afterwards.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}
