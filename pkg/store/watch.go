package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventBucketChanged indicates rows of Bucket were added, edited or
	// removed.
	EventBucketChanged EventType = iota

	// EventInvalidated signals a change that could not be attributed to a
	// bucket; callers should refresh everything.
	EventInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type   EventType
	Bucket string
}

// Affects reports whether a reader of buckets should reload.
func (e Event) Affects(buckets ...string) bool {
	if e.Type == EventInvalidated {
		return true
	}
	for _, b := range buckets {
		if b == e.Bucket {
			return true
		}
	}
	return false
}

// Watch streams change events until ctx is cancelled. Batches committed by
// this process are always reported; for a disk backed store, writes by other
// processes are picked up through fsnotify. Callers should drain the returned
// channel; events are dropped rather than block the watcher. The channel is
// closed once ctx is done.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	local, unsubscribe := p.hub.subscribe()

	var watcher *fsnotify.Watcher
	var watched map[string]struct{}
	if p.basePath != "" {
		var err error
		watcher, watched, err = p.watchDisk()
		if err != nil {
			unsubscribe()
			return nil, err
		}
	}

	events := make(chan Event, 64)

	go func() {
		// The throttle delivers from its own timer goroutine, so sends and
		// the final close are serialized.
		var sendMu sync.Mutex
		closed := false
		defer func() {
			sendMu.Lock()
			closed = true
			close(events)
			sendMu.Unlock()
		}()
		defer unsubscribe()

		send := func(ev Event) {
			sendMu.Lock()
			defer sendMu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; a subsequent
				// refresh will pick up the changes.
			}
		}

		throttle := newEventThrottle(p.throttle)
		defer throttle.Stop()

		var fsEvents chan fsnotify.Event
		var fsErrors chan error
		if watcher != nil {
			defer func() {
				if err := watcher.Close(); err != nil {
					p.log.WithError(err).Warn("store: watcher close")
				}
			}()
			fsEvents, fsErrors = watcher.Events, watcher.Errors
		}

		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-local:
				throttle.Enqueue(ev, send)
			case err, ok := <-fsErrors:
				if !ok {
					fsErrors = nil
					continue
				}
				p.log.WithError(err).Debug("store: watcher error")
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
			case evt, ok := <-fsEvents:
				if !ok {
					fsEvents = nil
					continue
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					// A new bucket directory: start watching it to capture
					// subsequent row writes.
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						absDir := filepath.Clean(evt.Name)
						if _, found := watched[absDir]; !found {
							if err := watcher.Add(absDir); err != nil {
								p.log.WithError(err).WithField("dir", absDir).Warn("store: watch")
							} else {
								watched[absDir] = struct{}{}
							}
						}
						throttle.Enqueue(Event{Type: EventInvalidated}, send)
						continue
					}
				}

				bucket := p.bucketForPath(evt.Name)
				if bucket == bucketMeta {
					continue
				}
				if bucket == "" {
					throttle.Enqueue(Event{Type: EventInvalidated}, send)
					continue
				}
				throttle.Enqueue(Event{Type: EventBucketChanged, Bucket: bucket}, send)
			}
		}
	}()

	return events, nil
}

func (p *persistence) watchDisk() (*fsnotify.Watcher, map[string]struct{}, error) {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("store: create watcher: %w", err)
	}

	dirs, err := collectDirs(p.basePath)
	if err != nil {
		_ = watcher.Close()
		return nil, nil, fmt.Errorf("store: enumerate directories: %w", err)
	}

	watched := make(map[string]struct{}, len(dirs))
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
		watched[filepath.Clean(dir)] = struct{}{}
	}
	return watcher, watched, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// bucketForPath derives the bucket from a diskv path.
func (p *persistence) bucketForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return ""
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	if len(parts) < 2 {
		return ""
	}
	return parts[0]
}

// hub fans batches committed in this process out to watchers.
type hub struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

func newHub() *hub {
	return &hub{subs: make(map[int]chan Event)}
}

func (h *hub) subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan Event, 64)
	h.subs[id] = ch
	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

func (h *hub) publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// eventThrottle coalesces rapid change notifications so readers reload once
// per burst of writes instead of on every single row.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[string]struct{})
	}
	key := ev.Bucket
	t.pending[ev.Type][key] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	if _, ok := pending[EventInvalidated]; ok {
		send(Event{Type: EventInvalidated})
		return
	}
	for bucket := range pending[EventBucketChanged] {
		send(Event{Type: EventBucketChanged, Bucket: bucket})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
