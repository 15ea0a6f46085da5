// Package session watches a session document and reloads it when an
// earlier wizard step rewrites it.
package session

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/f3rmion/onboard/internal/config"
	"github.com/f3rmion/onboard/internal/onboard"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events editors produce on save.
const DefaultDebounce = 150 * time.Millisecond

// ErrAlreadyStarted is returned by Start on a running watcher.
var ErrAlreadyStarted = errors.New("watcher already started")

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce duration.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithOnReload sets the callback invoked with freshly loaded inputs.
func WithOnReload(fn func(onboard.Inputs)) Option {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// WithOnError sets the callback invoked when reloading or watching fails.
func WithOnError(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watcher reloads one session file on change. It watches the parent
// directory so atomic rename-on-save is picked up too.
type Watcher struct {
	path     string
	debounce time.Duration
	onReload func(onboard.Inputs)
	onError  func(error)

	mu      sync.Mutex
	started bool
	fs      *fsnotify.Watcher
	timer   *time.Timer
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewWatcher creates a watcher for path. It does not start watching.
func NewWatcher(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		onReload: func(onboard.Inputs) {},
		onError:  func(error) {},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Start begins watching until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return ErrAlreadyStarted
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fs.Add(filepath.Dir(w.path)); err != nil {
		fs.Close()
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	w.fs = fs
	w.cancel = cancel
	w.done = make(chan struct{})
	w.started = true

	go w.loop(ctx)
	return nil
}

// Stop ends watching and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return
	}
	w.started = false
	w.cancel()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	done := w.done
	w.mu.Unlock()

	<-done
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	defer w.fs.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	running := w.started
	w.mu.Unlock()
	if !running {
		return
	}

	in, err := config.LoadSession(w.path)
	if err != nil {
		w.onError(err)
		return
	}
	w.onReload(in)
}
