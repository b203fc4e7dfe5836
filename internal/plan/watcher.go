package plan

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"daybelt/internal/logging"
)

const defaultDebounce = 300 * time.Millisecond

// Update is delivered after the watched plan file changes. Exactly one of
// Plan and Err is set.
type Update struct {
	Plan *Plan
	Err  error
}

// Watcher reloads a plan file whenever it is written, created or renamed.
type Watcher struct {
	path           string
	labelMaxLength int
	debounce       time.Duration

	watcher  *fsnotify.Watcher
	updates  chan Update
	trigger  chan struct{}
	stopOnce sync.Once
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewWatcher prepares a watcher for path. Call Start to begin watching.
func NewWatcher(path string, labelMaxLength int) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve plan path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		path:           absPath,
		labelMaxLength: labelMaxLength,
		debounce:       defaultDebounce,
		watcher:        fw,
		updates:        make(chan Update, 1),
		trigger:        make(chan struct{}, 1),
		stopChan:       make(chan struct{}),
	}, nil
}

// Updates returns the channel reloaded plans are sent on. Only the newest
// pending update is kept.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start watches the plan's directory, which survives editors that save by
// rename.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch plan directory %s: %w", dir, err)
	}

	logging.Default().Info("watching plan", "path", w.path)

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Stop ends watching and waits for the goroutines to exit.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				logging.Debugf("plan change detected: %s", event)
				w.triggerReload()
			case event.Has(fsnotify.Remove):
				logging.Default().Warn("plan file removed", "path", event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Default().Error("plan watcher error", "err", err)
		}
	}
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	defer w.wg.Done()
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.trigger:
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			w.publish(w.reload())
		}
	}
}

func (w *Watcher) triggerReload() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

func (w *Watcher) reload() Update {
	p, err := Load(w.path, w.labelMaxLength)
	if err != nil {
		logging.Default().Warn("plan reload failed", "path", w.path, "err", err)
		return Update{Err: err}
	}
	return Update{Plan: p}
}

// publish replaces any unread update with u.
func (w *Watcher) publish(u Update) {
	for {
		select {
		case w.updates <- u:
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}
