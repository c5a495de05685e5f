// Package watch re-runs synthesis passes when declaration manifests change.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/teranos/autodeconstruct/deconstruct"
	"github.com/teranos/autodeconstruct/errors"
	"github.com/teranos/autodeconstruct/logger"
	"github.com/teranos/autodeconstruct/manifest"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after the last change before a pass runs.
const DefaultDebounce = 500 * time.Millisecond

// Report describes one pass triggered by the watcher.
type Report struct {
	Result  *deconstruct.Result
	Path    string
	Changed bool
	Err     error

	// Duration covers loading, generation and writing
	Duration time.Duration
}

// PassCallback is called after every pass, including failed ones
type PassCallback func(Report)

// Watcher watches manifest files and regenerates the artifact when they change.
type Watcher struct {
	paths    []string
	watched  map[string]bool
	dir      string
	engine   *deconstruct.Engine
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *zap.SugaredLogger

	mu        sync.RWMutex
	callbacks []PassCallback
}

// New creates a watcher for the manifest paths. The artifact is written into dir.
//
// Parent directories are watched rather than the files themselves, so editors
// that save by renaming a temporary file are still seen.
func New(paths []string, dir string, engine *deconstruct.Engine, debounce time.Duration) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("no manifest files to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		paths:    paths,
		watched:  make(map[string]bool, len(paths)),
		dir:      dir,
		engine:   engine,
		watcher:  fw,
		debounce: debounce,
		logger:   logger.ComponentLogger("watch"),
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", path)
		}
		w.watched[abs] = true

		parent := filepath.Dir(abs)
		if dirs[parent] {
			continue
		}
		if err := fw.Add(parent); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", parent)
		}
		dirs[parent] = true
	}

	return w, nil
}

// OnPass registers a callback to be called after each pass
func (w *Watcher) OnPass(callback PassCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Run performs an initial pass, then one pass per burst of changes, until ctx
// is cancelled. The underlying watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	w.pass(ctx)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			w.logger.Debugw("Manifest change detected",
				logger.FieldFile, event.Name,
				"op", event.Op.String())

			// Debounce rapid changes
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("Watcher error", logger.FieldError, err)

		case <-fire:
			fire = nil
			w.pass(ctx)
		}
	}
}

// relevant reports whether an event touches one of the watched manifests.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.watched[abs]
}

// pass reloads the manifests, runs the engine and writes the artifact if its text changed.
func (w *Watcher) pass(ctx context.Context) {
	start := time.Now()
	report := w.runPass(ctx)
	report.Duration = time.Since(start)
	if ctx.Err() != nil {
		return
	}

	if report.Err != nil {
		w.logger.Errorw("Pass failed", logger.FieldError, report.Err)
	} else if report.Changed {
		w.logger.Infow("Artifact updated",
			logger.FieldArtifact, report.Path,
			logger.FieldUnits, len(report.Result.Units),
			logger.FieldBytes, len(report.Result.Artifact),
			logger.FieldDurationMS, report.Duration.Milliseconds())
	} else {
		w.logger.Debugw("Artifact unchanged", logger.FieldArtifact, report.Path)
	}

	w.mu.RLock()
	callbacks := make([]PassCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		callback(report)
	}
}

func (w *Watcher) runPass(ctx context.Context) Report {
	program, err := manifest.Load(w.paths...)
	if err != nil {
		return Report{Err: errors.Wrap(err, "failed to load manifests")}
	}

	result, err := w.engine.Run(ctx, program)
	if err != nil {
		return Report{Err: err}
	}

	path, changed, err := deconstruct.WriteArtifact(w.dir, result)
	return Report{Result: result, Path: path, Changed: changed, Err: err}
}
