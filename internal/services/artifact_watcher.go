package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hashlab/internal/metrics"
	"hashlab/internal/models"
	"hashlab/pkg/logger"

	"github.com/fsnotify/fsnotify"
)

// ArtifactWatcher reports changes to artifact files in the data directory,
// including edits made by hand or by an external cracking tool.
type ArtifactWatcher struct {
	dir      string
	known    map[string]bool
	logger   *logger.Logger
	onChange func(name string, op fsnotify.Op)
}

func NewArtifactWatcher(dir string) *ArtifactWatcher {
	known := make(map[string]bool, len(models.Artifacts))
	for _, name := range models.Artifacts {
		known[name] = true
	}
	return &ArtifactWatcher{
		dir:    dir,
		known:  known,
		logger: logger.Default(),
	}
}

// OnChange registers fn to be called for every artifact event.
func (w *ArtifactWatcher) OnChange(fn func(name string, op fsnotify.Op)) {
	w.onChange = fn
}

// Watch blocks until ctx is done or the watcher fails.
func (w *ArtifactWatcher) Watch(ctx context.Context) error {
	fileInfo, err := os.Stat(w.dir)
	if err != nil {
		return fmt.Errorf("data directory %s: %w", w.dir, err)
	}
	if !fileInfo.IsDir() {
		return fmt.Errorf("%s is not a directory", w.dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.WithField("dir", w.dir).Info("Watching artifacts")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WithError(err).Error("Artifact watcher error")

		case <-ctx.Done():
			w.logger.Info("Artifact watcher stopped")
			return nil
		}
	}
}

func (w *ArtifactWatcher) handle(event fsnotify.Event) {
	name := filepath.Base(event.Name)
	if !w.known[name] {
		return
	}

	op := opName(event.Op)
	if op == "" {
		return
	}

	metrics.MetricArtifactEvents.WithLabelValues(name, op).Inc()

	fields := logger.Fields{"artifact": name, "op": op}
	if fi, err := os.Stat(event.Name); err == nil {
		fields["size"] = fi.Size()
	}
	w.logger.WithFields(fields).Debug("Artifact changed")

	if w.onChange != nil {
		w.onChange(name, event.Op)
	}
}

// opName collapses an fsnotify op to a single metric label. Temp-file
// renames surface as create events on the artifact name.
func opName(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	default:
		return strings.ToLower(op.String())
	}
}
