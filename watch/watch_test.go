package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/autodeconstruct/deconstruct"
)

const oneProperty = `types:
  - name: Test
    namespace: TestSpace
    kind: class
    access: public
    members:
      - {kind: property, name: Id, type: int}
`

const twoProperties = `types:
  - name: Test
    namespace: TestSpace
    kind: class
    access: public
    members:
      - {kind: property, name: Id, type: int}
      - {kind: property, name: Name, type: string?}
`

func newTestWatcher(t *testing.T, manifestPath, outDir string) (*Watcher, chan Report) {
	t.Helper()
	engine, err := deconstruct.NewEngine(deconstruct.Options{CacheSize: 16}, nil)
	require.NoError(t, err)

	w, err := New([]string{manifestPath}, outDir, engine, 10*time.Millisecond)
	require.NoError(t, err)

	reports := make(chan Report, 16)
	w.OnPass(func(r Report) { reports <- r })
	return w, reports
}

func nextReport(t *testing.T, reports chan Report) Report {
	t.Helper()
	select {
	case r := <-reports:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for pass")
		return Report{}
	}
}

func TestNew_NoPaths(t *testing.T) {
	_, err := New(nil, t.TempDir(), nil, 0)
	assert.Error(t, err)
}

func TestWatcher_RegeneratesOnChange(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "decls.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(oneProperty), 0644))
	outDir := filepath.Join(dir, "out")

	w, reports := newTestWatcher(t, manifestPath, outDir)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	initial := nextReport(t, reports)
	require.NoError(t, initial.Err)
	assert.True(t, initial.Changed)
	assert.Equal(t, filepath.Join(outDir, deconstruct.DefaultArtifactName), initial.Path)

	content, err := os.ReadFile(initial.Path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "out int @id)")

	require.NoError(t, os.WriteFile(manifestPath, []byte(twoProperties), 0644))

	// A save can surface as more than one burst; wait for the pass that saw the new content
	want := "out int @id, out string? @name)"
	for {
		updated := nextReport(t, reports)
		if updated.Err != nil || !strings.Contains(updated.Result.Artifact, want) {
			continue
		}
		content, err = os.ReadFile(updated.Path)
		require.NoError(t, err)
		assert.Contains(t, string(content), want)
		break
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_ReportsLoadErrors(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "decls.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("types: [{name: Test, kind: delegate}]"), 0644))

	w, reports := newTestWatcher(t, manifestPath, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	report := nextReport(t, reports)
	assert.Error(t, report.Err)
	assert.Nil(t, report.Result)
}

func TestWatcher_Relevant(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "decls.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(oneProperty), 0644))

	w, _ := newTestWatcher(t, manifestPath, dir)
	defer w.watcher.Close()

	assert.True(t, w.relevant(fsnotify.Event{Name: manifestPath, Op: fsnotify.Write}))
	assert.True(t, w.relevant(fsnotify.Event{Name: manifestPath, Op: fsnotify.Create}))
	assert.True(t, w.relevant(fsnotify.Event{Name: manifestPath, Op: fsnotify.Rename}))
	assert.False(t, w.relevant(fsnotify.Event{Name: manifestPath, Op: fsnotify.Chmod}))
	assert.False(t, w.relevant(fsnotify.Event{Name: filepath.Join(dir, "other.yaml"), Op: fsnotify.Write}))
}
