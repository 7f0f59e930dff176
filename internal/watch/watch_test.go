package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWatcher_InitialRecompare(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	writeFile(t, a, "variants: []")
	writeFile(t, b, "variants: []")

	calls := make(chan string, 16)
	w, err := New([]string{a, b}, 50*time.Millisecond, func(path string) { calls <- path })
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	seen := make(map[string]bool)
	for i := 0; i < 2; i++ {
		select {
		case p := <-calls:
			seen[p] = true
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for initial recompare")
		}
	}
	assert.True(t, seen[a], "expected initial handler call for %s", a)
	assert.True(t, seen[b], "expected initial handler call for %s", b)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcher_WriteTriggersDebouncedHandler(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "set.yaml")
	writeFile(t, target, "variants: []")

	calls := make(chan string, 16)
	w, err := New([]string{target}, 50*time.Millisecond, func(path string) { calls <- path })
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Drain the initial call first.
	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for initial call")
	}

	writeFile(t, target, "variants: [\"updated\"]")

	select {
	case p := <-calls:
		assert.Equal(t, target, p)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	cancel()
	<-done
}

func TestWatcher_IgnoresUnobservedSiblings(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "observed.yaml")
	sibling := filepath.Join(dir, "sibling.yaml")
	writeFile(t, target, "variants: []")

	calls := make(chan string, 16)
	w, err := New([]string{target}, 20*time.Millisecond, func(path string) { calls <- path })
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for initial call")
	}

	writeFile(t, sibling, "variants: []")
	time.Sleep(200 * time.Millisecond)

	select {
	case p := <-calls:
		t.Errorf("unexpected handler call for %s", p)
	default:
	}

	cancel()
	<-done
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "absent", "x.yaml")}, time.Second, func(string) {})
	assert.Error(t, err)
}
