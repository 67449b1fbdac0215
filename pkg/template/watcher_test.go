package template

import (
	"context"
	"path/filepath"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"slub/librml/pkg/config"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.tmpl"), `{}`)
	writeFile(t, filepath.Join(dir, "a.meta.json"), `{"template": "a"}`)

	m := NewManager(config.TemplatesConfig{Dir: dir, Extension: ".tmpl"}, nil, nil)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	w, err := NewWatcher(m, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(50 * time.Millisecond)

	writeFile(t, filepath.Join(dir, "b.meta.json"), `{"template": "b"}`)
	writeFile(t, filepath.Join(dir, "b.tmpl"), `{}`)

	waitFor(t, 2*time.Second, func() bool {
		return slices.Equal(m.IDs(), []string{"a", "b"})
	})

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch() did not return after cancel")
	}
	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}

func TestWatcher_Stop(t *testing.T) {
	m := NewManager(config.TemplatesConfig{Dir: t.TempDir(), Extension: ".tmpl"}, nil, nil)
	w, err := NewWatcher(m, 0, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- w.Watch(context.Background()) }()
	time.Sleep(50 * time.Millisecond)

	if err := w.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch() did not return after Stop")
	}
}

func TestWatcher_WatchAgainAfterCancel(t *testing.T) {
	m := NewManager(config.TemplatesConfig{Dir: t.TempDir(), Extension: ".tmpl"}, nil, nil)
	w, err := NewWatcher(m, 0, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	for run := 1; run <= 2; run++ {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- w.Watch(ctx) }()
		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			if err != nil {
				t.Errorf("run %d: Watch() error = %v", run, err)
			}
		case <-time.After(time.Second):
			t.Fatalf("run %d: Watch() did not return after cancel", run)
		}
	}

	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
	if err := w.Watch(context.Background()); err == nil {
		t.Error("Watch() after Stop error = nil, want error")
	}
}

func TestWatcher_ShouldProcessEvent(t *testing.T) {
	m := NewManager(config.TemplatesConfig{Dir: "testdata", Extension: ".tmpl"}, nil, nil)
	w, err := NewWatcher(m, 0, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"template write", fsnotify.Event{Name: "t/a.tmpl", Op: fsnotify.Write}, true},
		{"sidecar create", fsnotify.Event{Name: "t/a.meta.json", Op: fsnotify.Create}, true},
		{"template remove", fsnotify.Event{Name: "t/a.TMPL", Op: fsnotify.Remove}, true},
		{"chmod only", fsnotify.Event{Name: "t/a.tmpl", Op: fsnotify.Chmod}, false},
		{"other json", fsnotify.Event{Name: "t/a.json", Op: fsnotify.Write}, false},
		{"hidden swap file", fsnotify.Event{Name: "t/.a.tmpl", Op: fsnotify.Write}, false},
		{"unrelated", fsnotify.Event{Name: "t/readme.md", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.shouldProcessEvent(tt.event); got != tt.want {
				t.Errorf("shouldProcessEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDebouncer(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls, last atomic.Int32

	for i := 1; i <= 5; i++ {
		d.Trigger(func() {
			calls.Add(1)
			last.Store(int32(i))
		})
	}

	waitFor(t, time.Second, func() bool { return calls.Load() == 1 })
	time.Sleep(60 * time.Millisecond)
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
	if last.Load() != 5 {
		t.Errorf("last = %d, want 5", last.Load())
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Trigger(func() { calls.Add(1) })

	time.Sleep(60 * time.Millisecond)
	if calls.Load() != 0 {
		t.Errorf("calls = %d, want 0 after Stop", calls.Load())
	}
}
