package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/studysync/pkg/model"
)

func TestWatchEmitsRecordChanges(t *testing.T) {
	p := load(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.SaveTimer(model.TimerState{Seconds: 1499, Running: true}); err != nil {
		t.Fatalf("save timer: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Key == KeyTimer || evt.Key == "" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for timer change event")
		}
	}
}
