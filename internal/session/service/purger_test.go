package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

func TestRunPurger_PurgesImmediatelyAndStops(t *testing.T) {
	s, db, clock := newTestStore(t, "u-1")
	ctx := context.Background()
	old, err := s.Create(ctx, "u-1", "", "")
	if err != nil {
		t.Fatal(err)
	}
	clock.Advance(2 * time.Hour)
	live, err := s.Create(ctx, "u-1", "", "")
	if err != nil {
		t.Fatal(err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- RunPurger(runCtx, s, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
	}()

	deadline := time.Now().Add(2 * time.Second)
	for db.SessionCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("expired session not purged; count = %d", db.SessionCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("RunPurger = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("RunPurger did not stop after cancel")
	}
	if _, ok := db.Session(old.Token); ok {
		t.Error("expired session still present")
	}
	if _, ok := db.Session(live.Token); !ok {
		t.Error("live session was purged")
	}
}

func TestRunPurger_StoreErrorKeepsRunning(t *testing.T) {
	s, db, _ := newTestStore(t)
	db.SetErr(errors.New("db down"))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := RunPurger(ctx, s, 10*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunPurger = %v, want deadline exceeded", err)
	}
}
