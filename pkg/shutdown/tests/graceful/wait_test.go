package graceful_test

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"goblognest/pkg/shutdown"
)

func TestWaitExecutesHooks(t *testing.T) {
	hook1Called := make(chan struct{})
	hook2Called := make(chan struct{})

	hook1 := func(_ context.Context) error {
		close(hook1Called)
		return nil
	}

	hook2 := func(_ context.Context) error {
		close(hook2Called)
		return nil
	}

	go func() {
		shutdown.Wait(time.Second, hook1, hook2)
	}()

	time.Sleep(100 * time.Millisecond)

	process, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("Failed to find process: %v", err)
	}
	if err := process.Signal(syscall.SIGTERM); err != nil {
		t.Fatalf("Failed to send signal: %v", err)
	}

	select {
	case <-hook1Called:
	case <-time.After(2 * time.Second):
		t.Error("Hook 1 was not called")
	}

	select {
	case <-hook2Called:
	case <-time.After(2 * time.Second):
		t.Error("Hook 2 was not called")
	}
}

func TestWaitRespectsTimeout(t *testing.T) {
	waitDone := make(chan struct{})

	slowHook := func(ctx context.Context) error {
		select {
		case <-time.After(2 * time.Second):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	start := time.Now()
	go func() {
		shutdown.Wait(500*time.Millisecond, slowHook)
		close(waitDone)
	}()

	time.Sleep(100 * time.Millisecond)
	process, _ := os.FindProcess(os.Getpid())
	_ = process.Signal(syscall.SIGTERM)

	select {
	case <-waitDone:
	case <-time.After(3 * time.Second):
		t.Fatal("Wait function didn't return within the expected time")
	}

	elapsed := time.Since(start)
	if elapsed > 750*time.Millisecond {
		t.Errorf("Wait took too long: %v", elapsed)
	}
}
