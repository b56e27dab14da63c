// Package shutdown реализует корректное завершение приложения по сигналам
// SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Hook - функция очистки, выполняемая при завершении приложения.
type Hook func(context.Context) error

// Wait блокирует выполнение до получения сигнала завершения, после чего
// параллельно выполняет все хуки, ограничивая их общим timeout.
func Wait(timeout time.Duration, hooks ...Hook) {
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, hook := range hooks {
		wg.Add(1)
		go func(fn Hook) {
			defer wg.Done()
			_ = fn(ctx)
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}
