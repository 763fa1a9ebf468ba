package tray

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

var (
	signalNotify = signal.Notify
	signalStop   = signal.Stop
)

// WatchSignals calls quit once on SIGINT or SIGTERM. The returned function
// stops watching; it is safe to call after quit has run.
func WatchSignals(quit func(), logger *zap.Logger) (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signalNotify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigs:
			logger.Info("shutting down tray", zap.String("signal", sig.String()))
			quit()
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signalStop(sigs)
			close(done)
		})
	}
}
