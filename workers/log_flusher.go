package workers

import (
	"context"
	"time"

	"apptransaction/logging"

	log "github.com/sirupsen/logrus"
)

// StartLogFlusher starts a loop that flushes the diagnostic log files every
// interval until ctx is done.
func StartLogFlusher(ctx context.Context, logs *logging.Set, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				flush(logs)
			}
		}
	}()
	return done
}

func flush(logs *logging.Set) {
	if err := logs.Sync(); err != nil {
		log.Printf("log flusher: sync error: %v", err)
	}
}
