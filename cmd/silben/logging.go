// Logging for the silben CLI. The engine itself is silent; diagnostics about
// what the filter did are a CLI concern.
package main

import (
	"sync"

	"go.uber.org/zap"
)

var (
	log     *zap.Logger
	logOnce sync.Once
)

// initLogger installs the process logger. A no-op logger is used unless
// verbose mode is requested.
func initLogger(verbose bool) {
	logOnce.Do(func() {
		if !verbose {
			log = zap.NewNop()
			return
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			log = zap.NewNop()
			return
		}
		log = l
	})
}

// logger returns the process logger, falling back to a no-op logger when
// initLogger has not run.
func logger() *zap.Logger {
	logOnce.Do(func() { log = zap.NewNop() })
	return log
}
