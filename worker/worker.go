package worker

import (
	"runtime"

	"github.com/getsentry/sentry-go"
)

var taskQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go run()
	}
}

func run() {
	defer sentry.Recover()

	for f := range taskQueue {
		f()
	}
}

// Submit queues f on a background worker. Meant for host-side work that must
// stay off the tick path, such as record flushes or profiling servers.
func Submit(f func()) {
	taskQueue <- f
}
