// Package goroutine provides utilities for safely launching goroutines with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"blogsummarizer/internal/shared/logger"
)

// SafeGo launches a goroutine with panic recovery. If the goroutine panics,
// the panic is caught and logged with stack trace instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverAndLog(log, name, nil)
		fn()
	}()
}

// SafeGoErr runs fn in a goroutine and delivers its result on the returned
// channel. A panic is logged and delivered as an error.
func SafeGoErr(log logger.Interface, name string, fn func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		var err error
		defer func() {
			done <- err
		}()
		defer recoverAndLog(log, name, &err)
		err = fn()
	}()
	return done
}

func recoverAndLog(log logger.Interface, name string, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	log.Errorw("goroutine panicked",
		"goroutine", name,
		"panic", fmt.Sprintf("%v", r),
		"stack", string(debug.Stack()),
	)
	if errp != nil {
		*errp = fmt.Errorf("%s panicked: %v", name, r)
	}
}
