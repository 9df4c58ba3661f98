package dectime

import (
	"context"
	"io"
	"time"
)

type flusher interface {
	Flush() error
}

// sleep is replaced in tests.
var sleep = func(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// Run redraws t on w in place (using a carriage return) once per decimal
// second, advancing t locally with Increment rather than rereading the clock.
// It returns nil once ctx is done, or the first error writing to w.
//
// If w has a Flush method, it is called after every redraw.
func Run(ctx context.Context, w io.Writer, t Time) error {
	f, _ := w.(flusher)
	for ctx.Err() == nil {
		if _, err := io.WriteString(w, "\r"+t.String()); err != nil {
			return err
		}
		if f != nil {
			if err := f.Flush(); err != nil {
				return err
			}
		}
		t.Increment()
		sleep(ctx, Second)
	}
	return nil
}
