// Package workers holds the harness's background maintenance loops: the
// registry sweeper and the session reaper. It defines the Worker interface
// and a Workers aggregate that starts them in a unified way.
package workers

import "context"

// Worker is a background maintenance loop. Run starts the loop and returns
// immediately; the loop stops when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
