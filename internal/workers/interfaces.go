// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the work itself happens on
// goroutines the worker owns. Stop blocks until any job in progress is done.
type Worker interface {
	Run()
	Stop()
}
