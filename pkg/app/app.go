// Package app defines the runtime contract shared by the long-running
// entrypoints of cmd/bridge-monitor.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
