//go:build windows

package app

// stopProcess is a no-op; Windows consoles have no job control.
func stopProcess() {}
