//go:build !windows

package app

import "syscall"

// stopProcess stops only this process; signalling the whole process group
// would also stop a shell wrapper that launched kom and break `fg`.
// It returns once the process receives SIGCONT.
func stopProcess() {
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}
