//go:build unix

// Package signals resolves the signal watched for status requests.
package signals

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

var (
	// ErrUnknown is returned for numbers that name no signal on this platform.
	ErrUnknown = errors.New("unknown signal")
	// ErrUncatchable is returned for signals a process cannot handle.
	ErrUncatchable = errors.New("signal cannot be caught")
)

// Parse converts a numeric signal identifier into a signal that can be watched.
func Parse(s string) (syscall.Signal, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a signal number", ErrUnknown, s)
	}
	sig := syscall.Signal(n)
	if n <= 0 || unix.SignalName(sig) == "" {
		return 0, fmt.Errorf("%w: %d", ErrUnknown, n)
	}
	if sig == unix.SIGKILL || sig == unix.SIGSTOP {
		return 0, fmt.Errorf("%w: %s", ErrUncatchable, Name(sig))
	}
	return sig, nil
}

// Name returns the conventional name of sig, such as "SIGUSR1", or its
// number when the platform has no name for it.
func Name(sig syscall.Signal) string {
	if name := unix.SignalName(sig); name != "" {
		return name
	}
	return strconv.Itoa(int(sig))
}
