//go:build unix && !(darwin || dragonfly || freebsd || netbsd || openbsd)

package signals

import "golang.org/x/sys/unix"

// Default is SIGUSR1; this platform has no status request signal.
const Default = unix.SIGUSR1
