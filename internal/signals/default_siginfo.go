//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package signals

import "golang.org/x/sys/unix"

// Default is the platform's status request signal, sent by ^T.
const Default = unix.SIGINFO
