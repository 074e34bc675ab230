//go:build darwin || netbsd || freebsd || openbsd || dragonfly || linux

package internal

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// PipeFds returns the read and write ends of a new close-on-exec pipe.
func PipeFds() (r, w int, err error) {
	var p [2]int

	syscall.ForkLock.RLock()
	err = unix.Pipe(p[:])
	if err == nil {
		unix.CloseOnExec(p[0])
		unix.CloseOnExec(p[1])
	}
	syscall.ForkLock.RUnlock()

	if err != nil {
		return -1, -1, os.NewSyscallError("pipe", err)
	}
	return p[0], p[1], nil
}

// Socketpair returns a connected pair of close-on-exec unix stream sockets.
func Socketpair() (a, b int, err error) {
	syscall.ForkLock.RLock()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err == nil {
		unix.CloseOnExec(fds[0])
		unix.CloseOnExec(fds[1])
	}
	syscall.ForkLock.RUnlock()

	if err != nil {
		return -1, -1, os.NewSyscallError("socketpair", err)
	}
	return fds[0], fds[1], nil
}
