//go:build linux

package internal

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

const eventFdSupported = true

// EventFd is a Waker backed by a nonblocking eventfd counter.
type EventFd struct {
	fd  int
	buf [8]byte
}

var _ Waker = &EventFd{}

func NewEventFd() (*EventFd, error) {
	fd, err := unix.Eventfd(0, unix.EFD_NONBLOCK|unix.EFD_CLOEXEC)
	if err != nil {
		return nil, os.NewSyscallError("eventfd", err)
	}
	return &EventFd{fd: fd}, nil
}

func newEventFdWaker() (Waker, error) {
	e, err := NewEventFd()
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (e *EventFd) Fd() int {
	return e.fd
}

// Wake adds one to the counter. It only would-block when the counter is
// about to overflow, in which case a signal is pending anyway.
func (e *EventFd) Wake() error {
	x := uint64(1)
	for {
		/* #nosec G103 -- the use of unsafe has been audited */
		_, err := unix.Write(e.fd, (*(*[8]byte)(unsafe.Pointer(&x)))[:])
		switch {
		case err == nil:
			return nil
		case err == unix.EINTR:
			continue
		case IsWouldBlock(err):
			return nil
		default:
			return os.NewSyscallError("eventfd write", err)
		}
	}
}

// Drain resets the counter. A single read does it, the loop ends on the
// would-block that follows.
func (e *EventFd) Drain() error {
	for {
		_, err := unix.Read(e.fd, e.buf[:])
		switch {
		case err == nil, err == unix.EINTR:
		case IsWouldBlock(err):
			return nil
		default:
			return os.NewSyscallError("eventfd read", err)
		}
	}
}

func (e *EventFd) Close() error {
	return unix.Close(e.fd)
}
