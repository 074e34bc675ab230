//go:build darwin || netbsd || freebsd || openbsd || dragonfly || linux

package internal

import (
	"os"
	"time"
	"unsafe"

	"github.com/talostrading/nio/nioerrors"
	"golang.org/x/sys/unix"
)

// FdSetSize is the number of descriptors a unix.FdSet can hold.
const FdSetSize = int(unsafe.Sizeof(unix.FdSet{})) * 8

// SelectWaiter waits with select(2). The exceptional set is always empty.
type SelectWaiter struct {
	rset, wset     unix.FdSet
	readyR, readyW []int
}

var _ Waiter = &SelectWaiter{}

func NewSelectWaiter() *SelectWaiter {
	return &SelectWaiter{}
}

func (w *SelectWaiter) Check(fd int) error {
	if fd < 0 || fd >= FdSetSize {
		return nioerrors.ErrDescriptorRange
	}
	return nil
}

func (w *SelectWaiter) Wait(readers, writers []int, timeout time.Duration) ([]int, []int, error) {
	w.rset.Zero()
	w.wset.Zero()

	nfd := 0
	for _, fd := range readers {
		w.rset.Set(fd)
		if fd >= nfd {
			nfd = fd + 1
		}
	}
	for _, fd := range writers {
		w.wset.Set(fd)
		if fd >= nfd {
			nfd = fd + 1
		}
	}

	// nil means wait forever
	var tv *unix.Timeval
	if timeout >= 0 {
		t := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &t
	}

	n, err := unix.Select(nfd, &w.rset, &w.wset, nil, tv)
	if err != nil {
		return nil, nil, os.NewSyscallError("select", err)
	}

	w.readyR = w.readyR[:0]
	w.readyW = w.readyW[:0]
	if n == 0 {
		return w.readyR, w.readyW, nil
	}

	for _, fd := range readers {
		if w.rset.IsSet(fd) {
			w.readyR = append(w.readyR, fd)
		}
	}
	for _, fd := range writers {
		if w.wset.IsSet(fd) {
			w.readyW = append(w.readyW, fd)
		}
	}

	return w.readyR, w.readyW, nil
}
