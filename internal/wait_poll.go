//go:build darwin || netbsd || freebsd || openbsd || dragonfly || linux

package internal

import (
	"math"
	"os"
	"time"

	"github.com/talostrading/nio/nioerrors"
	"golang.org/x/sys/unix"
)

const (
	pollReadMask  = unix.POLLIN | unix.POLLHUP | unix.POLLERR | unix.POLLNVAL
	pollWriteMask = unix.POLLOUT | unix.POLLHUP | unix.POLLERR | unix.POLLNVAL
)

// PollWaiter waits with poll(2). A descriptor present in both input lists
// occupies a single pollfd.
type PollWaiter struct {
	fds            []unix.PollFd
	index          map[int]int
	readyR, readyW []int
}

var _ Waiter = &PollWaiter{}

func NewPollWaiter() *PollWaiter {
	return &PollWaiter{
		index: make(map[int]int),
	}
}

func (w *PollWaiter) Check(fd int) error {
	if fd < 0 || fd > math.MaxInt32 {
		return nioerrors.ErrDescriptorRange
	}
	return nil
}

func (w *PollWaiter) add(fd int, events int16) {
	ix, ok := w.index[fd]
	if !ok {
		ix = len(w.fds)
		w.index[fd] = ix
		w.fds = append(w.fds, unix.PollFd{Fd: int32(fd)})
	}
	w.fds[ix].Events |= events
}

func (w *PollWaiter) Wait(readers, writers []int, timeout time.Duration) ([]int, []int, error) {
	w.fds = w.fds[:0]
	clear(w.index)

	for _, fd := range readers {
		w.add(fd, unix.POLLIN)
	}
	for _, fd := range writers {
		w.add(fd, unix.POLLOUT)
	}

	n, err := unix.Poll(w.fds, toPollTimeout(timeout))
	if err != nil {
		return nil, nil, os.NewSyscallError("poll", err)
	}

	w.readyR = w.readyR[:0]
	w.readyW = w.readyW[:0]
	if n == 0 {
		return w.readyR, w.readyW, nil
	}

	for _, fd := range readers {
		if w.fds[w.index[fd]].Revents&pollReadMask != 0 {
			w.readyR = append(w.readyR, fd)
		}
	}
	for _, fd := range writers {
		if w.fds[w.index[fd]].Revents&pollWriteMask != 0 {
			w.readyW = append(w.readyW, fd)
		}
	}

	return w.readyR, w.readyW, nil
}

// toPollTimeout rounds up to whole milliseconds so a short positive timeout
// does not degrade into a poll.
func toPollTimeout(timeout time.Duration) int {
	if timeout < 0 {
		return -1
	}
	if timeout > math.MaxInt32*time.Millisecond {
		return math.MaxInt32
	}
	return int((timeout + time.Millisecond - 1) / time.Millisecond)
}
