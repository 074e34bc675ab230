package nio

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/talostrading/nio/internal"
	"github.com/talostrading/nio/nioerrors"
	"golang.org/x/sys/unix"
)

// FdEndpoint is an Endpoint over a raw descriptor which it owns.
type FdEndpoint struct {
	fd     int
	closed uint32
}

var _ Endpoint = &FdEndpoint{}

func NewFdEndpoint(fd int) *FdEndpoint {
	return &FdEndpoint{fd: fd}
}

// Pipe returns both ends of a new pipe.
func Pipe() (r, w *FdEndpoint, err error) {
	rfd, wfd, err := internal.PipeFds()
	if err != nil {
		return nil, nil, err
	}
	return NewFdEndpoint(rfd), NewFdEndpoint(wfd), nil
}

// Socketpair returns a connected pair of unix stream sockets.
func Socketpair() (a, b *FdEndpoint, err error) {
	afd, bfd, err := internal.Socketpair()
	if err != nil {
		return nil, nil, err
	}
	return NewFdEndpoint(afd), NewFdEndpoint(bfd), nil
}

func (e *FdEndpoint) Fd() int {
	return e.fd
}

func (e *FdEndpoint) SetNonblock(v bool) error {
	if err := unix.SetNonblock(e.fd, v); err != nil {
		return os.NewSyscallError("set_nonblock", err)
	}
	return nil
}

// Read reads up to len(b) bytes. On a nonblocking descriptor with nothing to
// read it returns nioerrors.ErrWouldBlock.
func (e *FdEndpoint) Read(b []byte) (int, error) {
	n, err := unix.Read(e.fd, b)
	return readResult(n, err, len(b))
}

// Write writes up to len(b) bytes. On a nonblocking descriptor with no room
// to write it returns nioerrors.ErrWouldBlock.
func (e *FdEndpoint) Write(b []byte) (int, error) {
	n, err := unix.Write(e.fd, b)
	return writeResult(n, err)
}

func (e *FdEndpoint) Close() error {
	if !atomic.CompareAndSwapUint32(&e.closed, 0, 1) {
		return io.EOF
	}
	return unix.Close(e.fd)
}

func (e *FdEndpoint) Closed() bool {
	return atomic.LoadUint32(&e.closed) == 1
}

func readResult(n int, err error, want int) (int, error) {
	if err != nil {
		if internal.IsWouldBlock(err) {
			return 0, nioerrors.ErrWouldBlock
		}
		return 0, os.NewSyscallError("read", err)
	}

	if n == 0 && want > 0 {
		return 0, io.EOF
	}

	return n, nil
}

func writeResult(n int, err error) (int, error) {
	if err != nil {
		if internal.IsWouldBlock(err) {
			return 0, nioerrors.ErrWouldBlock
		}
		return 0, os.NewSyscallError("write", err)
	}
	return n, nil
}
