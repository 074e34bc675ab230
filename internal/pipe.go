//go:build darwin || netbsd || freebsd || openbsd || dragonfly || linux

package internal

import (
	"os"

	"golang.org/x/sys/unix"
)

var wakeByte = [1]byte{0}

// Pipe is a Waker backed by a unidirectional pipe. Both ends are nonblocking
// and close-on-exec.
type Pipe struct {
	pipe [2]int
	buf  []byte
}

var _ Waker = &Pipe{}

func NewPipe(drainSize int) (*Pipe, error) {
	r, w, err := PipeFds()
	if err != nil {
		return nil, err
	}

	p := &Pipe{
		pipe: [2]int{r, w},
		buf:  make([]byte, drainSize),
	}

	if err := p.setNonblock(); err != nil {
		_ = p.Close()
		return nil, err
	}

	return p, nil
}

func (p *Pipe) setNonblock() error {
	if err := unix.SetNonblock(p.pipe[0], true); err != nil {
		return os.NewSyscallError("pipe read set_nonblock", err)
	}
	if err := unix.SetNonblock(p.pipe[1], true); err != nil {
		return os.NewSyscallError("pipe write set_nonblock", err)
	}
	return nil
}

func (p *Pipe) Fd() int {
	return p.pipe[0]
}

func (p *Pipe) WriteFd() int {
	return p.pipe[1]
}

// Wake writes a single byte. A full pipe already holds a pending signal, so
// would-block is not an error.
func (p *Pipe) Wake() error {
	for {
		_, err := unix.Write(p.pipe[1], wakeByte[:])
		switch {
		case err == nil:
			return nil
		case err == unix.EINTR:
			continue
		case IsWouldBlock(err):
			return nil
		default:
			return os.NewSyscallError("pipe write", err)
		}
	}
}

// Drain reads until the pipe would block.
func (p *Pipe) Drain() error {
	for {
		n, err := unix.Read(p.pipe[0], p.buf)
		switch {
		case err == nil:
			if n == 0 {
				// write end closed
				return nil
			}
		case err == unix.EINTR:
		case IsWouldBlock(err):
			return nil
		default:
			return os.NewSyscallError("pipe read", err)
		}
	}
}

func (p *Pipe) Close() error {
	errRead := unix.Close(p.pipe[0])
	errWrite := unix.Close(p.pipe[1])
	if errRead != nil {
		return errRead
	}
	return errWrite
}
