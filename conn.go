package nio

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// ConnEndpoint is an Endpoint over the descriptor of a syscall.Conn such as
// *net.TCPConn, *net.UnixConn or *net.TCPListener. The conn keeps ownership
// of the descriptor and stays usable for I/O through its own methods.
type ConnEndpoint struct {
	conn syscall.Conn
	raw  syscall.RawConn
	fd   int
}

var _ Endpoint = &ConnEndpoint{}

func NewConnEndpoint(conn syscall.Conn) (*ConnEndpoint, error) {
	raw, err := conn.SyscallConn()
	if err != nil {
		return nil, err
	}

	e := &ConnEndpoint{
		conn: conn,
		raw:  raw,
		fd:   -1,
	}

	if err := raw.Control(func(fd uintptr) {
		e.fd = int(fd)
	}); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *ConnEndpoint) Conn() syscall.Conn {
	return e.conn
}

func (e *ConnEndpoint) Fd() int {
	return e.fd
}

func (e *ConnEndpoint) SetNonblock(v bool) error {
	var serr error
	if err := e.raw.Control(func(fd uintptr) {
		serr = unix.SetNonblock(int(fd), v)
	}); err != nil {
		return err
	}

	if serr != nil {
		return os.NewSyscallError("set_nonblock", serr)
	}
	return nil
}

// Read reads from the descriptor without parking in the runtime poller: with
// nothing to read it returns nioerrors.ErrWouldBlock.
func (e *ConnEndpoint) Read(b []byte) (int, error) {
	var (
		n    int
		rerr error
	)
	if err := e.raw.Read(func(fd uintptr) bool {
		n, rerr = unix.Read(int(fd), b)
		return true
	}); err != nil {
		return 0, err
	}
	return readResult(n, rerr, len(b))
}

// Write writes to the descriptor without parking in the runtime poller: with
// no room to write it returns nioerrors.ErrWouldBlock.
func (e *ConnEndpoint) Write(b []byte) (int, error) {
	var (
		n    int
		werr error
	)
	if err := e.raw.Write(func(fd uintptr) bool {
		n, werr = unix.Write(int(fd), b)
		return true
	}); err != nil {
		return 0, err
	}
	return writeResult(n, werr)
}
