package internal

import "golang.org/x/sys/unix"

// IsWouldBlock reports whether err is the errno a nonblocking descriptor
// returns when there is nothing to read or no room to write.
func IsWouldBlock(err error) bool {
	return err == unix.EAGAIN || err == unix.EWOULDBLOCK
}
