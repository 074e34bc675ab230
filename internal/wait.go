package internal

import (
	"time"

	"github.com/talostrading/nio/nioopts"
)

// Waiter is the platform readiness wait primitive.
//
// A Waiter is not safe for concurrent use. The slices returned by Wait are
// owned by the Waiter and are only valid until the next call.
type Waiter interface {
	// Wait blocks until at least one descriptor of readers is readable or one
	// of writers is writable, or the timeout expires. A negative timeout
	// blocks indefinitely, a zero timeout polls.
	//
	// The ready lists keep the order of the input lists. Errors, including
	// EINTR, are returned as *os.SyscallError and never retried.
	Wait(readers, writers []int, timeout time.Duration) (readyR, readyW []int, err error)

	// Check reports whether fd can be passed to Wait.
	Check(fd int) error
}

func NewWaiter(kind nioopts.BackendKind) Waiter {
	switch kind {
	case nioopts.BackendPoll:
		return NewPollWaiter()
	default:
		return NewSelectWaiter()
	}
}
