package internal

import "github.com/talostrading/nio/nioopts"

// DefaultDrainBufferSize is the chunk size used to empty a wakeup pipe.
const DefaultDrainBufferSize = 1024

// Waker is a self-signaling descriptor. Its Fd is watched for reads in every
// wait cycle; Wake makes it readable and Drain makes it unreadable again.
//
// Wake is safe for concurrent use. Drain and Close are not.
type Waker interface {
	// Fd is the descriptor to watch for reads.
	Fd() int

	// Wake signals the waker. Signals which are not yet drained coalesce.
	Wake() error

	// Drain consumes every pending signal without blocking.
	Drain() error

	// Close closes every descriptor held by the waker.
	Close() error
}

// NewWaker returns a waker of the given kind. WakerEventFd falls back to a
// pipe where eventfd is not available.
func NewWaker(kind nioopts.WakerKind, drainSize int) (Waker, error) {
	if kind == nioopts.WakerEventFd && eventFdSupported {
		return newEventFdWaker()
	}
	if drainSize <= 0 {
		drainSize = DefaultDrainBufferSize
	}
	return NewPipe(drainSize)
}
