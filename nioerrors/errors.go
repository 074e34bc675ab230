package nioerrors

import "errors"

var (
	ErrAlreadyRegistered = errors.New("endpoint already registered")
	ErrClosed            = errors.New("selector closed")
	ErrNotSelectable     = errors.New("value is neither an endpoint nor exposes one")
	ErrInvalidInterests  = errors.New("invalid interests")
	ErrDescriptorRange   = errors.New("descriptor out of range for the wait backend")
	ErrWouldBlock        = errors.New("operation would block")
)
