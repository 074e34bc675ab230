//go:build darwin || netbsd || freebsd || openbsd || dragonfly

package internal

import "errors"

const eventFdSupported = false

func newEventFdWaker() (Waker, error) {
	return nil, errors.New("eventfd not supported")
}
