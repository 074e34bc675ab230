// Package nio multiplexes readiness of nonblocking descriptors across
// goroutines: register endpoints with a Selector, block in Select until some
// of them are ready, and interrupt a blocked Select from anywhere with Wakeup.
package nio

import (
	"time"

	"github.com/talostrading/nio/nioerrors"
)

// Forever makes Select block until an endpoint is ready or Wakeup is called.
// Any negative timeout does the same.
const Forever time.Duration = -1

// Endpoint is a nonblocking-capable I/O handle.
type Endpoint interface {
	// Fd returns the native descriptor. It must stay the same for as long as
	// the endpoint is registered.
	Fd() int

	// SetNonblock switches the blocking mode of the descriptor. A Selector
	// calls it once, with true, when the endpoint is registered.
	SetNonblock(bool) error
}

// Selectable is anything which is not an Endpoint itself but holds one.
type Selectable interface {
	Endpoint() Endpoint
}

func resolve(v interface{}) (Endpoint, error) {
	switch v := v.(type) {
	case Endpoint:
		return v, nil
	case Selectable:
		if ep := v.Endpoint(); ep != nil {
			return ep, nil
		}
	}
	return nil, nioerrors.ErrNotSelectable
}
