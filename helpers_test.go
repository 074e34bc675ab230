package nio

import (
	"testing"

	"github.com/talostrading/nio/nioopts"
)

// variants covers every waker and wait backend combination.
var variants = []struct {
	name string
	opts []nioopts.Option
}{
	{"pipe/select", nil},
	{"pipe/poll", []nioopts.Option{nioopts.Backend(nioopts.BackendPoll)}},
	{"eventfd/select", []nioopts.Option{nioopts.Waker(nioopts.WakerEventFd)}},
	{"eventfd/poll", []nioopts.Option{nioopts.Waker(nioopts.WakerEventFd), nioopts.Backend(nioopts.BackendPoll)}},
}

func newSocketpair(t *testing.T) (*FdEndpoint, *FdEndpoint) {
	t.Helper()

	a, b, err := Socketpair()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		a.Close()
		b.Close()
	})
	return a, b
}

// fakeEndpoint records mode switches and never touches a real descriptor.
type fakeEndpoint struct {
	fd      int
	calls   []bool
	failure error
}

func (e *fakeEndpoint) Fd() int {
	return e.fd
}

func (e *fakeEndpoint) SetNonblock(v bool) error {
	e.calls = append(e.calls, v)
	return e.failure
}

// holder is a Selectable which is not an Endpoint.
type holder struct {
	ep Endpoint
}

func (h *holder) Endpoint() Endpoint {
	return h.ep
}
