package nio

import (
	"fmt"
	"sync/atomic"
)

// Monitor records the interests an endpoint was registered with and the
// readiness observed for it by the last Select which returned it.
//
// A Monitor belongs to its Selector. Readiness is overwritten by every Select
// that reports the endpoint and means nothing in between.
type Monitor struct {
	selector  *Selector
	endpoint  Endpoint
	fd        int
	interests Interest

	readiness uint32

	// cycle is the Select in which readiness was last set. Guarded by the
	// selector's lock.
	cycle uint64

	value interface{}

	closed uint32
}

func newMonitor(s *Selector, ep Endpoint, fd int, interests Interest) *Monitor {
	return &Monitor{
		selector:  s,
		endpoint:  ep,
		fd:        fd,
		interests: interests,
	}
}

func (m *Monitor) Selector() *Selector {
	return m.selector
}

func (m *Monitor) Endpoint() Endpoint {
	return m.endpoint
}

func (m *Monitor) Interests() Interest {
	return m.interests
}

func (m *Monitor) Readiness() Interest {
	return Interest(atomic.LoadUint32(&m.readiness))
}

func (m *Monitor) IsReadable() bool {
	return m.Readiness()&Read == Read
}

func (m *Monitor) IsWritable() bool {
	return m.Readiness()&Write == Write
}

// Value returns what was attached with SetValue.
func (m *Monitor) Value() interface{} {
	return m.value
}

// SetValue attaches an arbitrary value to the monitor. It is not synchronized.
func (m *Monitor) SetValue(v interface{}) {
	m.value = v
}

// Close deregisters the monitor from its selector.
func (m *Monitor) Close() error {
	if m.Closed() {
		return nil
	}
	m.selector.removeMonitor(m)
	return nil
}

func (m *Monitor) Closed() bool {
	return atomic.LoadUint32(&m.closed) == 1
}

func (m *Monitor) String() string {
	return fmt.Sprintf("monitor[fd=%d interests=%s readiness=%s]", m.fd, m.interests, m.Readiness())
}

func (m *Monitor) markClosed() {
	atomic.StoreUint32(&m.closed, 1)
}

func (m *Monitor) setReadiness(cycle uint64, r Interest) {
	if m.cycle == cycle {
		r |= m.Readiness()
	}
	m.cycle = cycle
	atomic.StoreUint32(&m.readiness, uint32(r))
}
