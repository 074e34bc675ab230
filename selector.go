package nio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/talostrading/nio/internal"
	"github.com/talostrading/nio/nioerrors"
	"github.com/talostrading/nio/nioopts"
)

// Selector monitors registered endpoints for readiness.
//
// Register, Deregister and Select serialize on one lock which Select holds
// for the whole wait: a Register issued while another goroutine is blocked in
// Select waits for that Select to return, unless the selector was created
// with nioopts.WakeOnRegister. Wakeup never takes that lock.
type Selector struct {
	lck sync.Mutex

	// monitors maps a native descriptor to its monitor. Guarded by lck, as
	// are readers, writers and cycle.
	monitors map[int]*Monitor

	// readers and writers are the descriptor lists projected on every Select.
	readers, writers []int

	// cycle counts Select calls. Monitors use it to tell readiness observed in
	// the current cycle from stale readiness.
	cycle uint64

	waiter internal.Waiter

	// waker interrupts a blocked Select. Its read end is always part of the
	// read list.
	waker internal.Waker

	// wlck keeps Close from tearing the waker down while Wakeup writes to it.
	// It is never held across a wait.
	wlck sync.RWMutex

	wakeOnRegister bool

	// pending counts Register and Deregister calls waiting for lck when
	// wakeOnRegister is set. Select does not block while it is positive.
	pending int32

	closing uint32
	closed  uint32
}

func NewSelector(opts ...nioopts.Option) (*Selector, error) {
	var (
		wakerKind      = nioopts.WakerPipe
		backend        = nioopts.BackendSelect
		drainSize      = internal.DefaultDrainBufferSize
		wakeOnRegister = false
	)

	for _, opt := range opts {
		switch opt.Type() {
		case nioopts.TypeWaker:
			wakerKind = opt.Value().(nioopts.WakerKind)
		case nioopts.TypeBackend:
			backend = opt.Value().(nioopts.BackendKind)
		case nioopts.TypeWakeOnRegister:
			wakeOnRegister = opt.Value().(bool)
		case nioopts.TypeDrainBufferSize:
			drainSize = opt.Value().(int)
		}
	}

	waker, err := internal.NewWaker(wakerKind, drainSize)
	if err != nil {
		return nil, err
	}

	waiter := internal.NewWaiter(backend)
	if err := waiter.Check(waker.Fd()); err != nil {
		_ = waker.Close()
		return nil, fmt.Errorf("wakeup fd %d: %w", waker.Fd(), err)
	}

	return &Selector{
		monitors:       make(map[int]*Monitor),
		waiter:         waiter,
		waker:          waker,
		wakeOnRegister: wakeOnRegister,
	}, nil
}

func MustSelector(opts ...nioopts.Option) *Selector {
	s, err := NewSelector(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Register registers interest in the readiness of v, which must be an
// Endpoint or a Selectable. The endpoint is switched to nonblocking mode.
//
// Registering an endpoint which already has a monitor fails with
// nioerrors.ErrAlreadyRegistered, whatever interests are requested.
func (s *Selector) Register(v interface{}, interests Interest) (*Monitor, error) {
	if !interests.valid() {
		return nil, fmt.Errorf("%s: %w", interests, nioerrors.ErrInvalidInterests)
	}

	ep, err := resolve(v)
	if err != nil {
		return nil, err
	}

	s.lock()
	defer s.lck.Unlock()

	if s.isClosing() {
		return nil, nioerrors.ErrClosed
	}

	fd := ep.Fd()
	if _, ok := s.monitors[fd]; ok {
		return nil, fmt.Errorf("register fd %d: %w", fd, nioerrors.ErrAlreadyRegistered)
	}

	if err := s.waiter.Check(fd); err != nil {
		return nil, fmt.Errorf("register fd %d: %w", fd, err)
	}

	if err := ep.SetNonblock(true); err != nil {
		return nil, fmt.Errorf("register fd %d: %w", fd, err)
	}

	m := newMonitor(s, ep, fd, interests)
	s.monitors[fd] = m

	return m, nil
}

// Deregister removes the monitor of v, if any, and returns it closed. It is
// not an error to deregister an endpoint which is not registered.
func (s *Selector) Deregister(v interface{}) (*Monitor, error) {
	ep, err := resolve(v)
	if err != nil {
		return nil, err
	}

	s.lock()
	defer s.lck.Unlock()

	m, ok := s.monitors[ep.Fd()]
	if !ok {
		return nil, nil
	}

	delete(s.monitors, ep.Fd())
	m.markClosed()

	return m, nil
}

// lock takes lck on behalf of a table mutation. With wakeOnRegister it first
// interrupts a blocked Select, and keeps later ones from blocking until the
// lock is ours.
func (s *Selector) lock() {
	if !s.wakeOnRegister {
		s.lck.Lock()
		return
	}

	atomic.AddInt32(&s.pending, 1)
	_ = s.Wakeup()
	s.lck.Lock()
	atomic.AddInt32(&s.pending, -1)
}

// removeMonitor is Deregister for a specific monitor. The endpoint may have
// been registered again since, in which case its new monitor stays.
func (s *Selector) removeMonitor(m *Monitor) {
	s.lock()
	defer s.lck.Unlock()

	if cur, ok := s.monitors[m.fd]; ok && cur == m {
		delete(s.monitors, m.fd)
	}
	m.markClosed()
}

func (s *Selector) IsRegistered(v interface{}) bool {
	ep, err := resolve(v)
	if err != nil {
		return false
	}

	s.lck.Lock()
	defer s.lck.Unlock()

	_, ok := s.monitors[ep.Fd()]
	return ok
}

// Len returns the number of registered endpoints.
func (s *Selector) Len() int {
	s.lck.Lock()
	defer s.lck.Unlock()

	return len(s.monitors)
}

func (s *Selector) Empty() bool {
	return s.Len() == 0
}

// Select waits until registered endpoints are ready and returns their
// monitors: first those ready for reading, then those ready for writing. A
// monitor with ReadWrite interests is returned twice when both fire. Callers
// must not depend on any other ordering.
//
// A negative timeout blocks until an endpoint is ready or Wakeup is called, a
// zero timeout polls. Select returns no monitors when it times out, or when
// it is woken up and nothing else is ready.
//
// Errors from the wait primitive are returned as is; errors.Is(err,
// unix.EINTR) tells an interrupted wait, which is not retried.
func (s *Selector) Select(timeout time.Duration) ([]*Monitor, error) {
	s.lck.Lock()
	defer s.lck.Unlock()

	if s.isClosing() {
		return nil, nioerrors.ErrClosed
	}

	wakeFd := s.waker.Fd()

	s.readers = append(s.readers[:0], wakeFd)
	s.writers = s.writers[:0]
	for fd, m := range s.monitors {
		if m.interests&Read == Read {
			s.readers = append(s.readers, fd)
		}
		if m.interests&Write == Write {
			s.writers = append(s.writers, fd)
		}
	}

	if atomic.LoadInt32(&s.pending) > 0 {
		timeout = 0
	}

	readyR, readyW, err := s.waiter.Wait(s.readers, s.writers, timeout)
	if err != nil {
		return nil, err
	}

	if len(readyR)+len(readyW) == 0 {
		return nil, nil
	}

	s.cycle++

	var ready []*Monitor
	for _, fd := range readyR {
		if fd == wakeFd {
			// Wakeups are level triggered: everything written so far is
			// consumed here so it cannot fire a later cycle.
			if err := s.waker.Drain(); err != nil {
				return nil, err
			}
			continue
		}

		m := s.monitors[fd]
		m.setReadiness(s.cycle, Read)
		ready = append(ready, m)
	}

	for _, fd := range readyW {
		m := s.monitors[fd]
		m.setReadiness(s.cycle, Write)
		ready = append(ready, m)
	}

	return ready, nil
}

// Wakeup makes a goroutine blocked in Select return. Wakeups issued before a
// Select collapse into one. Wakeup is safe to call from any goroutine,
// including while another one is blocked in Select.
func (s *Selector) Wakeup() error {
	s.wlck.RLock()
	defer s.wlck.RUnlock()

	if s.Closed() {
		return nioerrors.ErrClosed
	}
	return s.waker.Wake()
}

// Close closes the wakeup channel and drops every monitor. A Select blocked
// in another goroutine is woken up first. Closing a closed Selector does
// nothing.
func (s *Selector) Close() error {
	atomic.StoreUint32(&s.closing, 1)
	_ = s.Wakeup()

	s.lck.Lock()
	defer s.lck.Unlock()

	if s.Closed() {
		return nil
	}

	s.wlck.Lock()
	// an already closed channel is not an error here
	_ = s.waker.Close()
	atomic.StoreUint32(&s.closed, 1)
	s.wlck.Unlock()

	for fd, m := range s.monitors {
		m.markClosed()
		delete(s.monitors, fd)
	}

	return nil
}

func (s *Selector) Closed() bool {
	return atomic.LoadUint32(&s.closed) == 1
}

func (s *Selector) isClosing() bool {
	return atomic.LoadUint32(&s.closing) == 1
}
