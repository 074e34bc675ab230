//go:build linux

package internal

import "testing"

func TestEventFdWaker(t *testing.T) {
	e, err := NewEventFd()
	if err != nil {
		t.Fatal(err)
	}
	testWaker(t, e)
}

func TestNewWakerEventFd(t *testing.T) {
	w, err := newEventFdWaker()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if _, ok := w.(*EventFd); !ok {
		t.Fatalf("expected *EventFd, got %T", w)
	}
}
