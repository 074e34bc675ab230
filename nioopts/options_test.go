package nioopts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOptionReplaces(t *testing.T) {
	var opts []Option
	opts = AddOption(Backend(BackendSelect), opts)
	opts = AddOption(WakeOnRegister(true), opts)
	opts = AddOption(Backend(BackendPoll), opts)

	require.Len(t, opts, 2)
	assert.Equal(t, TypeBackend, opts[0].Type())
	assert.Equal(t, BackendPoll, opts[0].Value())
	assert.Equal(t, true, opts[1].Value())
}

func TestDelOption(t *testing.T) {
	opts := []Option{Waker(WakerEventFd), DrainBufferSize(64)}

	opts = DelOption(TypeWaker, opts)
	require.Len(t, opts, 1)
	assert.Equal(t, TypeDrainBufferSize, opts[0].Type())
	assert.Equal(t, 64, opts[0].Value())

	opts = DelOption(TypeWaker, opts)
	assert.Len(t, opts, 1)
}

func TestOptionTypeString(t *testing.T) {
	assert.Equal(t, "waker", TypeWaker.String())
	assert.Equal(t, "backend", TypeBackend.String())
	assert.Equal(t, "wake_on_register", TypeWakeOnRegister.String())
	assert.Equal(t, "drain_buffer_size", TypeDrainBufferSize.String())
	assert.Panics(t, func() { _ = MaxOption.String() })
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "pipe", WakerPipe.String())
	assert.Equal(t, "eventfd", WakerEventFd.String())
	assert.Equal(t, "select", BackendSelect.String())
	assert.Equal(t, "poll", BackendPoll.String())
}
