package nio

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talostrading/nio/nioerrors"
)

func TestFdEndpointSocketpair(t *testing.T) {
	a, b := newSocketpair(t)

	require.NoError(t, a.SetNonblock(true))

	buf := make([]byte, 8)
	_, err := a.Read(buf)
	assert.ErrorIs(t, err, nioerrors.ErrWouldBlock)

	n, err := b.Write([]byte("ping"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = a.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "ping", string(buf[:n]))

	require.NoError(t, b.Close())
	_, err = a.Read(buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestFdEndpointPipe(t *testing.T) {
	r, w, err := Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	s := MustSelector()
	defer s.Close()

	mr, err := s.Register(r, Read)
	require.NoError(t, err)
	mw, err := s.Register(w, Write)
	require.NoError(t, err)

	ready, err := s.Select(0)
	require.NoError(t, err)
	assert.Equal(t, []*Monitor{mw}, ready)

	_, err = w.Write([]byte{1})
	require.NoError(t, err)

	ready, err = s.Select(0)
	require.NoError(t, err)
	assert.Equal(t, []*Monitor{mr, mw}, ready)
}

func TestFdEndpointWriteWouldBlock(t *testing.T) {
	a, _ := newSocketpair(t)
	require.NoError(t, a.SetNonblock(true))

	chunk := make([]byte, 64*1024)
	for i := 0; i < 1024; i++ {
		if _, err := a.Write(chunk); err != nil {
			assert.ErrorIs(t, err, nioerrors.ErrWouldBlock)
			return
		}
	}
	t.Fatal("socket buffer never filled up")
}

func TestFdEndpointClose(t *testing.T) {
	a, b, err := Socketpair()
	require.NoError(t, err)
	defer b.Close()

	assert.False(t, a.Closed())
	require.NoError(t, a.Close())
	assert.True(t, a.Closed())
	assert.ErrorIs(t, a.Close(), io.EOF)
}
