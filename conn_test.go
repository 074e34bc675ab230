package nio

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talostrading/nio/nioerrors"
)

func TestConnEndpointTCP(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := MustSelector()
	defer s.Close()

	lep, err := NewConnEndpoint(ln.(*net.TCPListener))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, lep.Fd(), 0)

	lm, err := s.Register(lep, Read)
	require.NoError(t, err)

	client, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	defer client.Close()

	ready, err := s.Select(time.Second)
	require.NoError(t, err)
	require.Equal(t, []*Monitor{lm}, ready, "listener is readable once a client connects")

	server, err := ln.Accept()
	require.NoError(t, err)
	defer server.Close()

	cep, err := NewConnEndpoint(server.(*net.TCPConn))
	require.NoError(t, err)
	assert.Same(t, server, cep.Conn())

	cm, err := s.Register(cep, Read)
	require.NoError(t, err)

	_, err = client.Write([]byte("hello"))
	require.NoError(t, err)

	ready, err = s.Select(time.Second)
	require.NoError(t, err)
	require.Equal(t, []*Monitor{cm}, ready)
	assert.True(t, cm.IsReadable())

	buf := make([]byte, 16)
	n, err := cep.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf[:n]))

	_, err = cep.Read(buf)
	assert.ErrorIs(t, err, nioerrors.ErrWouldBlock)

	n, err = cep.Write([]byte("world"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = client.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "world", string(buf[:n]))
}
