package network_test

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/store"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

// memoryConn is a ReadWriteCloser fed and drained through channels.
type memoryConn struct {
	reads  chan *protocol.Packet
	writes chan protocol.Packet
}

func newMemoryConn() *memoryConn {
	return &memoryConn{reads: make(chan *protocol.Packet), writes: make(chan protocol.Packet, 64)}
}

func (c *memoryConn) Read() (*protocol.Packet, error) {
	packet, ok := <-c.reads
	if !ok {
		return nil, io.EOF
	}
	return packet, nil
}

func (c *memoryConn) Write(msg protocol.Packet) error {
	c.writes <- msg
	return nil
}

func (c *memoryConn) Close() error { return nil }

func (c *memoryConn) IP() string { return "memory" }

// stuckConn accepts a hello and then never finishes a write.
type stuckConn struct {
	reads   chan *protocol.Packet
	once    sync.Once
	writing chan struct{}
	release chan struct{}
}

func (c *stuckConn) Read() (*protocol.Packet, error) {
	packet, ok := <-c.reads
	if !ok {
		return nil, io.EOF
	}
	return packet, nil
}

func (c *stuckConn) Write(msg protocol.Packet) error {
	c.once.Do(func() { close(c.writing) })
	<-c.release
	return nil
}

func (c *stuckConn) Close() error { return nil }

func (c *stuckConn) IP() string { return "stuck" }

type snapshot struct {
	Phase  game.Phase `json:"phase"`
	Config struct {
		UnoWindowMs int64 `json:"unoWindowMs"`
	} `json:"config"`
}

func nextWrite(t *testing.T, conn *memoryConn) protocol.Packet {
	select {
	case packet := <-conn.writes:
		return packet
	case <-time.After(2 * time.Second):
		t.Fatal("no packet written")
		return protocol.Packet{}
	}
}

func nextSnapshot(t *testing.T, conn *memoryConn) snapshot {
	packet := nextWrite(t, conn)
	s := snapshot{}
	require.NoError(t, packet.Unmarshal(&s))
	return s
}

func TestHandle(t *testing.T) {
	t.Run("seated_client_follows_and_drives_the_table", func(t *testing.T) {
		st := store.New(store.WithClock(func() int64 { return 2000 }))
		conn := newMemoryConn()
		done := make(chan error, 1)
		go func() { done <- network.Handle(conn, st) }()

		conn.reads <- packet(`{"seat":0}`)
		require.Equal(t, game.PhaseIdle, nextSnapshot(t, conn).Phase)

		conn.reads <- packet(`{"type":"START_GAME","playerCount":2}`)
		require.Equal(t, game.PhaseInProgress, nextSnapshot(t, conn).Phase)
		require.Equal(t, game.PhaseInProgress, st.State().Phase)

		conn.reads <- packet(`{"type":"UPDATE_CONFIG","config":{"unoWindowMs":1200}}`)
		require.Equal(t, int64(1200), nextSnapshot(t, conn).Config.UnoWindowMs)

		conn.reads <- packet(`{"type":"UPDATE_CONFIG","config":{}}`)
		require.Equal(t, consts.ErrorsConfigMissing.Error(), nextWrite(t, conn).String())

		conn.reads <- packet(`{"type":"SHUFFLE"}`)
		require.Equal(t, consts.ErrorsRequestInvalid.Error(), nextWrite(t, conn).String())

		close(conn.reads)
		select {
		case err := <-done:
			require.Equal(t, io.EOF, err)
		case <-time.After(2 * time.Second):
			t.Fatal("connection not released")
		}
	})

	t.Run("invalid_seat_fails_the_handshake", func(t *testing.T) {
		conn := newMemoryConn()
		done := make(chan error, 1)
		go func() { done <- network.Handle(conn, store.New()) }()

		conn.reads <- packet(`{"seat":9}`)

		require.Equal(t, consts.ErrorsHandshakeFail, <-done)
		require.Equal(t, consts.ErrorsHandshakeFail.Error(), nextWrite(t, conn).String())
	})

	t.Run("slow_client_does_not_stall_the_table", func(t *testing.T) {
		st := store.New()
		slow := &stuckConn{
			reads:   make(chan *protocol.Packet),
			writing: make(chan struct{}),
			release: make(chan struct{}),
		}
		defer close(slow.release)
		go func() { _ = network.Handle(slow, st) }()

		slow.reads <- packet(`{"seat":1}`)
		<-slow.writing

		ticked := make(chan struct{})
		go func() {
			for i := 0; i < 4*consts.ClientOutboxSize; i++ {
				st.Tick()
			}
			close(ticked)
		}()

		select {
		case <-ticked:
		case <-time.After(2 * time.Second):
			t.Fatal("dispatch blocked on a slow client")
		}
		close(slow.reads)
	})
}
