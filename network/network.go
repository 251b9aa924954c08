package network

import (
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/store"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// Handle seats one connection at st and serves it until the connection
// fails or closes.
func Handle(rwc protocol.ReadWriteCloser, st *store.Store) error {
	bind(st)
	conn := network.Wrapper(rwc)
	defer func() {
		err := conn.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Info("new seat connected! ")
	hello, err := handshake(conn)
	if err != nil {
		_ = conn.Write(protocol.ErrorPacket(err))
		return err
	}

	c := newClient(conn, hello.Seat, st)
	async.Async(c.sending)
	defer c.stop()
	clients.Set(c.id, c)
	defer clients.Del(c.id)
	log.Infof("seat %d bound to client %s\n", c.seat, c.id)

	c.send(json.Marshal(st.State()))
	return c.listening()
}

func handshake(conn *network.Conn) (Hello, error) {
	helloChan := make(chan Hello, 1)
	errChan := make(chan error, 1)
	async.Async(func() {
		packet, err := conn.Read()
		if err != nil {
			errChan <- err
			return
		}
		hello, err := ParseHello(packet)
		if err != nil {
			errChan <- err
			return
		}
		helloChan <- hello
	})
	select {
	case hello := <-helloChan:
		return hello, nil
	case err := <-errChan:
		log.Error(err)
		return Hello{}, consts.ErrorsHandshakeFail
	case <-time.After(consts.HandshakeTimeout):
		return Hello{}, consts.ErrorsTimeout
	}
}
