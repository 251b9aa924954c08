package network

import (
	"net"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/store"
)

type Tcp struct {
	addr  string
	store *store.Store
}

func NewTcpServer(addr string, st *store.Store) Tcp {
	bind(st)
	return Tcp{addr: addr, store: st}
}

func (t Tcp) Serve() error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		log.Error(err)
		return err
	}
	log.Infof("Tcp server listening on %s\n", t.addr)
	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Infof("listener.Accept err %v\n", err)
			continue
		}
		async.Async(func() {
			err := Handle(protocol.NewTcpReadWriteCloser(conn), t.store)
			if err != nil {
				log.Error(err)
			}
		})
	}
}
