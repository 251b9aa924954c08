package network

import (
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/store"
	"github.com/ratel-online/uno/uno/game"
)

var clients = hashmap.New()

var (
	boundLock sync.Mutex
	bound     = map[*store.Store]bool{}
)

// client is one connection bound to a seat of a store.
type client struct {
	sync.Mutex
	id     string
	seat   int
	conn   *network.Conn
	store  *store.Store
	outbox chan []byte
	done   chan struct{}
}

func newClient(conn *network.Conn, seat int, st *store.Store) *client {
	return &client{
		id:     uuid.NewString(),
		seat:   seat,
		conn:   conn,
		store:  st,
		outbox: make(chan []byte, consts.ClientOutboxSize),
		done:   make(chan struct{}),
	}
}

// send queues a snapshot without blocking. A full outbox drops its oldest
// snapshot, every snapshot being a whole table.
func (c *client) send(body []byte) {
	for {
		select {
		case c.outbox <- body:
			return
		default:
		}
		select {
		case <-c.outbox:
			log.Infof("client %s is slow, dropped a snapshot\n", c.id)
		default:
		}
	}
}

func (c *client) sending() {
	for {
		select {
		case <-c.done:
			return
		case body := <-c.outbox:
			if err := c.write(body); err != nil {
				log.Errorf("snapshot to client %s failed: %v\n", c.id, err)
			}
		}
	}
}

func (c *client) stop() {
	close(c.done)
}

func (c *client) write(body []byte) error {
	c.Lock()
	defer c.Unlock()
	return c.conn.Write(protocol.Packet{Body: body})
}

func (c *client) writeError(err error) error {
	c.Lock()
	defer c.Unlock()
	return c.conn.Write(protocol.ErrorPacket(err))
}

func (c *client) listening() error {
	for {
		packet, err := c.conn.Read()
		if err != nil {
			return err
		}
		req, err := ParseRequest(packet)
		if err != nil {
			log.Errorf("client %s sent an undecodable request: %v\n", c.id, err)
			_ = c.writeError(consts.ErrorsInputInvalid)
			continue
		}
		if err = c.apply(req); err != nil {
			_ = c.writeError(err)
		}
	}
}

func (c *client) apply(req Request) error {
	if req.Type == RequestUpdateConfig {
		if req.Config == nil || req.Config.Empty() {
			return consts.ErrorsConfigMissing
		}
		c.store.UpdateConfig(*req.Config)
		return nil
	}
	action, err := req.Action(c.seat)
	if err != nil {
		return err
	}
	c.store.Submit(action)
	return nil
}

// bind makes st broadcast every snapshot to the clients seated at it. A
// store is bound once however many servers share it.
func bind(st *store.Store) {
	boundLock.Lock()
	defer boundLock.Unlock()
	if bound[st] {
		return
	}
	bound[st] = true
	st.Subscribe(func(s game.State) {
		broadcast(st, s)
	})
}

func broadcast(st *store.Store, s game.State) {
	body := json.Marshal(s)
	clients.Foreach(func(e *hashmap.Entry) {
		c := e.Value().(*client)
		if c.store == st {
			c.send(body)
		}
	})
}
