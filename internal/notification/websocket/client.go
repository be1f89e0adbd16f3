package websocket

import (
	"sync"

	gorillaws "github.com/gorilla/websocket"
)

type client struct {
	conn *gorillaws.Conn
	send chan []byte

	done     chan struct{}
	doneOnce sync.Once
}

func newClient(conn *gorillaws.Conn, buffer int) *client {
	return &client{
		conn: conn,
		send: make(chan []byte, buffer),
		done: make(chan struct{}),
	}
}

// enqueue reports whether msg fit in the client's queue.
func (c *client) enqueue(msg []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *client) shutdown() {
	c.doneOnce.Do(func() { close(c.done) })
}
