package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"grass-map/generator/logger"
)

const (
	handshakeTimeout = 10 * time.Second
	writeWait        = 10 * time.Second
	sendBufferSize   = 16
)

var ErrSendQueueFull = errors.New("publisher send queue is full")

// Publisher pushes messages to a websocket endpoint
type Publisher struct {
	ws   *websocket.Conn
	send chan []byte
	done chan struct{}
	err  error
}

// NewPublisher dials url and starts the write pump
func NewPublisher(url string) (*Publisher, error) {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}

	ws, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", url, err)
	}

	p := &Publisher{
		ws:   ws,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}
	go p.writePump()

	return p, nil
}

// writePump drains the send queue until it is closed, then sends a close frame
func (p *Publisher) writePump() {
	defer func() {
		p.ws.Close()
		close(p.done)
	}()

	for message := range p.send {
		p.ws.SetWriteDeadline(time.Now().Add(writeWait))

		w, err := p.ws.NextWriter(websocket.TextMessage)
		if err != nil {
			p.err = err
			return
		}
		if _, err := w.Write(message); err != nil {
			p.err = err
			return
		}
		if err := w.Close(); err != nil {
			p.err = err
			return
		}
		logger.Log.Debugf("Published %d bytes", len(message))
	}

	p.ws.SetWriteDeadline(time.Now().Add(writeWait))
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := p.ws.WriteMessage(websocket.CloseMessage, msg); err != nil {
		p.err = err
	}
}

// Publish queues msg as JSON. It does not block.
func (p *Publisher) Publish(msg interface{}) error {
	messageBytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case p.send <- messageBytes:
		return nil
	default:
		return ErrSendQueueFull
	}
}

// Close flushes queued messages and closes the connection. It returns the
// first write error, if any.
func (p *Publisher) Close() error {
	close(p.send)
	<-p.done
	return p.err
}
