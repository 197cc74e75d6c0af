package server

import "sync"

// Transport is one ordered, reliable channel to the peer. Sends are
// fire-and-forget from the session's point of view: there is no ack,
// retry, or delivery notification anywhere above this interface.
type Transport interface {
	Send(msg Message) error
	Inbox() <-chan Message
	Close() error
}

const pipeBuffer = 256

type pipeEnd struct {
	in   chan Message
	out  chan Message
	once sync.Once
}

// Pipe returns two transports wired back to back in process. Handy for
// tests and single-process demos without sockets.
func Pipe() (Transport, Transport) {
	ab := make(chan Message, pipeBuffer)
	ba := make(chan Message, pipeBuffer)
	return &pipeEnd{in: ba, out: ab}, &pipeEnd{in: ab, out: ba}
}

func (p *pipeEnd) Send(msg Message) error {
	p.out <- msg
	return nil
}

func (p *pipeEnd) Inbox() <-chan Message { return p.in }

func (p *pipeEnd) Close() error {
	p.once.Do(func() { close(p.out) })
	return nil
}
