package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsTransport adapts one websocket connection to the Transport
// interface. Messages arrive in connection order on a single channel;
// Send must only be called from one goroutine, which the session's
// single-loop model already guarantees.
type wsTransport struct {
	conn  *websocket.Conn
	inbox chan Message
	once  sync.Once
}

func newWSTransport(conn *websocket.Conn) *wsTransport {
	t := &wsTransport{conn: conn, inbox: make(chan Message, pipeBuffer)}
	go t.readLoop()
	return t
}

func (t *wsTransport) readLoop() {
	defer close(t.inbox)
	for {
		var msg Message
		if err := t.conn.ReadJSON(&msg); err != nil {
			return
		}
		t.inbox <- msg
	}
}

func (t *wsTransport) Send(msg Message) error {
	return t.conn.WriteJSON(msg)
}

func (t *wsTransport) Inbox() <-chan Message { return t.inbox }

func (t *wsTransport) Close() error {
	var err error
	t.once.Do(func() { err = t.conn.Close() })
	return err
}

// Listener is the host's side of session establishment: it serves the
// HTTP surface and hands over the peer connection once the guest dials
// in. The tabletop is strictly two-party, so only the first connection
// with the right token is accepted.
type Listener struct {
	addr  string
	token string
	conns chan Transport
	srv   *http.Server
}

// NewListener prepares a host listener on addr. token protects the ws
// endpoint from strangers who guess the address.
func NewListener(addr, token string) *Listener {
	l := &Listener{
		addr:  addr,
		token: token,
		conns: make(chan Transport, 1),
	}
	l.srv = &http.Server{Addr: addr, Handler: l.router()}
	return l
}

// serveWS upgrades a guest connection after checking the invite token.
func (l *Listener) serveWS(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("token") != l.token {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error:", err)
		return
	}

	select {
	case l.conns <- newWSTransport(conn):
	default:
		// Seat already taken.
		conn.Close()
	}
}

// Start begins serving in the background.
func (l *Listener) Start() {
	go func() {
		if err := l.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Println("listen error:", err)
		}
	}()
}

// Accept blocks until a guest connects or ctx ends.
func (l *Listener) Accept(ctx context.Context) (Transport, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case tr := <-l.conns:
		return tr, nil
	}
}

// Shutdown stops the HTTP surface.
func (l *Listener) Shutdown(ctx context.Context) error {
	return l.srv.Shutdown(ctx)
}

// InviteURL is the address a guest pastes to join.
func (l *Listener) InviteURL() string {
	return fmt.Sprintf("ws://%s/ws?token=%s", l.addr, l.token)
}

// Dial connects a guest to a host's invite URL.
func Dial(ctx context.Context, inviteURL string) (Transport, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, inviteURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", inviteURL, err)
	}
	return newWSTransport(conn), nil
}
