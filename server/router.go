package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// router builds the host's HTTP surface: a landing page for the invite
// link, the websocket endpoint, and a health probe.
func (l *Listener) router() http.Handler {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "cardtable host")
		fmt.Fprintf(w, "join with: %s\n", l.InviteURL())
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	r.Get("/ws", l.serveWS)

	return r
}
