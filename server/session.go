package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"cardtable/game"
)

// Session drives one seat of a match over a transport. The host session
// owns the canonical GameState and is the only thing that ever mutates
// it; the guest session owns a mirror that inbound redacted states
// overwrite. All work happens on the single Run goroutine, so nothing
// here needs a lock: every inbound message and every local command runs
// to completion before the next one starts.
type Session struct {
	role game.Role
	name string
	tr   Transport

	state  *game.GameState
	mirror *game.Mirror

	commands chan func()
	started  bool

	// UI callbacks, all optional and all invoked on the Run goroutine.
	OnChange func()
	OnNotice func(kind, text string)
	OnAction func(ActionNotice)
	OnReveal func(RevealNotice)
}

const maxChatLen = 500

// NewSession seats a player. role decides whether this process is
// authoritative (host) or derived (guest); that never changes for the
// life of the session.
func NewSession(role game.Role, name string, tr Transport) *Session {
	return &Session{
		role:     role,
		name:     name,
		tr:       tr,
		commands: make(chan func(), 64),
	}
}

// Role is this process's seat.
func (s *Session) Role() game.Role { return s.role }

// Authoritative reports whether this process holds the canonical state.
func (s *Session) Authoritative() bool { return s.role == game.RoleHost }

// Run processes inbound messages and queued local commands strictly in
// order until ctx ends or the transport closes.
func (s *Session) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-s.tr.Inbox():
			if !ok {
				return
			}
			s.handleMessage(msg)
		case fn := <-s.commands:
			fn()
		}
	}
}

// Inspect runs fn on the session goroutine with exclusive access to the
// local state (canonical on the host, mirror on the guest; the other is
// nil). It blocks until fn returns.
func (s *Session) Inspect(fn func(state *game.GameState, mirror *game.Mirror)) {
	done := make(chan struct{})
	s.commands <- func() {
		fn(s.state, s.mirror)
		close(done)
	}
	<-done
}

// Do takes one game action for this seat. On the host it applies
// immediately; on the guest it is forwarded verbatim to the host and the
// mirror catches up with the next inbound state broadcast.
func (s *Session) Do(action game.ActionType, p game.ActionPayload) {
	s.commands <- func() { s.sendAction(action, p) }
}

// StartGame initializes the match. Host only; the guest's copy appears
// with the first state broadcast.
func (s *Session) StartGame() {
	s.commands <- func() {
		if !s.Authoritative() {
			return
		}
		s.state = game.NewGame(s.name, "Opponent")
		s.started = true
		s.send(Message{Type: MsgStartGame})
		s.broadcastState()
		s.changed()
	}
}

// EndGame tears down this side's copy. Each side resets independently;
// there is no cross-peer teardown handshake.
func (s *Session) EndGame() {
	s.commands <- func() {
		s.state = nil
		s.mirror = nil
		s.started = false
		s.changed()
	}
}

// Chat sends a free-text line to the peer, outside the game state.
func (s *Session) Chat(text string) {
	if len(text) > maxChatLen {
		text = text[:maxChatLen]
	}
	if text == "" {
		return
	}
	s.commands <- func() {
		s.sendPayload(MsgChat, ChatMessage{Name: s.name, Text: text})
	}
}

// Roll rolls a die with the given number of sides. The authoritative
// side computes so both seats see the same result.
func (s *Session) Roll(sides int) {
	s.commands <- func() {
		if s.Authoritative() {
			s.resolveRoll(sides, true)
			return
		}
		s.sendPayload(MsgRoll, RollRequest{Sides: sides})
	}
}

// Coin flips a coin, authoritative-side computed like Roll.
func (s *Session) Coin() {
	s.commands <- func() {
		if s.Authoritative() {
			s.resolveCoin(true)
			return
		}
		s.send(Message{Type: MsgCoin})
	}
}

// Reveal shows specific cards to the opponent without moving them.
func (s *Session) Reveal(cards []game.CardInstance, fromZone game.Zone) {
	s.commands <- func() {
		s.sendPayload(MsgReveal, RevealNotice{Cards: cards, FromZone: fromZone})
	}
}

// sendAction is the dispatch rule: authoritative applies locally,
// derived forwards the raw action for the host to apply.
func (s *Session) sendAction(action game.ActionType, p game.ActionPayload) {
	if s.Authoritative() {
		s.applyLocal(s.role, action, p)
		return
	}
	s.sendPayload(string(action), p)
}

// applyLocal runs one action through the processor and, on success,
// echoes the action for UI feedback and pushes a fresh redacted state.
func (s *Session) applyLocal(role game.Role, action game.ActionType, p game.ActionPayload) {
	if s.state == nil {
		return
	}
	if !s.state.Apply(role, action, p) {
		return
	}
	s.sendPayload(MsgAction, ActionNotice{Player: role, Type: action, ActionPayload: p})
	s.broadcastState()
	s.changed()
}

func (s *Session) broadcastState() {
	s.sendPayload(MsgGameState, game.RedactForPeer(s.state, s.role))
}

func (s *Session) handleMessage(msg Message) {
	if s.Authoritative() {
		s.handleAsHost(msg)
		return
	}
	s.handleAsGuest(msg)
}

// handleAsHost routes inbound guest traffic: the few out-of-band types
// explicitly, everything else as a forwarded action keyed by the
// guest's role.
func (s *Session) handleAsHost(msg Message) {
	switch msg.Type {
	case MsgChat:
		var chat ChatMessage
		if err := json.Unmarshal(msg.Payload, &chat); err != nil {
			log.Println("bad chat payload:", err)
			return
		}
		s.notice("chat", fmt.Sprintf("%s: %s", chat.Name, chat.Text))

	case MsgRoll:
		var req RollRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			log.Println("bad roll payload:", err)
			return
		}
		s.resolveRoll(req.Sides, false)

	case MsgCoin:
		s.resolveCoin(false)

	case MsgReveal:
		s.reveal(msg.Payload)

	default:
		var p game.ActionPayload
		if msg.Payload != nil {
			if err := json.Unmarshal(msg.Payload, &p); err != nil {
				log.Printf("bad %s payload: %v", msg.Type, err)
				return
			}
		}
		s.applyLocal(s.role.Opponent(), game.ActionType(msg.Type), p)
	}
}

// handleAsGuest folds host broadcasts into the mirror and surfaces
// out-of-band notices. Action echoes are feedback only, never
// re-applied.
func (s *Session) handleAsGuest(msg Message) {
	switch msg.Type {
	case MsgGameState:
		var remote game.RedactedGameState
		if err := json.Unmarshal(msg.Payload, &remote); err != nil {
			log.Println("bad game_state payload:", err)
			return
		}
		s.mirror = game.ApplyRemote(s.mirror, remote, s.role)
		s.changed()

	case MsgAction:
		var notice ActionNotice
		if err := json.Unmarshal(msg.Payload, &notice); err != nil {
			log.Println("bad action payload:", err)
			return
		}
		if s.OnAction != nil {
			s.OnAction(notice)
		}

	case MsgChat:
		var chat ChatMessage
		if err := json.Unmarshal(msg.Payload, &chat); err != nil {
			log.Println("bad chat payload:", err)
			return
		}
		s.notice("chat", fmt.Sprintf("%s: %s", chat.Name, chat.Text))

	case MsgSystem:
		var sys SystemNotice
		if err := json.Unmarshal(msg.Payload, &sys); err != nil {
			log.Println("bad system payload:", err)
			return
		}
		s.notice("system", sys.Text)

	case MsgReveal:
		s.reveal(msg.Payload)

	case MsgStartGame:
		s.started = true
		s.notice("system", "host started the game")
		s.changed()

	default:
		log.Printf("unknown message %q, ignoring", msg.Type)
	}
}

// resolveRoll computes a die roll on the authoritative side and tells
// both seats. local marks a roll the host asked for itself.
func (s *Session) resolveRoll(sides int, local bool) {
	if sides < 2 {
		sides = 6
	}
	result := game.RollDie(sides)
	if local {
		s.notice("system", fmt.Sprintf("you rolled d%d: %d", sides, result))
		s.sendPayload(MsgSystem, SystemNotice{Text: fmt.Sprintf("opponent rolled d%d: %d", sides, result)})
		return
	}
	s.notice("system", fmt.Sprintf("opponent rolled d%d: %d", sides, result))
	s.sendPayload(MsgSystem, SystemNotice{Text: fmt.Sprintf("rolled d%d: %d", sides, result)})
}

func (s *Session) resolveCoin(local bool) {
	result := "tails"
	if game.FlipCoin() {
		result = "heads"
	}
	if local {
		s.notice("system", "you flipped: "+result)
		s.sendPayload(MsgSystem, SystemNotice{Text: "opponent flipped: " + result})
		return
	}
	s.notice("system", "opponent flipped: "+result)
	s.sendPayload(MsgSystem, SystemNotice{Text: "flipped: " + result})
}

func (s *Session) reveal(payload json.RawMessage) {
	var notice RevealNotice
	if err := json.Unmarshal(payload, &notice); err != nil {
		log.Println("bad reveal payload:", err)
		return
	}
	if s.OnReveal != nil {
		s.OnReveal(notice)
	}
}

// send is fire-and-forget; a failed send is logged and the session
// carries on. The periodic full-state broadcast is the only mechanism
// that heals a missed message.
func (s *Session) send(msg Message) {
	if err := s.tr.Send(msg); err != nil {
		log.Println("send error:", err)
	}
}

func (s *Session) sendPayload(msgType string, payload any) {
	msg, err := newMessage(msgType, payload)
	if err != nil {
		log.Println("marshal error:", err)
		return
	}
	s.send(msg)
}

func (s *Session) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}

func (s *Session) notice(kind, text string) {
	if s.OnNotice != nil {
		s.OnNotice(kind, text)
	}
}
