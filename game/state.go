package game

// Role identifies a seat in a match. The host's process owns the
// canonical state; the guest only mirrors it.
type Role string

const (
	RoleHost  Role = "host"
	RoleGuest Role = "guest"
)

// Opponent returns the other seat.
func (r Role) Opponent() Role {
	if r == RoleHost {
		return RoleGuest
	}
	return RoleHost
}

// BattlefieldEntry is a battlefield zone entry: a card reference plus
// the transient status that resets whenever the card changes zones.
type BattlefieldEntry struct {
	CardID    string         `json:"cardId"`
	Tapped    bool           `json:"tapped"`
	FaceDown  bool           `json:"faceDown"`
	PhasedOut bool           `json:"phasedOut,omitempty"`
	Counters  map[string]int `json:"counters"`
	Note      string         `json:"note,omitempty"`
}

// PlayerState holds one player's life totals and zones. Zone slices are
// ordered; library order is the draw order (index 0 is the top).
type PlayerState struct {
	Name        string             `json:"name"`
	Life        int                `json:"life"`
	Poison      int                `json:"poison"`
	Library     []string           `json:"library"`
	Hand        []string           `json:"hand"`
	Battlefield []BattlefieldEntry `json:"battlefield"`
	Graveyard   []string           `json:"graveyard"`
	Exile       []string           `json:"exile"`
	Sideboard   []string           `json:"sideboard"`
	Mulligans   int                `json:"mulligans,omitempty"`
}

// FindBattlefield returns the entry for cardID, or nil if the card is
// not on this player's battlefield.
func (p *PlayerState) FindBattlefield(cardID string) *BattlefieldEntry {
	for i := range p.Battlefield {
		if p.Battlefield[i].CardID == cardID {
			return &p.Battlefield[i]
		}
	}
	return nil
}

const startingLife = 20

// GameState is the canonical match state. Exactly one copy exists, on
// the authoritative side; it is owned by the session that created it and
// mutated only through Apply.
type GameState struct {
	Players map[Role]*PlayerState   `json:"players"`
	Cards   map[string]CardInstance `json:"cards"`
	Turn    TurnState               `json:"turn"`

	nextCardID int
}

// NewGame builds a fresh match: both players at starting life with empty
// zones, turn one, host active with priority in first main.
func NewGame(hostName, guestName string) *GameState {
	return &GameState{
		Players: map[Role]*PlayerState{
			RoleHost:  {Name: hostName, Life: startingLife},
			RoleGuest: {Name: guestName, Life: startingLife},
		},
		Cards: make(map[string]CardInstance),
		Turn:  NewTurnState(),
	}
}
