package game

import "encoding/json"

// HiddenZone is a zone field that crosses the wire either as a full id
// array or, when the contents must stay hidden from the recipient, as a
// bare count. The shape is resolved here once so nothing downstream has
// to type-switch on raw JSON.
type HiddenZone struct {
	Cards  []string
	Count  int
	Hidden bool
}

func fullZone(ids []string) HiddenZone {
	return HiddenZone{Cards: ids}
}

func countOnly(ids []string) HiddenZone {
	return HiddenZone{Count: len(ids), Hidden: true}
}

// Len is the number of cards in the zone whether or not the contents
// are visible.
func (z HiddenZone) Len() int {
	if z.Hidden {
		return z.Count
	}
	return len(z.Cards)
}

func (z HiddenZone) MarshalJSON() ([]byte, error) {
	if z.Hidden {
		return json.Marshal(z.Count)
	}
	if z.Cards == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(z.Cards)
}

func (z *HiddenZone) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		z.Hidden = false
		z.Count = 0
		return json.Unmarshal(data, &z.Cards)
	}
	z.Hidden = true
	z.Cards = nil
	return json.Unmarshal(data, &z.Count)
}

// RedactedPlayer is the wire form of PlayerState.
type RedactedPlayer struct {
	Name        string             `json:"name"`
	Life        int                `json:"life"`
	Poison      int                `json:"poison"`
	Library     HiddenZone         `json:"library"`
	Hand        HiddenZone         `json:"hand"`
	Battlefield []BattlefieldEntry `json:"battlefield"`
	Graveyard   []string           `json:"graveyard"`
	Exile       []string           `json:"exile"`
	Sideboard   []string           `json:"sideboard"`
	Mulligans   int                `json:"mulligans,omitempty"`
}

// RedactedGameState is the authoritative state as sent to the derived
// side after every mutation.
type RedactedGameState struct {
	Players map[Role]RedactedPlayer `json:"players"`
	Cards   map[string]CardInstance `json:"cards"`
	Turn    *TurnState              `json:"turn,omitempty"`
}

// RedactForPeer serializes the canonical state for the other side,
// collapsing owner's hand and library to counts. The peer's own hidden
// zones go out in full: the peer already knows them, and needs them to
// render its side of the table.
func RedactForPeer(g *GameState, owner Role) RedactedGameState {
	players := make(map[Role]RedactedPlayer, len(g.Players))
	for role, p := range g.Players {
		rp := RedactedPlayer{
			Name:        p.Name,
			Life:        p.Life,
			Poison:      p.Poison,
			Battlefield: p.Battlefield,
			Graveyard:   p.Graveyard,
			Exile:       p.Exile,
			Sideboard:   p.Sideboard,
			Mulligans:   p.Mulligans,
		}
		if role == owner {
			rp.Hand = countOnly(p.Hand)
			rp.Library = countOnly(p.Library)
		} else {
			rp.Hand = fullZone(p.Hand)
			rp.Library = fullZone(p.Library)
		}
		players[role] = rp
	}
	turn := g.Turn
	return RedactedGameState{Players: players, Cards: g.Cards, Turn: &turn}
}

// MirrorPlayer is the derived side's view of one player: full zones
// where known, counts where the contents are hidden.
type MirrorPlayer struct {
	PlayerState
	HandCount    int
	LibraryCount int
}

// Mirror is the derived side's reconstruction of the authoritative
// state. It is wholly overwritten by each inbound RedactedGameState and
// never independently mutated.
type Mirror struct {
	Players map[Role]*MirrorPlayer
	Cards   map[string]CardInstance
	Turn    TurnState
}

// ApplyRemote folds one inbound redacted state into the mirror for the
// player seated at self. The card registry merges additively, self's
// player state is replaced wholesale (the host always knows it in full),
// and the opponent's hidden zones become counts over empty placeholder
// arrays. A nil mirror starts a fresh one.
func ApplyRemote(m *Mirror, remote RedactedGameState, self Role) *Mirror {
	if m == nil {
		m = &Mirror{
			Players: make(map[Role]*MirrorPlayer),
			Cards:   make(map[string]CardInstance),
		}
	}

	for id, c := range remote.Cards {
		m.Cards[id] = c
	}

	for role, rp := range remote.Players {
		mp := &MirrorPlayer{
			PlayerState: PlayerState{
				Name:        rp.Name,
				Life:        rp.Life,
				Poison:      rp.Poison,
				Battlefield: rp.Battlefield,
				Graveyard:   rp.Graveyard,
				Exile:       rp.Exile,
				Sideboard:   rp.Sideboard,
				Mulligans:   rp.Mulligans,
			},
			HandCount:    rp.Hand.Len(),
			LibraryCount: rp.Library.Len(),
		}
		if role == self {
			mp.Hand = rp.Hand.Cards
			mp.Library = rp.Library.Cards
		} else {
			mp.Hand = []string{}
			mp.Library = []string{}
		}
		m.Players[role] = mp
	}

	if remote.Turn != nil {
		m.Turn = *remote.Turn
	}

	return m
}
