package game

import "log"

const openingHandSize = 7

// Apply runs one action by role against the canonical state. It is only
// ever called on the authoritative side: directly for the host's own
// actions, with the guest's role for forwarded ones. The return value
// reports whether the action was recognized; unrecognized actions are
// logged and leave the state untouched. Actions whose target is missing
// (tap on a card no longer on the battlefield, draw on an empty library)
// quietly do as much as they can.
func (g *GameState) Apply(role Role, action ActionType, p ActionPayload) bool {
	player := g.Players[role]
	if player == nil {
		return false
	}

	switch action {
	case ActionDraw:
		count := p.Count
		if count <= 0 {
			count = 1
		}
		g.drawCards(role, count)

	case ActionMoveCard:
		g.RemoveFromZone(role, p.From, p.CardID)
		g.AddToZone(role, p.To, p.CardID, p.Index, EntryOptions{Tapped: p.Tapped, FaceDown: p.FaceDown})

	case ActionTap:
		if e := player.FindBattlefield(p.CardID); e != nil {
			e.Tapped = !e.Tapped
		}

	case ActionFlip:
		if e := player.FindBattlefield(p.CardID); e != nil {
			e.FaceDown = !e.FaceDown
		}

	case ActionPhaseToggle:
		if e := player.FindBattlefield(p.CardID); e != nil {
			e.PhasedOut = !e.PhasedOut
		}

	case ActionSetNote:
		if e := player.FindBattlefield(p.CardID); e != nil {
			e.Note = p.Note
		}

	case ActionSetLife:
		if p.Life != nil {
			player.Life = *p.Life
		}

	case ActionSetPoison:
		if p.Poison != nil {
			player.Poison = *p.Poison
		}

	case ActionAddCounter:
		g.addCounter(player, p)

	case ActionCreateToken:
		g.createToken(player, p)

	case ActionCloneCard:
		g.cloneCard(player, p.CardID)

	case ActionShuffle:
		Shuffle(player.Library)

	case ActionMulligan:
		g.mulligan(role, p.Count)

	case ActionUntapAll:
		for i := range player.Battlefield {
			player.Battlefield[i].Tapped = false
		}

	case ActionScryResolve:
		scryResolve(player, p.Top, p.Bottom)

	case ActionSearchLibrary:
		g.searchLibrary(role, p.CardID, p.To)

	case ActionLoadDeck:
		g.loadDeck(role, p.Cards, p.Sideboard)

	case ActionNextTurn:
		g.NextTurn()

	case ActionSetPhase:
		g.SetPhase(p.Phase)

	case ActionPassPriority:
		g.PassPriority(role)

	default:
		log.Printf("unknown action %q from %s, ignoring", action, role)
		return false
	}

	return true
}

// drawCards moves up to count cards from the top of the library to the
// top of the hand. A short library just draws fewer.
func (g *GameState) drawCards(role Role, count int) {
	player := g.Players[role]
	if count > len(player.Library) {
		count = len(player.Library)
	}
	if count <= 0 {
		return
	}
	drawn := make([]string, count)
	copy(drawn, player.Library[:count])
	player.Library = player.Library[count:]
	player.Hand = append(drawn, player.Hand...)
}

func (g *GameState) addCounter(player *PlayerState, p ActionPayload) {
	e := player.FindBattlefield(p.CardID)
	if e == nil {
		return
	}
	ctype := p.CounterType
	if ctype == "" {
		ctype = "+1/+1"
	}
	delta := p.Delta
	if delta == 0 {
		delta = 1
	}
	if e.Counters == nil {
		e.Counters = map[string]int{}
	}
	e.Counters[ctype] += delta
	if e.Counters[ctype] <= 0 {
		delete(e.Counters, ctype)
	}
}

func (g *GameState) createToken(player *PlayerState, p ActionPayload) {
	name := p.Name
	if name == "" {
		name = "Token"
	}
	pt := p.PT
	if pt == "" {
		pt = "1/1"
	}
	id := g.register(CardInstance{
		Name:     name,
		TypeLine: "Token",
		IsToken:  true,
		PT:       pt,
	})
	player.Battlefield = append(player.Battlefield, BattlefieldEntry{
		CardID:   id,
		Counters: map[string]int{},
	})
}

// cloneCard copies an existing instance under a new id and puts the
// copy on the battlefield. The copy is always a token.
func (g *GameState) cloneCard(player *PlayerState, cardID string) {
	src, ok := g.Cards[cardID]
	if !ok {
		return
	}
	src.IsToken = true
	id := g.register(src)
	player.Battlefield = append(player.Battlefield, BattlefieldEntry{
		CardID:   id,
		Counters: map[string]int{},
	})
}

// mulligan returns the whole hand to the library, shuffles, and draws
// count cards (default a full opening hand).
func (g *GameState) mulligan(role Role, count int) {
	player := g.Players[role]
	player.Library = append(player.Library, player.Hand...)
	player.Hand = nil
	Shuffle(player.Library)
	if count <= 0 {
		count = openingHandSize
	}
	g.drawCards(role, count)
	player.Mulligans++
}

// NextMulliganSize is the hand size the standard "one fewer each time"
// rule would grant this player on their next mulligan, floored at one.
func (p *PlayerState) NextMulliganSize() int {
	n := openingHandSize - p.Mulligans
	if n < 1 {
		n = 1
	}
	return n
}

// scryResolve pulls the named ids out of the library, then reinserts the
// top group at the head in the given order and the bottom group at the
// tail. Ids not actually in the library are skipped, so the result is
// always a permutation of what was there.
func scryResolve(player *PlayerState, top, bottom []string) {
	named := make(map[string]bool, len(top)+len(bottom))
	for _, id := range top {
		named[id] = true
	}
	for _, id := range bottom {
		named[id] = true
	}

	present := make(map[string]bool)
	remaining := make([]string, 0, len(player.Library))
	for _, id := range player.Library {
		if named[id] {
			present[id] = true
			continue
		}
		remaining = append(remaining, id)
	}

	lib := make([]string, 0, len(player.Library))
	for _, id := range top {
		if present[id] {
			lib = append(lib, id)
		}
	}
	lib = append(lib, remaining...)
	for _, id := range bottom {
		if present[id] {
			lib = append(lib, id)
		}
	}
	player.Library = lib
}

// searchLibrary moves one card from the library to the named zone, then
// reshuffles what is left so the searcher learns nothing about the
// remaining order. A card that is not in the library is a no-op.
func (g *GameState) searchLibrary(role Role, cardID string, to Zone) {
	player := g.Players[role]
	found := false
	for _, id := range player.Library {
		if id == cardID {
			found = true
			break
		}
	}
	if !found {
		return
	}
	g.RemoveFromZone(role, ZoneLibrary, cardID)
	g.AddToZone(role, to, cardID, "", EntryOptions{})
	Shuffle(player.Library)
}

// loadDeck replaces the player's board with freshly registered instances
// of the given lists, shuffles the new library, and draws an opening
// hand. Instances from a previously loaded deck stay in the registry but
// no longer sit in any zone.
func (g *GameState) loadDeck(role Role, cards, sideboard []CardInstance) {
	player := g.Players[role]

	lib := make([]string, 0, len(cards))
	for _, c := range cards {
		lib = append(lib, g.register(c))
	}
	Shuffle(lib)

	var side []string
	for _, c := range sideboard {
		side = append(side, g.register(c))
	}

	player.Library = lib
	player.Hand = nil
	player.Battlefield = nil
	player.Graveyard = nil
	player.Exile = nil
	player.Sideboard = side
	player.Mulligans = 0

	g.drawCards(role, openingHandSize)
}
