package game

// Zone names a player's card collection. Each physical card sits in at
// most one zone of one player at any time.
type Zone string

const (
	ZoneLibrary     Zone = "library"
	ZoneHand        Zone = "hand"
	ZoneBattlefield Zone = "battlefield"
	ZoneGraveyard   Zone = "graveyard"
	ZoneExile       Zone = "exile"
	ZoneSideboard   Zone = "sideboard"
)

// InsertBottom is the insertion hint that sends a card to the bottom of
// the library instead of the top.
const InsertBottom = "bottom"

// EntryOptions carries the initial battlefield status for a card
// arriving on the battlefield.
type EntryOptions struct {
	Tapped   bool
	FaceDown bool
}

// list returns the slice backing a non-battlefield zone, or nil for an
// unknown zone name.
func (p *PlayerState) list(zone Zone) *[]string {
	switch zone {
	case ZoneLibrary:
		return &p.Library
	case ZoneHand:
		return &p.Hand
	case ZoneGraveyard:
		return &p.Graveyard
	case ZoneExile:
		return &p.Exile
	case ZoneSideboard:
		return &p.Sideboard
	default:
		return nil
	}
}

// RemoveFromZone removes the first entry matching cardID from the named
// zone. A missing player, zone or card is a silent no-op.
func (g *GameState) RemoveFromZone(role Role, zone Zone, cardID string) {
	p := g.Players[role]
	if p == nil {
		return
	}

	if zone == ZoneBattlefield {
		for i := range p.Battlefield {
			if p.Battlefield[i].CardID == cardID {
				p.Battlefield = append(p.Battlefield[:i], p.Battlefield[i+1:]...)
				return
			}
		}
		return
	}

	ids := p.list(zone)
	if ids == nil {
		return
	}
	for i, id := range *ids {
		if id == cardID {
			*ids = append((*ids)[:i], (*ids)[i+1:]...)
			return
		}
	}
}

// AddToZone places cardID into the named zone. The battlefield always
// gets a fresh entry (status from opts, empty counters); the library
// prepends unless hint asks for the bottom; every other zone appends.
func (g *GameState) AddToZone(role Role, zone Zone, cardID string, hint string, opts EntryOptions) {
	p := g.Players[role]
	if p == nil {
		return
	}

	switch zone {
	case ZoneBattlefield:
		p.Battlefield = append(p.Battlefield, BattlefieldEntry{
			CardID:   cardID,
			Tapped:   opts.Tapped,
			FaceDown: opts.FaceDown,
			Counters: map[string]int{},
		})
	case ZoneLibrary:
		if hint == InsertBottom {
			p.Library = append(p.Library, cardID)
		} else {
			p.Library = append([]string{cardID}, p.Library...)
		}
	default:
		ids := p.list(zone)
		if ids == nil {
			return
		}
		*ids = append(*ids, cardID)
	}
}
