package game

import "fmt"

// CardInstance is one physical card in a match. Identity fields never
// change after registration; only battlefield entries referencing the
// instance carry mutable status.
type CardInstance struct {
	Name       string `json:"name"`
	ImageURL   string `json:"imageUrl,omitempty"`
	OracleText string `json:"oracleText,omitempty"`
	TypeLine   string `json:"typeLine,omitempty"`
	IsToken    bool   `json:"isToken,omitempty"`
	PT         string `json:"pt,omitempty"`
}

// newCardID allocates a match-unique card id. Only the authoritative
// side registers cards, so ids never collide between players.
func (g *GameState) newCardID() string {
	g.nextCardID++
	return fmt.Sprintf("c%d", g.nextCardID)
}

// register adds a card instance to the registry and returns its new id.
func (g *GameState) register(c CardInstance) string {
	id := g.newCardID()
	g.Cards[id] = c
	return id
}
