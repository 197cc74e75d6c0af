package game

// ActionType names a state-mutating action a player can take.
type ActionType string

const (
	ActionDraw          ActionType = "draw"
	ActionMoveCard      ActionType = "move_card"
	ActionTap           ActionType = "tap"
	ActionFlip          ActionType = "flip"
	ActionPhaseToggle   ActionType = "phase"
	ActionSetNote       ActionType = "set_note"
	ActionSetLife       ActionType = "set_life"
	ActionSetPoison     ActionType = "set_poison"
	ActionAddCounter    ActionType = "add_counter"
	ActionCreateToken   ActionType = "create_token"
	ActionCloneCard     ActionType = "clone_card"
	ActionShuffle       ActionType = "shuffle"
	ActionMulligan      ActionType = "mulligan"
	ActionUntapAll      ActionType = "untap_all"
	ActionScryResolve   ActionType = "scry_resolve"
	ActionSearchLibrary ActionType = "search_library"
	ActionLoadDeck      ActionType = "load_deck"
	ActionNextTurn      ActionType = "next_turn"
	ActionSetPhase      ActionType = "set_phase"
	ActionPassPriority  ActionType = "pass_priority"
)

// ActionPayload carries the parameters for every action type in one
// flat struct; each action reads only the fields it needs. Life and
// Poison are pointers so an absolute set to zero survives the wire.
type ActionPayload struct {
	Count       int            `json:"count,omitempty"`
	CardID      string         `json:"cardId,omitempty"`
	From        Zone           `json:"from,omitempty"`
	To          Zone           `json:"to,omitempty"`
	Index       string         `json:"index,omitempty"`
	Tapped      bool           `json:"tapped,omitempty"`
	FaceDown    bool           `json:"faceDown,omitempty"`
	Note        string         `json:"note,omitempty"`
	Life        *int           `json:"life,omitempty"`
	Poison      *int           `json:"poison,omitempty"`
	CounterType string         `json:"type,omitempty"`
	Delta       int            `json:"delta,omitempty"`
	Name        string         `json:"name,omitempty"`
	PT          string         `json:"pt,omitempty"`
	Top         []string       `json:"top,omitempty"`
	Bottom      []string       `json:"bottom,omitempty"`
	Phase       Phase          `json:"phase,omitempty"`
	Cards       []CardInstance `json:"cards,omitempty"`
	Sideboard   []CardInstance `json:"sideboard,omitempty"`
}
