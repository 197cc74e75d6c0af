package game

// Phase is one step of a turn.
type Phase string

const (
	PhaseUntap           Phase = "untap"
	PhaseUpkeep          Phase = "upkeep"
	PhaseDraw            Phase = "draw"
	PhaseMain1           Phase = "main1"
	PhaseCombatBegin     Phase = "combat_begin"
	PhaseCombatAttackers Phase = "combat_attackers"
	PhaseCombatBlockers  Phase = "combat_blockers"
	PhaseCombatDamage    Phase = "combat_damage"
	PhaseCombatEnd       Phase = "combat_end"
	PhaseMain2           Phase = "main2"
	PhaseEndStep         Phase = "end_step"
	PhaseCleanup         Phase = "cleanup"
)

// PhaseOrder is the fixed phase sequence within a turn.
var PhaseOrder = []Phase{
	PhaseUntap,
	PhaseUpkeep,
	PhaseDraw,
	PhaseMain1,
	PhaseCombatBegin,
	PhaseCombatAttackers,
	PhaseCombatBlockers,
	PhaseCombatDamage,
	PhaseCombatEnd,
	PhaseMain2,
	PhaseEndStep,
	PhaseCleanup,
}

// TurnState tracks whose turn it is, the current phase, who holds
// priority, and which seats have passed in the current phase.
type TurnState struct {
	Number       int           `json:"number"`
	ActivePlayer Role          `json:"activePlayer"`
	Phase        Phase         `json:"phase"`
	Priority     Role          `json:"priority"`
	Passed       map[Role]bool `json:"passed"`
}

// NewTurnState is the state at match start: turn one, host active with
// priority, already in first main.
func NewTurnState() TurnState {
	return TurnState{
		Number:       1,
		ActivePlayer: RoleHost,
		Phase:        PhaseMain1,
		Priority:     RoleHost,
		Passed:       map[Role]bool{RoleHost: false, RoleGuest: false},
	}
}

func (t *TurnState) clearPassed() {
	t.Passed[RoleHost] = false
	t.Passed[RoleGuest] = false
}

// NextTurn starts the next turn: active player flips, phase resets to
// untap, and the new active player takes priority.
func (g *GameState) NextTurn() {
	t := &g.Turn
	t.Number++
	t.ActivePlayer = t.ActivePlayer.Opponent()
	t.Phase = PhaseUntap
	t.Priority = t.ActivePlayer
	t.clearPassed()
}

// SetPhase jumps directly to the given phase. Backwards jumps are
// allowed on purpose; this is the manual override players use to fix a
// board, not a rules engine.
func (g *GameState) SetPhase(phase Phase) {
	g.Turn.Phase = phase
	g.Turn.clearPassed()
}

// PassPriority marks role as having passed. Once both seats pass within
// a phase the game advances: cleanup wraps into the next turn, any other
// phase steps forward with priority returning to the active player.
// With only one seat passed, priority simply moves to the other seat.
func (g *GameState) PassPriority(role Role) {
	t := &g.Turn
	t.Passed[role] = true

	if t.Passed[RoleHost] && t.Passed[RoleGuest] {
		if t.Phase == PhaseCleanup {
			g.NextTurn()
			return
		}
		t.Phase = nextPhase(t.Phase)
		t.Priority = t.ActivePlayer
		t.clearPassed()
		return
	}

	t.Priority = role.Opponent()
}

func nextPhase(p Phase) Phase {
	for i, ph := range PhaseOrder {
		if ph == p && i+1 < len(PhaseOrder) {
			return PhaseOrder[i+1]
		}
	}
	return p
}
