package game

import "testing"

func TestNewTurnState(t *testing.T) {
	ts := NewTurnState()
	if ts.Number != 1 || ts.ActivePlayer != RoleHost || ts.Phase != PhaseMain1 || ts.Priority != RoleHost {
		t.Fatalf("unexpected initial turn state: %+v", ts)
	}
	if ts.Passed[RoleHost] || ts.Passed[RoleGuest] {
		t.Fatalf("expected no passes at start: %+v", ts.Passed)
	}
}

func TestNextTurn(t *testing.T) {
	g := NewGame("h", "g")
	g.Turn.Passed[RoleHost] = true

	g.NextTurn()

	ts := g.Turn
	if ts.Number != 2 {
		t.Fatalf("Number = %d, want 2", ts.Number)
	}
	if ts.ActivePlayer != RoleGuest {
		t.Fatalf("ActivePlayer = %s, want guest", ts.ActivePlayer)
	}
	if ts.Phase != PhaseUntap {
		t.Fatalf("Phase = %s, want untap", ts.Phase)
	}
	if ts.Priority != RoleGuest {
		t.Fatalf("Priority = %s, want guest", ts.Priority)
	}
	if ts.Passed[RoleHost] || ts.Passed[RoleGuest] {
		t.Fatalf("Passed not cleared: %+v", ts.Passed)
	}
}

func TestSetPhaseAllowsRewind(t *testing.T) {
	g := NewGame("h", "g")
	g.Turn.Phase = PhaseMain2
	g.Turn.Passed[RoleGuest] = true

	g.SetPhase(PhaseUpkeep)

	if g.Turn.Phase != PhaseUpkeep {
		t.Fatalf("Phase = %s, want upkeep", g.Turn.Phase)
	}
	if g.Turn.Passed[RoleHost] || g.Turn.Passed[RoleGuest] {
		t.Fatalf("Passed not cleared: %+v", g.Turn.Passed)
	}
}

func TestPassPriorityAlternates(t *testing.T) {
	g := NewGame("h", "g")

	g.PassPriority(RoleHost)
	if g.Turn.Phase != PhaseMain1 {
		t.Fatalf("phase advanced on a single pass: %s", g.Turn.Phase)
	}
	if g.Turn.Priority != RoleGuest {
		t.Fatalf("Priority = %s, want guest", g.Turn.Priority)
	}

	// The same seat passing again must not advance the phase.
	g.PassPriority(RoleHost)
	if g.Turn.Phase != PhaseMain1 {
		t.Fatalf("phase advanced after a repeated pass by one seat: %s", g.Turn.Phase)
	}

	g.PassPriority(RoleGuest)
	if g.Turn.Phase != PhaseCombatBegin {
		t.Fatalf("Phase = %s, want combat_begin", g.Turn.Phase)
	}
	if g.Turn.Priority != RoleHost {
		t.Fatalf("Priority = %s, want active player (host)", g.Turn.Priority)
	}
	if g.Turn.Passed[RoleHost] || g.Turn.Passed[RoleGuest] {
		t.Fatalf("Passed not cleared after advance: %+v", g.Turn.Passed)
	}
}

func TestPassPriorityCleanupWrapsTurn(t *testing.T) {
	g := NewGame("h", "g")
	g.Turn.Phase = PhaseCleanup
	g.Turn.Passed[RoleHost] = true

	g.PassPriority(RoleGuest)

	ts := g.Turn
	if ts.Number != 2 {
		t.Fatalf("Number = %d, want 2", ts.Number)
	}
	if ts.ActivePlayer != RoleGuest {
		t.Fatalf("ActivePlayer = %s, want guest", ts.ActivePlayer)
	}
	if ts.Phase != PhaseUntap {
		t.Fatalf("Phase = %s, want untap", ts.Phase)
	}
	if ts.Passed[RoleHost] || ts.Passed[RoleGuest] {
		t.Fatalf("Passed not cleared: %+v", ts.Passed)
	}
}

func TestPhaseSequenceWalk(t *testing.T) {
	g := NewGame("h", "g")
	g.Turn.Phase = PhaseUntap

	for i, want := range PhaseOrder[1:] {
		g.PassPriority(RoleHost)
		g.PassPriority(RoleGuest)
		if g.Turn.Phase != want {
			t.Fatalf("step %d: Phase = %s, want %s", i, g.Turn.Phase, want)
		}
	}
}
