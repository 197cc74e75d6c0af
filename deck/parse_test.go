package deck

import (
	"reflect"
	"testing"
)

func TestParseCounts(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Entry
	}{
		{"plain count", "4 Lightning Bolt", Entry{4, "Lightning Bolt"}},
		{"x suffix", "4x Lightning Bolt", Entry{4, "Lightning Bolt"}},
		{"uppercase x", "2X Counterspell", Entry{2, "Counterspell"}},
		{"no count", "Lightning Bolt", Entry{1, "Lightning Bolt"}},
		{"leading digits in name", "1996 World Champion", Entry{1996, "World Champion"}},
		{"whitespace", "  3   Brainstorm  ", Entry{3, "Brainstorm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := Parse(tt.line)
			if len(list.Main) != 1 {
				t.Fatalf("parsed %d entries, want 1", len(list.Main))
			}
			if list.Main[0] != tt.want {
				t.Fatalf("entry = %+v, want %+v", list.Main[0], tt.want)
			}
		})
	}
}

func TestParseSkipsCommentsAndHeaders(t *testing.T) {
	text := `// my deck
# tuned for the local meta
Deck
4 Lightning Bolt
About
2 Counterspell
`
	list := Parse(text)
	want := []Entry{{4, "Lightning Bolt"}, {2, "Counterspell"}}
	if !reflect.DeepEqual(list.Main, want) {
		t.Fatalf("Main = %+v, want %+v", list.Main, want)
	}
	if len(list.Sideboard) != 0 {
		t.Fatalf("unexpected sideboard: %+v", list.Sideboard)
	}
}

func TestParseImplicitSideboard(t *testing.T) {
	text := `4 Lightning Bolt
2 Counterspell

3 Pyroblast
`
	list := Parse(text)
	if len(list.Main) != 2 {
		t.Fatalf("Main = %+v, want 2 entries", list.Main)
	}
	want := []Entry{{3, "Pyroblast"}}
	if !reflect.DeepEqual(list.Sideboard, want) {
		t.Fatalf("Sideboard = %+v, want %+v", list.Sideboard, want)
	}
}

func TestParseLeadingBlankLinesDoNotSplit(t *testing.T) {
	text := `

4 Lightning Bolt
2 Counterspell
`
	list := Parse(text)
	if len(list.Main) != 2 || len(list.Sideboard) != 0 {
		t.Fatalf("Main/%d Sideboard/%d, want 2/0", len(list.Main), len(list.Sideboard))
	}
}

func TestParseExplicitSideboard(t *testing.T) {
	text := `4 Lightning Bolt
Sideboard:
3 Pyroblast

2 Red Elemental Blast
`
	list := Parse(text)
	if len(list.Main) != 1 {
		t.Fatalf("Main = %+v, want 1 entry", list.Main)
	}
	// The blank line after an explicit header must not split again.
	want := []Entry{{3, "Pyroblast"}, {2, "Red Elemental Blast"}}
	if !reflect.DeepEqual(list.Sideboard, want) {
		t.Fatalf("Sideboard = %+v, want %+v", list.Sideboard, want)
	}
}

func TestParseArenaStyleSections(t *testing.T) {
	text := `Deck
4 Lightning Bolt

Sideboard
3 Pyroblast
`
	list := Parse(text)
	if len(list.Main) != 1 || list.Main[0].Name != "Lightning Bolt" {
		t.Fatalf("Main = %+v", list.Main)
	}
	if len(list.Sideboard) != 1 || list.Sideboard[0].Name != "Pyroblast" {
		t.Fatalf("Sideboard = %+v", list.Sideboard)
	}
}

func TestParseEmpty(t *testing.T) {
	list := Parse("")
	if len(list.Main) != 0 || len(list.Sideboard) != 0 {
		t.Fatalf("empty input produced %+v", list)
	}
}
