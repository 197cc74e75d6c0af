package game

import (
	"sort"
	"testing"
)

func TestShuffleIsPermutation(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	shuffled := append([]string{}, ids...)

	Shuffle(shuffled)

	got := append([]string{}, shuffled...)
	sort.Strings(got)
	want := append([]string{}, ids...)
	sort.Strings(want)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("multiset changed: %v", shuffled)
		}
	}
}

func TestShuffleApproximatelyUniform(t *testing.T) {
	const trials = 3000
	cards := []string{"a", "b", "c", "d", "e"}

	// How often each card lands on top. Uniform would be trials/5 = 600;
	// the window is several standard deviations wide so the test stays
	// deterministic in practice.
	top := make(map[string]int)
	for i := 0; i < trials; i++ {
		lib := append([]string{}, cards...)
		Shuffle(lib)
		top[lib[0]]++
	}

	for _, c := range cards {
		if top[c] < 450 || top[c] > 750 {
			t.Fatalf("card %s on top %d/%d times, outside [450, 750]", c, top[c], trials)
		}
	}
}

func TestRollDieRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		if r := RollDie(20); r < 1 || r > 20 {
			t.Fatalf("d20 rolled %d", r)
		}
	}
	// A degenerate request falls back to a d6.
	if r := RollDie(0); r < 1 || r > 6 {
		t.Fatalf("d0 fallback rolled %d", r)
	}
}
