package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// rng backs every shuffle and roll. Seeded from crypto/rand so two hosts
// never share a sequence; the game needs uniformity, not reproducibility.
var rng = rand.New(rand.NewSource(newSeed()))

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Shuffle permutes ids in place (Fisher-Yates).
func Shuffle(ids []string) {
	rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}

// RollDie returns a uniform result in [1, sides]. Sides below two fall
// back to a d6.
func RollDie(sides int) int {
	if sides < 2 {
		sides = 6
	}
	return rng.Intn(sides) + 1
}

// FlipCoin reports heads.
func FlipCoin() bool {
	return rng.Intn(2) == 0
}
