package bot

import (
	"crypto/rand"
	"log"
	"math/big"
)

// Roll returns a die value in 1-6. The engine never rolls for itself;
// embedders feed this (or any other source) into Game.RollDice.
func Roll() int8 {
	return int8(RandInt(6)) + 1
}

// RandInt returns a uniformly random integer in [0, max).
func RandInt(max int) int {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		log.Fatal(err)
	}
	return int(i.Int64())
}
