package seating

import (
	"math/rand/v2"
	"time"
)

// RandomSource supplies fair boolean draws for seeding the grid.
type RandomSource interface {
	Bool() bool
}

type rngSource struct {
	rng *rand.Rand
}

// ResolveSeed turns a zero seed into one taken from the current time, so the
// value can be logged and replayed.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// NewRandomSource returns a PCG-backed source. A zero seed picks one from the
// current time.
func NewRandomSource(seed int64) RandomSource {
	seed = ResolveSeed(seed)
	return rngSource{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))}
}

func (s rngSource) Bool() bool {
	return s.rng.IntN(2) == 0
}

type fixedSource struct {
	value bool
}

// NewFixedSource returns a source that always yields value (useful for tests).
func NewFixedSource(value bool) RandomSource {
	return fixedSource{value: value}
}

func (f fixedSource) Bool() bool {
	return f.value
}
