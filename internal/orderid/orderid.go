package orderid

import (
	"fmt"
	"math/rand"
	"time"
)

// Order keys are 16 digits: a two-digit year offset, the minute of the
// year padded to six digits, the user's sequence number mod 10000, and a
// four-digit random suffix. Keys sort roughly chronologically at minute
// granularity; uniqueness is enforced by the database, not here, so the
// caller must retry on a duplicate-key insert failure.
const (
	Width     = 16
	epochYear = 2020
)

type Clock func() time.Time

// Rand is the random suffix source. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type Generator struct {
	clock Clock
	rand  Rand
}

func New(clock Clock, rnd Rand) *Generator {
	if clock == nil {
		clock = time.Now
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{clock: clock, rand: rnd}
}

func (g *Generator) Generate(userSeq uint) string {
	now := g.clock()
	year := (now.Year() - epochYear) % 100
	if year < 0 {
		year += 100
	}
	minutes := now.YearDay()*24*60 + now.Hour()*60 + now.Minute()
	return fmt.Sprintf("%02d%06d%04d%04d", year, minutes, userSeq%10000, g.rand.Intn(10000))
}
