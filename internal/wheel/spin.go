// Package wheel produces roulette outcomes and their derived
// classifications from a single injected uniform draw.
package wheel

import (
	"fmt"

	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
	"github.com/kairokome/waifu-roulette-lounge/internal/utils"
)

// Spin draws one pocket uniformly from [0, 36] and classifies it.
// The only side effect is consuming one draw from rng.
func Spin(rng utils.RNG) domain.Outcome {
	return NewOutcome(utils.IntBelow(rng, PocketCount))
}

// NewOutcome derives the full classification for a pocket number.
// Panics on an out-of-range number: a correct RNG consumer can never produce
// one, so observing it means a broken invariant rather than a recoverable
// condition.
func NewOutcome(number int) domain.Outcome {
	if number < 0 || number > MaxNumber {
		panic(fmt.Sprintf("wheel: pocket number %d out of range [0,%d]", number, MaxNumber))
	}
	return domain.Outcome{
		Number: number,
		Color:  ColorOf(number),
		IsOdd:  number != 0 && number%2 == 1,
		IsEven: number != 0 && number%2 == 0,
		Dozen:  DozenOf(number),
	}
}

// ColorOf returns the pocket color; zero is green.
func ColorOf(number int) domain.Color {
	switch {
	case number == 0:
		return domain.ColorGreen
	case redNumbers[number]:
		return domain.ColorRed
	default:
		return domain.ColorBlack
	}
}

// DozenOf returns which third of the layout the number falls in; zero has none.
func DozenOf(number int) domain.Dozen {
	switch {
	case number >= 1 && number <= 12:
		return domain.DozenFirst
	case number >= 13 && number <= 24:
		return domain.DozenSecond
	case number >= 25 && number <= 36:
		return domain.DozenThird
	default:
		return domain.DozenNone
	}
}
