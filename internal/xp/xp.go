// Package xp computes experience rewards. The only non-deterministic
// piece, the surprise double-XP roll, sits behind an injectable random
// source so scheduling and reward logic stay testable.
package xp

import "math/rand/v2"

// BaseReviewXP is awarded for any recorded review.
const BaseReviewXP = 10

// DoubleChance is the probability of a session reward being doubled.
const DoubleChance = 0.15

// ReviewXP returns the deterministic XP for one review outcome.
// Confident recall earns more, but even a failed review pays something.
func ReviewXP(confidence int) int {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 5 {
		confidence = 5
	}
	return BaseReviewXP + confidence*4
}

// Calculator applies the randomized session reward multiplier.
type Calculator struct {
	rng *rand.Rand
}

// NewCalculator creates a Calculator from a random source.
func NewCalculator(src rand.Source) *Calculator {
	return &Calculator{rng: rand.New(src)}
}

// SessionXP returns the final session reward and whether the surprise
// double fired.
func (c *Calculator) SessionXP(base int) (total int, doubled bool) {
	if base < 0 {
		base = 0
	}
	if c.rng.Float64() < DoubleChance {
		return base * 2, true
	}
	return base, false
}

// NextStreak returns the updated streak length given whether the user
// studied yesterday (or today already).
func NextStreak(current int, continued bool) int {
	if !continued {
		return 1
	}
	return current + 1
}
