package engine

import "math"

// Crew hiring follows an exponential cost curve on headcount, and each new
// hire earns one more gold per second than the last. Both are frozen at hire
// time and never recalculated.

const (
	crewBaseCost   = 100
	crewCostGrowth = 1.6
)

// HireCost is the price of the next hire given the current headcount.
func HireCost(count int) int64 {
	if count < 0 {
		count = 0
	}
	return int64(math.Floor(crewBaseCost * math.Pow(crewCostGrowth, float64(count))))
}

// HireIncome is the per-second income of the next hire: 1 + current count.
func HireIncome(count int) int64 {
	if count < 0 {
		count = 0
	}
	return int64(1 + count)
}

var crewRoles = []string{
	"Deckhand",
	"Net Mender",
	"Bait Digger",
	"Harpooner",
	"First Mate",
	"Boat Captain",
}

// RoleForHire names the nth hire; past the list it wraps with a generic role.
func RoleForHire(count int) string {
	if count >= 0 && count < len(crewRoles) {
		return crewRoles[count]
	}
	return "Deckhand"
}
