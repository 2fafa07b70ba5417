package engine

import "math"

// Upgrade is a purchasable progression track. Every track starts at level 1.
type Upgrade string

const (
	UpgradeRod    Upgrade = "rod"
	UpgradeBait   Upgrade = "bait"
	UpgradeDepth  Upgrade = "depth"
	UpgradeBucket Upgrade = "bucket"
	UpgradeDock   Upgrade = "dock"
	UpgradeBoat   Upgrade = "boat"
)

func (u Upgrade) IsValid() bool {
	switch u {
	case UpgradeRod, UpgradeBait, UpgradeDepth, UpgradeBucket, UpgradeDock, UpgradeBoat:
		return true
	default:
		return false
	}
}

func AllUpgrades() []Upgrade {
	return []Upgrade{UpgradeRod, UpgradeBait, UpgradeDepth, UpgradeBucket, UpgradeDock, UpgradeBoat}
}

type costCurve struct {
	base   int64
	growth float64
}

var costCurves = map[Upgrade]costCurve{
	UpgradeRod:    {base: 100, growth: 1.5},
	UpgradeBait:   {base: 50, growth: 1.5},
	UpgradeDepth:  {base: 75, growth: 1.5},
	UpgradeBucket: {base: 150, growth: 1.4},
	UpgradeDock:   {base: 500, growth: 2.0},
	UpgradeBoat:   {base: 1000, growth: 1.8},
}

// UpgradeCost is the price of moving from the given level to the next:
// floor(base * growth^level).
func UpgradeCost(u Upgrade, level int) int64 {
	curve, ok := costCurves[u]
	if !ok {
		return 0
	}
	if level < 0 {
		level = 0
	}
	return int64(math.Floor(float64(curve.base) * math.Pow(curve.growth, float64(level))))
}

const VIPCost int64 = 5000

const (
	baseCapacity      = 10
	capacityPerBucket = 5
	MaxEnergy         = 100
	CastEnergyCost    = 10
)

// MaxCapacityFor derives the bucket ceiling from the current bucket level:
// 10 + (level-1)*5. This is the revision-1 formula; levels below 1 clamp.
func MaxCapacityFor(bucketLevel int) int {
	if bucketLevel < 1 {
		bucketLevel = 1
	}
	return baseCapacity + (bucketLevel-1)*capacityPerBucket
}

// SaleCredit is the gold credited for a fish: floor(value * multiplier).
func SaleCredit(baseValue int64, multiplier float64) int64 {
	if multiplier <= 0 {
		multiplier = 1.0
	}
	return int64(math.Floor(float64(baseValue) * multiplier))
}

// FoodItem restores energy when eaten. Prices are a flat shop table.
type FoodItem struct {
	ID          string
	Name        string
	Cost        int64
	Energy      int
	Description string
}

var foodItems = []FoodItem{
	{ID: "berries", Name: "Island Berries", Cost: 10, Energy: 15, Description: "Foraged fresh. Probably not poisonous."},
	{ID: "coconut", Name: "Coconut", Cost: 25, Energy: 35, Description: "Hard to open, worth the effort."},
	{ID: "grilled_fish", Name: "Grilled Fish", Cost: 50, Energy: 80, Description: "Tastes better than it sells."},
}

func FoodMenu() []FoodItem {
	out := make([]FoodItem, len(foodItems))
	copy(out, foodItems)
	return out
}

func FoodByID(id string) (FoodItem, bool) {
	for _, f := range foodItems {
		if f.ID == id {
			return f, true
		}
	}
	return FoodItem{}, false
}
