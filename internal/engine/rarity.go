package engine

import "fmt"

type Rarity int

const (
	RarityCommon Rarity = iota
	RarityRare
	RarityEpic
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityLegendary:
		return "Legendary"
	case RarityEpic:
		return "Epic"
	case RarityRare:
		return "Rare"
	default:
		return "Common"
	}
}

func ParseRarity(s string) (Rarity, error) {
	switch s {
	case "Common":
		return RarityCommon, nil
	case "Rare":
		return RarityRare, nil
	case "Epic":
		return RarityEpic, nil
	case "Legendary":
		return RarityLegendary, nil
	default:
		return RarityCommon, fmt.Errorf("unknown rarity %q", s)
	}
}

// Stars is the 1..5 display rating used by the catch card.
func (r Rarity) Stars() int {
	switch r {
	case RarityLegendary:
		return 5
	case RarityEpic:
		return 4
	case RarityRare:
		return 3
	default:
		return 1
	}
}
