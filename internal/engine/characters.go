package engine

import "time"

// Character is a wearable fisherman with a fixed bonus record. Bonuses are
// looked up from this static table by id, never probed at runtime.
type Character struct {
	ID          string
	Name        string
	Cost        int64
	Description string

	LuckBonus       int
	WaitReduction   time.Duration
	ValueMultiplier float64
}

// DefaultCharacterID is owned from the start and carries no bonuses.
const DefaultCharacterID = "drifter"

var characters = []Character{
	{
		ID:              DefaultCharacterID,
		Name:            "The Drifter",
		Cost:            0,
		Description:     "Washed ashore with a rod and not much else.",
		ValueMultiplier: 1.0,
	},
	{
		ID:              "lucky_lou",
		Name:            "Lucky Lou",
		Cost:            1500,
		Description:     "Found a four-leaf clover in the bait box.",
		LuckBonus:       5,
		ValueMultiplier: 1.0,
	},
	{
		ID:              "old_salt",
		Name:            "Old Salt",
		Cost:            2500,
		Description:     "Knows where the fish are before they do.",
		WaitReduction:   500 * time.Millisecond,
		ValueMultiplier: 1.0,
	},
	{
		ID:              "marina_magnate",
		Name:            "Marina Magnate",
		Cost:            4000,
		Description:     "Never sells below market.",
		ValueMultiplier: 1.1,
	},
}

func Characters() []Character {
	out := make([]Character, len(characters))
	copy(out, characters)
	return out
}

// CharacterByID falls back to the default character for unknown ids, so a
// save written by a newer build still loads.
func CharacterByID(id string) Character {
	for _, c := range characters {
		if c.ID == id {
			return c
		}
	}
	return characters[0]
}

func KnownCharacter(id string) bool {
	for _, c := range characters {
		if c.ID == id {
			return true
		}
	}
	return false
}
