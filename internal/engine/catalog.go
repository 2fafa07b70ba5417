package engine

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"
)

//go:embed species.json
var speciesJSON []byte

// Species is an immutable catch template. The catalog is defined once at
// process start and never mutated.
type Species struct {
	Name        string
	Value       int64
	Rarity      Rarity
	Description string
}

type speciesRecord struct {
	Name        string `json:"name"`
	Value       int64  `json:"value"`
	Rarity      string `json:"rarity"`
	Description string `json:"description"`
}

// Catch is one resolved fish. Numeric fields are copied from the template at
// roll time, so later value adjustments never touch the catalog.
type Catch struct {
	ID          string
	Name        string
	Value       int64
	Rarity      Rarity
	Description string
	CaughtAt    time.Time
}

type Catalog struct {
	all    []Species
	byTier map[Rarity][]Species
	byName map[string]Species
}

// LoadCatalog parses and validates the embedded species list. An empty tier
// pool is a configuration error, not something the roller recovers from.
func LoadCatalog() (*Catalog, error) {
	return loadCatalog(speciesJSON)
}

func loadCatalog(raw []byte) (*Catalog, error) {
	var arr []speciesRecord
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, fmt.Errorf("parse species list: %w", err)
	}
	if len(arr) == 0 {
		return nil, fmt.Errorf("species list is empty")
	}

	c := &Catalog{
		byTier: map[Rarity][]Species{},
		byName: map[string]Species{},
	}
	for i, rec := range arr {
		if rec.Name == "" {
			return nil, fmt.Errorf("missing name at index %d", i)
		}
		if _, dup := c.byName[rec.Name]; dup {
			return nil, fmt.Errorf("duplicate species %q", rec.Name)
		}
		if rec.Value <= 0 {
			return nil, fmt.Errorf("species %q has non-positive value %d", rec.Name, rec.Value)
		}
		tier, err := ParseRarity(rec.Rarity)
		if err != nil {
			return nil, fmt.Errorf("species %q: %w", rec.Name, err)
		}
		sp := Species{
			Name:        rec.Name,
			Value:       rec.Value,
			Rarity:      tier,
			Description: rec.Description,
		}
		c.all = append(c.all, sp)
		c.byTier[tier] = append(c.byTier[tier], sp)
		c.byName[rec.Name] = sp
	}

	for tier := RarityCommon; tier <= RarityLegendary; tier++ {
		if len(c.byTier[tier]) == 0 {
			return nil, fmt.Errorf("no species in tier %s", tier)
		}
	}
	return c, nil
}

func (c *Catalog) All() []Species {
	out := make([]Species, len(c.all))
	copy(out, c.all)
	return out
}

func (c *Catalog) Tier(r Rarity) []Species {
	return c.byTier[r]
}

func (c *Catalog) ByName(name string) (Species, bool) {
	sp, ok := c.byName[name]
	return sp, ok
}

func (c *Catalog) Count() int { return len(c.all) }
