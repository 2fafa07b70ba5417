package engine

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"time"

	"github.com/google/uuid"
)

// Tier thresholds for the composite roll. Evaluated highest-first with a
// strict comparison: a roll of exactly 65 is still Common.
const (
	legendaryThreshold = 105
	epicThreshold      = 85
	rareThreshold      = 65
)

// RollBonuses are the flat additions to the base uniform(0,100) draw.
type RollBonuses struct {
	RodLevel   int
	DepthLevel int
	VIP        bool
	LuckBonus  int
	PowerBonus int
}

func (b RollBonuses) total() float64 {
	t := float64(b.RodLevel*5 + b.DepthLevel*3 + b.LuckBonus + b.PowerBonus)
	if b.VIP {
		t += 15
	}
	return t
}

// Roller resolves catches against a Catalog. The RNG is injected so tests
// can seed it deterministically.
type Roller struct {
	cat *Catalog
	rng *mrand.Rand
}

func NewRoller(cat *Catalog, rng *mrand.Rand) *Roller {
	if rng == nil {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))
		} else {
			rng = mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
		}
	}
	return &Roller{cat: cat, rng: rng}
}

// TierForRoll maps a composite roll value onto a rarity tier.
func TierForRoll(roll float64) Rarity {
	switch {
	case roll > legendaryThreshold:
		return RarityLegendary
	case roll > epicThreshold:
		return RarityEpic
	case roll > rareThreshold:
		return RarityRare
	default:
		return RarityCommon
	}
}

// Resolve draws the composite roll, selects a tier and picks uniformly from
// its pool. Each catch gets a fresh identity; template fields are copied.
func (r *Roller) Resolve(b RollBonuses) Catch {
	roll := r.rng.Float64()*100 + b.total()
	return r.fromTier(TierForRoll(roll))
}

func (r *Roller) fromTier(tier Rarity) Catch {
	pool := r.cat.Tier(tier)
	if len(pool) == 0 {
		// LoadCatalog rejects empty tiers, so this only trips on a
		// hand-built catalog. Falling back keeps the session alive.
		pool = r.cat.Tier(RarityCommon)
	}
	sp := pool[r.rng.Intn(len(pool))]
	return Catch{
		ID:          uuid.NewString(),
		Name:        sp.Name,
		Value:       sp.Value,
		Rarity:      sp.Rarity,
		Description: sp.Description,
		CaughtAt:    time.Now().UTC(),
	}
}
