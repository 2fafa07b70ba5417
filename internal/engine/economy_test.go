package engine

import (
	"testing"
	"time"
)

func TestUpgradeCostCurve(t *testing.T) {
	cases := []struct {
		upgrade Upgrade
		level   int
		want    int64
	}{
		{UpgradeRod, 1, 150},
		{UpgradeRod, 2, 225},
		{UpgradeRod, 3, 337},
		{UpgradeBait, 1, 75},
		{UpgradeDepth, 1, 112},
		{UpgradeBucket, 1, 209},
		{UpgradeDock, 1, 1000},
		{UpgradeDock, 2, 2000},
		{UpgradeBoat, 1, 1800},
	}
	for _, tc := range cases {
		if got := UpgradeCost(tc.upgrade, tc.level); got != tc.want {
			t.Fatalf("UpgradeCost(%s, %d)=%d, want %d", tc.upgrade, tc.level, got, tc.want)
		}
	}
}

func TestMaxCapacityPerBucketLevel(t *testing.T) {
	cases := []struct {
		level, want int
	}{
		{0, 10}, {1, 10}, {2, 15}, {3, 20}, {5, 30},
	}
	for _, tc := range cases {
		if got := MaxCapacityFor(tc.level); got != tc.want {
			t.Fatalf("MaxCapacityFor(%d)=%d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestSaleCreditFloors(t *testing.T) {
	if got := SaleCredit(100, 1.0); got != 100 {
		t.Fatalf("SaleCredit(100, 1.0)=%d, want 100", got)
	}
	if got := SaleCredit(100, 1.1); got != 110 {
		t.Fatalf("SaleCredit(100, 1.1)=%d, want 110", got)
	}
	if got := SaleCredit(33, 1.1); got != 36 {
		t.Fatalf("SaleCredit(33, 1.1)=%d, want 36", got)
	}
}

func TestHireCurve(t *testing.T) {
	costs := []int64{100, 160, 256, 409, 655}
	for i, want := range costs {
		if got := HireCost(i); got != want {
			t.Fatalf("HireCost(%d)=%d, want %d", i, got, want)
		}
	}
	if got := HireIncome(0); got != 1 {
		t.Fatalf("HireIncome(0)=%d, want 1", got)
	}
	if got := HireIncome(4); got != 5 {
		t.Fatalf("HireIncome(4)=%d, want 5", got)
	}
}

func TestClaimable(t *testing.T) {
	if !Claimable(5, 5, false) {
		t.Fatalf("met target must be claimable")
	}
	if Claimable(4, 5, false) {
		t.Fatalf("unmet target must not be claimable")
	}
	if Claimable(5, 5, true) {
		t.Fatalf("claimed quest must not be claimable again")
	}
}

func TestCharacterTable(t *testing.T) {
	def := CharacterByID(DefaultCharacterID)
	if def.LuckBonus != 0 || def.WaitReduction != 0 || def.ValueMultiplier != 1.0 {
		t.Fatalf("default character must carry no bonuses: %+v", def)
	}

	if got := CharacterByID("nope"); got.ID != DefaultCharacterID {
		t.Fatalf("unknown id resolved to %q, want default fallback", got.ID)
	}

	lou := CharacterByID("lucky_lou")
	if lou.LuckBonus != 5 {
		t.Fatalf("lucky_lou luck=%d, want 5", lou.LuckBonus)
	}
	salt := CharacterByID("old_salt")
	if salt.WaitReduction != 500*time.Millisecond {
		t.Fatalf("old_salt wait reduction=%v, want 500ms", salt.WaitReduction)
	}
}

func TestCatalogCoversEveryTier(t *testing.T) {
	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	for _, tier := range []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary} {
		if len(cat.Tier(tier)) == 0 {
			t.Fatalf("tier %v has no species", tier)
		}
	}
	if cat.Count() != 16 {
		t.Fatalf("catalog size=%d, want 16", cat.Count())
	}
}
