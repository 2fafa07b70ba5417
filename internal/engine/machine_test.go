package engine

import (
	mrand "math/rand"
	"testing"
	"time"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func testMachine(t *testing.T, seed int64) *Machine {
	t.Helper()
	cat := testCatalog(t)
	roller := NewRoller(cat, mrand.New(mrand.NewSource(seed)))
	return NewMachine(roller, mrand.New(mrand.NewSource(seed)))
}

func readyLoadout() Loadout {
	return Loadout{
		RodLevel:    1,
		BaitLevel:   1,
		DepthLevel:  1,
		MaxCapacity: 10,
		Energy:      100,
		EnergyCost:  10,
	}
}

func TestTierForRollBoundaries(t *testing.T) {
	cases := []struct {
		roll float64
		want Rarity
	}{
		{0, RarityCommon},
		{65, RarityCommon},
		{65.01, RarityRare},
		{85, RarityRare},
		{85.01, RarityEpic},
		{105, RarityEpic},
		{105.01, RarityLegendary},
		{160, RarityLegendary},
	}
	for _, tc := range cases {
		if got := TierForRoll(tc.roll); got != tc.want {
			t.Fatalf("TierForRoll(%v)=%v, want %v", tc.roll, got, tc.want)
		}
	}
}

func TestResolveGuaranteedLegendary(t *testing.T) {
	cat := testCatalog(t)
	roller := NewRoller(cat, mrand.New(mrand.NewSource(7)))

	// rod 30 alone pushes even a zero draw past the legendary threshold.
	c := roller.Resolve(RollBonuses{RodLevel: 30})
	if c.Rarity != RarityLegendary {
		t.Fatalf("rarity=%v, want legendary", c.Rarity)
	}
	if _, ok := cat.ByName(c.Name); !ok {
		t.Fatalf("catch %q not in catalog", c.Name)
	}

	c2 := roller.Resolve(RollBonuses{RodLevel: 30})
	if c.ID == c2.ID {
		t.Fatalf("expected distinct catch ids, got %q twice", c.ID)
	}
}

func TestPowerBonusBreakpoints(t *testing.T) {
	cases := []struct {
		power, want int
	}{
		{0, 0}, {50, 0}, {51, 5}, {90, 5}, {91, 10}, {100, 10},
	}
	for _, tc := range cases {
		if got := PowerBonus(tc.power); got != tc.want {
			t.Fatalf("PowerBonus(%d)=%d, want %d", tc.power, got, tc.want)
		}
	}
}

func TestCastCycleCatches(t *testing.T) {
	m := testMachine(t, 1)

	timer, err := m.QuickCast(readyLoadout())
	if err != nil {
		t.Fatalf("QuickCast: %v", err)
	}
	if m.Phase() != PhaseCasting {
		t.Fatalf("phase=%v, want casting", m.Phase())
	}
	if timer.Delay != 1000*time.Millisecond {
		t.Fatalf("cast delay=%v, want 1s", timer.Delay)
	}

	out, next := m.Expire(timer.Token)
	if out != OutcomeSplash || next == nil {
		t.Fatalf("splash expire: out=%v next=%v", out, next)
	}
	if next.Delay < 500*time.Millisecond || next.Delay > 5000*time.Millisecond {
		t.Fatalf("wait delay %v outside plausible range", next.Delay)
	}

	out, next = m.Expire(next.Token)
	if out != OutcomeBite || next == nil {
		t.Fatalf("bite expire: out=%v next=%v", out, next)
	}
	if next.Delay != 2000*time.Millisecond {
		t.Fatalf("escape window=%v, want 2s", next.Delay)
	}

	reelTimer, err := m.Reel()
	if err != nil {
		t.Fatalf("Reel: %v", err)
	}
	if reelTimer.Delay != 1000*time.Millisecond {
		t.Fatalf("reel delay=%v, want 1s", reelTimer.Delay)
	}

	out, _ = m.Expire(reelTimer.Token)
	if out != OutcomeCaught {
		t.Fatalf("reel expire: out=%v, want caught", out)
	}
	if m.Phase() != PhaseCaught || m.Pending() == nil {
		t.Fatalf("phase=%v pending=%v after catch", m.Phase(), m.Pending())
	}

	if err := m.ClearPending(); err != nil {
		t.Fatalf("ClearPending: %v", err)
	}
	if m.Phase() != PhaseIdle || m.Pending() != nil {
		t.Fatalf("expected idle with no pending after decision")
	}
}

func TestEscapeLeavesNothingBehind(t *testing.T) {
	m := testMachine(t, 2)

	timer, err := m.QuickCast(readyLoadout())
	if err != nil {
		t.Fatalf("QuickCast: %v", err)
	}
	_, next := m.Expire(timer.Token)
	_, escape := m.Expire(next.Token)

	out, follow := m.Expire(escape.Token)
	if out != OutcomeEscaped || follow != nil {
		t.Fatalf("escape expire: out=%v follow=%v", out, follow)
	}
	if m.Phase() != PhaseIdle || m.Pending() != nil {
		t.Fatalf("escape must leave an idle machine with no pending catch")
	}
}

func TestStaleEscapeTokenLosesToReel(t *testing.T) {
	m := testMachine(t, 3)

	timer, err := m.QuickCast(readyLoadout())
	if err != nil {
		t.Fatalf("QuickCast: %v", err)
	}
	_, next := m.Expire(timer.Token)
	_, escape := m.Expire(next.Token)

	reelTimer, err := m.Reel()
	if err != nil {
		t.Fatalf("Reel: %v", err)
	}

	// The escape timer fires late; its token was superseded by Reel.
	out, follow := m.Expire(escape.Token)
	if out != OutcomeNone || follow != nil {
		t.Fatalf("stale escape: out=%v follow=%v, want none", out, follow)
	}
	if m.Phase() != PhaseReeling {
		t.Fatalf("phase=%v, want reeling after stale escape", m.Phase())
	}

	out, _ = m.Expire(reelTimer.Token)
	if out != OutcomeCaught {
		t.Fatalf("reel expire after stale escape: out=%v, want caught", out)
	}
}

func TestCastGateOrder(t *testing.T) {
	m := testMachine(t, 4)

	lo := readyLoadout()
	lo.InventoryCount = 10
	lo.Energy = 0
	if _, err := m.QuickCast(lo); err == nil {
		t.Fatalf("expected refusal with full bucket")
	} else if _, ok := err.(CapacityError); !ok {
		t.Fatalf("full bucket err=%T, want CapacityError", err)
	}

	lo = readyLoadout()
	lo.Energy = 5
	if _, err := m.QuickCast(lo); err == nil {
		t.Fatalf("expected refusal with low energy")
	} else if _, ok := err.(EnergyError); !ok {
		t.Fatalf("low energy err=%T, want EnergyError", err)
	}
	if m.Phase() != PhaseIdle {
		t.Fatalf("refused cast moved phase to %v", m.Phase())
	}
}

func TestPendingDecisionBlocksNextCast(t *testing.T) {
	m := testMachine(t, 5)

	timer, _ := m.QuickCast(readyLoadout())
	_, next := m.Expire(timer.Token)
	_, _ = m.Expire(next.Token)
	reelTimer, _ := m.Reel()
	_, _ = m.Expire(reelTimer.Token)
	if m.Pending() == nil {
		t.Fatalf("expected a pending catch")
	}

	if _, err := m.QuickCast(readyLoadout()); err != ErrDecisionPending {
		t.Fatalf("cast with pending: err=%v, want ErrDecisionPending", err)
	}
}

func TestPowerMeterOscillatesAndLocks(t *testing.T) {
	m := testMachine(t, 6)

	if err := m.StartAiming(readyLoadout()); err != nil {
		t.Fatalf("StartAiming: %v", err)
	}
	for i := 0; i < 20; i++ {
		m.TickPower()
	}
	if m.Power() != 100 {
		t.Fatalf("power=%d after 20 ticks, want 100", m.Power())
	}
	if got := m.TickPower(); got != 95 {
		t.Fatalf("power=%d after bounce, want 95", got)
	}

	if _, err := m.ReleaseCast(); err != nil {
		t.Fatalf("ReleaseCast: %v", err)
	}
	if m.LockedPower() != 95 {
		t.Fatalf("locked=%d, want 95", m.LockedPower())
	}
	if m.Phase() != PhaseCasting {
		t.Fatalf("phase=%v after release, want casting", m.Phase())
	}
}

func TestWaitDurationClampsAtFloor(t *testing.T) {
	m := testMachine(t, 8)
	m.loadout = readyLoadout()
	m.loadout.BaitLevel = 50

	for i := 0; i < 20; i++ {
		if d := m.waitDuration(); d != 500*time.Millisecond {
			t.Fatalf("wait=%v with stacked bait, want the 500ms floor", d)
		}
	}
}

func TestReelOutsideBiteIsRejected(t *testing.T) {
	m := testMachine(t, 9)
	if _, err := m.Reel(); err != ErrInvalidTransition {
		t.Fatalf("idle reel err=%v, want ErrInvalidTransition", err)
	}

	timer, _ := m.QuickCast(readyLoadout())
	if _, err := m.Reel(); err != ErrInvalidTransition {
		t.Fatalf("casting reel err=%v, want ErrInvalidTransition", err)
	}
	_, _ = m.Expire(timer.Token)
	if _, err := m.Reel(); err != ErrInvalidTransition {
		t.Fatalf("waiting reel err=%v, want ErrInvalidTransition", err)
	}
}
