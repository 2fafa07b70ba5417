package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "save.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, path
}

func TestSessionRoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()
	db, path := openTestDB(t)
	repo := NewSessionRepo(db)

	sess, err := repo.GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("GetOrCreateMain: %v", err)
	}
	if sess.Key != MainSessionKey {
		t.Fatalf("key=%q, want %q", sess.Key, MainSessionKey)
	}

	sess.PlayerName = "Skipper"
	sess.Money = 1234
	sess.VIP = true
	sess.Energy = 40
	sess.RodLevel = 3
	sess.BaitLevel = 2
	sess.DepthLevel = 4
	sess.BucketLevel = 2
	sess.DockLevel = 1
	sess.BoatLevel = 2
	sess.ActiveCharacter = "old_salt"
	sess.TotalGoldEarned = 9999
	sess.TotalFishCaught = 77
	sess.LegendaryFishCaught = 3
	if err := repo.Update(ctx, sess); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Reopen from disk: everything must come back byte for byte.
	_ = db.Close()
	db2, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db2.Close()

	got, err := NewSessionRepo(db2).Get(ctx, MainSessionKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatalf("session missing after reopen")
	}
	if *got != *sess {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, sess)
	}
}

func TestInventoryOrderAndDelete(t *testing.T) {
	ctx := context.Background()
	db, _ := openTestDB(t)
	repo := NewInventoryRepo(db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fish := []CaughtFish{
		{ID: "a", Name: "Minnow", Value: 5, Rarity: "Common", CaughtAt: base},
		{ID: "b", Name: "Tuna", Value: 120, Rarity: "Rare", CaughtAt: base.Add(time.Minute)},
		{ID: "c", Name: "Marlin", Value: 400, Rarity: "Epic", CaughtAt: base.Add(2 * time.Minute)},
	}
	for _, f := range fish {
		if err := repo.Insert(ctx, f); err != nil {
			t.Fatalf("insert %s: %v", f.ID, err)
		}
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len=%d, want 3", len(all))
	}
	if all[0].ID != "c" || all[2].ID != "a" {
		t.Fatalf("order=%s,%s,%s, want newest first", all[0].ID, all[1].ID, all[2].ID)
	}
	if !all[0].CaughtAt.Equal(fish[2].CaughtAt) {
		t.Fatalf("caught_at=%v, want %v", all[0].CaughtAt, fish[2].CaughtAt)
	}

	if err := repo.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "b"); err == nil {
		t.Fatalf("deleting a missing fish must error")
	}
	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Fatalf("count=%d, want 2", n)
	}
}

func TestQuestProgressOnlyTouchesUnclaimed(t *testing.T) {
	ctx := context.Background()
	db, _ := openTestDB(t)
	repo := NewQuestRepo(db)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	quests := []Quest{
		{ID: "q1", Trigger: "CATCH_ANY", Description: "Catch 5 Fish", Target: 5, Reward: 50, CreatedAt: now},
		{ID: "q2", Trigger: "CATCH_ANY", Description: "Catch 5 Fish", Target: 5, Reward: 50, Claimed: true, CreatedAt: now},
		{ID: "q3", Trigger: "EARN_GOLD", Description: "Earn 100 Gold", Target: 100, Reward: 100, CreatedAt: now},
	}
	for _, q := range quests {
		if err := repo.Insert(ctx, q); err != nil {
			t.Fatalf("insert %s: %v", q.ID, err)
		}
	}

	if err := repo.AddProgress(ctx, "CATCH_ANY", 2); err != nil {
		t.Fatalf("AddProgress: %v", err)
	}

	q1, _ := repo.Get(ctx, "q1")
	q2, _ := repo.Get(ctx, "q2")
	q3, _ := repo.Get(ctx, "q3")
	if q1.Progress != 2 {
		t.Fatalf("q1 progress=%d, want 2", q1.Progress)
	}
	if q2.Progress != 0 {
		t.Fatalf("q2 progress=%d, claimed quests must not accrue", q2.Progress)
	}
	if q3.Progress != 0 {
		t.Fatalf("q3 progress=%d, other triggers must not accrue", q3.Progress)
	}

	if err := repo.MarkClaimed(ctx, "q1"); err != nil {
		t.Fatalf("MarkClaimed: %v", err)
	}
	q1, _ = repo.Get(ctx, "q1")
	if !q1.Claimed {
		t.Fatalf("q1 not claimed after MarkClaimed")
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	left, _ := repo.ListAll(ctx)
	if len(left) != 0 {
		t.Fatalf("%d quests left after DeleteAll", len(left))
	}
}

func TestCrewIncomeSum(t *testing.T) {
	ctx := context.Background()
	db, _ := openTestDB(t)
	repo := NewCrewRepo(db)

	income, err := repo.TotalIncome(ctx)
	if err != nil {
		t.Fatalf("TotalIncome: %v", err)
	}
	if income != 0 {
		t.Fatalf("empty crew income=%d, want 0", income)
	}

	hired := time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)
	for i, inc := range []int64{1, 2, 3} {
		m := CrewMember{ID: string(rune('a' + i)), Role: "Deckhand", IncomePerSecond: inc, HiredAt: hired}
		if err := repo.Insert(ctx, m); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	n, _ := repo.Count(ctx)
	if n != 3 {
		t.Fatalf("count=%d, want 3", n)
	}
	income, _ = repo.TotalIncome(ctx)
	if income != 6 {
		t.Fatalf("income=%d, want 6", income)
	}
}

func TestDiscoveryFirstCatchWins(t *testing.T) {
	ctx := context.Background()
	db, _ := openTestDB(t)
	repo := NewCodexRepo(db)

	first := time.Date(2026, 3, 4, 7, 0, 0, 0, time.UTC)
	if err := repo.RecordDiscovery(ctx, "Minnow", first); err != nil {
		t.Fatalf("RecordDiscovery: %v", err)
	}
	if err := repo.RecordDiscovery(ctx, "Minnow", first.Add(time.Hour)); err != nil {
		t.Fatalf("repeat RecordDiscovery: %v", err)
	}

	all, err := repo.ListDiscoveries(ctx)
	if err != nil {
		t.Fatalf("ListDiscoveries: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len=%d, want 1", len(all))
	}
	if !all[0].FirstCaughtAt.Equal(first) {
		t.Fatalf("first_caught_at=%v, want the original %v", all[0].FirstCaughtAt, first)
	}
}

func TestWardrobeOwnership(t *testing.T) {
	ctx := context.Background()
	db, _ := openTestDB(t)
	repo := NewCodexRepo(db)

	owned, err := repo.HasCharacter(ctx, "lucky_lou")
	if err != nil {
		t.Fatalf("HasCharacter: %v", err)
	}
	if owned {
		t.Fatalf("fresh wardrobe owns lucky_lou")
	}

	if err := repo.AddCharacter(ctx, "lucky_lou"); err != nil {
		t.Fatalf("AddCharacter: %v", err)
	}
	if err := repo.AddCharacter(ctx, "lucky_lou"); err != nil {
		t.Fatalf("repeat AddCharacter: %v", err)
	}

	owned, _ = repo.HasCharacter(ctx, "lucky_lou")
	if !owned {
		t.Fatalf("lucky_lou not owned after AddCharacter")
	}
	ids, _ := repo.ListCharacters(ctx)
	if len(ids) != 1 || ids[0] != "lucky_lou" {
		t.Fatalf("wardrobe=%v, want exactly lucky_lou", ids)
	}
}
