package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Rahulchina/Fisher-manan/internal/storage"
)

// Service owns the save file and applies every economy mutation. The catch
// machine stays in memory; everything with gold, fish or quest progress in
// it lands here, inside a transaction.
type Service struct {
	db      *sql.DB
	catalog *Catalog
	roller  *Roller

	sessions  *storage.SessionRepo
	inventory *storage.InventoryRepo
	quests    *storage.QuestRepo
	crew      *storage.CrewRepo
	codex     *storage.CodexRepo
}

func NewService(db *sql.DB, catalog *Catalog, roller *Roller) *Service {
	return &Service{
		db:        db,
		catalog:   catalog,
		roller:    roller,
		sessions:  storage.NewSessionRepo(db),
		inventory: storage.NewInventoryRepo(db),
		quests:    storage.NewQuestRepo(db),
		crew:      storage.NewCrewRepo(db),
		codex:     storage.NewCodexRepo(db),
	}
}

func (s *Service) Catalog() *Catalog                     { return s.catalog }
func (s *Service) SessionRepo() *storage.SessionRepo     { return s.sessions }
func (s *Service) InventoryRepo() *storage.InventoryRepo { return s.inventory }
func (s *Service) QuestRepo() *storage.QuestRepo         { return s.quests }
func (s *Service) CrewRepo() *storage.CrewRepo           { return s.crew }
func (s *Service) CodexRepo() *storage.CodexRepo         { return s.codex }

func (s *Service) getSession(ctx context.Context) (*storage.Session, error) {
	sess, err := s.sessions.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	if sess.ActiveCharacter == "" || !KnownCharacter(sess.ActiveCharacter) {
		sess.ActiveCharacter = DefaultCharacterID
	}
	return sess, nil
}

// Session returns the current save, creating it (and the first quest board)
// on a fresh profile.
func (s *Service) Session(ctx context.Context) (*storage.Session, error) {
	sess, err := s.getSession(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.EnsureQuestBoard(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}

// MaxCapacity is the bucket ceiling for the save as it stands right now.
func (s *Service) MaxCapacity(ctx context.Context) (int, error) {
	sess, err := s.getSession(ctx)
	if err != nil {
		return 0, err
	}
	return MaxCapacityFor(sess.BucketLevel), nil
}

// NewMachine builds a catch machine over the service's roller. Passing a nil
// rng keeps the crypto-seeded default.
func (s *Service) NewMachine() *Machine {
	return NewMachine(s.roller, nil)
}

// Loadout snapshots everything a cast needs: levels, character bonuses and
// the gating resources. Fetch one right before casting; a shop purchase in
// between deserves a fresh snapshot.
func (s *Service) Loadout(ctx context.Context) (Loadout, error) {
	sess, err := s.getSession(ctx)
	if err != nil {
		return Loadout{}, err
	}
	count, err := s.inventory.Count(ctx)
	if err != nil {
		return Loadout{}, err
	}
	ch := CharacterByID(sess.ActiveCharacter)
	return Loadout{
		RodLevel:       sess.RodLevel,
		BaitLevel:      sess.BaitLevel,
		DepthLevel:     sess.DepthLevel,
		VIP:            sess.VIP,
		LuckBonus:      ch.LuckBonus,
		WaitReduction:  ch.WaitReduction,
		InventoryCount: count,
		MaxCapacity:    MaxCapacityFor(sess.BucketLevel),
		Energy:         sess.Energy,
		EnergyCost:     CastEnergyCost,
	}, nil
}

// Cast quick-casts the machine and debits the cast energy on success.
func (s *Service) Cast(ctx context.Context, m *Machine) (Timer, error) {
	lo, err := s.Loadout(ctx)
	if err != nil {
		return Timer{}, err
	}
	t, err := m.QuickCast(lo)
	if err != nil {
		return Timer{}, err
	}
	return t, s.spendCastEnergy(ctx)
}

// BeginAim starts the power-meter hold. Gating runs now; energy is only
// spent once the line actually flies.
func (s *Service) BeginAim(ctx context.Context, m *Machine) error {
	lo, err := s.Loadout(ctx)
	if err != nil {
		return err
	}
	return m.StartAiming(lo)
}

// ReleaseAim locks the power meter, throws, and debits the cast energy.
func (s *Service) ReleaseAim(ctx context.Context, m *Machine) (Timer, error) {
	t, err := m.ReleaseCast()
	if err != nil {
		return Timer{}, err
	}
	return t, s.spendCastEnergy(ctx)
}

func (s *Service) spendCastEnergy(ctx context.Context) error {
	sess, err := s.getSession(ctx)
	if err != nil {
		return err
	}
	sess.Energy -= CastEnergyCost
	if sess.Energy < 0 {
		sess.Energy = 0
	}
	return s.sessions.Update(ctx, sess)
}

// KeepPending moves the pending catch into the bucket. Capacity is checked
// against the bucket level as of right now, so an upgrade bought mid-cycle
// counts. A refusal leaves the fish pending.
func (s *Service) KeepPending(ctx context.Context, m *Machine) (*Catch, error) {
	c := m.Pending()
	if c == nil {
		return nil, ErrNoPendingCatch
	}

	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		sessions := storage.NewSessionRepo(tx)
		sess, err := sessions.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		inv := storage.NewInventoryRepo(tx)
		count, err := inv.Count(ctx)
		if err != nil {
			return err
		}
		capacity := MaxCapacityFor(sess.BucketLevel)
		if count >= capacity {
			return CapacityError{Capacity: capacity}
		}

		if err := inv.Insert(ctx, storage.CaughtFish{
			ID:          c.ID,
			Name:        c.Name,
			Value:       c.Value,
			Rarity:      c.Rarity.String(),
			Description: c.Description,
			CaughtAt:    c.CaughtAt,
		}); err != nil {
			return err
		}
		return s.recordCatch(ctx, tx, sess, *c, 0)
	})
	if err != nil {
		return nil, err
	}

	_ = m.ClearPending()
	zap.L().Debug("kept catch", zap.String("name", c.Name), zap.String("rarity", c.Rarity.String()))
	return c, nil
}

// SellPending sells the catch straight off the line. The fish never enters
// the bucket, so capacity does not apply.
func (s *Service) SellPending(ctx context.Context, m *Machine) (int64, *Catch, error) {
	c := m.Pending()
	if c == nil {
		return 0, nil, ErrNoPendingCatch
	}

	var credit int64
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		sessions := storage.NewSessionRepo(tx)
		sess, err := sessions.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		ch := CharacterByID(sess.ActiveCharacter)
		credit = SaleCredit(c.Value, ch.ValueMultiplier)
		sess.Money += credit
		sess.TotalGoldEarned += credit
		return s.recordCatch(ctx, tx, sess, *c, credit)
	})
	if err != nil {
		return 0, nil, err
	}

	_ = m.ClearPending()
	zap.L().Debug("sold catch", zap.String("name", c.Name), zap.Int64("credit", credit))
	return credit, c, nil
}

// ReleasePending throws the fish back. Nothing anywhere changes.
func (s *Service) ReleasePending(m *Machine) (*Catch, error) {
	c := m.Pending()
	if c == nil {
		return nil, ErrNoPendingCatch
	}
	_ = m.ClearPending()
	return c, nil
}

// recordCatch applies the shared keep/sell bookkeeping inside the caller's
// transaction: stat counters, quest progress, discovery. credit > 0 means a
// sale and feeds EARN_GOLD.
func (s *Service) recordCatch(ctx context.Context, tx *sql.Tx, sess *storage.Session, c Catch, credit int64) error {
	sess.TotalFishCaught++
	if c.Rarity == RarityLegendary {
		sess.LegendaryFishCaught++
	}
	if err := storage.NewSessionRepo(tx).Update(ctx, sess); err != nil {
		return err
	}

	quests := storage.NewQuestRepo(tx)
	if err := quests.AddProgress(ctx, string(TriggerCatchAny), 1); err != nil {
		return err
	}
	if c.Rarity != RarityCommon {
		if err := quests.AddProgress(ctx, string(TriggerCatchRare), 1); err != nil {
			return err
		}
	}
	if credit > 0 {
		if err := quests.AddProgress(ctx, string(TriggerEarnGold), credit); err != nil {
			return err
		}
	}

	return storage.NewCodexRepo(tx).RecordDiscovery(ctx, c.Name, c.CaughtAt)
}

// SellFromInventory sells one bucketed fish. Bumps gold stats and EARN_GOLD
// progress only; the catch counters were taken when it was kept.
func (s *Service) SellFromInventory(ctx context.Context, fishID string) (int64, error) {
	var credit int64
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		inv := storage.NewInventoryRepo(tx)
		f, err := inv.Get(ctx, fishID)
		if err != nil {
			return err
		}
		if f == nil {
			return ErrNoPendingCatch
		}
		if err := inv.Delete(ctx, fishID); err != nil {
			return err
		}

		sessions := storage.NewSessionRepo(tx)
		sess, err := sessions.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		ch := CharacterByID(sess.ActiveCharacter)
		credit = SaleCredit(f.Value, ch.ValueMultiplier)
		sess.Money += credit
		sess.TotalGoldEarned += credit
		if err := sessions.Update(ctx, sess); err != nil {
			return err
		}
		return storage.NewQuestRepo(tx).AddProgress(ctx, string(TriggerEarnGold), credit)
	})
	return credit, err
}

// PurchaseResult reports a completed upgrade.
type PurchaseResult struct {
	Upgrade  Upgrade
	Cost     int64
	NewLevel int
}

// BuyUpgrade debits the exponential cost and bumps the level by one, or
// refuses with InsufficientFundsError leaving money untouched.
func (s *Service) BuyUpgrade(ctx context.Context, u Upgrade) (*PurchaseResult, error) {
	if !u.IsValid() {
		return nil, ErrInvalidTransition
	}
	sess, err := s.getSession(ctx)
	if err != nil {
		return nil, err
	}

	level := upgradeLevel(sess, u)
	cost := UpgradeCost(u, level)
	if sess.Money < cost {
		return nil, InsufficientFundsError{Need: cost, Have: sess.Money}
	}
	sess.Money -= cost
	setUpgradeLevel(sess, u, level+1)
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, err
	}

	zap.L().Info("bought upgrade", zap.String("category", string(u)), zap.Int("level", level+1), zap.Int64("cost", cost))
	return &PurchaseResult{Upgrade: u, Cost: cost, NewLevel: level + 1}, nil
}

func upgradeLevel(sess *storage.Session, u Upgrade) int {
	switch u {
	case UpgradeRod:
		return sess.RodLevel
	case UpgradeBait:
		return sess.BaitLevel
	case UpgradeDepth:
		return sess.DepthLevel
	case UpgradeBucket:
		return sess.BucketLevel
	case UpgradeDock:
		return sess.DockLevel
	case UpgradeBoat:
		return sess.BoatLevel
	default:
		return 0
	}
}

func setUpgradeLevel(sess *storage.Session, u Upgrade, level int) {
	switch u {
	case UpgradeRod:
		sess.RodLevel = level
	case UpgradeBait:
		sess.BaitLevel = level
	case UpgradeDepth:
		sess.DepthLevel = level
	case UpgradeBucket:
		sess.BucketLevel = level
	case UpgradeDock:
		sess.DockLevel = level
	case UpgradeBoat:
		sess.BoatLevel = level
	}
}

// BuyVIP flips the one-way flag. Buying twice fails cleanly without a second
// charge.
func (s *Service) BuyVIP(ctx context.Context) (int64, error) {
	sess, err := s.getSession(ctx)
	if err != nil {
		return 0, err
	}
	if sess.VIP {
		return 0, ErrAlreadyVIP
	}
	if sess.Money < VIPCost {
		return 0, InsufficientFundsError{Need: VIPCost, Have: sess.Money}
	}
	sess.Money -= VIPCost
	sess.VIP = true
	if err := s.sessions.Update(ctx, sess); err != nil {
		return 0, err
	}
	zap.L().Info("bought vip", zap.Int64("cost", VIPCost))
	return VIPCost, nil
}

// BuyFood restores energy, capped at the maximum.
func (s *Service) BuyFood(ctx context.Context, foodID string) (FoodItem, error) {
	item, ok := FoodByID(foodID)
	if !ok {
		return FoodItem{}, ErrInvalidTransition
	}
	sess, err := s.getSession(ctx)
	if err != nil {
		return FoodItem{}, err
	}
	if sess.Money < item.Cost {
		return FoodItem{}, InsufficientFundsError{Need: item.Cost, Have: sess.Money}
	}
	sess.Money -= item.Cost
	sess.Energy += item.Energy
	if sess.Energy > MaxEnergy {
		sess.Energy = MaxEnergy
	}
	return item, s.sessions.Update(ctx, sess)
}

// BuyCharacter unlocks a wardrobe character.
func (s *Service) BuyCharacter(ctx context.Context, id string) (Character, error) {
	if !KnownCharacter(id) {
		return Character{}, ErrNotOwned
	}
	ch := CharacterByID(id)

	owned, err := s.codex.HasCharacter(ctx, id)
	if err != nil {
		return Character{}, err
	}
	if owned || id == DefaultCharacterID {
		return Character{}, ErrAlreadyOwned
	}

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		sessions := storage.NewSessionRepo(tx)
		sess, err := sessions.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		if sess.Money < ch.Cost {
			return InsufficientFundsError{Need: ch.Cost, Have: sess.Money}
		}
		sess.Money -= ch.Cost
		if err := sessions.Update(ctx, sess); err != nil {
			return err
		}
		return storage.NewCodexRepo(tx).AddCharacter(ctx, id)
	})
	if err != nil {
		return Character{}, err
	}
	zap.L().Info("unlocked character", zap.String("id", id), zap.Int64("cost", ch.Cost))
	return ch, nil
}

// WearCharacter sets the active character; it must be owned (the default is
// always owned).
func (s *Service) WearCharacter(ctx context.Context, id string) error {
	if !KnownCharacter(id) {
		return ErrNotOwned
	}
	if id != DefaultCharacterID {
		owned, err := s.codex.HasCharacter(ctx, id)
		if err != nil {
			return err
		}
		if !owned {
			return ErrNotOwned
		}
	}
	sess, err := s.getSession(ctx)
	if err != nil {
		return err
	}
	sess.ActiveCharacter = id
	return s.sessions.Update(ctx, sess)
}

// EnsureQuestBoard seeds the deterministic starter board on an empty table.
func (s *Service) EnsureQuestBoard(ctx context.Context) error {
	existing, err := s.quests.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return s.seedBoard(ctx, s.db)
}

func (s *Service) seedBoard(ctx context.Context, db storage.DBTX) error {
	repo := storage.NewQuestRepo(db)
	now := time.Now().UTC()
	for _, tpl := range QuestBoardTemplates() {
		q := storage.Quest{
			ID:          uuid.NewString(),
			Trigger:     string(tpl.Trigger),
			Description: tpl.Description,
			Target:      tpl.Target,
			Reward:      tpl.Reward,
			CreatedAt:   now,
		}
		if err := repo.Insert(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// ClaimQuest pays out a finished quest exactly once, then refreshes the
// board with fresh ids if every quest on it is claimed.
func (s *Service) ClaimQuest(ctx context.Context, questID string) (*storage.Quest, error) {
	var claimed *storage.Quest
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		quests := storage.NewQuestRepo(tx)
		q, err := quests.Get(ctx, questID)
		if err != nil {
			return err
		}
		if q == nil {
			return NotClaimableError{QuestID: questID}
		}
		if q.Claimed {
			return ErrAlreadyClaimed
		}
		if !Claimable(q.Progress, q.Target, q.Claimed) {
			return NotClaimableError{QuestID: questID, Progress: q.Progress, Target: q.Target}
		}

		if err := quests.MarkClaimed(ctx, questID); err != nil {
			return err
		}
		sessions := storage.NewSessionRepo(tx)
		sess, err := sessions.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		sess.Money += q.Reward
		sess.TotalGoldEarned += q.Reward
		if err := sessions.Update(ctx, sess); err != nil {
			return err
		}

		q.Claimed = true
		claimed = q

		all, err := quests.ListAll(ctx)
		if err != nil {
			return err
		}
		for _, other := range all {
			if !other.Claimed {
				return nil
			}
		}
		if err := quests.DeleteAll(ctx); err != nil {
			return err
		}
		return s.seedBoard(ctx, tx)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("claimed quest", zap.String("id", questID), zap.Int64("reward", claimed.Reward))
	return claimed, nil
}

// Hire adds one crew member at the exponential headcount cost. Income per
// second is fixed at hire time.
func (s *Service) Hire(ctx context.Context) (*storage.CrewMember, int64, error) {
	var member storage.CrewMember
	var cost int64
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		crew := storage.NewCrewRepo(tx)
		count, err := crew.Count(ctx)
		if err != nil {
			return err
		}
		cost = HireCost(count)

		sessions := storage.NewSessionRepo(tx)
		sess, err := sessions.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		if sess.Money < cost {
			return InsufficientFundsError{Need: cost, Have: sess.Money}
		}
		sess.Money -= cost
		if err := sessions.Update(ctx, sess); err != nil {
			return err
		}

		member = storage.CrewMember{
			ID:              uuid.NewString(),
			Role:            RoleForHire(count),
			IncomePerSecond: HireIncome(count),
			HiredAt:         time.Now().UTC(),
		}
		return crew.Insert(ctx, member)
	})
	if err != nil {
		return nil, 0, err
	}
	zap.L().Info("hired crew", zap.String("role", member.Role), zap.Int64("income", member.IncomePerSecond), zap.Int64("cost", cost))
	return &member, cost, nil
}

// PassiveTick credits one second of crew income. Money and totalGoldEarned
// move together or not at all.
func (s *Service) PassiveTick(ctx context.Context) (int64, error) {
	income, err := s.crew.TotalIncome(ctx)
	if err != nil {
		return 0, err
	}
	if income == 0 {
		return 0, nil
	}
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		sessions := storage.NewSessionRepo(tx)
		sess, err := sessions.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		sess.Money += income
		sess.TotalGoldEarned += income
		return sessions.Update(ctx, sess)
	})
	if err != nil {
		return 0, err
	}
	return income, nil
}
