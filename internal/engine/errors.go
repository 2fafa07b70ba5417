package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when an action arrives in a phase
	// that does not permit it. Drivers are expected to swallow it.
	ErrInvalidTransition = errors.New("action not valid in current phase")

	// ErrDecisionPending is returned when a cast is attempted while a
	// resolved catch still awaits keep/sell/release.
	ErrDecisionPending = errors.New("decide on the current catch first")

	ErrAlreadyVIP     = errors.New("already a VIP member")
	ErrAlreadyClaimed = errors.New("quest reward already claimed")
	ErrAlreadyOwned   = errors.New("character already owned")
	ErrNotOwned       = errors.New("character not owned")
	ErrNoPendingCatch = errors.New("no catch awaiting a decision")
)

// InsufficientFundsError reports a purchase the balance cannot cover. The
// refusal leaves money untouched.
type InsufficientFundsError struct {
	Need int64
	Have int64
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("need %d gold, have %d", e.Need, e.Have)
}

// CapacityError reports a Keep refused because the bucket is full.
type CapacityError struct {
	Capacity int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("bucket is full (%d fish)", e.Capacity)
}

// EnergyError reports a cast refused for lack of energy. Distinct from
// CapacityError; the two refusals are worded differently.
type EnergyError struct {
	Need int
	Have int
}

func (e EnergyError) Error() string {
	return fmt.Sprintf("too tired to cast: need %d energy, have %d", e.Need, e.Have)
}

// NotClaimableError reports a claim on a quest that has not reached its
// target yet.
type NotClaimableError struct {
	QuestID  string
	Progress int64
	Target   int64
}

func (e NotClaimableError) Error() string {
	return fmt.Sprintf("quest %s not claimable (%d/%d)", e.QuestID, e.Progress, e.Target)
}
