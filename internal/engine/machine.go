package engine

import (
	mrand "math/rand"
	"time"
)

// Phase is the catch lifecycle state. The string form is the status value
// handed to whatever renders the scene.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAiming
	PhaseCasting
	PhaseWaiting
	PhaseBited
	PhaseReeling
	PhaseCaught
)

func (p Phase) String() string {
	switch p {
	case PhaseAiming:
		return "aiming"
	case PhaseCasting:
		return "casting"
	case PhaseWaiting:
		return "waiting"
	case PhaseBited:
		return "bited"
	case PhaseReeling:
		return "reeling"
	case PhaseCaught:
		return "caught"
	default:
		return "idle"
	}
}

const (
	castDuration = 1000 * time.Millisecond
	reelDuration = 1000 * time.Millisecond
	escapeWindow = 2000 * time.Millisecond

	baseWait         = 3000 * time.Millisecond
	waitJitter       = 2000 * time.Millisecond
	minWait          = 500 * time.Millisecond
	waitPerBaitLevel = 400 * time.Millisecond

	powerStep = 5
)

// Loadout is a snapshot of everything outside the machine that shapes one
// cast: upgrade levels, character bonuses and the resources gating the cast.
// Drivers fetch a fresh one immediately before casting.
type Loadout struct {
	RodLevel   int
	BaitLevel  int
	DepthLevel int
	VIP        bool

	LuckBonus     int
	WaitReduction time.Duration

	InventoryCount int
	MaxCapacity    int
	Energy         int
	EnergyCost     int
}

// Timer is a scheduling request handed back to the driver. The driver calls
// Expire with the token once the delay elapses; tokens from superseded
// schedules are ignored, so a reel that lands just before the escape timer
// fires always wins.
type Timer struct {
	Token uint64
	Delay time.Duration
}

// Outcome reports what an expired timer did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSplash
	OutcomeBite
	OutcomeEscaped
	OutcomeCaught
)

// Machine is the cast→wait→bite→reel→caught state machine. It owns no real
// timers and touches no storage; resource mutation stays with the service so
// an escaped fish cannot change anything.
type Machine struct {
	roller *Roller
	rng    *mrand.Rand

	phase   Phase
	token   uint64
	loadout Loadout

	power    int
	powerDir int
	locked   int

	pending *Catch
}

func NewMachine(roller *Roller, rng *mrand.Rand) *Machine {
	if rng == nil {
		rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))
	}
	return &Machine{roller: roller, rng: rng, powerDir: 1}
}

func (m *Machine) Phase() Phase    { return m.phase }
func (m *Machine) Pending() *Catch { return m.pending }
func (m *Machine) Power() int      { return m.power }

// LockedPower is the value captured when the last aimed cast was released.
func (m *Machine) LockedPower() int { return m.locked }

func (m *Machine) gateCast(lo Loadout) error {
	if lo.InventoryCount >= lo.MaxCapacity {
		return CapacityError{Capacity: lo.MaxCapacity}
	}
	if lo.Energy < lo.EnergyCost {
		return EnergyError{Need: lo.EnergyCost, Have: lo.Energy}
	}
	return nil
}

// StartAiming enters the power-meter hold. The cast gates run now; a full
// bucket or empty energy bar refuses the hold itself.
func (m *Machine) StartAiming(lo Loadout) error {
	if m.pending != nil {
		return ErrDecisionPending
	}
	if m.phase != PhaseIdle {
		return ErrInvalidTransition
	}
	if err := m.gateCast(lo); err != nil {
		return err
	}
	m.loadout = lo
	m.phase = PhaseAiming
	m.power = 0
	m.powerDir = 1
	return nil
}

// TickPower advances the oscillating power meter one step and returns the
// new value. Only meaningful while aiming.
func (m *Machine) TickPower() int {
	if m.phase != PhaseAiming {
		return m.power
	}
	m.power += powerStep * m.powerDir
	if m.power >= 100 {
		m.power = 100
		m.powerDir = -1
	} else if m.power <= 0 {
		m.power = 0
		m.powerDir = 1
	}
	return m.power
}

// ReleaseCast locks the power value and throws the line.
func (m *Machine) ReleaseCast() (Timer, error) {
	if m.phase != PhaseAiming {
		return Timer{}, ErrInvalidTransition
	}
	m.locked = m.power
	return m.throw()
}

// QuickCast throws without the power meter, locking power at zero.
func (m *Machine) QuickCast(lo Loadout) (Timer, error) {
	if m.pending != nil {
		return Timer{}, ErrDecisionPending
	}
	if m.phase != PhaseIdle {
		return Timer{}, ErrInvalidTransition
	}
	if err := m.gateCast(lo); err != nil {
		return Timer{}, err
	}
	m.loadout = lo
	m.locked = 0
	return m.throw()
}

func (m *Machine) throw() (Timer, error) {
	m.phase = PhaseCasting
	return m.schedule(castDuration), nil
}

// Reel answers a bite. Any other phase ignores it.
func (m *Machine) Reel() (Timer, error) {
	if m.phase != PhaseBited {
		return Timer{}, ErrInvalidTransition
	}
	m.phase = PhaseReeling
	return m.schedule(reelDuration), nil
}

// Expire delivers a timer fire. Stale tokens are dropped, which is what
// resolves the escape-timer vs reel race: once Reel reschedules, the old
// escape token no longer matches.
func (m *Machine) Expire(token uint64) (Outcome, *Timer) {
	if token != m.token {
		return OutcomeNone, nil
	}
	switch m.phase {
	case PhaseCasting:
		m.phase = PhaseWaiting
		t := m.schedule(m.waitDuration())
		return OutcomeSplash, &t
	case PhaseWaiting:
		m.phase = PhaseBited
		t := m.schedule(escapeWindow)
		return OutcomeBite, &t
	case PhaseBited:
		// The fish got away. No roll, no mutation anywhere.
		m.phase = PhaseIdle
		m.token++
		return OutcomeEscaped, nil
	case PhaseReeling:
		c := m.roller.Resolve(RollBonuses{
			RodLevel:   m.loadout.RodLevel,
			DepthLevel: m.loadout.DepthLevel,
			VIP:        m.loadout.VIP,
			LuckBonus:  m.loadout.LuckBonus,
			PowerBonus: PowerBonus(m.locked),
		})
		m.pending = &c
		m.phase = PhaseCaught
		m.token++
		return OutcomeCaught, nil
	default:
		return OutcomeNone, nil
	}
}

// ClearPending finalizes the keep/sell/release decision and re-arms the rod.
// The service calls it only after its own mutation succeeded, so a refused
// Keep leaves the fish on the line.
func (m *Machine) ClearPending() error {
	if m.pending == nil {
		return ErrNoPendingCatch
	}
	m.pending = nil
	if m.phase == PhaseCaught {
		m.phase = PhaseIdle
	}
	return nil
}

// waitDuration derives the bite delay from bait level and character bonus,
// clamped to the 500ms floor no matter how stacked the loadout is.
func (m *Machine) waitDuration() time.Duration {
	d := baseWait
	d -= time.Duration(m.loadout.BaitLevel) * waitPerBaitLevel
	d -= m.loadout.WaitReduction
	d += time.Duration(m.rng.Int63n(int64(waitJitter)))
	if d < minWait {
		d = minWait
	}
	return d
}

func (m *Machine) schedule(d time.Duration) Timer {
	m.token++
	return Timer{Token: m.token, Delay: d}
}

// PowerBonus maps a locked power value onto its flat luck bonus. The 90 and
// 50 breakpoints are strict.
func PowerBonus(power int) int {
	switch {
	case power > 90:
		return 10
	case power > 50:
		return 5
	default:
		return 0
	}
}
