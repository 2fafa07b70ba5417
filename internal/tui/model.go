package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rahulchina/Fisher-manan/internal/engine"
	"github.com/Rahulchina/Fisher-manan/internal/storage"
	"github.com/Rahulchina/Fisher-manan/internal/ui"
)

const (
	powerTickEvery   = 50 * time.Millisecond
	passiveTickEvery = time.Second
)

type gameModel struct {
	ctx     context.Context
	svc     *engine.Service
	machine *engine.Machine

	width  int
	height int

	sess       *storage.Session
	quests     []storage.Quest
	invCount   int
	maxCap     int
	crewIncome int64

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	sess       *storage.Session
	quests     []storage.Quest
	invCount   int
	maxCap     int
	crewIncome int64
	err        error
}

// timerMsg delivers one machine timer; stale tokens are dropped by the
// machine itself.
type timerMsg struct {
	token uint64
}

type powerTickMsg struct{}

type passiveFireMsg struct{}

type passiveMsg struct {
	income int64
	err    error
}

type decidedMsg struct {
	log string
	err error
}

func newGameModel(ctx context.Context, svc *engine.Service) gameModel {
	return gameModel{
		ctx:     ctx,
		svc:     svc,
		machine: svc.NewMachine(),
		loading: true,
		lastLog: "Ready to cast...",
	}
}

func (m gameModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tickPassive())
}

func (m gameModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		sess, err := m.svc.Session(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		quests, err := m.svc.QuestRepo().ListAll(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		count, err := m.svc.InventoryRepo().Count(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		income, err := m.svc.CrewRepo().TotalIncome(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{
			sess:       sess,
			quests:     quests,
			invCount:   count,
			maxCap:     engine.MaxCapacityFor(sess.BucketLevel),
			crewIncome: income,
		}
	}
}

func scheduleTimer(t engine.Timer) tea.Cmd {
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return timerMsg{token: t.Token}
	})
}

func tickPower() tea.Cmd {
	return tea.Tick(powerTickEvery, func(time.Time) tea.Msg {
		return powerTickMsg{}
	})
}

func tickPassive() tea.Cmd {
	return tea.Tick(passiveTickEvery, func(time.Time) tea.Msg {
		return passiveFireMsg{}
	})
}

func (m gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.sess = msg.sess
		m.quests = msg.quests
		m.invCount = msg.invCount
		m.maxCap = msg.maxCap
		m.crewIncome = msg.crewIncome
		return m, nil

	case timerMsg:
		outcome, next := m.machine.Expire(msg.token)
		switch outcome {
		case engine.OutcomeSplash:
			m.lastLog = "Waiting for a bite..."
		case engine.OutcomeBite:
			m.lastLog = "SOMETHING BIT! Reel it in! (r)"
		case engine.OutcomeEscaped:
			m.lastLog = "The fish got away..."
		case engine.OutcomeCaught:
			c := m.machine.Pending()
			m.lastLog = fmt.Sprintf("Caught a %s %s! keep (k), sell (s) or release (x)?", c.Rarity, c.Name)
		}
		if next != nil {
			return m, scheduleTimer(*next)
		}
		return m, nil

	case powerTickMsg:
		if m.machine.Phase() == engine.PhaseAiming {
			m.machine.TickPower()
			return m, tickPower()
		}
		return m, nil

	case passiveFireMsg:
		return m, func() tea.Msg {
			income, err := m.svc.PassiveTick(m.ctx)
			return passiveMsg{income: income, err: err}
		}

	case passiveMsg:
		if msg.err != nil {
			m.lastLog = "Crew payout failed: " + msg.err.Error()
			return m, tickPassive()
		}
		if msg.income > 0 && m.sess != nil {
			m.sess.Money += msg.income
			m.sess.TotalGoldEarned += msg.income
		}
		return m, tickPassive()

	case decidedMsg:
		if msg.err != nil {
			m.lastLog = refusalText(msg.err)
			return m, nil
		}
		m.lastLog = msg.log
		return m, m.loadCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m gameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "c", " ":
		t, err := m.svc.Cast(m.ctx, m.machine)
		if err != nil {
			m.lastLog = refusalText(err)
			return m, nil
		}
		m.lastLog = "Casting line..."
		return m, tea.Batch(scheduleTimer(t), m.loadCmd())

	case "a":
		if m.machine.Phase() == engine.PhaseAiming {
			t, err := m.svc.ReleaseAim(m.ctx, m.machine)
			if err != nil {
				m.lastLog = refusalText(err)
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Cast at %d%% power!", m.machine.LockedPower())
			return m, tea.Batch(scheduleTimer(t), m.loadCmd())
		}
		if err := m.svc.BeginAim(m.ctx, m.machine); err != nil {
			m.lastLog = refusalText(err)
			return m, nil
		}
		m.lastLog = "Aiming... press a again to cast"
		return m, tickPower()

	case "r", "enter":
		t, err := m.machine.Reel()
		if err != nil {
			// Ignored outside the bite window.
			return m, nil
		}
		m.lastLog = "Reeling in..."
		return m, scheduleTimer(t)

	case "k":
		return m, func() tea.Msg {
			c, err := m.svc.KeepPending(m.ctx, m.machine)
			if err != nil {
				return decidedMsg{err: err}
			}
			return decidedMsg{log: fmt.Sprintf("Kept %s.", c.Name)}
		}

	case "s":
		return m, func() tea.Msg {
			credit, c, err := m.svc.SellPending(m.ctx, m.machine)
			if err != nil {
				return decidedMsg{err: err}
			}
			return decidedMsg{log: fmt.Sprintf("Sold %s for %d G!", c.Name, credit)}
		}

	case "x":
		c, err := m.svc.ReleasePending(m.machine)
		if err != nil {
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Released the %s. Ready to cast...", c.Name)
		return m, nil

	case "g":
		id := m.firstClaimable()
		if id == "" {
			m.lastLog = "No quest ready to claim."
			return m, nil
		}
		return m, func() tea.Msg {
			q, err := m.svc.ClaimQuest(m.ctx, id)
			if err != nil {
				return decidedMsg{err: err}
			}
			return decidedMsg{log: fmt.Sprintf("Quest complete: +%d G!", q.Reward)}
		}
	}
	return m, nil
}

func (m gameModel) firstClaimable() string {
	for _, q := range m.quests {
		if engine.Claimable(q.Progress, q.Target, q.Claimed) {
			return q.ID
		}
	}
	return ""
}

// refusalText words core refusals for the HUD; every one of them leaves
// state untouched.
func refusalText(err error) string {
	var capErr engine.CapacityError
	if errors.As(err, &capErr) {
		return "Bucket is full! Sell some fish to catch more."
	}
	var enErr engine.EnergyError
	if errors.As(err, &enErr) {
		return "Too tired to cast. Eat something at the shop."
	}
	var fundsErr engine.InsufficientFundsError
	if errors.As(err, &fundsErr) {
		return "Not enough gold."
	}
	switch {
	case errors.Is(err, engine.ErrDecisionPending):
		return "Decide on your catch first: keep (k), sell (s) or release (x)."
	case errors.Is(err, engine.ErrInvalidTransition):
		return ""
	}
	return err.Error()
}

func (m gameModel) View() string {
	if m.err != nil {
		return ui.IconWarn + " " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading || m.sess == nil {
		return "Loading...\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderScene())
	b.WriteString("\n")
	b.WriteString(m.renderQuests())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m gameModel) renderHeader() string {
	parts := []string{
		ui.Heading(ui.IconAnchor, "Nano Angler"),
		ui.Gold.Render(fmt.Sprintf("%d G", m.sess.Money)),
		ui.Energy(m.sess.Energy, engine.MaxEnergy),
		fmt.Sprintf("%s %d/%d", ui.IconBucket, m.invCount, m.maxCap),
	}
	if m.sess.VIP {
		parts = append(parts, ui.BadgeVIP)
	}
	if m.crewIncome > 0 {
		parts = append(parts, ui.Muted.Render(fmt.Sprintf("+%d G/s crew", m.crewIncome)))
	}
	return strings.Join(parts, "  ")
}

func (m gameModel) renderScene() string {
	var lines []string
	lines = append(lines, ui.Muted.Render("status: ")+ui.H2.Render(m.machine.Phase().String()))
	lines = append(lines, m.lastLog)

	if m.machine.Phase() == engine.PhaseAiming {
		lines = append(lines, "power "+ui.ProgressBar(int64(m.machine.Power()), 100, 20))
	}

	if c := m.machine.Pending(); c != nil {
		stars := strings.Repeat("★", c.Rarity.Stars())
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("%s %s %s %s", ui.IconFish, ui.RarityText(c.Rarity.String()), c.Name, ui.Gold.Render(stars)))
		lines = append(lines, ui.Dim.Render(`"`+c.Description+`"`))
		lines = append(lines, ui.Gold.Render(fmt.Sprintf("Value: %d G", c.Value)))
	}

	return ui.Panel.Render(strings.Join(lines, "\n"))
}

func (m gameModel) renderQuests() string {
	lines := []string{ui.PanelTitle.Render(ui.IconQuest + " Daily Quests")}
	for _, q := range m.quests {
		shown := q.Progress
		if shown > q.Target {
			shown = q.Target
		}
		mark := " "
		switch {
		case q.Claimed:
			mark = ui.IconDone
		case engine.Claimable(q.Progress, q.Target, q.Claimed):
			mark = ui.IconSparkle
		}
		lines = append(lines, fmt.Sprintf("%s %s %s %d/%d  %s",
			mark,
			q.Description,
			ui.ProgressBar(q.Progress, q.Target, 12),
			shown, q.Target,
			ui.Gold.Render(fmt.Sprintf("+%d G", q.Reward)),
		))
	}
	return ui.Panel.Render(strings.Join(lines, "\n"))
}

func (m gameModel) renderFooter() string {
	return ui.Dim.Render("c/space: cast  a: aim cast  r: reel  k/s/x: keep/sell/release  g: claim quest  q: quit")
}
