package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Nano Angler theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconAnchor  = "⚓"
	IconFish    = "🐟"
	IconSparkle = "✨"
	IconGold    = "🪙"
	IconBucket  = "🪣"
	IconQuest   = "📜"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconShop    = "🏪"
	IconCrew    = "🧑‍🤝‍🧑"
	IconCrown   = "👑"
	IconBook    = "📖"
)

var (
	cPrimary = lipgloss.Color("39")  // water blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cEpic    = lipgloss.Color("135") // purple
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)

	RarityCommonStyle    = lipgloss.NewStyle().Foreground(cMuted)
	RarityRareStyle      = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	RarityEpicStyle      = lipgloss.NewStyle().Bold(true).Foreground(cEpic)
	RarityLegendaryStyle = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeVIP = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("VIP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// RarityText renders a rarity name in its tier color.
func RarityText(rarity string) string {
	switch rarity {
	case "Legendary":
		return RarityLegendaryStyle.Render(rarity)
	case "Epic":
		return RarityEpicStyle.Render(rarity)
	case "Rare":
		return RarityRareStyle.Render(rarity)
	default:
		return RarityCommonStyle.Render(rarity)
	}
}

// ProgressBar renders a fixed-width quest progress bar. Display clamps at
// full; the underlying progress value never does.
func ProgressBar(progress, target int64, width int) string {
	if width < 4 {
		width = 4
	}
	if target <= 0 {
		target = 1
	}
	filled := int(progress * int64(width) / target)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if progress >= target {
		return Good.Render(bar)
	}
	return H2.Render(bar)
}

func Energy(current, max int) string {
	s := fmt.Sprintf("%s %d/%d", IconBolt, current, max)
	if current < 20 {
		return Bad.Render(s)
	}
	return Warn.Render(s)
}
