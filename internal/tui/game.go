package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rahulchina/Fisher-manan/internal/engine"
)

// RunGame opens the interactive fishing session.
func RunGame(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newGameModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
