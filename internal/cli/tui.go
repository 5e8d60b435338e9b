package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvlkuz/moodtrack-cli/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.API, ctx.Session, ctx.API), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
