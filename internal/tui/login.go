package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.loginForm = &LoginFormModel{}
		m.form = newLoginForm(m.loginForm)
		return m, m.form.Init()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.loginError = ""
		return m, tea.Batch(cmd, m.loginCmd(m.loginForm.Email))
	case huh.StateAborted:
		// Nowhere to go back to from the login screen.
		m.loginForm = &LoginFormModel{}
		m.form = newLoginForm(m.loginForm)
		return m, m.form.Init()
	}
	return m, cmd
}
