package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/validation"
)

func (m Model) updateTelegram(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		// The form's Validate already guarantees a numeric id; a second
		// parse keeps the submit path honest.
		chatID, err := validation.ChatID(m.telegramForm.ChatID)
		if err != nil {
			m.telegramMessage = err.Error()
			m.telegramSuccess = false
			m.telegramForm = &TelegramFormModel{}
			m.form = newTelegramForm(m.telegramForm)
			return m, m.form.Init()
		}
		m.telegramMessage = ""
		return m, tea.Batch(cmd, m.registerTelegramCmd(chatID))
	case huh.StateAborted:
		return m.enterState(constants.StateEntry)
	}
	return m, cmd
}
