package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/pvlkuz/moodtrack-cli/internal/chart"
	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/validation"
)

func newLoginForm(fm *LoginFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&fm.Email).
				Validate(validation.Email),
		),
	).WithTheme(huh.ThemeDracula())
}

func newTelegramForm(fm *TelegramFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Введіть chat_id").
				Placeholder("Наприклад, 123456789").
				Value(&fm.ChatID).
				Validate(func(s string) error {
					_, err := validation.ChatID(s)
					return err
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// newRangeForm edits the chart window. Each bound must parse and fall
// inside [today−1 місяць, сьогодні]; the from ≤ to constraint is applied
// by clamping on submit.
func newRangeForm(fm *RangeFormModel, today time.Time) *huh.Form {
	min, max := chart.RangeBounds(today)
	validateBound := func(s string) error {
		t, err := time.Parse(constants.DateFormat, s)
		if err != nil {
			return fmt.Errorf("очікується дата у форматі РРРР-ММ-ДД")
		}
		if t.Before(min) {
			return fmt.Errorf("не раніше ніж %s", min.Format(constants.DateFormat))
		}
		if t.After(max) {
			return fmt.Errorf("не пізніше ніж %s", max.Format(constants.DateFormat))
		}
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Від").
				Value(&fm.From).
				Validate(validateBound),
			huh.NewInput().
				Title("До").
				Value(&fm.To).
				Validate(validateBound),
		),
	).WithTheme(huh.ThemeDracula())
}
