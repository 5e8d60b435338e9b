package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/dates"
	"github.com/pvlkuz/moodtrack-cli/internal/errors"
	"github.com/pvlkuz/moodtrack-cli/internal/tui/components/calendar"
)

type HistoryCmd struct {
	Month string `short:"m" help:"Місяць у форматі РРРР-ММ, типово поточний."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.requireAuth(); err != nil {
		return err
	}

	today := dates.Midnight(ctx.now())
	month := dates.MonthStart(today)
	if c.Month != "" {
		t, err := time.Parse(constants.MonthFormat, c.Month)
		if err != nil {
			return errors.NewValidation("Місяць має бути у форматі РРРР-ММ")
		}
		if t.After(month) {
			return errors.NewValidation("Не можна переглянути майбутній місяць")
		}
		month = t
	}

	from, to := dates.MonthGrid(month)
	records, err := ctx.API.ListRange(context.Background(), from, to)
	if err != nil {
		return err
	}

	icons := make(map[string]string, len(records))
	for _, rec := range records {
		icons[rec.Date.Key()] = rec.Icon
	}

	days := calendar.BuildDays(month, time.Time{}, today, icons)
	fmt.Println(month.Format(constants.MonthFormat))
	fmt.Println(calendar.Render(month, days, calendar.Options{ShowHeader: true}))
	return nil
}
