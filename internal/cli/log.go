package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/dates"
	"github.com/pvlkuz/moodtrack-cli/internal/errors"
	"github.com/pvlkuz/moodtrack-cli/internal/validation"
)

type LogCmd struct {
	Icon    string `arg:"" help:"Іконка настрою (😡 😢 😞 😐 😊 😃)."`
	Comment string `short:"c" help:"Коментар до запису."`
	Date    string `short:"d" help:"Дата у форматі РРРР-ММ-ДД, типово сьогодні."`
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.requireAuth(); err != nil {
		return err
	}
	if err := validation.Icon(c.Icon); err != nil {
		return err
	}

	var date *time.Time
	if c.Date != "" {
		t, err := time.Parse(constants.DateFormat, c.Date)
		if err != nil {
			return errors.NewValidation("Дата має бути у форматі РРРР-ММ-ДД")
		}
		if t.After(dates.Midnight(ctx.now())) {
			return errors.NewValidation("Не можна додати запис на майбутню дату")
		}
		date = &t
	}

	rec, err := ctx.API.Create(context.Background(), c.Icon, c.Comment, date)
	if err != nil {
		return err
	}
	fmt.Println(formatRecord(rec))
	return nil
}
