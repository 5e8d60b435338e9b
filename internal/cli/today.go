package cli

import (
	"context"
	"fmt"

	"github.com/pvlkuz/moodtrack-cli/internal/dates"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.requireAuth(); err != nil {
		return err
	}

	today := dates.Midnight(ctx.now())
	records, err := ctx.API.ListRange(context.Background(), today, today)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("Запис за сьогодні відсутній.")
		return nil
	}
	fmt.Println(formatRecord(records[0]))
	return nil
}
