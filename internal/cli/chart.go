package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pvlkuz/moodtrack-cli/internal/chart"
	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/errors"
)

type ChartCmd struct {
	From string `help:"Початок діапазону (РРРР-ММ-ДД)."`
	To   string `help:"Кінець діапазону (РРРР-ММ-ДД)."`
}

func (c *ChartCmd) Run(ctx *Context) error {
	if err := ctx.requireAuth(); err != nil {
		return err
	}

	from, to := chart.DefaultRange(ctx.now())
	if c.From != "" {
		t, err := time.Parse(constants.DateFormat, c.From)
		if err != nil {
			return errors.NewValidation("Дата має бути у форматі РРРР-ММ-ДД")
		}
		from = t
	}
	if c.To != "" {
		t, err := time.Parse(constants.DateFormat, c.To)
		if err != nil {
			return errors.NewValidation("Дата має бути у форматі РРРР-ММ-ДД")
		}
		to = t
	}
	min, max := chart.RangeBounds(ctx.now())
	from, to = chart.ClampRange(from, to, min, max)

	records, err := ctx.API.ListRange(context.Background(), from, to)
	if err != nil {
		return err
	}

	fmt.Print(chart.Render(chart.BuildSeries(from, to, records)))
	return nil
}
