package cli

import (
	"context"
	"fmt"

	"github.com/pvlkuz/moodtrack-cli/internal/validation"
)

type LoginCmd struct {
	Email string `arg:"" help:"Email для входу."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if err := validation.Email(c.Email); err != nil {
		return err
	}
	if err := ctx.Session.Login(context.Background(), ctx.API, c.Email); err != nil {
		return err
	}
	fmt.Println("Вхід виконано.")
	return nil
}
