package cli

import (
	"context"
	"fmt"

	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/validation"
)

type TelegramCmd struct {
	ChatID string `arg:"" help:"Ідентифікатор чату, його підкаже @userinfobot."`
}

func (c *TelegramCmd) Run(ctx *Context) error {
	if err := ctx.requireAuth(); err != nil {
		return err
	}
	id, err := validation.ChatID(c.ChatID)
	if err != nil {
		return err
	}
	if err := ctx.API.RegisterTelegram(context.Background(), id); err != nil {
		return err
	}
	fmt.Println(constants.MsgTelegramOK)
	return nil
}
