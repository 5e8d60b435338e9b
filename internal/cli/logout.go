package cli

import "fmt"

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	ctx.Session.Logout()
	fmt.Println("Сеанс завершено.")
	return nil
}
