package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/pvlkuz/moodtrack-cli/internal/api"
	"github.com/pvlkuz/moodtrack-cli/internal/cli"
	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/errors"
	"github.com/pvlkuz/moodtrack-cli/internal/logger"
	"github.com/pvlkuz/moodtrack-cli/internal/session"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"Адреса сервера MoodTrack." env:"MOODTRACK_SERVER" default:"${server}"`
	Debug   bool   `help:"Докладні логи в stderr."`

	Tui      cli.TuiCmd      `cmd:"" help:"Запустити інтерактивний інтерфейс." default:"1"`
	Login    cli.LoginCmd    `cmd:"" help:"Увійти за email."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Завершити сеанс."`
	Today    cli.TodayCmd    `cmd:"" help:"Показати сьогоднішній запис."`
	Log      cli.LogCmd      `cmd:"" help:"Додати запис настрою."`
	History  cli.HistoryCmd  `cmd:"" help:"Показати календар за місяць."`
	Chart    cli.ChartCmd    `cmd:"" help:"Показати графік настрою."`
	Telegram cli.TelegramCmd `cmd:"" help:"Підключити Telegram-бот."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("moodtrack"),
		kong.Description("Щоденник настрою: запис, календар, графік, Telegram-нотифікації"),
		kong.UsageOnError(),
		kong.Vars{
			"version": "v0.1.0",
			"server":  constants.DefaultServer,
		},
	)

	if dir, err := os.UserConfigDir(); err == nil {
		if err := logger.Init(logger.Config{
			Debug:     CLI.Debug,
			ConfigDir: filepath.Join(dir, constants.AppName),
		}); err != nil {
			errors.Fatal(err)
		}
	}

	store := session.NewStore()
	appCtx := &cli.Context{
		API:     api.NewClient(CLI.Server, store),
		Session: store,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
