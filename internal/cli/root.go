package cli

import (
	"fmt"
	"time"

	"github.com/pvlkuz/moodtrack-cli/internal/api"
	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/errors"
	"github.com/pvlkuz/moodtrack-cli/internal/models"
	"github.com/pvlkuz/moodtrack-cli/internal/session"
)

// Context carries the shared dependencies into every command.
type Context struct {
	API     *api.Client
	Session *session.Store

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// requireAuth rejects protected commands when no session token is present.
func (c *Context) requireAuth() error {
	if !c.Session.IsAuthorized() {
		return errors.NewValidation("Ви не авторизовані. Виконайте `moodtrack login <email>`.")
	}
	return nil
}

func formatRecord(rec models.Record) string {
	comment := rec.Comment
	if comment == "" {
		comment = constants.MsgNoComment
	}
	return fmt.Sprintf("%s  %s  %s", rec.Date.Key(), rec.Icon, comment)
}
