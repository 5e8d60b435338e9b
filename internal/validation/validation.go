// Package validation holds the client-side input checks. Anything rejected
// here is surfaced inline and never reaches the network.
package validation

import (
	"strconv"
	"strings"

	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/errors"
	"github.com/pvlkuz/moodtrack-cli/internal/models"
)

// Email checks that the login identifier is present. Token semantics are the
// server's business; the client only refuses an empty submit.
func Email(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.NewValidation(constants.MsgEmailRequired)
	}
	return nil
}

// Icon checks that an icon has been selected and belongs to the fixed set.
func Icon(s string) error {
	if !models.IsValidIcon(s) {
		return errors.NewValidation(constants.MsgIconRequired)
	}
	return nil
}

// ChatID parses the Telegram chat identifier. It must be non-empty and
// numeric.
func ChatID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.NewValidation(constants.MsgChatIDInvalid)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.NewValidation(constants.MsgChatIDInvalid)
	}
	return id, nil
}
