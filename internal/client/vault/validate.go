package vault

import (
	"errors"
	"regexp"
	"strings"

	"github.com/vaultdesk/vaultdesk/internal/client/models"
)

// Client-side form validation, applied before any backend call so obviously
// bad input never costs a round trip. Field-level messages surface through
// the validation notice.
var (
	errTitleRequired = errors.New("title is required")
	errBadExpiry     = errors.New("expiry must be in MM/YY format")
	errBadCVC        = errors.New("security code must be 3 or 4 digits")
)

var (
	expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvcRe    = regexp.MustCompile(`^[0-9]{3,4}$`)
)

func validateBankCardInput(in models.BankCardInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return errTitleRequired
	}
	if in.Expiry != "" && !expiryRe.MatchString(in.Expiry) {
		return errBadExpiry
	}
	if in.CVC != "" && !cvcRe.MatchString(in.CVC) {
		return errBadCVC
	}
	return nil
}
