// Package totp derives time-based one-time codes from otpauth:// URIs stored
// on data cards. Codes are computed on demand for display; secrets never
// leave the parsed key.
package totp

import (
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const defaultPeriod = 30 * time.Second

// Code is one generated one-time password together with its validity window.
type Code struct {
	Value     string
	Period    time.Duration
	ExpiresIn time.Duration
}

// Generate parses an otpauth:// URI and computes the code valid at the given
// instant. Period, digit count and algorithm come from the URI, with the RFC
// defaults when absent.
func Generate(uri string, at time.Time) (Code, error) {
	if strings.TrimSpace(uri) == "" {
		return Code{}, fmt.Errorf("empty otpauth uri")
	}

	key, err := otp.NewKeyFromURL(uri)
	if err != nil {
		return Code{}, fmt.Errorf("parsing otpauth uri: %w", err)
	}
	if key.Type() != "totp" {
		return Code{}, fmt.Errorf("unsupported otp type %q", key.Type())
	}

	period := time.Duration(key.Period()) * time.Second
	if period <= 0 {
		period = defaultPeriod
	}

	digits := key.Digits()
	if digits == 0 {
		digits = otp.DigitsSix
	}

	value, err := totp.GenerateCodeCustom(key.Secret(), at, totp.ValidateOpts{
		Period:    uint(period / time.Second),
		Digits:    digits,
		Algorithm: key.Algorithm(),
	})
	if err != nil {
		return Code{}, fmt.Errorf("generating code: %w", err)
	}

	elapsed := at.Unix() % int64(period/time.Second)
	return Code{
		Value:     value,
		Period:    period,
		ExpiresIn: period - time.Duration(elapsed)*time.Second,
	}, nil
}
