package totp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 6238 test secret ("12345678901234567890" in base32).
const testURI = "otpauth://totp/Acme:alex?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=Acme"

func TestGenerate_RFC6238Vector(t *testing.T) {
	code, err := Generate(testURI, time.Unix(59, 0))
	require.NoError(t, err)

	assert.Equal(t, "287082", code.Value)
	assert.Equal(t, 30*time.Second, code.Period)
	assert.Equal(t, time.Second, code.ExpiresIn, "59s into the epoch leaves 1s of the second window")
}

func TestGenerate_WindowBoundary(t *testing.T) {
	atStart, err := Generate(testURI, time.Unix(60, 0))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, atStart.ExpiresIn)

	within, err := Generate(testURI, time.Unix(75, 0))
	require.NoError(t, err)
	assert.Equal(t, atStart.Value, within.Value, "same window yields the same code")
	assert.Equal(t, 15*time.Second, within.ExpiresIn)
}

func TestGenerate_CustomPeriod(t *testing.T) {
	uri := "otpauth://totp/Acme:alex?secret=GEZDGNBVGEZDGNBVGEZDGNBVGEZDGNBV&period=60"

	code, err := Generate(uri, time.Unix(30, 0))
	require.NoError(t, err)

	assert.Equal(t, time.Minute, code.Period)
	assert.Equal(t, 30*time.Second, code.ExpiresIn)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate("", time.Now())
	assert.Error(t, err)

	_, err = Generate("   ", time.Now())
	assert.Error(t, err)

	_, err = Generate("not a uri at all %%%", time.Now())
	assert.Error(t, err)

	_, err = Generate("otpauth://hotp/Acme:alex?secret=GEZDGNBVGEZDGNBVGEZDGNBVGEZDGNBV", time.Now())
	assert.Error(t, err, "counter-based keys are not supported")
}
