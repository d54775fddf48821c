package otp

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducesSixDigitCode(t *testing.T) {
	s := NewStore(DefaultTTL)

	code, err := s.Generate("9876543210")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)
}

func TestCheckAndConsumeHappyPath(t *testing.T) {
	s := NewStore(DefaultTTL)

	code, err := s.Generate("9876543210")
	require.NoError(t, err)

	require.NoError(t, s.Check("9876543210", code))
	s.Consume("9876543210")

	// Consumed: the same code must not verify a second time.
	assert.ErrorIs(t, s.Check("9876543210", code), ErrNoChallenge)
}

func TestCheckWrongCodeKeepsChallengeAlive(t *testing.T) {
	s := NewStore(DefaultTTL)

	code, err := s.Generate("9876543210")
	require.NoError(t, err)

	assert.ErrorIs(t, s.Check("9876543210", "000000"), ErrCodeMismatch)
	assert.NoError(t, s.Check("9876543210", code))
}

func TestCheckUnknownPhone(t *testing.T) {
	s := NewStore(DefaultTTL)
	assert.ErrorIs(t, s.Check("1111111111", "123456"), ErrNoChallenge)
}

func TestExpiredChallengeFailsRegardlessOfCode(t *testing.T) {
	s := NewStore(5 * time.Minute)

	code, err := s.Generate("9876543210")
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(6 * time.Minute) }
	assert.ErrorIs(t, s.Check("9876543210", code), ErrNoChallenge)
}

func TestGenerateOverwritesPriorChallenge(t *testing.T) {
	s := NewStore(DefaultTTL)

	first, err := s.Generate("9876543210")
	require.NoError(t, err)
	second, err := s.Generate("9876543210")
	require.NoError(t, err)

	if first != second {
		assert.ErrorIs(t, s.Check("9876543210", first), ErrCodeMismatch)
	}
	assert.NoError(t, s.Check("9876543210", second))
}
