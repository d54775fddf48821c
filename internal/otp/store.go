package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// DefaultTTL is how long a generated code stays valid.
const DefaultTTL = 5 * time.Minute

var (
	// ErrNoChallenge means no outstanding code exists for the phone, or the
	// code has expired. Callers cannot distinguish the two.
	ErrNoChallenge = errors.New("otp expired or invalid")
	// ErrCodeMismatch means a live challenge exists but the code is wrong.
	ErrCodeMismatch = errors.New("invalid otp")
)

type challenge struct {
	code      string
	expiresAt time.Time
}

// Store keeps at most one outstanding OTP challenge per phone number in
// process memory. Challenges do not survive a restart; that durability gap is
// accepted, a multi-instance deployment needs a shared store instead.
type Store struct {
	mu         sync.Mutex
	ttl        time.Duration
	challenges map[string]challenge

	now func() time.Time
}

// NewStore creates an empty store. A non-positive ttl falls back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:        ttl,
		challenges: make(map[string]challenge),
		now:        time.Now,
	}
}

// Generate creates a 6-digit code for phone, replacing any outstanding
// challenge, and returns it for delivery.
func (s *Store) Generate(phone string) (string, error) {
	code, err := randomCode()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[phone] = challenge{
		code:      code,
		expiresAt: s.now().Add(s.ttl),
	}
	return code, nil
}

// Check validates code against the outstanding challenge for phone without
// consuming it. A missing or expired challenge yields ErrNoChallenge, a wrong
// code ErrCodeMismatch; in both cases further attempts stay possible. Callers
// must Consume the challenge once the whole verification flow has succeeded,
// so that later precondition failures leave the code usable for a retry.
func (s *Store) Check(phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.challenges[phone]
	if !ok {
		return ErrNoChallenge
	}
	if s.now().After(ch.expiresAt) {
		delete(s.challenges, phone)
		return ErrNoChallenge
	}
	if ch.code != code {
		return ErrCodeMismatch
	}
	return nil
}

// Consume removes the outstanding challenge for phone, if any.
func (s *Store) Consume(phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, phone)
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
