package service

import (
	"io"
	"time"
)

// SetRandom replaces the entropy source used for activation tokens
func (s *ActivationService) SetRandom(r io.Reader) {
	s.random = r
}

// SetClock replaces the clock used for redemption and ownership timestamps
func (s *ActivationService) SetClock(now func() time.Time) {
	s.now = now
}

// SetClock replaces the clock used for ownership timestamps
func (s *TenantService) SetClock(now func() time.Time) {
	s.now = now
}
