package components

import "time"

// ActiveEffect is a running power-up effect
// Charges is only meaningful for KindShield
type ActiveEffect struct {
	Kind      ItemKind
	ExpiresAt time.Duration
	Charges   int
}

// Remaining returns time left before expiry, never negative
func (e ActiveEffect) Remaining(now time.Duration) time.Duration {
	if e.ExpiresAt <= now {
		return 0
	}
	return e.ExpiresAt - now
}
