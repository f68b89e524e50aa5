// Package platform defines the abstraction the simulation core depends on: a
// transactional table store, a scheduler for periodic
// and one-shot jobs, and the per-reducer collaborators (RNG, clock, identity)
// the simulation core needs. Nothing in this package touches a network
// protocol or a concrete database; server/platform/sqlitestore supplies one
// reference implementation.
package platform

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Identity is the opaque, stable handle the platform assigns to a connection.
// The simulation core never constructs one itself; it only compares and
// stores values handed to it.
type Identity uuid.UUID

// String implements fmt.Stringer.
func (id Identity) String() string { return uuid.UUID(id).String() }

// System is the zero Identity: the sender the platform passes when invoking
// a scheduled reducer, and also the sentinel used wherever "no owner" is
// needed (an unclaimed loot container, a wild animal with no tamer). The two
// meanings share one value deliberately — a record nobody owns is exactly
// the kind of record only the scheduler should be allowed to mutate directly.
// Every scheduled reducer's first check must be that the sender equals
// System; RequireSystem implements that check once so every scheduled
// handler shares the same error text.
var System Identity

// NilIdentity is an alias for System kept for call sites that mean "no
// owner" rather than "the scheduler"; both read the same zero value.
var NilIdentity = System

// ErrNotSystem is returned when a scheduled reducer is invoked by anyone
// other than the platform itself.
var ErrNotSystem = errors.New("can only be called by the scheduler")

// RequireSystem enforces that sender is the platform's own scheduler identity.
func RequireSystem(sender Identity) error {
	if sender != System {
		return ErrNotSystem
	}
	return nil
}

// EpochZero is the sentinel "not scheduled" timestamp. Fields like
// Tree.RespawnAt use it to mean "alive, not depleted"; a value greater than
// EpochZero means "depleted, will restore at this instant".
var EpochZero = time.Unix(0, 0).UTC()

// Alive reports whether a respawn-sentinel timestamp indicates the entity is
// currently alive/harvestable.
func Alive(respawnAt time.Time) bool { return !respawnAt.After(EpochZero) }

// Ripe reports whether a depleted entity's respawn timer has elapsed.
func Ripe(respawnAt, now time.Time) bool {
	return respawnAt.After(EpochZero) && !respawnAt.After(now)
}

// RNG is the per-reducer random source. The platform seeds a fresh one for
// every reducer invocation so outcomes are reproducible given the same seed
// pair, without reducers sharing mutable global random state.
type RNG struct {
	r *rand.Rand
}

// NewRNG wraps a seeded PRNG for one reducer invocation.
func NewRNG(seed1, seed2 uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// Float32 returns a pseudo-random float32 in [0, 1). A Float64 draw close
// enough to 1 rounds to 1 in float32, so such draws are retried.
func (r *RNG) Float32() float32 {
	for {
		if f := float32(r.r.Float64()); f < 1 {
			return f
		}
	}
}

// IntRange returns a pseudo-random int in [lo, hi].
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// DurationRange returns a pseudo-random Duration in [lo, hi].
func (r *RNG) DurationRange(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(r.r.Int64N(int64(hi-lo+1)))
}

// Float32Range returns a pseudo-random float32 in [lo, hi).
func (r *RNG) Float32Range(lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + float32(r.r.Float64())*(hi-lo)
}

// Chance reports true with the given probability, in [0, 1].
func (r *RNG) Chance(p float32) bool { return r.Float32() < p }

// Float64Range returns a pseudo-random float64 in [lo, hi), used by
// damage rolls and other double-precision quantities.
func (r *RNG) Float64Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Float64()*(hi-lo)
}
