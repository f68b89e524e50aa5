package platform

import (
	"log/slog"
	"time"
)

// Table is a named collection of rows of type T, keyed by a primary key K.
// Implementations provide at least primary-key lookups; btree/hash secondary
// indices are exposed as additional methods by concrete stores (see
// server/platform/sqlitestore) rather than through this minimal interface,
// since the index set differs per row kind.
type Table[K comparable, T any] interface {
	Find(key K) (T, bool)
	Insert(row T) (T, error)
	Update(row T) error
	Delete(key K) error
	Iter(yield func(T) bool)
}

// Store is the transactional table platform the simulation core depends on.
// A Store implementation must guarantee that all reads and writes performed
// between a BeginTx and its matching Commit/Rollback observe one consistent,
// serializable snapshot.
type Store interface {
	// BeginTx starts a new transaction. The caller must call exactly one of
	// Commit or Rollback on the returned handle.
	BeginTx() (StoreTx, error)
}

// StoreTx is a single serializable transaction against a Store.
type StoreTx interface {
	Commit() error
	Rollback() error
}

// Clock supplies the monotonic commit-instant timestamp for a reducer.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock, backed by time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Tx is the per-reducer transaction handle threaded through every operation
// in this module. It bundles the store transaction with the collaborators a
// reducer needs: the committing identity, the commit timestamp, and a
// private RNG. This mirrors the reference world.Tx convention of a single
// handle passed by pointer through a whole call chain instead of a bag of
// loose parameters.
type Tx struct {
	store  StoreTx
	ident  Identity
	now    time.Time
	rng    *RNG
	log    *slog.Logger
	online int
	closed bool
}

// NewTx constructs a Tx for one reducer invocation.
func NewTx(store StoreTx, sender Identity, now time.Time, rng *RNG, log *slog.Logger, onlinePlayers int) *Tx {
	if log == nil {
		log = slog.Default()
	}
	return &Tx{store: store, ident: sender, now: now, rng: rng, log: log, online: onlinePlayers}
}

// closedPanicMessage is the panic value a Tx raises when a reducer holds
// onto it past Commit/Rollback and keeps using it afterwards — a
// goroutine spawned from a reducer that outlives its transaction, for
// instance. server/internal/txguard recovers from exactly this message
// so one stray late use doesn't take the whole scheduler tick down.
const closedPanicMessage = "platform.Tx: use of transaction after transaction finishes is not permitted"

func (tx *Tx) checkOpen() {
	if tx.closed {
		panic(closedPanicMessage)
	}
}

// Sender returns the Identity that invoked the current reducer.
func (tx *Tx) Sender() Identity { tx.checkOpen(); return tx.ident }

// Now returns the commit-instant timestamp of the current reducer.
func (tx *Tx) Now() time.Time { tx.checkOpen(); return tx.now }

// RNG returns the reducer-scoped random source.
func (tx *Tx) RNG() *RNG { tx.checkOpen(); return tx.rng }

// Log returns the structured logger for the current reducer.
func (tx *Tx) Log() *slog.Logger { tx.checkOpen(); return tx.log }

// OnlinePlayers returns the number of currently connected players, used by
// scheduled jobs that suspend when nobody is online to observe them
// (scarcity-aware suspension).
func (tx *Tx) OnlinePlayers() int { tx.checkOpen(); return tx.online }

// RequireSystem enforces this invariant against the Tx's sender.
func (tx *Tx) RequireSystem() error { tx.checkOpen(); return RequireSystem(tx.ident) }

// Commit finalises the underlying store transaction. A Tx may not be used
// again afterwards; any later call panics with closedPanicMessage.
func (tx *Tx) Commit() error {
	tx.checkOpen()
	tx.closed = true
	return tx.store.Commit()
}

// Rollback discards the underlying store transaction. A Tx may not be used
// again afterwards; any later call panics with closedPanicMessage.
func (tx *Tx) Rollback() error {
	tx.checkOpen()
	tx.closed = true
	return tx.store.Rollback()
}
