// Package txguard recovers from the specific panic a platform.Tx raises when
// a reducer holds onto it past commit/rollback and keeps using it afterwards
// (a goroutine spawned from a reducer that outlives its transaction, for
// instance). It exists so that one stray late use doesn't take the whole
// scheduler tick down with it.
package txguard

import "github.com/driftlands/survivalcore/server/platform"

// ClosedPanicMessage is the panic value platform.Tx raises on use-after-close.
// It must match the unexported closedPanicMessage constant in
// server/platform/store.go exactly, since recover() matches on the panic
// value, not a type.
const ClosedPanicMessage = "platform.Tx: use of transaction after transaction finishes is not permitted"

// Run executes fn, reporting ok=false instead of propagating the panic if tx
// was already closed.
func Run(tx *platform.Tx, fn func()) (ok bool) {
	return run(tx, fn)
}

// Value is Run for a function that produces a result.
func Value[T any](tx *platform.Tx, fn func() T) (value T, ok bool) {
	ok = run(tx, func() {
		value = fn()
	})
	return
}

func run(tx *platform.Tx, fn func()) (ok bool) {
	if tx == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			if msg, str := r.(string); str && msg == ClosedPanicMessage {
				ok = false
				return
			}
			panic(r)
		}
	}()
	fn()
	return true
}
