// Package chain implements a tamper-evident, hash-chained, append-only
// ledger as an immutable in-memory value.
//
// Every record folds the self hash of its predecessor into its own digest,
// so any alteration, truncation, reordering, or insertion anywhere in the
// history invalidates every subsequent link and is detected by Inspect.
//
// A Ledger is a value: Append never mutates its input and returns a brand-new
// Ledger sharing the unchanged record prefix with the old one. Readers may
// hold and validate a snapshot with no synchronization. Correctness of the
// chain depends on each append observing the true current head, so callers
// must externally serialize appends against the same ledger (see
// internal/session for the reference implementation of that discipline);
// this package performs no locking itself.
//
// Domains parameterize the engine through a Profile: the record id prefix,
// the set of known record types, and the exact field-tuple layout hashed for
// each record. One engine, one hash layout per domain, byte-for-byte.
package chain
