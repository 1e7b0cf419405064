// Package store provides SQLite-backed storage for saved filters.
//
// A saved filter is a named, ordered list of predicates. Each predicate is
// stored as its registry kind name, field, canonical JSON operand and the
// fragment it serialized to when saved, so a reloaded filter can be
// checked against what was stored.
//
// # Invariants
//
//   - Names are NFC normalised before they are stored or looked up.
//   - Predicates are read back ORDER BY position ASC.
//   - A filter is only written if every predicate serializes.
//   - fingerprint is a domain-separated SHA-256 over the predicates, so
//     two filters with identical content share it regardless of name.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
