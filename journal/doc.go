// Package journal implements an append-only, hash-chained log of the events
// of a game session.
//
// # Core Components
//
// Journal: An append-only log with cryptographic hash chaining for tamper
// detection.
//
// Entry: A single recorded event carrying its position, timestamp and
// cryptographic link to the previous entry.
//
// # Properties
//
// The journal provides:
//   - Immutability: entries are never modified once appended
//   - Verifiability: the integrity of the whole chain can be checked at any time
//   - Auditability: the complete history of a session's rounds
//
// # Usage
//
// Create a journal with NewJournal, append events as the session progresses,
// and call Verify before trusting the recorded history. The chain lives in
// memory and dies with the process.
package journal
