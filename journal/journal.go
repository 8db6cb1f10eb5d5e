package journal

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// EventKind classifies what happened at the table.
type EventKind string

const (
	KindGenesis EventKind = "genesis"
	KindCommit  EventKind = "commit"
	KindShuffle EventKind = "shuffle"
	KindDeal    EventKind = "deal"
	KindHit     EventKind = "hit"
	KindStand   EventKind = "stand"
	KindReveal  EventKind = "reveal"
	KindOutcome EventKind = "outcome"
)

// Event is one recorded happening of a session. Round is 0 for events that
// belong to the session rather than to a round.
type Event struct {
	Round  int               `json:"round"`
	Kind   EventKind         `json:"kind"`
	Detail map[string]string `json:"detail,omitempty"`
}

// Entry is a single event in the chain.
type Entry struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Event     Event  `json:"event"`
}

type Journal struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewJournal creates a journal with an initialized genesis entry. The
// genesis entry has index 0 and previous hash "0".
func NewJournal() *Journal {
	j := &Journal{
		entries: make([]Entry, 0),
	}

	genesis := Entry{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Event:     Event{Kind: KindGenesis},
	}
	genesis.Hash = j.calculateHash(genesis)
	j.entries = append(j.entries, genesis)

	return j
}

// Append records a new event at the end of the chain. It computes the entry
// hash, validates the entry against the latest one and appends it. Returns
// an error if the resulting entry would break the chain.
func (j *Journal) Append(event Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	latest := j.entries[len(j.entries)-1]

	entry := Entry{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Event:     event,
	}
	entry.Hash = j.calculateHash(entry)

	if err := j.validateEntry(entry, latest); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}

	j.entries = append(j.entries, entry)

	return nil
}

// Latest returns the most recently appended entry.
func (j *Journal) Latest() (Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.entries) == 0 {
		return Entry{}, fmt.Errorf("journal is empty")
	}

	return j.entries[len(j.entries)-1], nil
}

// GetByIndex retrieves an entry by its position in the chain. Returns an
// error if the index is out of range.
func (j *Journal) GetByIndex(index int) (*Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if index < 0 || index >= len(j.entries) {
		return nil, fmt.Errorf("index out of range")
	}

	return &j.entries[index], nil
}

// Len returns the number of entries in the chain, genesis included.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return len(j.entries)
}

// Entries returns a copy of the chain in append order.
func (j *Journal) Entries() []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Verify validates the integrity of the entire chain: the genesis entry's
// previous hash and own hash, then every later entry's hash, index
// continuity and previous-hash linkage.
func (j *Journal) Verify() error {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.entries) == 0 {
		return fmt.Errorf("empty journal")
	}

	genesis := j.entries[0]
	if genesis.PrevHash != "0" {
		return fmt.Errorf("invalid genesis entry")
	}
	if expected := j.calculateHash(genesis); genesis.Hash != expected {
		return fmt.Errorf("entry 0 invalid: invalid hash: expected %s, got %s", expected, genesis.Hash)
	}

	for i := 1; i < len(j.entries); i++ {
		current := j.entries[i]
		previous := j.entries[i-1]

		if err := j.validateEntry(current, previous); err != nil {
			return fmt.Errorf("entry %d invalid: %w", i, err)
		}
	}

	return nil
}

// validateEntry verifies that an entry is valid relative to its
// predecessor. It checks index continuity, previous-hash linkage and
// current hash validity.
func (j *Journal) validateEntry(current, previous Entry) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash := j.calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	return nil
}

// calculateHash computes the SHA256 hash of an entry from its index,
// timestamp, previous hash and JSON-marshaled event.
func (j *Journal) calculateHash(entry Entry) string {
	eventBytes, _ := json.Marshal(entry.Event)

	data := fmt.Sprintf("%d%d%s%s",
		entry.Index,
		entry.Timestamp,
		entry.PrevHash,
		string(eventBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
