// Package collision detects feature ID collisions while a geometry set is built.
package collision

import (
	"fmt"

	"github.com/arloliu/geoblob/errs"
)

// Tracker records the feature IDs and names added to a geometry set.
//
// Caller-supplied IDs must be unique. Names are hashed to IDs; two different
// names with the same hash are a collision, which the set resolves by storing
// the names payload instead of failing.
type Tracker struct {
	names        map[uint64]string // ID → name, "" for caller-supplied IDs
	seen         map[string]struct{}
	namesList    []string // insertion order, matches the index order
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[uint64]string),
		seen:  make(map[string]struct{}),
	}
}

// TrackID tracks a caller-supplied feature ID.
// A repeated ID cannot be told apart from its first use and is rejected.
func (t *Tracker) TrackID(id uint64) error {
	if _, exists := t.names[id]; exists {
		return fmt.Errorf("%w: feature ID 0x%016x", errs.ErrFeatureAlreadyAdded, id)
	}

	t.names[id] = ""

	return nil
}

// TrackName tracks a feature name and its hash.
//
// Empty names are invalid and repeated names are rejected. A different name
// with an already used hash only sets the collision flag.
func (t *Tracker) TrackName(name string, id uint64) error {
	if name == "" {
		return errs.ErrInvalidFeatureName
	}
	if _, dup := t.seen[name]; dup {
		return fmt.Errorf("%w: %q", errs.ErrFeatureAlreadyAdded, name)
	}

	if _, exists := t.names[id]; exists {
		t.hasCollision = true
	} else {
		t.names[id] = name
	}

	t.seen[name] = struct{}{}
	t.namesList = append(t.namesList, name)

	return nil
}

// HasCollision reports whether two tracked names share a hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in insertion order.
func (t *Tracker) Names() []string {
	return t.namesList
}
