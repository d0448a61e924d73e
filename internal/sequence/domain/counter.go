// Package domain defines the counter documents used to issue sequential identifiers.
package domain

import (
	"github.com/sijosaji/kitchensink/internal/errors"
)

// CollectionName is the collection holding one counter document per sequence.
const CollectionName = "database_sequences"

// Counter is the persisted state of one named sequence.
// It is created lazily by upsert and only ever mutated by an atomic increment.
type Counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// ErrCounterMissing indicates the store returned no counter after an increment.
var ErrCounterMissing = errors.Wrap(errors.ErrNotFound, "sequence counter missing")
