// Package identity holds the per-request slot for the caller identity resolved by the
// authorization gate. The slot travels inside the request's context.Context, so two
// requests never share one.
package identity

import (
	"context"
	"sync"
)

// slotKey is a context key type for storing the identity slot.
type slotKey struct{}

// Slot is a mutable, optional identity scoped to one request.
// It is written by the authorization gate and read then cleared by the rate-limit gate.
type Slot struct {
	mu     sync.Mutex
	userID string
	set    bool
}

// NewContext returns a copy of ctx carrying a fresh, empty slot.
func NewContext(ctx context.Context) (context.Context, *Slot) {
	slot := &Slot{}
	return context.WithValue(ctx, slotKey{}, slot), slot
}

// FromContext retrieves the slot stored in ctx.
// Returns (nil, false) if the request was not scoped with NewContext.
func FromContext(ctx context.Context) (*Slot, bool) {
	slot, ok := ctx.Value(slotKey{}).(*Slot)
	return slot, ok && slot != nil
}

// Set stores the resolved identity.
func (s *Slot) Set(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	s.set = true
}

// Get returns the identity and whether one is present.
// An empty identity returned by the auth service counts as absent.
func (s *Slot) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID, s.set && s.userID != ""
}

// Clear empties the slot.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = ""
	s.set = false
}
