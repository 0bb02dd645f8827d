package attempts

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/pkg/clock"
)

type history struct {
	records   []Record
	expiresAt time.Time
}

// InMemoryRepository implements Repository in process memory
type InMemoryRepository struct {
	mu      sync.Mutex
	clock   clock.Clock
	entries map[string]*history
}

// NewInMemory creates an in-memory attempt history. A nil clock uses real time.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock:   c,
		entries: make(map[string]*history),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Append records an attempt
func (r *InMemoryRepository) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	h := r.live(input.Record.SourceCharacterID, now)
	if h == nil {
		h = &history{}
		r.entries[input.Record.SourceCharacterID] = h
	}

	h.records = slices.Insert(h.records, 0, *input.Record)
	if len(h.records) > MaxPerCharacter {
		h.records = h.records[:MaxPerCharacter]
	}
	h.expiresAt = now.Add(normalizeTTL(input.TTL))

	return &AppendOutput{Record: input.Record}, nil
}

// List returns a character's attempts, newest first
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.live(input.CharacterID, r.clock.Now())
	if h == nil {
		return &ListOutput{Records: []*Record{}}, nil
	}

	n := min(normalizeLimit(input.Limit), len(h.records))
	out := make([]*Record, n)
	for i := range n {
		rec := h.records[i]
		out[i] = &rec
	}
	return &ListOutput{Records: out}, nil
}

// live returns the character's history unless it has expired, dropping
// expired entries. Callers hold mu.
func (r *InMemoryRepository) live(characterID string, now time.Time) *history {
	h, ok := r.entries[characterID]
	if !ok {
		return nil
	}
	if !now.Before(h.expiresAt) {
		delete(r.entries, characterID)
		return nil
	}
	return h
}
