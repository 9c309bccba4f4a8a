package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Identifiable is implemented (on the pointer type) by every record stored
// in a collection. Record IDs are unique within their collection for the
// lifetime of the record and are never reused after deletion — they are
// random UUIDs, not sequence numbers.
type Identifiable interface {
	RecordID() string
	SetRecordID(id string)
}

// Collection provides typed access to the JSON array stored under a single
// slot key. T is the record value type; PT is its pointer type, which must
// implement Identifiable.
//
// Every operation reads the whole array, works on it in memory, and (for
// mutations) writes the whole array back — a linear scan per call, exactly
// the contract the consumers are written against. Records keep insertion
// order (oldest first) unless the caller re-sorts.
type Collection[T any, PT interface {
	*T
	Identifiable
}] struct {
	store *Store
	key   string
}

// NewCollection binds a typed collection to its slot key:
//
//	users := store.NewCollection[model.User, *model.User](s, repository.KeyUsers)
func NewCollection[T any, PT interface {
	*T
	Identifiable
}](s *Store, key string) *Collection[T, PT] {
	return &Collection[T, PT]{store: s, key: key}
}

// Key returns the slot key this collection is stored under.
func (c *Collection[T, PT]) Key() string { return c.key }

// All returns every record in insertion order. An absent or malformed slot
// yields an empty slice.
func (c *Collection[T, PT]) All(ctx context.Context) []T {
	return Get(ctx, c.store, c.key, []T{})
}

// Replace overwrites the whole collection. Used by callers that filter or
// re-order the array wholesale (e.g. admin moderation sweeps).
func (c *Collection[T, PT]) Replace(ctx context.Context, records []T) error {
	return Put(ctx, c.store, c.key, records)
}

// Add appends record to the collection, generating a fresh UUID when the
// record's ID is unset, and returns the stored record. Records are never
// deduplicated by content, only addressed by explicit ID.
func (c *Collection[T, PT]) Add(ctx context.Context, record T) (T, error) {
	if PT(&record).RecordID() == "" {
		PT(&record).SetRecordID(uuid.NewString())
	}

	records := c.All(ctx)
	records = append(records, record)
	if err := c.Replace(ctx, records); err != nil {
		return record, fmt.Errorf("adding record to %s: %w", c.key, err)
	}
	return record, nil
}

// FindByID returns the first record whose ID matches, with ok=false when
// none does.
func (c *Collection[T, PT]) FindByID(ctx context.Context, id string) (T, bool) {
	for _, record := range c.All(ctx) {
		if PT(&record).RecordID() == id {
			return record, true
		}
	}
	var zero T
	return zero, false
}

// Find returns all records, in stored order, for which pred holds.
func (c *Collection[T, PT]) Find(ctx context.Context, pred func(T) bool) []T {
	matched := []T{}
	for _, record := range c.All(ctx) {
		if pred(record) {
			matched = append(matched, record)
		}
	}
	return matched
}

// Update shallow-merges patch onto the record with the given ID: fields
// present in patch overwrite, all other fields are retained. The "id" key
// is ignored — record IDs are immutable. Returns ok=false, with the stored
// collection untouched, when no record matches.
func (c *Collection[T, PT]) Update(ctx context.Context, id string, patch map[string]any) (T, bool) {
	var zero T

	records := c.All(ctx)
	for i := range records {
		if PT(&records[i]).RecordID() != id {
			continue
		}
		if err := mergePatch(&records[i], patch); err != nil {
			c.store.logger.Error("store: applying patch failed",
				"key", c.key, "id", id, "error", err.Error())
			return zero, false
		}
		// mergePatch strips "id" from the encoded patch, but guard the
		// invariant anyway in case a record type aliases the field.
		PT(&records[i]).SetRecordID(id)
		if err := c.Replace(ctx, records); err != nil {
			// The record exists; only the write failed. Callers see the
			// same false as not-found, so the distinction lives here.
			c.store.logger.Error("store: writing updated record failed",
				"key", c.key, "id", id, "error", err.Error())
			return zero, false
		}
		return records[i], true
	}
	return zero, false
}

// Remove deletes the record with the given ID and reports whether the
// collection shrank. Removing an unknown ID leaves the collection
// unchanged.
func (c *Collection[T, PT]) Remove(ctx context.Context, id string) bool {
	records := c.All(ctx)
	kept := make([]T, 0, len(records))
	for _, record := range records {
		if PT(&record).RecordID() != id {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(records) {
		return false
	}
	if err := c.Replace(ctx, kept); err != nil {
		return false
	}
	return true
}

// mergePatch applies a shallow JSON merge of patch onto record: the patch
// is round-tripped through encoding/json and unmarshalled onto the existing
// value, so only the keys present in patch change.
func mergePatch[T any](record *T, patch map[string]any) error {
	if len(patch) == 0 {
		return nil
	}

	cleaned := make(map[string]any, len(patch))
	for k, v := range patch {
		if k == "id" {
			continue
		}
		cleaned[k] = v
	}

	data, err := json.Marshal(cleaned)
	if err != nil {
		return fmt.Errorf("encoding patch: %w", err)
	}
	if err := json.Unmarshal(data, record); err != nil {
		return fmt.Errorf("applying patch: %w", err)
	}
	return nil
}
