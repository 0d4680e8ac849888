// Package catalog holds the curated condition knowledge base. A Catalog is an
// immutable snapshot built once from static data; the Store publishes
// snapshots atomically so a deliberate hot reload never disturbs in-flight
// analyses.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/symptom-triage-server/internal/domain"
)

// Catalog is an immutable, ordered collection of condition records. All
// accessors are safe for arbitrarily many concurrent callers because nothing
// is mutated after construction.
type Catalog struct {
	records     []*domain.ConditionRecord
	byID        map[string]*domain.ConditionRecord
	fingerprint string
}

// New validates and indexes a set of condition records. A validation failure
// is a load-time fatal condition for callers; no partially valid catalog is
// ever returned.
func New(records []*domain.ConditionRecord) (*Catalog, error) {
	byID := make(map[string]*domain.ConditionRecord, len(records))
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("catalog load: %w", err)
		}
		if _, exists := byID[rec.ID]; exists {
			return nil, fmt.Errorf("catalog load: duplicate record ID %q", rec.ID)
		}
		byID[rec.ID] = rec
	}

	return &Catalog{
		records:     records,
		byID:        byID,
		fingerprint: fingerprint(records),
	}, nil
}

// fingerprint identifies the snapshot content for cache keying: same record
// set, same fingerprint, across processes.
func fingerprint(records []*domain.ConditionRecord) string {
	h := sha256.New()
	for _, rec := range records {
		h.Write([]byte(rec.ID))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)[:8])
}

// MustNew is New for compiled-in data, where a malformed record is a
// programming error that must abort startup.
func MustNew(records []*domain.ConditionRecord) *Catalog {
	c, err := New(records)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns the full ordered record sequence.
func (c *Catalog) All() []*domain.ConditionRecord {
	return c.records
}

// Len returns the number of records in the snapshot.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Fingerprint returns the content identity of the snapshot.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// ByID returns the record with the given ID, or domain.ErrNotFound.
func (c *Catalog) ByID(id string) (*domain.ConditionRecord, error) {
	rec, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("condition %q: %w", id, domain.ErrNotFound)
	}
	return rec, nil
}

// ByCategory returns the ordered subsequence of records in a category.
func (c *Catalog) ByCategory(cat domain.Category) []*domain.ConditionRecord {
	out := make([]*domain.ConditionRecord, 0)
	for _, rec := range c.records {
		if rec.Category == cat {
			out = append(out, rec)
		}
	}
	return out
}

// ByRegion returns the ordered subsequence of records applicable to a region.
// A record tagged national matches every region filter.
func (c *Catalog) ByRegion(region domain.Region) []*domain.ConditionRecord {
	out := make([]*domain.ConditionRecord, 0)
	for _, rec := range c.records {
		if rec.Region.Covers(region) {
			out = append(out, rec)
		}
	}
	return out
}

// Search returns records whose any localized display name or any symptom name
// contains the text, case-insensitively.
func (c *Catalog) Search(text string) []*domain.ConditionRecord {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return []*domain.ConditionRecord{}
	}

	out := make([]*domain.ConditionRecord, 0)
	for _, rec := range c.records {
		if recordMatches(rec, needle) {
			out = append(out, rec)
		}
	}
	return out
}

func recordMatches(rec *domain.ConditionRecord, needle string) bool {
	for _, name := range rec.DisplayNames {
		if strings.Contains(strings.ToLower(name), needle) {
			return true
		}
	}
	for i := range rec.Symptoms {
		if strings.Contains(strings.ToLower(rec.Symptoms[i].Name), needle) {
			return true
		}
	}
	return false
}

// Store publishes catalog snapshots. Readers call Snapshot once per request
// and keep using that snapshot for the request lifetime; Swap installs a new
// snapshot atomically for subsequent requests.
type Store struct {
	logger  *logrus.Logger
	current atomic.Pointer[Catalog]
}

// NewStore creates a store seeded with an initial snapshot.
func NewStore(initial *Catalog, logger *logrus.Logger) *Store {
	s := &Store{logger: logger}
	s.current.Store(initial)
	return s
}

// Snapshot returns the currently published catalog.
func (s *Store) Snapshot() *Catalog {
	return s.current.Load()
}

// Swap atomically publishes a new snapshot. In-flight requests keep the
// snapshot they started with.
func (s *Store) Swap(next *Catalog) {
	prev := s.current.Swap(next)
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"previous_records": prev.Len(),
			"new_records":      next.Len(),
		}).Info("Published new catalog snapshot")
	}
}
