package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rgreen/ecotrack/internal/store"
)

// Tracker is the per-user record store plus the operations over it. All
// methods are safe for concurrent use: the append-then-rewrite persistence
// model needs one writer at a time, so every operation holds the tracker's
// mutex for its full duration.
type Tracker struct {
	user    string
	store   store.BlobStore
	logger  zerolog.Logger
	now     func() time.Time
	mu      sync.Mutex
	records RecordSet
	prefs   Preferences
}

// Option customizes a Tracker.
type Option func(*Tracker)

// WithClock injects the time source used for entry timestamps and window
// calculations. Tests use this to pin "now".
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Tracker) { t.logger = logger }
}

// New creates a Tracker for user and loads its state from bs.
//
// Loading is tolerant by contract: a missing, unreadable or undecodable
// document degrades to the empty defaults with a logged warning. New never
// fails because of storage problems.
func New(ctx context.Context, user string, bs store.BlobStore, opts ...Option) *Tracker {
	t := &Tracker{
		user:   user,
		store:  bs,
		logger: zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.records = loadBlob(ctx, t, footprintBlob, newRecordSet())
	t.records.normalize()
	t.prefs = loadBlob(ctx, t, preferencesBlob, defaultPreferences())

	return t
}

// loadBlob reads and decodes one document, falling back to def on any
// failure. Only an actual read or decode problem is logged; a blob that was
// simply never written is the normal first-run case.
func loadBlob[T any](ctx context.Context, t *Tracker, name string, def T) T {
	data, err := t.store.Read(ctx, t.user, name)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			t.logger.Warn().Err(err).Str("blob", name).Str("user", t.user).
				Msg("could not read document, starting from defaults")
		}
		return def
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		t.logger.Warn().Err(err).Str("blob", name).Str("user", t.user).
			Msg("could not decode document, starting from defaults")
		return def
	}

	return out
}

// saveBlob encodes and writes one document. Persistence failures are
// non-fatal: they are logged and reported as false, and the in-memory state
// keeps the appended entry either way.
func (t *Tracker) saveBlob(ctx context.Context, name string, doc any) bool {
	data, err := json.Marshal(doc)
	if err != nil {
		t.logger.Error().Err(err).Str("blob", name).Str("user", t.user).
			Msg("could not encode document")
		return false
	}

	if err := t.store.Write(ctx, t.user, name, data); err != nil {
		t.logger.Warn().Err(err).Str("blob", name).Str("user", t.user).
			Msg("could not persist document")
		return false
	}

	return true
}

// User returns the user this tracker records for.
func (t *Tracker) User() string { return t.user }

// Records returns a snapshot of the record set. The category slices are
// copied so callers cannot mutate recorded entries.
func (t *Tracker) Records() RecordSet {
	t.mu.Lock()
	defer t.mu.Unlock()

	snapshot := t.records
	snapshot.Transportation = append([]TransportEntry{}, t.records.Transportation...)
	snapshot.Energy = append([]EnergyEntry{}, t.records.Energy...)
	snapshot.Food = append([]FoodEntry{}, t.records.Food...)
	snapshot.Purchases = append([]PurchaseEntry{}, t.records.Purchases...)
	return snapshot
}

// Preferences returns the current user preferences.
func (t *Tracker) Preferences() Preferences {
	t.mu.Lock()
	defer t.mu.Unlock()

	prefs := t.prefs
	prefs.Interests = append([]string{}, t.prefs.Interests...)
	return prefs
}

// SetPreferences merges recognized keys from updates into the stored
// preferences and persists them. The returned flag reports whether the
// write reached storage; the in-memory update always applies.
func (t *Tracker) SetPreferences(ctx context.Context, updates map[string]any) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.prefs.merge(updates)
	return t.saveBlob(ctx, preferencesBlob, t.prefs)
}
