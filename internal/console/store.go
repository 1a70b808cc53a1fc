package console

import (
	"context"
	"net/http"
	"slices"
	"sync"

	"hrms-lite/internal/pkg/logger"

	"github.com/rs/zerolog"
)

// State is the load state of a collection
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unloaded"
	}
}

// Query scopes a collection fetch. Zero fields are unset.
type Query struct {
	EmployeeID uint
	Date       string
}

// Remote is the request/response service behind one collection
type Remote[T, C, U any] interface {
	List(ctx context.Context, q Query) ([]T, error)
	Create(ctx context.Context, payload C) (T, error)
	Update(ctx context.Context, id uint, payload U) (T, error)
	Delete(ctx context.Context, id uint) error
}

// Snapshot is a point-in-time view of a collection
type Snapshot[T any] struct {
	State   State
	Query   Query
	Records []T
	Err     string
}

// Len returns the number of records
func (s Snapshot[T]) Len() int {
	return len(s.Records)
}

// StoreConfig holds the per-collection messages and identity accessor
type StoreConfig[T any] struct {
	Name           string
	ID             func(T) uint
	LoadFallback   string
	DeleteFallback string
	NotFoundDetail string
}

// Store holds the latest snapshot of one collection and forwards mutations
type Store[T, C, U any] struct {
	remote Remote[T, C, U]
	cfg    StoreConfig[T]
	log    zerolog.Logger

	mu        sync.Mutex
	snap      Snapshot[T]
	listErr   string
	listeners map[int]func(Snapshot[T])
	nextID    int
}

// NewStore creates an unloaded store
func NewStore[T, C, U any](remote Remote[T, C, U], cfg StoreConfig[T]) *Store[T, C, U] {
	return &Store[T, C, U]{
		remote:    remote,
		cfg:       cfg,
		log:       logger.Component("store").With().Str("collection", cfg.Name).Logger(),
		listeners: make(map[int]func(Snapshot[T])),
	}
}

// Snapshot returns a copy of the current snapshot
func (s *Store[T, C, U]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snap
	snap.Records = slices.Clone(s.snap.Records)
	return snap
}

// ListError returns the inline list-level error, empty when none
func (s *Store[T, C, U]) ListError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listErr
}

// DismissError clears the list-level error
func (s *Store[T, C, U]) DismissError() {
	s.mu.Lock()
	s.listErr = ""
	s.mu.Unlock()
}

// Subscribe registers fn to run after every snapshot replacement.
// The returned func removes the subscription.
func (s *Store[T, C, U]) Subscribe(fn func(Snapshot[T])) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Refresh fetches the collection scoped by q and replaces the snapshot.
// Overlapping refreshes are not ordered: the last response to arrive wins.
func (s *Store[T, C, U]) Refresh(ctx context.Context, q Query) (Snapshot[T], error) {
	s.replace(Snapshot[T]{State: StateLoading, Query: q}, true)

	records, err := s.remote.List(ctx, q)
	if err != nil {
		msg := Message(err, s.cfg.LoadFallback)
		s.log.Debug().Err(err).Msg("refresh failed")
		snap := s.replace(Snapshot[T]{State: StateFailed, Query: q, Err: msg}, false)
		s.setListError(msg)
		return snap, err
	}
	if records == nil {
		records = []T{}
	}

	s.log.Debug().Int("records", len(records)).Msg("refreshed")
	return s.replace(Snapshot[T]{State: StateLoaded, Query: q, Records: records}, false), nil
}

// Clear drops the snapshot back to unloaded without a remote call
func (s *Store[T, C, U]) Clear() {
	s.replace(Snapshot[T]{State: StateUnloaded}, true)
}

// Create forwards payload to the remote service. The snapshot is not touched.
func (s *Store[T, C, U]) Create(ctx context.Context, payload C) (T, error) {
	return s.remote.Create(ctx, payload)
}

// Update forwards payload for id to the remote service. The snapshot is not touched.
func (s *Store[T, C, U]) Update(ctx context.Context, id uint, payload U) (T, error) {
	return s.remote.Update(ctx, id, payload)
}

// Remove deletes id after the caller has confirmed it, then refreshes the
// current scope. An id missing from a loaded snapshot fails without a
// remote call. Failures are recorded as the list-level error.
func (s *Store[T, C, U]) Remove(ctx context.Context, id uint) error {
	current := s.Snapshot()
	if current.State == StateLoaded && s.cfg.ID != nil && !slices.ContainsFunc(current.Records, func(r T) bool {
		return s.cfg.ID(r) == id
	}) {
		err := &RemoteRejection{Status: http.StatusNotFound, Detail: s.cfg.NotFoundDetail}
		s.setListError(Message(err, s.cfg.DeleteFallback))
		return err
	}

	if err := s.remote.Delete(ctx, id); err != nil {
		s.log.Debug().Err(err).Uint("id", id).Msg("delete failed")
		s.setListError(Message(err, s.cfg.DeleteFallback))
		return err
	}

	_, _ = s.Refresh(ctx, current.Query)
	return nil
}

func (s *Store[T, C, U]) setListError(msg string) {
	s.mu.Lock()
	s.listErr = msg
	s.mu.Unlock()
}

// replace swaps the snapshot wholesale and notifies subscribers
func (s *Store[T, C, U]) replace(snap Snapshot[T], clearErr bool) Snapshot[T] {
	s.mu.Lock()
	s.snap = snap
	if clearErr {
		s.listErr = ""
	}
	listeners := make([]func(Snapshot[T]), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		view := snap
		view.Records = slices.Clone(snap.Records)
		fn(view)
	}
	snap.Records = slices.Clone(snap.Records)
	return snap
}
