package adminclient

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrEditInProgress means the collection already has an open edit
	// session; close or cancel it before starting another.
	ErrEditInProgress = errors.New("another edit session is already open")

	// ErrCommitInFlight means Commit was called while a previous Commit
	// on the same session had not resolved yet.
	ErrCommitInFlight = errors.New("a commit is already in flight")

	// ErrSessionClosed means the session already committed or was
	// cancelled.
	ErrSessionClosed = errors.New("edit session is closed")
)

// EditSession is the working copy of one record being created or edited.
// A collection allows one open session at a time, and a session allows
// one outstanding Commit at a time.
type EditSession[T any] struct {
	collection *Collection[T]

	mu        sync.Mutex
	draft     T
	id        int64
	persisted bool
	closed    bool

	committing atomic.Bool
}

// StartCreate opens a session for a record that does not exist on the
// server yet. The template carries any prefilled defaults.
func (c *Collection[T]) StartCreate(template T) (*EditSession[T], error) {
	if !c.beginEdit() {
		return nil, ErrEditInProgress
	}

	return &EditSession[T]{
		collection: c,
		draft:      template,
	}, nil
}

// StartEdit opens a session on an existing record, copying its current
// fields into the draft.
func (c *Collection[T]) StartEdit(id int64) (*EditSession[T], error) {
	record, ok := c.Find(id)
	if !ok {
		return nil, &Error{Kind: ErrorNotFound, Message: "record is not in the collection"}
	}

	if !c.beginEdit() {
		return nil, ErrEditInProgress
	}

	return &EditSession[T]{
		collection: c,
		draft:      record,
		id:         id,
		persisted:  true,
	}, nil
}

func (s *EditSession[T]) Draft() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Persisted reports whether the draft corresponds to an existing server
// record. A fresh create draft stays unpersisted until Commit succeeds.
func (s *EditSession[T]) Persisted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persisted
}

// Mutate edits the draft in place. Only the draft changes; the
// collection is untouched until Commit succeeds.
func (s *EditSession[T]) Mutate(fn func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	fn(&s.draft)
}

// Cancel discards the draft and releases the collection's edit slot.
func (s *EditSession[T]) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.collection.endEdit()
}

// Commit validates the draft and persists it: create when the draft has
// never been saved, update otherwise. On success the collection is
// updated and the session closes. On failure the session stays open
// with the draft intact so the user can correct and resubmit.
func (s *EditSession[T]) Commit() (T, error) {
	var zero T

	if !s.committing.CompareAndSwap(false, true) {
		return zero, ErrCommitInFlight
	}
	defer s.committing.Store(false)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return zero, ErrSessionClosed
	}
	draft := s.draft
	id := s.id
	persisted := s.persisted
	s.mu.Unlock()

	resource := s.collection.resource
	if resource.Validate != nil {
		if err := resource.Validate(draft); err != nil {
			return zero, err
		}
	}

	if persisted {
		if err := Update(s.collection.client, resource, id, draft); err != nil {
			return zero, err
		}
		s.collection.ApplyUpdate(id, draft)
	} else {
		newID, err := Create(s.collection.client, resource, draft)
		if err != nil {
			return zero, err
		}
		resource.SetID(&draft, newID)
		s.collection.ApplyCreate(draft)
	}

	s.mu.Lock()
	s.draft = draft
	s.closed = true
	s.mu.Unlock()
	s.collection.endEdit()

	return draft, nil
}
