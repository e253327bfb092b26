// Package application contains use-case orchestration services.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/ericfisherdev/grocerylist/internal/domain/model"
	"github.com/ericfisherdev/grocerylist/internal/domain/port/driven"
)

// Command names reported to the CommandRecorder.
const (
	CommandSubmit    = "submit"
	CommandBeginEdit = "begin_edit"
	CommandDelete    = "delete"
	CommandClear     = "clear"
)

// User-facing notification texts.
const (
	msgEmptyInput  = "Please enter an item"
	msgNoChange    = "No edits have been made"
	msgCleared     = "Cleared List"
	msgNotFound    = "That item is no longer on the list"
	msgSaveFailed  = "Could not save the list, changes may be lost on restart"
	msgClearFailed = "Could not clear the saved list"
)

// Result is the discriminated outcome of a single ListService command.
// Err is non-nil only for OutcomeFailed and carries the wrapped cause.
type Result struct {
	Outcome model.Outcome
	Entry   model.Entry
	Message string
	Kind    model.NoticeKind
	Err     error
}

// SessionState is a snapshot of the edit session used to render the form.
// Draft holds the current value of the target entry while editing.
type SessionState struct {
	Mode     model.EditMode
	TargetID string
	Draft    string
}

// ListService owns the entry store and the edit session and is the single
// entry point for user commands. Commands are serialized by a mutex so that
// each one runs to completion before the next begins.
type ListService struct {
	mu        sync.Mutex
	store     *EntryStore
	session   *EditSession
	presenter driven.ListPresenter
	notifier  driven.Notifier
	recorder  driven.CommandRecorder
	logger    *slog.Logger
}

// NewListService creates a ListService. recorder may be nil.
func NewListService(
	store *EntryStore,
	presenter driven.ListPresenter,
	notifier driven.Notifier,
	recorder driven.CommandRecorder,
	logger *slog.Logger,
) *ListService {
	return &ListService{
		store:     store,
		session:   NewEditSession(),
		presenter: presenter,
		notifier:  notifier,
		recorder:  recorder,
		logger:    logger,
	}
}

// Load rehydrates the store from persistence and renders every entry.
// It is called once at startup.
func (s *ListService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Load(ctx); err != nil {
		return fmt.Errorf("load list: %w", err)
	}

	s.presenter.Reset()
	for _, e := range s.store.List() {
		s.presenter.RenderEntry(e)
	}
	s.presenter.SetContainerVisible(s.store.Len() > 0)
	s.session.Reset()

	s.logger.Info("list loaded", "entries", s.store.Len())
	return nil
}

// Entries returns the current entries in display order.
func (s *ListService) Entries() []model.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.List()
}

// Session returns a snapshot of the edit session.
func (s *ListService) Session() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := SessionState{Mode: s.session.Mode(), TargetID: s.session.TargetID()}
	if e, ok := s.store.Get(state.TargetID); ok && s.session.Editing() {
		state.Draft = e.Value
	}
	return state
}

// Submit handles a form submission. Leading and trailing whitespace is
// ignored. An empty value leaves the session untouched; any other value
// creates or updates an entry depending on the mode and then resets the
// session to Creating.
func (s *ListService) Submit(ctx context.Context, value string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	value = strings.TrimSpace(value)
	if value == "" {
		return s.finish(CommandSubmit, Result{
			Outcome: model.OutcomeEmptyInput,
			Message: msgEmptyInput,
			Kind:    model.NoticeDanger,
		})
	}

	defer s.session.Reset()

	if !s.session.Editing() {
		return s.finish(CommandSubmit, s.create(ctx, value))
	}
	return s.finish(CommandSubmit, s.update(ctx, s.session.TargetID(), value))
}

// BeginEdit switches the form to edit the entry with the given id. The
// returned entry carries the value to prefill.
func (s *ListService) BeginEdit(id string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.store.Get(id)
	if !ok {
		s.logger.Warn("edit requested for unknown entry", "id", id)
		return s.finish(CommandBeginEdit, Result{
			Outcome: model.OutcomeNotFound,
			Message: msgNotFound,
			Kind:    model.NoticeDanger,
		})
	}

	s.session.BeginEdit(id)
	return s.finish(CommandBeginEdit, Result{Outcome: model.OutcomeEditStarted, Entry: entry})
}

// CancelEdit returns the form to Creating without touching any entry.
func (s *ListService) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Reset()
}

// Delete removes the entry with the given id and always resets the session.
func (s *ListService) Delete(ctx context.Context, id string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.session.Reset()

	removed, err := s.store.Remove(ctx, id)
	if errors.Is(err, ErrNotFound) {
		s.logger.Warn("delete requested for unknown entry", "id", id)
		return s.finish(CommandDelete, Result{
			Outcome: model.OutcomeNotFound,
			Message: msgNotFound,
			Kind:    model.NoticeDanger,
		})
	}

	s.presenter.RemoveEntry(removed.ID)
	if s.store.Len() == 0 {
		s.presenter.SetContainerVisible(false)
	}

	if err != nil {
		return s.finish(CommandDelete, s.failed(removed, msgSaveFailed, err))
	}

	return s.finish(CommandDelete, Result{
		Outcome: model.OutcomeRemoved,
		Entry:   removed,
		Message: fmt.Sprintf("%s has been removed", removed.Value),
		Kind:    model.NoticeSuccess,
	})
}

// Clear removes every entry, deletes the persisted record, and resets the
// session.
func (s *ListService) Clear(ctx context.Context) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.session.Reset()

	err := s.store.Clear(ctx)

	s.presenter.Reset()
	s.presenter.SetContainerVisible(false)

	if err != nil {
		return s.finish(CommandClear, s.failed(model.Entry{}, msgClearFailed, err))
	}

	return s.finish(CommandClear, Result{
		Outcome: model.OutcomeCleared,
		Message: msgCleared,
		Kind:    model.NoticeSuccess,
	})
}

func (s *ListService) create(ctx context.Context, value string) Result {
	entry, err := s.store.Create(ctx, value)
	if errors.Is(err, ErrEmptyInput) {
		return Result{Outcome: model.OutcomeEmptyInput, Message: msgEmptyInput, Kind: model.NoticeDanger}
	}

	s.presenter.RenderEntry(entry)
	s.presenter.SetContainerVisible(true)

	if err != nil {
		return s.failed(entry, msgSaveFailed, err)
	}

	return Result{
		Outcome: model.OutcomeCreated,
		Entry:   entry,
		Message: fmt.Sprintf("%s has been added to the list", entry.Value),
		Kind:    model.NoticeSuccess,
	}
}

func (s *ListService) update(ctx context.Context, id, value string) Result {
	prev, _ := s.store.Get(id)

	entry, err := s.store.Update(ctx, id, value)
	switch {
	case errors.Is(err, ErrNotFound):
		s.logger.Warn("edit submitted for unknown entry", "id", id)
		return Result{Outcome: model.OutcomeNotFound, Message: msgNotFound, Kind: model.NoticeDanger}
	case errors.Is(err, ErrNoChange):
		return Result{Outcome: model.OutcomeNoChange, Entry: entry, Message: msgNoChange, Kind: model.NoticeDanger}
	case errors.Is(err, ErrEmptyInput):
		return Result{Outcome: model.OutcomeEmptyInput, Message: msgEmptyInput, Kind: model.NoticeDanger}
	}

	s.presenter.RenderEntry(entry)

	if err != nil {
		return s.failed(entry, msgSaveFailed, err)
	}

	return Result{
		Outcome: model.OutcomeUpdated,
		Entry:   entry,
		Message: fmt.Sprintf("%s has been changed to %s", prev.Value, entry.Value),
		Kind:    model.NoticeSuccess,
	}
}

func (s *ListService) failed(entry model.Entry, message string, err error) Result {
	s.logger.Error("list write-through failed", "id", entry.ID, "error", err)
	return Result{
		Outcome: model.OutcomeFailed,
		Entry:   entry,
		Message: message,
		Kind:    model.NoticeDanger,
		Err:     err,
	}
}

// finish notifies the user and records the command outcome.
func (s *ListService) finish(command string, r Result) Result {
	if r.Message != "" {
		s.notifier.Notify(r.Message, r.Kind)
	}
	if s.recorder != nil {
		s.recorder.RecordCommand(command, r.Outcome)
	}
	return r
}
