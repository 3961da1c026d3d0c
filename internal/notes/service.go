package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/corenotes/corenotes/internal/api"
	"github.com/corenotes/corenotes/internal/logging"
	"github.com/corenotes/corenotes/internal/model"
)

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrUnknownColor = errors.New("color is not in the palette")
	ErrNoteBusy     = errors.New("note has a request in flight")

	// ErrLoadSuperseded is returned by a Load whose result was dropped
	// because the client changed or a newer Load started meanwhile.
	ErrLoadSuperseded = errors.New("load superseded")
)

// Banner messages raised by the service; the UI may localize them by kind
const (
	MessageLoadFailed   = "Could not load notes"
	MessageCreated      = "Note created"
	MessageCreateFailed = "Could not create note"
	MessageUpdated      = "Note updated"
	MessageUpdateFailed = "Could not update note"
	MessageDeleted      = "Note deleted"
	MessageDeleteFailed = "Could not delete note"
)

// patch replays a local mutation on a list fetched while it was in flight
type patch func([]model.Note) []model.Note

// Service handles notes operations
type Service struct {
	client api.Client
	logger *slog.Logger

	mu      sync.RWMutex
	notes   []model.Note
	state   model.LoadState
	lastErr error
	search  string
	banner  model.Banner
	busy    map[int64]struct{}

	// epoch changes with the client; loadSeq with every Load.
	// journal collects mutations finished while a Load runs.
	epoch   uint64
	loadSeq uint64
	journal []patch

	callbackMu sync.RWMutex
	onUpdate   func(Event) // callback for UI updates
}

// NewService creates a new notes service backed by client
func NewService(client api.Client) *Service {
	return &Service{
		client: client,
		logger: logging.NewModuleLogger("notes", "service"),
		notes:  []model.Note{},
		state:  model.LoadStateIdle,
		busy:   make(map[int64]struct{}),
	}
}

// SetClient swaps the API client, e.g. after the endpoint changed.
// The local list is kept until the next Load; results of requests
// still running against the previous client are dropped.
func (s *Service) SetClient(client api.Client) {
	s.mu.Lock()
	s.client = client
	s.epoch++
	s.mu.Unlock()
}

// SetUpdateCallback sets the callback function for state updates
func (s *Service) SetUpdateCallback(callback func(Event)) {
	s.callbackMu.Lock()
	defer s.callbackMu.Unlock()
	s.onUpdate = callback
}

// Load fetches the whole list and replaces the local copy.
// Only the latest Load against the current client is applied.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loadSeq++
	seq, epoch := s.loadSeq, s.epoch
	s.journal = nil
	s.state = model.LoadStateLoading
	client := s.client
	s.mu.Unlock()
	s.notifyUpdate(Event{Kind: EventState})

	notes, err := client.ListNotes(ctx)

	s.mu.Lock()
	if seq != s.loadSeq || epoch != s.epoch {
		// no newer Load will settle the state
		settle := seq == s.loadSeq
		if settle {
			s.state = model.LoadStateIdle
			s.journal = nil
		}
		s.mu.Unlock()
		s.logger.Debug("dropping superseded list", "error", err)
		if settle {
			s.notifyUpdate(Event{Kind: EventState})
		}
		return ErrLoadSuperseded
	}
	if err != nil {
		s.state = model.LoadStateFailed
		s.lastErr = err
		s.journal = nil
		s.mu.Unlock()
		s.logger.Error("failed to load notes", "error", err)
		s.notifyUpdate(Event{Kind: EventState})
		s.raise(model.BannerError, MessageLoadFailed, err)
		return fmt.Errorf("load notes: %w", err)
	}

	for _, p := range s.journal {
		notes = p(notes)
	}
	s.journal = nil
	s.notes = notes
	s.state = model.LoadStateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.logger.Info("notes loaded", "count", len(notes))
	s.notifyUpdate(Event{Kind: EventLoaded})
	return nil
}

// Create validates the draft, posts it and prepends the created note
func (s *Service) Create(ctx context.Context, draft model.NoteDraft) (model.Note, error) {
	if err := draft.Validate(); err != nil {
		return model.Note{}, err
	}
	if draft.Color == "" {
		draft.Color = model.DefaultColor()
	}

	client, epoch := s.currentClient()
	created, err := client.CreateNote(ctx, draft)
	if err != nil {
		s.logger.Error("failed to create note", "title", draft.Title, "error", err)
		s.fail(err)
		s.raise(model.BannerError, MessageCreateFailed, err)
		return model.Note{}, fmt.Errorf("create note: %w", err)
	}

	if !s.apply(epoch, prependNote(created)) {
		return created, nil
	}

	s.logger.Info("note created", "id", created.ID)
	s.notifyUpdate(Event{Kind: EventCreated, NoteID: created.ID})
	s.raise(model.BannerSuccess, MessageCreated, nil)
	return created, nil
}

// Update sends the whole note and replaces the local copy with the result
func (s *Service) Update(ctx context.Context, note model.Note) (model.Note, error) {
	if err := s.acquire(note.ID); err != nil {
		return model.Note{}, err
	}
	defer s.release(note.ID)
	return s.update(ctx, note)
}

func (s *Service) update(ctx context.Context, note model.Note) (model.Note, error) {
	client, epoch := s.currentClient()
	updated, err := client.UpdateNote(ctx, note)
	if err != nil {
		s.logger.Error("failed to update note", "id", note.ID, "error", err)
		s.fail(err)
		s.raise(model.BannerError, MessageUpdateFailed, err)
		return model.Note{}, fmt.Errorf("update note %d: %w", note.ID, err)
	}

	if !s.apply(epoch, replaceNote(updated)) {
		return updated, nil
	}

	s.logger.Info("note updated", "id", updated.ID)
	s.notifyUpdate(Event{Kind: EventUpdated, NoteID: updated.ID})
	s.raise(model.BannerSuccess, MessageUpdated, nil)
	return updated, nil
}

// modify applies change to the current copy of note id and sends the result
func (s *Service) modify(ctx context.Context, id int64, change func(model.Note) model.Note) (model.Note, error) {
	if err := s.acquire(id); err != nil {
		return model.Note{}, err
	}
	defer s.release(id)

	note, ok := s.Get(id)
	if !ok {
		return model.Note{}, fmt.Errorf("%w: %d", ErrNoteNotFound, id)
	}
	return s.update(ctx, change(note))
}

// Edit changes title and content of a note
func (s *Service) Edit(ctx context.Context, id int64, title, content string) (model.Note, error) {
	if err := (model.NoteDraft{Title: title}).Validate(); err != nil {
		return model.Note{}, err
	}
	return s.modify(ctx, id, func(n model.Note) model.Note {
		return n.WithText(title, content)
	})
}

// ToggleFavorite flips the favorite flag of a note
func (s *Service) ToggleFavorite(ctx context.Context, id int64) (model.Note, error) {
	return s.modify(ctx, id, model.Note.WithFavoriteToggled)
}

// SetColor changes the background color of a note to a palette color.
// The color is stored in its palette spelling.
func (s *Service) SetColor(ctx context.Context, id int64, color string) (model.Note, error) {
	canonical, ok := model.PaletteColor(color)
	if !ok {
		return model.Note{}, fmt.Errorf("%w: %s", ErrUnknownColor, color)
	}
	return s.modify(ctx, id, func(n model.Note) model.Note {
		return n.WithColor(canonical)
	})
}

// Delete removes the note on the server, then locally.
// Asking the user for confirmation is up to the caller.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.acquire(id); err != nil {
		return err
	}
	defer s.release(id)

	client, epoch := s.currentClient()
	if err := client.DeleteNote(ctx, id); err != nil {
		s.logger.Error("failed to delete note", "id", id, "error", err)
		s.fail(err)
		s.raise(model.BannerError, MessageDeleteFailed, err)
		return fmt.Errorf("delete note %d: %w", id, err)
	}

	if !s.apply(epoch, removeNote(id)) {
		return nil
	}

	s.logger.Info("note deleted", "id", id)
	s.notifyUpdate(Event{Kind: EventDeleted, NoteID: id})
	s.raise(model.BannerSuccess, MessageDeleted, nil)
	return nil
}

// IsBusy reports whether a request for note id is in flight
func (s *Service) IsBusy(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.busy[id]
	return ok
}

// SetSearch sets the term used by Visible
func (s *Service) SetSearch(term string) {
	s.mu.Lock()
	if s.search == term {
		s.mu.Unlock()
		return
	}
	s.search = term
	s.mu.Unlock()
	s.notifyUpdate(Event{Kind: EventSearch})
}

// Search returns the current search term
func (s *Service) Search() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search
}

// Notes returns a copy of all notes in list order
func (s *Service) Notes() []model.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Note(nil), s.notes...)
}

// Get returns the note with the given id
func (s *Service) Get(id int64) (model.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return model.Note{}, false
}

// Visible returns the notes matching the search term, split into favorites and others
func (s *Service) Visible() View {
	s.mu.RLock()
	filtered := model.Filter(s.notes, s.search)
	s.mu.RUnlock()

	favorites, others := model.Partition(filtered)
	return View{Favorites: favorites, Others: others}
}

// State returns the load state of the list
func (s *Service) State() model.LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// LastError returns the error of the last failed operation, nil after a success
func (s *Service) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Banner returns the banner to show, if any
func (s *Service) Banner() model.Banner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.banner
}

// DismissBanner clears the current banner
func (s *Service) DismissBanner() {
	s.mu.Lock()
	if s.banner.IsZero() {
		s.mu.Unlock()
		return
	}
	s.banner = model.Banner{}
	s.mu.Unlock()
	s.notifyUpdate(Event{Kind: EventBanner})
}

func (s *Service) currentClient() (api.Client, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client, s.epoch
}

// apply runs p on the local list unless the client changed since epoch.
// While a Load is running, p is also kept to be replayed on its result.
func (s *Service) apply(epoch uint64, p patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		s.logger.Debug("dropping result from previous endpoint")
		return false
	}
	s.notes = p(s.notes)
	if s.state == model.LoadStateLoading {
		s.journal = append(s.journal, p)
	}
	s.lastErr = nil
	return true
}

// acquire marks note id busy; a second request for it is refused
func (s *Service) acquire(id int64) error {
	s.mu.Lock()
	if _, ok := s.busy[id]; ok {
		s.mu.Unlock()
		s.logger.Debug("note busy, request refused", "id", id)
		return fmt.Errorf("%w: %d", ErrNoteBusy, id)
	}
	s.busy[id] = struct{}{}
	s.mu.Unlock()
	s.notifyUpdate(Event{Kind: EventBusy, NoteID: id})
	return nil
}

func (s *Service) release(id int64) {
	s.mu.Lock()
	delete(s.busy, id)
	s.mu.Unlock()
	s.notifyUpdate(Event{Kind: EventBusy, NoteID: id})
}

func prependNote(n model.Note) patch {
	return func(list []model.Note) []model.Note {
		for _, existing := range list {
			if existing.ID == n.ID {
				return list
			}
		}
		return append([]model.Note{n}, list...)
	}
}

func replaceNote(n model.Note) patch {
	return func(list []model.Note) []model.Note {
		out := make([]model.Note, len(list))
		for i, existing := range list {
			if existing.ID == n.ID {
				existing = n
			}
			out[i] = existing
		}
		return out
	}
}

func removeNote(id int64) patch {
	return func(list []model.Note) []model.Note {
		kept := make([]model.Note, 0, len(list))
		for _, n := range list {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		return kept
	}
}

func (s *Service) fail(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

// raise replaces the current banner
func (s *Service) raise(kind model.BannerKind, message string, cause error) {
	if cause != nil {
		message = message + ": " + cause.Error()
	}
	s.mu.Lock()
	s.banner = model.Banner{Kind: kind, Message: message}
	s.mu.Unlock()
	s.notifyUpdate(Event{Kind: EventBanner})
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(ev Event) {
	s.callbackMu.RLock()
	cb := s.onUpdate
	s.callbackMu.RUnlock()
	if cb != nil {
		cb(ev)
	}
}
