package notes

import (
	"context"

	"github.com/corenotes/corenotes/internal/api"
	"github.com/corenotes/corenotes/internal/model"
)

// Store defines the interface for the notes service.
type Store interface {
	SetUpdateCallback(func(Event))
	SetClient(client api.Client)

	Load(ctx context.Context) error
	Create(ctx context.Context, draft model.NoteDraft) (model.Note, error)
	Update(ctx context.Context, note model.Note) (model.Note, error)
	Edit(ctx context.Context, id int64, title, content string) (model.Note, error)
	ToggleFavorite(ctx context.Context, id int64) (model.Note, error)
	SetColor(ctx context.Context, id int64, color string) (model.Note, error)
	Delete(ctx context.Context, id int64) error
	IsBusy(id int64) bool

	SetSearch(term string)
	Search() string

	Notes() []model.Note
	Get(id int64) (model.Note, bool)
	Visible() View

	State() model.LoadState
	LastError() error
	Banner() model.Banner
	DismissBanner()
}

// View is the filtered list split the way the UI shows it
type View struct {
	Favorites []model.Note
	Others    []model.Note
}

// EventKind tells subscribers what changed
type EventKind string

const (
	EventLoaded  EventKind = "loaded"
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
	EventSearch  EventKind = "search"
	EventState   EventKind = "state"
	EventBanner  EventKind = "banner"
	EventBusy    EventKind = "busy"
)

// Event is published after every state change
type Event struct {
	Kind   EventKind
	NoteID int64
}
