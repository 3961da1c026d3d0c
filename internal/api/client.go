package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/corenotes/corenotes/internal/logging"
	"github.com/corenotes/corenotes/internal/model"
)

// DefaultAPIRoot is where the notes service listens in a default setup
const DefaultAPIRoot = "http://localhost:3001/api"

// DefaultTimeout bounds a single request when no timeout option is given
const DefaultTimeout = 10 * time.Second

// HeaderRequestID carries a per-request UUID so client and server logs line up
const HeaderRequestID = "X-Request-ID"

// Client defines the operations of the notes service.
type Client interface {
	// ListNotes returns every note, in the order the server keeps them.
	ListNotes(ctx context.Context) ([]model.Note, error)

	// CreateNote registers a new note and returns it with its server-assigned id.
	CreateNote(ctx context.Context, draft model.NoteDraft) (model.Note, error)

	// UpdateNote replaces a note.
	//
	// The returned note is the server's copy when the response carries one,
	// otherwise the note that was sent.
	UpdateNote(ctx context.Context, note model.Note) (model.Note, error)

	// DeleteNote removes the note with the given id.
	DeleteNote(ctx context.Context, id int64) error

	// Root returns the API root this client talks to.
	Root() string
}

type client struct {
	httpclient *http.Client
	api        string
	logger     *slog.Logger
}

// Option configures a client created by NewClient
type Option func(*client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		if hc != nil {
			c.httpclient = hc
		}
	}
}

// WithTimeout sets the per-request timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		if d > 0 {
			hc := *c.httpclient
			hc.Timeout = d
			c.httpclient = &hc
		}
	}
}

// WithLogger sets the logger used for request logs
func WithLogger(l *slog.Logger) Option {
	return func(c *client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client for the notes service at root.
//
// root must be an absolute URL such as "http://localhost:3001/api";
// otherwise ErrInvalidAPIRoot is returned.
func NewClient(root string, opts ...Option) (Client, error) {
	root = strings.TrimSpace(root)
	u, err := url.Parse(root)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAPIRoot, root)
	}

	c := &client{
		httpclient: &http.Client{Timeout: DefaultTimeout},
		api:        strings.TrimSuffix(root, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewModuleLogger("api", "client")
	}
	return c, nil
}

func (c *client) Root() string {
	return c.api
}

// build URL with path
func (c *client) apipath(path ...string) string {
	segments := make([]string, 0, len(path)+1)
	segments = append(segments, c.api)
	for _, p := range path {
		segments = append(segments, strings.Trim(p, "/"))
	}
	return strings.Join(segments, "/")
}

// do sends req with the common headers and logs the outcome
func (c *client) do(req *http.Request) (*http.Response, error) {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)

	started := time.Now()
	resp, err := c.httpclient.Do(req)
	elapsed := time.Since(started)
	if err != nil {
		c.logger.Warn("request failed",
			"method", req.Method, "url", req.URL.String(),
			"request_id", requestID, "elapsed", elapsed, "error", err)
		return nil, err
	}

	c.logger.Debug("request done",
		"method", req.Method, "url", req.URL.String(),
		"request_id", requestID, "status", resp.StatusCode, "elapsed", elapsed)
	return resp, nil
}
