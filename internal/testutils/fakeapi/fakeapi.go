// Package fakeapi is an in-memory notes service for tests.
//
// It speaks the same JSON contract as the real service under "/api/notes" and
// can be told to fail or park upcoming requests.
package fakeapi

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/corenotes/corenotes/internal/model"
)

// Server is a running fake notes service
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	notes      []model.Note
	nextID     int64
	failures   []int
	requestIDs []string
	emptyPut   bool
	gates      map[string]chan struct{}
}

// New starts a fake service seeded with notes. It is closed when the test ends.
func New(t *testing.T, seed ...model.Note) *Server {
	t.Helper()

	s := &Server{nextID: 1}
	for _, n := range seed {
		s.notes = append(s.notes, n)
		if n.ID >= s.nextID {
			s.nextID = n.ID + 1
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(s.recordAndFail)

	g := e.Group("/api")
	g.GET("/notes", s.list)
	g.POST("/notes", s.create)
	g.PUT("/notes/:id", s.update)
	g.DELETE("/notes/:id", s.delete)

	s.Server = httptest.NewServer(e)
	t.Cleanup(s.Server.Close)
	return s
}

// APIRoot returns the root URL to hand to api.NewClient
func (s *Server) APIRoot() string {
	return s.URL + "/api"
}

// FailNext makes the next len(statuses) requests fail with the given statuses
func (s *Server) FailNext(statuses ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, statuses...)
}

// AnswerPutWithNoContent makes updates answer 204 with no body
func (s *Server) AnswerPutWithNoContent(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emptyPut = v
}

// Hold parks every request with the given method until release is called.
// A parked list has already read the notes, so it answers with the state
// from before the park ended. release may be called more than once.
func (s *Server) Hold(method string) (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	if s.gates == nil {
		s.gates = make(map[string]chan struct{})
	}
	s.gates[method] = gate
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			if s.gates[method] == gate {
				delete(s.gates, method)
			}
			s.mu.Unlock()
			close(gate)
		})
	}
}

// Notes returns a copy of the stored notes
func (s *Server) Notes() []model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Note(nil), s.notes...)
}

// RequestIDs returns the X-Request-ID header of every request received
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

func (s *Server) recordAndFail(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		s.requestIDs = append(s.requestIDs, c.Request().Header.Get("X-Request-ID"))
		status := 0
		if len(s.failures) > 0 {
			status = s.failures[0]
			s.failures = s.failures[1:]
		}
		s.mu.Unlock()

		if status != 0 {
			return c.JSON(status, map[string]string{"message": "injected failure"})
		}
		if c.Request().Method != http.MethodGet {
			s.wait(c)
		}
		return next(c)
	}
}

// wait blocks while requests of this method are held
func (s *Server) wait(c echo.Context) {
	s.mu.Lock()
	gate := s.gates[c.Request().Method]
	s.mu.Unlock()
	if gate == nil {
		return
	}
	select {
	case <-gate:
	case <-c.Request().Context().Done():
	}
}

func (s *Server) list(c echo.Context) error {
	s.mu.Lock()
	out := append(make([]model.Note, 0, len(s.notes)), s.notes...)
	s.mu.Unlock()

	s.wait(c)
	return c.JSON(http.StatusOK, out)
}

func (s *Server) create(c echo.Context) error {
	var draft model.NoteDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}
	if draft.Validate() != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "title is required"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	n := model.Note{
		ID:      s.nextID,
		Title:   draft.Title,
		Content: draft.Content,
		Color:   draft.Color,
	}
	s.nextID++
	s.notes = append([]model.Note{n}, s.notes...)
	return c.JSON(http.StatusCreated, n)
}

func (s *Server) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "bad id"})
	}
	var n model.Note
	if err := c.Bind(&n); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}
	n.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i] = n
			if s.emptyPut {
				return c.NoContent(http.StatusNoContent)
			}
			return c.JSON(http.StatusOK, n)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "note not found"})
}

func (s *Server) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "bad id"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return c.NoContent(http.StatusNoContent)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "note not found"})
}
