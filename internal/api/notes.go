package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/corenotes/corenotes/internal/model"
)

func (c *client) ListNotes(ctx context.Context) ([]model.Note, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apipath("notes"), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	notes := make([]model.Note, 0, 16)
	if err := unmarshalJsonResponse(
		resp, &notes,
		MessageFor{
			Status4xx: "cannot list notes",
			Status5xx: "server error while listing notes",
		},
	); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *client) CreateNote(ctx context.Context, draft model.NoteDraft) (model.Note, error) {
	b, err := json.Marshal(draft)
	if err != nil {
		return model.Note{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apipath("notes"), bytes.NewReader(b))
	if err != nil {
		return model.Note{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return model.Note{}, err
	}
	defer resp.Body.Close()

	var created model.Note
	if err := unmarshalJsonResponse(
		resp, &created,
		MessageFor{
			Status4xx: "invalid note",
			Status5xx: "server error while creating note",
		},
	); err != nil {
		return model.Note{}, err
	}
	return created, nil
}

func (c *client) UpdateNote(ctx context.Context, note model.Note) (model.Note, error) {
	b, err := json.Marshal(note)
	if err != nil {
		return model.Note{}, err
	}

	id := strconv.FormatInt(note.ID, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.apipath("notes", id), bytes.NewReader(b))
	if err != nil {
		return model.Note{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return model.Note{}, err
	}
	defer resp.Body.Close()

	var updated model.Note
	filled, err := unmarshalOptionalJsonResponse(
		resp, &updated,
		MessageFor{
			Status4xx: fmt.Sprintf("note %d is not found or invalid", note.ID),
			Status5xx: fmt.Sprintf("server error while updating note %d", note.ID),
		},
	)
	if err != nil {
		return model.Note{}, err
	}
	// Servers answering with a bare acknowledgement keep the sent note
	if !filled || updated.ID != note.ID {
		return note, nil
	}
	return updated, nil
}

func (c *client) DeleteNote(ctx context.Context, id int64) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodDelete, c.apipath("notes", strconv.FormatInt(id, 10)), nil,
	)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return unmarshalResponseDiscardingPayload(
		resp,
		MessageFor{
			Status4xx: fmt.Sprintf("note %d is not found", id),
			Status5xx: fmt.Sprintf("server error while deleting note %d", id),
		},
	)
}
