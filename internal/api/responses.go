package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type MessageFor map[StatusCodeRange]string

// unmarshal http response which has json content.
//
// args:
//   - resp: http response to be processed.
//   - v: value which response should be.
//   - messageFor: summary of error message for HTTP status code range.
//
// return:
//
//	error if...
//	- can not read response body
//	- response body is not shaped of v
//	- status code is not 2xx
func unmarshalJsonResponse[T any](resp *http.Response, v *T, messageFor MessageFor) error {
	if err := checkStatus(resp, messageFor); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("unexpected response body (status code = %d): %w", resp.StatusCode, err)
	}
	return nil
}

// like unmarshalJsonResponse, but an empty body is not an error.
//
// returns true when v was filled from the body.
func unmarshalOptionalJsonResponse[T any](resp *http.Response, v *T, messageFor MessageFor) (bool, error) {
	if err := checkStatus(resp, messageFor); err != nil {
		return false, err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("cannot read response body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return false, fmt.Errorf("unexpected response body (status code = %d): %w", resp.StatusCode, err)
	}
	return true, nil
}

func unmarshalResponseDiscardingPayload(resp *http.Response, messageFor MessageFor) error {
	err := checkStatus(resp, messageFor)
	io.Copy(io.Discard, resp.Body)
	return err
}

func checkStatus(resp *http.Response, messageFor MessageFor) error {
	scr := StatusCodeRangeOf(resp)
	if scr == Status2xx {
		return nil
	}

	summary, ok := messageFor[scr]
	if !ok {
		summary = scr.String()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{
			StatusCode: resp.StatusCode,
			Summary:    summary,
			Detail:     "cannot read server message: " + err.Error(),
		}
	}

	return &Error{
		StatusCode: resp.StatusCode,
		Summary:    summary,
		Detail:     parseErrorMessage(body),
	}
}

func parseErrorMessage(body []byte) string {
	var msg struct {
		Message *string `json:"message"`
		Error   *string `json:"error"`
	}
	if err := json.Unmarshal(body, &msg); err == nil {
		if msg.Message != nil {
			return *msg.Message
		}
		if msg.Error != nil {
			return *msg.Error
		}
	}
	return strings.TrimSpace(string(body))
}
