package translation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MissingFieldError reports required request fields that were absent or empty.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// MalformedPayloadError reports a payload that could not be decoded into a
// request object.
type MalformedPayloadError struct {
	Err error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed request payload: %v", e.Err)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// ParseRequest decodes a raw JSON payload and validates it. The decoded
// request is returned exactly as sent.
func ParseRequest(data []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, &MalformedPayloadError{Err: err}
	}
	if err := Validate(req); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Validate checks that text, from and to are all non-empty. Whitespace-only
// values count as present.
func Validate(req Request) error {
	var missing []string
	if req.Text == "" {
		missing = append(missing, "text")
	}
	if req.From == "" {
		missing = append(missing, "from")
	}
	if req.To == "" {
		missing = append(missing, "to")
	}
	if len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}
	return nil
}
