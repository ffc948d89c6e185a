package mute

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Failure is the outcome of a submission that did not create a mute.
// Display returns the text shown to the operator.
type Failure interface {
	error
	Display() string
}

// ValidationFailure is returned when the draft did not pass Validate. No
// request was made.
type ValidationFailure struct {
	Fields FieldErrors
}

func (f *ValidationFailure) Error() string {
	return fmt.Sprintf("mute draft invalid: %d field(s)", len(f.Fields))
}

func (f *ValidationFailure) Display() string {
	return "Please correct the highlighted fields"
}

// HTTPFailure is a non-2xx answer from the API.
type HTTPFailure struct {
	Status int
	Body   []byte
}

func (f *HTTPFailure) Error() string {
	return fmt.Sprintf("api responded %d: %s", f.Status, f.Display())
}

// Display prefers a message carried by the response body and falls back to
// the status line.
func (f *HTTPFailure) Display() string {
	body := bytes.TrimSpace(f.Body)
	if len(body) > 0 {
		if msg := bodyMessage(body); msg != "" {
			return msg
		}
		return string(body)
	}
	if text := http.StatusText(f.Status); text != "" {
		return fmt.Sprintf("%d %s", f.Status, text)
	}
	return fmt.Sprintf("status %d", f.Status)
}

func bodyMessage(body []byte) string {
	switch body[0] {
	case '{':
		var obj map[string]any
		if err := json.Unmarshal(body, &obj); err != nil {
			return ""
		}
		for _, key := range []string{"message", "error", "detail"} {
			if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	case '"':
		var s string
		if err := json.Unmarshal(body, &s); err == nil {
			return s
		}
	}
	return ""
}

// UnknownFailure wraps anything that is not an HTTP status, such as a
// refused connection or a timeout.
type UnknownFailure struct {
	Err error
}

func (f *UnknownFailure) Error() string {
	if f.Err == nil {
		return "unknown error"
	}
	return f.Err.Error()
}

func (f *UnknownFailure) Display() string { return f.Error() }

func (f *UnknownFailure) Unwrap() error { return f.Err }

// statusError is satisfied by transport errors that carry an HTTP answer.
type statusError interface {
	StatusCode() int
	ResponseBody() []byte
}

// Classify maps err onto exactly one Failure kind. A nil err yields nil.
func Classify(err error) Failure {
	if err == nil {
		return nil
	}
	var failure Failure
	if errors.As(err, &failure) {
		return failure
	}
	var se statusError
	if errors.As(err, &se) {
		return &HTTPFailure{Status: se.StatusCode(), Body: se.ResponseBody()}
	}
	return &UnknownFailure{Err: err}
}
