package shared

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type evaluatePayload struct {
	Target        string `json:"target"`
	SpokenPrimary string `json:"spoken_primary"`
}

// failingReader errors on every read.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/attempts/evaluate",
			bytes.NewBufferString(`{"target": "good morning", "spoken_primary": "good morning please"}`))

		var payload evaluatePayload
		require.NoError(t, DecodeJSON(req, &payload))
		assert.Equal(t, "good morning", payload.Target)
		assert.Equal(t, "good morning please", payload.SpokenPrimary)
	})

	t.Run("malformed payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/attempts/evaluate",
			bytes.NewBufferString(`{"target": "good morning",}`))

		err := DecodeJSON(req, &evaluatePayload{})
		assert.ErrorContains(t, err, "invalid character")
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/attempts/evaluate",
			bytes.NewBufferString(""))

		err := DecodeJSON(req, &evaluatePayload{})
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("body read failure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/attempts/evaluate", failingReader{})

		err := DecodeJSON(req, &evaluatePayload{})
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

type reviewPayload struct {
	Rating int `validate:"gte=1,lte=5"`
}

var errNotConfirmed = errors.New("reset must be confirmed")

// resetConfirmation validates itself instead of relying on struct tags.
type resetConfirmation struct {
	Confirm string
}

func (r *resetConfirmation) Validate() error {
	if r.Confirm != "yes" {
		return errNotConfirmed
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	t.Run("struct tags pass", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(&reviewPayload{Rating: 3}))
	})

	t.Run("struct tags fail", func(t *testing.T) {
		assert.Error(t, ValidateRequest(&reviewPayload{Rating: 9}))
	})

	t.Run("custom validation takes precedence", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(&resetConfirmation{Confirm: "yes"}))
		assert.ErrorIs(t, ValidateRequest(&resetConfirmation{}), errNotConfirmed)
	})

	t.Run("untagged struct passes", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(&struct{ Note string }{"anything"}))
	})
}
