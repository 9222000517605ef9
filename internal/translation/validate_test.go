package translation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		missing []string
	}{
		{
			name: "valid request",
			req:  Request{Text: "Hello", From: "English", To: "Spanish"},
		},
		{
			name:    "empty text",
			req:     Request{Text: "", From: "English", To: "Spanish"},
			missing: []string{"text"},
		},
		{
			name:    "missing from",
			req:     Request{Text: "Hello", To: "Spanish"},
			missing: []string{"from"},
		},
		{
			name:    "missing to",
			req:     Request{Text: "Hello", From: "English"},
			missing: []string{"to"},
		},
		{
			name:    "all missing",
			req:     Request{},
			missing: []string{"text", "from", "to"},
		},
		{
			name: "whitespace counts as present",
			req:  Request{Text: " ", From: "English", To: "Spanish"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.missing == nil {
				assert.NoError(t, err)
				return
			}
			var mfe *MissingFieldError
			require.True(t, errors.As(err, &mfe), "expected MissingFieldError, got %v", err)
			assert.Equal(t, tt.missing, mfe.Fields)
		})
	}
}

func TestParseRequest(t *testing.T) {
	t.Run("full payload passes through unchanged", func(t *testing.T) {
		req, err := ParseRequest([]byte(`{"text":"  Hello ","from":"english","to":"SPANISH","options":{"dialect":"Mexican Spanish","tone":"formal","plurality":"plural"}}`))
		require.NoError(t, err)

		assert.Equal(t, "  Hello ", req.Text)
		assert.Equal(t, "english", req.From)
		assert.Equal(t, "SPANISH", req.To)
		require.NotNil(t, req.Options)
		assert.Equal(t, "Mexican Spanish", req.Options.Dialect)
		assert.Equal(t, ToneFormal, req.Options.Tone)
		assert.Equal(t, PluralityPlural, req.Options.Plurality)
	})

	t.Run("unknown tone is not rejected", func(t *testing.T) {
		req, err := ParseRequest([]byte(`{"text":"Hi","from":"en","to":"es","options":{"tone":"playful"}}`))
		require.NoError(t, err)
		assert.Equal(t, Tone("playful"), req.Options.Tone)
	})

	t.Run("empty text is a missing field", func(t *testing.T) {
		_, err := ParseRequest([]byte(`{"text":"","from":"English","to":"Spanish"}`))
		var mfe *MissingFieldError
		require.ErrorAs(t, err, &mfe)
		assert.Equal(t, []string{"text"}, mfe.Fields)
	})

	t.Run("null payload is missing every field", func(t *testing.T) {
		_, err := ParseRequest([]byte(`null`))
		var mfe *MissingFieldError
		require.ErrorAs(t, err, &mfe)
		assert.Len(t, mfe.Fields, 3)
	})

	for _, payload := range []string{``, `[]`, `"text"`, `42`, `{"text":`, `{"text":5,"from":"en","to":"es"}`} {
		t.Run("malformed "+payload, func(t *testing.T) {
			_, err := ParseRequest([]byte(payload))
			var mpe *MalformedPayloadError
			assert.ErrorAs(t, err, &mpe)
		})
	}
}

func TestMissingFieldError_Message(t *testing.T) {
	err := &MissingFieldError{Fields: []string{"text", "to"}}
	assert.Equal(t, "missing required fields: text, to", err.Error())
}
