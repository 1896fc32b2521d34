package frontendtesting

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		kind ErrorKind
	}{
		{&TransportError{Err: errors.New("connection refused")}, ErrorKindTransport},
		{&APIError{StatusCode: 502, Body: "bad gateway"}, ErrorKindAPI},
		{&ParseError{Err: errors.New("unexpected EOF")}, ErrorKindParse},
		{&MissingFieldError{Field: "login.user.password"}, ErrorKindMissingField},
		{fmt.Errorf("wrapped: %w", &APIError{StatusCode: 404}), ErrorKindAPI},
	}

	for _, c := range cases {
		kind, ok := KindOf(c.err)
		assert.True(t, ok, c.err.Error())
		assert.Equal(t, c.kind, kind, c.err.Error())
	}

	_, ok := KindOf(errors.New("unrelated"))
	assert.False(t, ok)

	_, ok = KindOf(nil)
	assert.False(t, ok)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, []string{"transport", "api", "parse", "missing_field"}, ErrorKindStrings())

	kind, err := ErrorKindString("missing_field")
	assert.NoError(t, err)
	assert.Equal(t, ErrorKindMissingField, kind)
}
